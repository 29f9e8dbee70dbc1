package shelf

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daheepark/chaekdam/internal/platform/database/schema"
	"github.com/daheepark/chaekdam/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]Book, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
	`,
		strings.Join(bookColumns(), ", "),
		schema.ShelfBook.Table, schema.ShelfBook.OwnerID, schema.ShelfBook.AddedAt,
	)

	rows, err := repository.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Publisher, &b.PublishDate,
			&b.Category, &b.Description, &b.Thumbnail, &b.ReadStatus, &b.Rating,
			&b.Notes, &b.AddedAt, &b.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}

	return books, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, ownerID string, b *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ShelfBook.Table,
		schema.ShelfBook.ID, schema.ShelfBook.OwnerID, schema.ShelfBook.ISBN,
		schema.ShelfBook.Title, schema.ShelfBook.Author, schema.ShelfBook.Publisher,
		schema.ShelfBook.PublishDate, schema.ShelfBook.Category, schema.ShelfBook.Description,
		schema.ShelfBook.Thumbnail, schema.ShelfBook.ReadStatus, schema.ShelfBook.Rating,
		schema.ShelfBook.Notes, schema.ShelfBook.AddedAt, schema.ShelfBook.UpdatedAt,
		schema.ShelfBook.AddedAt, schema.ShelfBook.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		b.ID, ownerID, b.ISBN, b.Title, b.Author, b.Publisher, b.PublishDate,
		b.Category, b.Description, b.Thumbnail, b.ReadStatus, b.Rating, b.Notes,
	).Scan(&b.AddedAt, &b.UpdatedAt)

	return dberr.Wrap(err, "create_book")
}

func (repository *PostgresRepository) Update(ctx context.Context, ownerID string, b *Book) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9,
		    %s = $10, %s = $11, %s = $12, %s = $13, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s, %s
	`,
		schema.ShelfBook.Table,
		schema.ShelfBook.ISBN, schema.ShelfBook.Title, schema.ShelfBook.Author,
		schema.ShelfBook.Publisher, schema.ShelfBook.PublishDate, schema.ShelfBook.Category,
		schema.ShelfBook.Description, schema.ShelfBook.Thumbnail, schema.ShelfBook.ReadStatus,
		schema.ShelfBook.Rating, schema.ShelfBook.Notes, schema.ShelfBook.UpdatedAt,
		schema.ShelfBook.ID, schema.ShelfBook.OwnerID,
		schema.ShelfBook.AddedAt, schema.ShelfBook.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		b.ID, ownerID, b.ISBN, b.Title, b.Author, b.Publisher, b.PublishDate,
		b.Category, b.Description, b.Thumbnail, b.ReadStatus, b.Rating, b.Notes,
	).Scan(&b.AddedAt, &b.UpdatedAt)

	return dberr.Wrap(err, "update_book")
}

func (repository *PostgresRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ShelfBook.Table, schema.ShelfBook.ID, schema.ShelfBook.OwnerID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, dberr.Wrap(err, "delete_book")
	}

	return cmd.RowsAffected() > 0, nil
}

func bookColumns() []string {
	t := schema.ShelfBook
	return []string{
		t.ID, t.ISBN, t.Title, t.Author, t.Publisher, t.PublishDate, t.Category,
		t.Description, t.Thumbnail, t.ReadStatus, t.Rating, t.Notes, t.AddedAt, t.UpdatedAt,
	}
}
