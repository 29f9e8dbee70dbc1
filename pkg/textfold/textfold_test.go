// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

package textfold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daheepark/chaekdam/pkg/textfold"
)

/*
TestFold verifies lowercasing, NFC composition, and trimming.
*/
func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii_lower", "Clean Code", "clean code"},
		{"trimmed", "  한빛미디어  ", "한빛미디어"},
		// decomposed Hangul jamo compose to the precomposed syllable
		{"nfc_compose", "\u1112\u1161\u11ab", "\ud55c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textfold.Fold(tt.input))
		})
	}
}

/*
TestContains verifies folded substring matching, including the empty-needle rule.
*/
func TestContains(t *testing.T) {
	assert.True(t, textfold.Contains("정보보안개론", "보안"))
	assert.True(t, textfold.Contains("The Go Programming Language", "go program"))
	assert.True(t, textfold.Contains("anything", ""))
	assert.False(t, textfold.Contains("미분적분학", "보안"))
}
