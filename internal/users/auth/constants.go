// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

package auth

import "time"

const (
	// SessionTTL is how long a login session stays valid. The cookie and the
	// Redis session record expire together.
	SessionTTL = 30 * 24 * time.Hour

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
)

// Field names used in validation errors.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)
