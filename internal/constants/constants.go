package constants

import "time"

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "user_id"

	// MinPasswordLength is the minimum accepted password length at registration.
	MinPasswordLength = 8

	// TokenTTL is how long an issued auth token stays valid.
	TokenTTL = 7 * 24 * time.Hour

	// Pagination defaults
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxLogoSizeBytes caps uploaded employer logos at 5MB.
	MaxLogoSizeBytes = 5 << 20
)
