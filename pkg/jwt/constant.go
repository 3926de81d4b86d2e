package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32

	// AccessTTL is the fixed lifetime of an access token.
	AccessTTL = time.Hour
	// DefaultRefreshTTL is used when Config.RefreshTTL is not positive.
	DefaultRefreshTTL = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)
