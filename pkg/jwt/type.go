package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey  string
	Issuer     string
	RefreshTTL time.Duration
}

// Option customises a Manager.
type Option func(*Manager)

// Manager issues and verifies HS256 access and refresh tokens.
// It is safe for concurrent use.
type Manager struct {
	secretKey  []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// TokenPair is the result of one issuance.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// AccessClaims is the verified content of an access token.
type AccessClaims struct {
	ID        string
	Role      string
	ExpiresAt time.Time
}

// RefreshClaims is the verified content of a refresh token. It carries no role.
type RefreshClaims struct {
	ID        string
	ExpiresAt time.Time
}

type claims struct {
	ID   string `json:"id"`
	Role string `json:"role,omitempty"`
	Type string `json:"typ"`
	jwt.RegisteredClaims
}
