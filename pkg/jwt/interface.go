package jwt

import "inventory-srv/pkg/scope"

// IManager defines the interface for JWT token generation and verification.
// Implementations are safe for concurrent use.
type IManager interface {
	IssueTokenPair(userID, role string) (TokenPair, error)
	VerifyAccessToken(token string) (AccessClaims, error)
	VerifyRefreshToken(token string) (RefreshClaims, error)
	Verify(token string) (scope.Payload, error)
}

var (
	_ IManager      = (*Manager)(nil)
	_ scope.Manager = (*Manager)(nil)
)
