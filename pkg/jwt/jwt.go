package jwt

import (
	"fmt"
	"strings"
	"time"

	"inventory-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
)

// IssueTokenPair signs an access token carrying id and role and a refresh token
// carrying only id. Both are independently verifiable and expire independently.
func (m *Manager) IssueTokenPair(userID, role string) (TokenPair, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(role) == "" {
		return TokenPair{}, ErrInvalidSubject
	}

	now := m.now()
	accessExpiresAt := now.Add(m.accessTTL)
	refreshExpiresAt := now.Add(m.refreshTTL)

	accessToken, err := m.sign(claims{
		ID:               userID,
		Role:             role,
		Type:             tokenTypeAccess,
		RegisteredClaims: m.registeredClaims(userID, now, accessExpiresAt),
	})
	if err != nil {
		return TokenPair{}, err
	}

	refreshToken, err := m.sign(claims{
		ID:               userID,
		Type:             tokenTypeRefresh,
		RegisteredClaims: m.registeredClaims(userID, now, refreshExpiresAt),
	})
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  jwt.NewNumericDate(accessExpiresAt).Time,
		RefreshExpiresAt: jwt.NewNumericDate(refreshExpiresAt).Time,
	}, nil
}

// VerifyAccessToken never panics; any failure is ErrInvalidToken.
func (m *Manager) VerifyAccessToken(token string) (AccessClaims, error) {
	c, err := m.parse(token, tokenTypeAccess)
	if err != nil {
		return AccessClaims{}, err
	}
	if c.Role == "" {
		return AccessClaims{}, ErrInvalidToken
	}

	return AccessClaims{
		ID:        c.ID,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// VerifyRefreshToken never panics; any failure is ErrInvalidToken.
func (m *Manager) VerifyRefreshToken(token string) (RefreshClaims, error) {
	c, err := m.parse(token, tokenTypeRefresh)
	if err != nil {
		return RefreshClaims{}, err
	}

	return RefreshClaims{
		ID:        c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// Verify implements scope.Manager on top of VerifyAccessToken.
func (m *Manager) Verify(token string) (scope.Payload, error) {
	c, err := m.parse(token, tokenTypeAccess)
	if err != nil {
		return scope.Payload{}, err
	}
	if c.Role == "" {
		return scope.Payload{}, ErrInvalidToken
	}

	p := scope.Payload{
		UserID:    c.ID,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Unix(),
	}
	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Unix()
	}
	return p, nil
}

func (m *Manager) registeredClaims(subject string, issuedAt, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}

func (m *Manager) sign(c claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (m *Manager) parse(tokenString, tokenType string) (*claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(*jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if c.Type != tokenType || c.ID == "" || c.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return c, nil
}
