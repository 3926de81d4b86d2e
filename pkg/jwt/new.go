package jwt

import (
	"fmt"
	"time"
)

// WithClock replaces the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a new JWT manager with HS256 symmetric key. There is no fallback
// secret: an empty or short key is a startup error.
func New(cfg Config, opts ...Option) (*Manager, error) {
	if cfg.SecretKey == "" {
		return nil, ErrSecretKeyRequired
	}
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("%w: must be at least %d characters, got %d", ErrSecretKeyTooShort, MinSecretKeyLen, len(cfg.SecretKey))
	}

	refreshTTL := cfg.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}

	m := &Manager{
		secretKey:  []byte(cfg.SecretKey),
		issuer:     cfg.Issuer,
		accessTTL:  AccessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}
