package jwt

import "errors"

var (
	// ErrInvalidToken is returned for every verification failure: empty, malformed,
	// wrong signature, wrong algorithm, expired or wrong token type.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrSecretKeyRequired = errors.New("jwt secret key is required")
	ErrSecretKeyTooShort = errors.New("jwt secret key is too short")
	ErrInvalidSubject    = errors.New("jwt subject and role are required")
)
