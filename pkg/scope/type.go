package scope

// Payload is the verified content of an access token.
type Payload struct {
	UserID    string `json:"id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

// Manager verifies a raw access token and returns its payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

type payloadCtxKey struct{}

type scopeCtxKey struct{}
