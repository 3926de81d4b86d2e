package scope

import (
	"context"

	"inventory-srv/internal/model"
)

// NewScope creates a new scope.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID: payload.UserID,
		Role:   payload.Role,
	}
}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, payload)
}

// GetPayloadFromContext returns the payload attached by the auth middleware.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return payload, ok
}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the caller scope. The second value is false when no
// verified identity was attached to ctx.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	if !ok || sc.UserID == "" {
		return model.Scope{}, false
	}
	return sc, true
}
