package scope

import (
	"context"
	"testing"

	"inventory-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		payload := Payload{UserID: "u-1", Role: model.RoleManager, ExpiresAt: 100}
		ctx := SetPayloadToContext(context.Background(), payload)
		ctx = SetScopeToContext(ctx, NewScope(payload))

		gotPayload, ok := GetPayloadFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, payload, gotPayload)

		sc, ok := GetScopeFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, model.Scope{UserID: "u-1", Role: model.RoleManager}, sc)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := GetScopeFromContext(context.Background())
		assert.False(t, ok)

		_, ok = GetPayloadFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("empty user id is not an identity", func(t *testing.T) {
		ctx := SetScopeToContext(context.Background(), model.Scope{Role: model.RoleAdmin})
		_, ok := GetScopeFromContext(ctx)
		assert.False(t, ok)
	})
}
