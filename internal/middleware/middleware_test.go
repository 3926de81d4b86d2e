package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-srv/config"
	"inventory-srv/internal/model"
	"inventory-srv/pkg/jwt"
	"inventory-srv/pkg/log"
	"inventory-srv/pkg/response"
	"inventory-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router  *gin.Engine
	manager *jwt.Manager
}

func newTestEnv(t *testing.T, roles ...string) testEnv {
	t.Helper()

	manager, err := jwt.New(jwt.Config{SecretKey: testSecret, Issuer: "inventory-srv"})
	require.NoError(t, err)

	mw := New(log.NewNop(), manager, config.CookieConfig{AccessName: "accessToken", RefreshName: "refreshToken"})

	handlers := []gin.HandlerFunc{mw.Auth()}
	if len(roles) > 0 {
		handlers = append(handlers, mw.RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		sc, ok := scope.GetScopeFromContext(c.Request.Context())
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		response.OK(c, sc)
	})

	r := gin.New()
	r.Use(Recovery(log.NewNop()))
	r.GET("/protected", handlers...)

	return testEnv{router: r, manager: manager}
}

func (e testEnv) token(t *testing.T, userID, role string) string {
	t.Helper()
	pair, err := e.manager.IssueTokenPair(userID, role)
	require.NoError(t, err)
	return pair.AccessToken
}

type scopeResp struct {
	ErrorCode int         `json:"error_code"`
	Message   string      `json:"message"`
	Data      model.Scope `json:"data"`
}

func do(t *testing.T, r http.Handler, header, cookie string) (int, scopeResp) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: cookie})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body scopeResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestAuth(t *testing.T) {
	env := newTestEnv(t)
	valid := env.token(t, "user-1", model.RoleUser)

	t.Run("bearer header", func(t *testing.T) {
		code, body := do(t, env.router, "Bearer "+valid, "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, model.Scope{UserID: "user-1", Role: model.RoleUser}, body.Data)
	})

	t.Run("lowercase scheme", func(t *testing.T) {
		code, _ := do(t, env.router, "bearer "+valid, "")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("tab or repeated spaces after scheme", func(t *testing.T) {
		for _, header := range []string{"Bearer\t" + valid, "Bearer   " + valid, "  Bearer " + valid + "  "} {
			code, body := do(t, env.router, header, "")
			assert.Equal(t, http.StatusOK, code, header)
			assert.Equal(t, model.Scope{UserID: "user-1", Role: model.RoleUser}, body.Data)
		}
	})

	t.Run("bare scheme with tab falls back to cookie", func(t *testing.T) {
		code, _ := do(t, env.router, "Bearer\t", valid)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("raw header token", func(t *testing.T) {
		code, _ := do(t, env.router, valid, "")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("cookie only", func(t *testing.T) {
		code, body := do(t, env.router, "", valid)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, model.Scope{UserID: "user-1", Role: model.RoleUser}, body.Data)
	})

	t.Run("empty bearer falls back to cookie", func(t *testing.T) {
		code, _ := do(t, env.router, "Bearer ", valid)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("malformed header wins over valid cookie", func(t *testing.T) {
		code, body := do(t, env.router, "Bearer not-a-token", valid)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, MessageInvalidToken, body.Message)
	})

	t.Run("missing token", func(t *testing.T) {
		code, body := do(t, env.router, "", "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, MessageMissingToken, body.Message)
	})

	t.Run("truncated token", func(t *testing.T) {
		code, body := do(t, env.router, "Bearer "+valid[:len(valid)-1], "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, MessageInvalidToken, body.Message)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		pair, err := env.manager.IssueTokenPair("user-1", model.RoleUser)
		require.NoError(t, err)

		code, body := do(t, env.router, "Bearer "+pair.RefreshToken, "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, MessageInvalidToken, body.Message)
	})
}

func TestRequireRoles(t *testing.T) {
	env := newTestEnv(t, model.RoleManager, model.RoleAdmin)

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "user denied", role: model.RoleUser, wantCode: http.StatusForbidden},
		{name: "manager allowed", role: model.RoleManager, wantCode: http.StatusOK},
		{name: "admin allowed", role: model.RoleAdmin, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, env.router, "Bearer "+env.token(t, "user-1", tt.role), "")
			assert.Equal(t, tt.wantCode, code)
			if tt.wantCode == http.StatusForbidden {
				assert.Equal(t, response.MessageForbidden, body.Message)
			}
		})
	}
}

func TestRequireRolesWithoutIdentity(t *testing.T) {
	mw := New(log.NewNop(), nil, config.CookieConfig{})

	r := gin.New()
	r.GET("/protected", mw.RequireRoles(model.RoleManager, model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	code, body := do(t, r, "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, MessageNotAuthenticated, body.Message)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(log.NewNop()))
	r.GET("/protected", func(c *gin.Context) {
		panic("boom")
	})

	code, body := do(t, r, "", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, response.MessageInternalError, body.Message)
}
