package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"inventory-srv/config"
	"inventory-srv/internal/authentication/usecase"
	"inventory-srv/internal/middleware"
	"inventory-srv/internal/model"
	"inventory-srv/internal/user"
	"inventory-srv/pkg/encrypter"
	"inventory-srv/pkg/jwt"
	"inventory-srv/pkg/log"
	"inventory-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// memoryUsers is an in-memory account directory.
type memoryUsers struct {
	mu    sync.Mutex
	seq   int
	users map[string]model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]model.User{}}
}

func (m *memoryUsers) Create(_ context.Context, in user.CreateInput) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == in.Email {
			return model.User{}, user.ErrEmailExists
		}
	}
	m.seq++
	u := model.User{
		ID:           "u-" + strconv.Itoa(m.seq),
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		Name:         in.Name,
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, user.ErrUserNotFound
}

func (m *memoryUsers) GetByID(_ context.Context, id string) (model.UserSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return model.UserSummary{}, user.ErrUserNotFound
	}
	return u.Summary(), nil
}

func (m *memoryUsers) FindManagerByName(_ context.Context, name string) (model.UserSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Name == name && u.Role == model.RoleManager {
			return u.Summary(), nil
		}
	}
	return model.UserSummary{}, user.ErrUserNotFound
}

func (m *memoryUsers) List(_ context.Context, in user.ListInput) (user.ListOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := in.Paginator
	q.Normalize()
	out := user.ListOutput{}
	for _, u := range m.users {
		out.Users = append(out.Users, u.Summary())
	}
	out.Paginator = paginator.NewPage(q, int64(len(out.Users)), len(out.Users))
	return out, nil
}

func (m *memoryUsers) setRole(id, role string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := m.users[id]
	u.Role = role
	m.users[id] = u
}

type testServer struct {
	router *gin.Engine
	users  *memoryUsers
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager, err := jwt.New(jwt.Config{SecretKey: testSecret, Issuer: "inventory-srv"})
	require.NoError(t, err)

	cookieCfg := config.CookieConfig{Path: "/", SameSite: "Lax", AccessName: "accessToken", RefreshName: "refreshToken"}
	users := newMemoryUsers()
	l := log.NewNop()

	uc := usecase.New(l, users, manager, encrypter.New(encrypter.MinCost), usecase.Options{})
	h := New(l, uc, cookieCfg, jwt.DefaultRefreshTTL)

	r := gin.New()
	r.Use(middleware.Recovery(l))
	h.RegisterRoutes(r.Group(""), middleware.New(l, manager, cookieCfg))

	return testServer{router: r, users: users}
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func (s testServer) do(t *testing.T, method, path string, body any, header map[string]string, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegisterThenMe(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "alice@example.com", "password": "pa55word", "name": "Alice",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var reg authResp
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	require.NotEmpty(t, reg.AccessToken)
	assert.Equal(t, model.RoleUser, reg.User.Role)

	refresh := findCookie(w, "refreshToken")
	require.NotNil(t, refresh)
	assert.True(t, refresh.HttpOnly)
	assert.Equal(t, int(jwt.DefaultRefreshTTL.Seconds()), refresh.MaxAge)

	access := findCookie(w, "accessToken")
	require.NotNil(t, access)
	assert.False(t, access.HttpOnly)
	assert.Equal(t, 3600, access.MaxAge)

	w, env = s.do(t, http.MethodGet, "/api/v1/auth/me", nil, bearer(reg.AccessToken))
	require.Equal(t, http.StatusOK, w.Code)

	var me map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, map[string]any{
		"id":    reg.User.ID,
		"email": "alice@example.com",
		"name":  "Alice",
		"role":  "USER",
	}, me)

	truncated := reg.AccessToken[:len(reg.AccessToken)-1]
	w, env = s.do(t, http.MethodGet, "/api/v1/auth/me", nil, bearer(truncated))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, middleware.MessageInvalidToken, env.Message)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{"email": "alice@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", env.Message)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "alice@example.com", "password": "pw", "name": "   ",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All fields are required", env.Message)

	w, _ = s.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "not-an-email", "password": "pw", "name": "Alice",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "root@example.com", "password": "pw", "name": "Root", "role": "ADMIN",
	}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	body := map[string]string{"email": "alice@example.com", "password": "pw", "name": "Alice"}
	w, _ = s.do(t, http.MethodPost, "/api/v1/auth/register", body, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/register", body, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User already exists", env.Message)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "alice@example.com", "password": "pa55word", "name": "Alice",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "alice@example.com", "password": "pa55word",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login authResp
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.AccessToken)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", env.Message)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "alice@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email and password required", env.Message)
}

func TestRefreshAndLogout(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "alice@example.com", "password": "pa55word", "name": "Alice",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var reg authResp
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	refresh := findCookie(w, "refreshToken")
	require.NotNil(t, refresh)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/refresh", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Refresh token not found", env.Message)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/refresh", nil, nil, &http.Cookie{Name: "refreshToken", Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid refresh token", env.Message)

	// role changes are picked up on refresh
	s.users.setRole(reg.User.ID, model.RoleManager)

	w, env = s.do(t, http.MethodPost, "/api/v1/auth/refresh", nil, nil, &http.Cookie{Name: "refreshToken", Value: refresh.Value})
	require.Equal(t, http.StatusOK, w.Code)
	var rr refreshResp
	require.NoError(t, json.Unmarshal(env.Data, &rr))
	require.NotNil(t, findCookie(w, "refreshToken"))

	w, _ = s.do(t, http.MethodGet, "/api/v1/auth/manager/dashboard", nil, bearer(rr.AccessToken))
	assert.Equal(t, http.StatusOK, w.Code)

	// the old token keeps its role until it expires
	w, _ = s.do(t, http.MethodGet, "/api/v1/auth/manager/dashboard", nil, bearer(reg.AccessToken))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/v1/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cleared := findCookie(w, "refreshToken")
	require.NotNil(t, cleared)
	assert.Equal(t, "", cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestRoleGatedRoutes(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "alice@example.com", "password": "pa55word", "name": "Alice",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var reg authResp
	require.NoError(t, json.Unmarshal(env.Data, &reg))

	w, _ = s.do(t, http.MethodGet, "/api/v1/auth/admin/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/v1/auth/admin/users", nil, bearer(reg.AccessToken))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied: Insufficient permissions", env.Message)

	s.users.setRole(reg.User.ID, model.RoleAdmin)
	w, env = s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email": "alice@example.com", "password": "pa55word",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login authResp
	require.NoError(t, json.Unmarshal(env.Data, &login))

	w, env = s.do(t, http.MethodGet, "/api/v1/auth/admin/users?page=1&limit=5", nil, bearer(login.AccessToken))
	require.Equal(t, http.StatusOK, w.Code)
	var list listUsersResp
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Users, 1)
	assert.Equal(t, model.RoleAdmin, list.Users[0].Role)
	assert.Equal(t, 5, list.Paginator.Limit)
}
