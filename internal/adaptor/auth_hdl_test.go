package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/session"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAuthService answers with canned results so the handler can be tested
// without the repository stack.
type fakeAuthService struct {
	registerErr error
	loginResp   *response.AuthResponse
	loginErr    error

	lastLogin *request.LoginRequest
}

func (f *fakeAuthService) Register(_ context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &response.RegisterResponse{
		UserID:   uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
	}, nil
}

func (f *fakeAuthService) Login(_ context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	f.lastLogin = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func newAuthHandler(svc *fakeAuthService, sessions session.Store) *AuthHandler {
	config := &utils.Config{}
	config.Session.CookieName = "catalog_session"
	return NewAuthHandler(svc, sessions, config, zap.NewNop())
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "catalog_session" {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login_FormPost(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)
	svc := &fakeAuthService{loginResp: &response.AuthResponse{
		UserID:    uuid.NewString(),
		Username:  "alice",
		Token:     "signed-token",
		ExpiresAt: expiresAt,
	}}
	sessions := session.NewMemoryStore()
	handler := newAuthHandler(svc, sessions)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/search", rec.Header().Get("Location"))
	require.NotNil(t, svc.lastLogin)
	assert.Equal(t, "alice", svc.lastLogin.Username)

	// The cookie holds a session id, never the token itself
	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.NotEqual(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	stored, err := sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", stored)
}

func TestAuthHandler_Login_JSON(t *testing.T) {
	svc := &fakeAuthService{loginResp: &response.AuthResponse{
		UserID:    uuid.NewString(),
		Username:  "alice",
		Token:     "signed-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	handler := newAuthHandler(svc, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"alice","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	require.NotNil(t, svc.lastLogin)
	assert.Equal(t, "secret123", svc.lastLogin.Password)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{loginErr: fmt.Errorf("invalid username or password")}
	handler := newAuthHandler(svc, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"alice","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
	assert.Nil(t, sessionCookie(t, rec))
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	svc := &fakeAuthService{}
	handler := newAuthHandler(svc, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastLogin)
}

func TestAuthHandler_Register(t *testing.T) {
	handler := newAuthHandler(&fakeAuthService{}, session.NewMemoryStore())

	form := url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"secret123"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	svc := &fakeAuthService{registerErr: fmt.Errorf("username or email already exists")}
	handler := newAuthHandler(svc, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := session.NewMemoryStore()
	require.NoError(t, sessions.Put(context.Background(), "sid-1", "signed-token", time.Hour))
	handler := newAuthHandler(&fakeAuthService{}, sessions)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: "catalog_session", Value: "sid-1"})
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	_, err := sessions.Get(context.Background(), "sid-1")
	assert.ErrorIs(t, err, session.ErrNotFound)

	cookie := sessionCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_NoCookie(t *testing.T) {
	handler := newAuthHandler(&fakeAuthService{}, session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
