package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/session"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service  usecase.AuthService
	sessions session.Store
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, sessions session.Store, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:  service,
		sessions: sessions,
		config:   config,
		log:      log.With(zap.String("handler", "auth")),
	}
}

// RegisterForm handles GET /api/register
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.log, "register.html", nil)
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
		req.Username = r.PostFormValue("username")
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, "User registered successfully", resp)
}

// LoginForm handles GET /api/login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.log, "login.html", nil)
}

// Login handles POST /api/login. On success the issued token is stored
// server-side and only an opaque session id travels in the cookie; the
// browser is then sent to the search page.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	sessionID := uuid.NewString()
	ttl := time.Until(resp.ExpiresAt)
	if err := h.sessions.Put(r.Context(), sessionID, resp.Token, ttl); err != nil {
		h.log.Error("Failed to store session",
			zap.Error(err),
			zap.String("user_id", resp.UserID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/api/search", http.StatusFound)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.config.Session.CookieName)
	if err != nil || cookie.Value == "" {
		utils.ResponseBadRequest(w, "No session provided", nil)
		return
	}

	if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
		h.log.Error("Failed to delete session",
			zap.Error(err),
			zap.String("session_id", cookie.Value))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	// Expire the cookie as well
	http.SetCookie(w, &http.Cookie{
		Name:     h.config.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// handleServiceError maps auth service errors to response codes
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - duplicate account", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid username or password"):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// isFormRequest reports whether the body is an HTML form post rather than JSON.
func isFormRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}
