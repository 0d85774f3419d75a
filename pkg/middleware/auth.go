package middleware

import (
	"errors"
	"net/http"

	"movie-catalog/pkg/session"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession gates protected routes. The request must carry the session
// cookie, the session id must resolve to a stored token, and the token must
// verify against the signing secret. A valid request proceeds with the user
// id attached to its context; everything else is rejected before the handler.
func AuthSession(sessions session.Store, tokens *token.Manager, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Unauthorized: Token missing")
				return
			}

			sessionToken, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					// Expired or unknown session: no token to present
					utils.ResponseUnauthorized(w, "Unauthorized: Token missing")
					return
				}
				logger.Error("Failed to load session",
					zap.String("session_id", cookie.Value),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			userID, err := tokens.Verify(sessionToken)
			if err != nil {
				logger.Warn("Invalid session token",
					zap.String("session_id", cookie.Value),
					zap.Error(err))
				utils.ResponseForbidden(w, "Forbidden: Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			ctx = utils.SetTokenContext(ctx, sessionToken)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
