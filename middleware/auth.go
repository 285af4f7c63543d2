package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dcode-github/listing_storefront/utils"
)

// SessionCookie carries the JWT for browser sessions.
const SessionCookie = "session"

type contextKey string

const userIDKey = contextKey("userID")

// UserID returns the authenticated user id, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID stores id as the authenticated user.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// tokenFromRequest reads a bearer token, falling back to the session cookie.
func tokenFromRequest(r *http.Request) (string, bool) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", false
		}
		return parts[1], true
	}
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

// OptionalAuth attaches the user id of a valid token to the context and lets
// every request through.
func OptionalAuth(tokens *utils.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := tokenFromRequest(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := tokens.ValidateJWT(token)
			if err != nil {
				slog.DebugContext(r.Context(), "ignoring invalid session", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// RequireAuth rejects requests without a valid token.
func RequireAuth(tokens *utils.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := tokenFromRequest(r)
			if !ok {
				slog.Info("missing or malformed credentials", "method", r.Method, "path", r.URL.Path)
				utils.WriteError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			claims, err := tokens.ValidateJWT(token)
			if err != nil {
				slog.Info("invalid or expired token", "error", err)
				utils.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}
