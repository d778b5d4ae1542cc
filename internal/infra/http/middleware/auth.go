package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// TokenVerifier is satisfied by auth.Codec.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// CookieName is the transport slot the session token travels in.
const CookieName = "token"

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the principal bound by the auth gate, if any.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Protect is the auth gate: it admits the request only when the session
// cookie holds a verifiable token, and binds the resolved user id to the
// request context. Absence and invalidity are reported distinctly.
func Protect(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				RecordAuthRejection("no_token")
				reject(w, "Not authorized, no token provided")
				return
			}

			userID, err := verifier.Verify(cookie.Value)
			if err != nil {
				RecordAuthRejection("invalid_token")
				reject(w, "Not authorized, token is invalid")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func reject(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
