package http

import (
	"context"
	"net/http"
	"strings"

	"koriel-backend/internal/security"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// AuthMiddleware validates the bearer token and stashes the operator's claims
// in the request context, so every mutating handler can attribute its
// operation to an actor.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token", Kind: "unauthorized"})
			return
		}

		claims, err := m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Kind: "unauthorized"})
			return
		}
		if claims.Type != security.TokenTypeAccess {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: security.ErrWrongTokenType.Error(), Kind: "unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the authenticated operator's claims, or nil.
func ClaimsFromContext(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsContextKey).(*security.UserClaims)
	return claims
}

// ActorFromContext returns the actor identifier stamped onto mutations.
func ActorFromContext(ctx context.Context) string {
	if claims := ClaimsFromContext(ctx); claims != nil {
		return claims.Username
	}
	return ""
}
