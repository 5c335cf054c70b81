package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/auth"
	"github.com/IftekherAziz/MaxCoach-Sever-Side/internal/models"
)

type contextKey int

const claimsKey contextKey = iota

// RoleResolver looks up the stored role for an identity claim.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (models.Role, error)
}

// Rejection short-circuits a request before its handler runs.
type Rejection struct {
	Status  int
	Message string
}

// Gate inspects a request and either returns the context to continue with
// or a rejection to send immediately.
type Gate func(r *http.Request) (context.Context, *Rejection)

// Chain evaluates gates in order before the handler. The first rejection is
// written as {error:true, message} with its status and the handler never
// executes. Each passing gate's context carries into the next.
func Chain(handler http.HandlerFunc, gates ...Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, gate := range gates {
			ctx, rejection := gate(r)
			if rejection != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(rejection.Status)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"error":   true,
					"message": rejection.Message,
				})
				return
			}
			r = r.WithContext(ctx)
		}
		handler(w, r)
	}
}

// RequireAuth verifies the bearer token and attaches its claims to the
// request context.
func RequireAuth(tokens *auth.TokenService) Gate {
	return func(r *http.Request) (context.Context, *Rejection) {
		header := r.Header.Get("Authorization")
		if header == "" {
			return nil, &Rejection{Status: http.StatusUnauthorized, Message: "unauthorized access"}
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return nil, &Rejection{Status: http.StatusUnauthorized, Message: "unauthorized access"}
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return nil, &Rejection{Status: http.StatusUnauthorized, Message: "unauthorized access"}
		}

		return context.WithValue(r.Context(), claimsKey, claims), nil
	}
}

// RequireRole resolves the authenticated user's stored role and rejects a
// mismatch. It must run after RequireAuth, which attaches the claims the
// lookup is keyed on.
func RequireRole(resolver RoleResolver, role models.Role) Gate {
	return func(r *http.Request) (context.Context, *Rejection) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok {
			return nil, &Rejection{Status: http.StatusUnauthorized, Message: "unauthorized access"}
		}

		resolved, err := resolver.RoleByEmail(r.Context(), claims.Email)
		if err != nil {
			return nil, &Rejection{Status: http.StatusInternalServerError, Message: "failed to resolve role"}
		}
		if resolved != role {
			return nil, &Rejection{Status: http.StatusForbidden, Message: "Forbidden Access"}
		}

		return r.Context(), nil
	}
}

// ClaimsFrom returns the claims attached by RequireAuth.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// WithClaims exists for handler tests that bypass the gates.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
