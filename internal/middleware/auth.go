package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/pkg/utils"
)

type TokenParser interface {
	Parse(token string) (entities.Principal, error)
}

type principalKey struct{}

type holderKey struct{}

type principalHolder struct {
	principal entities.Principal
	set       bool
}

func withHolder(ctx context.Context, h *principalHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	if h, ok := ctx.Value(holderKey{}).(*principalHolder); ok {
		h.principal, h.set = p, true
	}
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	return p, ok
}

// Auth требует заголовок Authorization: Bearer <token>.
func Auth(tokens TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			principal, err := tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !p.IsAdmin {
			utils.WriteError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
