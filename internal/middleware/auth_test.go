package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
	"github.com/SergeyBogomolovv/garden-shop/internal/middleware"
	"github.com/stretchr/testify/assert"
)

type stubParser map[string]entities.Principal

func (s stubParser) Parse(token string) (entities.Principal, error) {
	p, ok := s[token]
	if !ok {
		return entities.Principal{}, errors.New("bad token")
	}
	return p, nil
}

func TestAuth(t *testing.T) {
	parser := stubParser{
		"user":  {UserID: 1},
		"admin": {UserID: 2, IsAdmin: true},
	}

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.PrincipalFromContext(r.Context())
		assert.True(t, ok)
		assert.NotZero(t, p.UserID)
		w.WriteHeader(http.StatusNoContent)
	})

	testCases := []struct {
		name       string
		header     string
		handler    http.Handler
		wantStatus int
	}{
		{name: "no header", handler: echo, wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", handler: echo, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", handler: echo, wantStatus: http.StatusUnauthorized},
		{name: "valid user", header: "Bearer user", handler: echo, wantStatus: http.StatusNoContent},
		{name: "admin route as user", header: "Bearer user", handler: middleware.RequireAdmin(echo), wantStatus: http.StatusForbidden},
		{name: "admin route as admin", header: "Bearer admin", handler: middleware.RequireAdmin(echo), wantStatus: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			middleware.Auth(parser)(tc.handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestRequireAdmin_NoPrincipal(t *testing.T) {
	rr := httptest.NewRecorder()
	middleware.RequireAdmin(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
