package transport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ganot/labdesk/internal/transport"
	"github.com/stretchr/testify/require"
)

type staticResolver map[string]string

func (r staticResolver) ResolveTenant(_ context.Context, token string) (string, error) {
	tenantID, ok := r[token]
	if !ok {
		return "", errors.New("unknown token")
	}
	return tenantID, nil
}

func protectedEcho(t *testing.T, middleware func(http.Handler) http.Handler) http.Handler {
	t.Helper()
	return middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID, ok := transport.TenantFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(tenantID))
	}))
}

func TestAuthMiddlewareResolvesTenant(t *testing.T) {
	handler := protectedEcho(t, transport.AuthMiddleware(staticResolver{"secret": "tenant1"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "tenant1", rec.Body.String())
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	handler := transport.AuthMiddleware(staticResolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	handler := transport.AuthMiddleware(staticResolver{"secret": "tenant1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a bad token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNoAuthMiddlewareStampsTenant(t *testing.T) {
	handler := protectedEcho(t, transport.NoAuthMiddleware("default"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "default", rec.Body.String())
}
