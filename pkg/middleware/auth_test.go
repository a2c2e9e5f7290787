package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-projection-api/internal/config"
	"github.com/vfg2006/ad-projection-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-projection-api/pkg/apiErrors"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := authenticating.NewService(&config.Config{
		Auth: config.Auth{Enabled: true, Secret: "test-secret"},
	})

	valid, err := auth.GenerateToken("dashboard", time.Hour)
	assert.NoError(t, err)

	expired, err := auth.GenerateToken("dashboard", -time.Minute)
	assert.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "healthcheck é público", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "preflight passa", method: http.MethodOptions, path: "/simulate", wantStatus: http.StatusOK},
		{name: "sem header", method: http.MethodPost, path: "/simulate", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "sem prefixo Bearer", method: http.MethodPost, path: "/simulate", header: valid, wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "token inválido", method: http.MethodPost, path: "/simulate", header: "Bearer abc", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "token expirado", method: http.MethodPost, path: "/simulate", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrExpiredToken},
		{name: "token válido", method: http.MethodPost, path: "/simulate", header: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	auth := authenticating.NewService(&config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/simulate", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(auth)(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_StoresClaims(t *testing.T) {
	auth := authenticating.NewService(&config.Config{
		Auth: config.Auth{Enabled: true, Secret: "test-secret"},
	})
	token, err := auth.GenerateToken("dashboard", time.Hour)
	assert.NoError(t, err)

	var subject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := r.Context().Value(ContextKeyClaims).(*authenticating.Claims); ok {
			subject = claims.Subject
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/simulate", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	AuthMiddleware(auth)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "dashboard", subject)
}
