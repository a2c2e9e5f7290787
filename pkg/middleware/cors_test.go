package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{
			name:       "origem liberada",
			allowed:    []string{"http://localhost:3000", " http://localhost:4001 "},
			origin:     "http://localhost:4001",
			method:     http.MethodPost,
			wantOrigin: "http://localhost:4001",
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "origem não liberada",
			allowed:    []string{"http://localhost:3000"},
			origin:     "http://evil.example",
			method:     http.MethodPost,
			wantOrigin: "",
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "curinga",
			allowed:    []string{"*"},
			origin:     "http://any.example",
			method:     http.MethodGet,
			wantOrigin: "http://any.example",
			wantStatus: http.StatusTeapot,
		},
		{
			name:       "preflight não chega no handler",
			allowed:    []string{"http://localhost:3000"},
			origin:     "http://localhost:3000",
			method:     http.MethodOptions,
			wantOrigin: "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tt.method, "/simulate", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
