package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-projection-api/pkg/apiErrors"
	"github.com/vfg2006/ad-projection-api/pkg/log"
)

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/simulate", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()

	RequestID()(LogPanicMiddleware()(next)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
	assert.Equal(t, "req-123", apiErr.Details)
	assert.NotContains(t, rec.Body.String(), "boom")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "req-123", entry.Data["request_id"])
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLevel logrus.Level
	}{
		{name: "sucesso", status: http.StatusOK, body: `{"summary":{}}`, wantLevel: logrus.InfoLevel},
		{name: "erro do cliente", status: http.StatusBadRequest, body: `{"code":"VAL_001"}`, wantLevel: logrus.WarnLevel},
		{name: "erro do servidor", status: http.StatusInternalServerError, body: `{"code":"SRV_001"}`, wantLevel: logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.SetupTestLogger()
			hook := test.NewGlobal()
			defer hook.Reset()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodPost, "/simulate", nil)
			req.Header.Set(RequestIDHeader, "req-456")
			rec := httptest.NewRecorder()

			RequestID()(LoggingMiddleware()(next)).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.status, entry.Data["status_code"])
			assert.Equal(t, len(tt.body), entry.Data["simulation_response_len"])
			assert.Equal(t, "req-456", entry.Data["request_id"])
			assert.NotEmpty(t, entry.Data["correlation_id"])
		})
	}
}
