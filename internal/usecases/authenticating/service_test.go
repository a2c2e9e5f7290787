package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-projection-api/internal/config"
)

func newTestService(enabled bool) Authenticator {
	return NewService(&config.Config{
		Auth: config.Auth{Enabled: enabled, Secret: "test-secret"},
	})
}

func TestService_Enabled(t *testing.T) {
	assert.True(t, newTestService(true).Enabled())
	assert.False(t, newTestService(false).Enabled())
}

func TestService_GenerateAndValidate(t *testing.T) {
	service := newTestService(true)

	token, err := service.GenerateToken("dashboard", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(true)

	expired, err := service.GenerateToken("dashboard", -time.Minute)
	require.NoError(t, err)

	otherSecret, err := NewService(&config.Config{
		Auth: config.Auth{Enabled: true, Secret: "another-secret"},
	}).GenerateToken("dashboard", time.Hour)
	require.NoError(t, err)

	noneSigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "token vazio", token: "", wantErr: ErrMissingToken},
		{name: "token malformado", token: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "token expirado", token: expired, wantErr: ErrExpiredToken},
		{name: "assinado com outro segredo", token: otherSecret, wantErr: ErrInvalidToken},
		{name: "sem assinatura", token: noneSigned, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
