package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-projection-api/internal/config"
	"github.com/vfg2006/ad-projection-api/internal/usecases/authenticating"
)

func TestWriteToken(t *testing.T) {
	auth := authenticating.NewService(&config.Config{
		Auth: config.Auth{Enabled: true, Secret: "test-secret"},
	})

	var buf bytes.Buffer
	require.NoError(t, writeToken(&buf, auth, "dashboard", time.Hour))

	claims, err := auth.ValidateToken(strings.TrimSpace(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Subject)
}

func TestWriteToken_InvalidTTL(t *testing.T) {
	auth := authenticating.NewService(&config.Config{
		Auth: config.Auth{Enabled: true, Secret: "test-secret"},
	})

	var buf bytes.Buffer
	assert.Error(t, writeToken(&buf, auth, "dashboard", 0))
	assert.Empty(t, buf.String())
}
