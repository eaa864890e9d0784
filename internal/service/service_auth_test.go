package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/logger"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.App{TokenSignKey: "test-secret", TokenIssuer: "sphere-sync"}, logger.Nop())
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "user-42", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService()

	expired, err := svc.CreateToken(ctx, "user-42", -time.Minute)
	require.NoError(t, err)

	foreign, err := NewAuthService(config.App{TokenSignKey: "other-secret", TokenIssuer: "sphere-sync"}, logger.Nop()).
		CreateToken(ctx, "user-42", time.Hour)
	require.NoError(t, err)

	otherIssuer, err := NewAuthService(config.App{TokenSignKey: "test-secret", TokenIssuer: "someone-else"}, logger.Nop()).
		CreateToken(ctx, "user-42", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired.SignedString},
		{name: "wrong key", token: foreign.SignedString},
		{name: "wrong issuer", token: otherIssuer.SignedString},
		{name: "garbage", token: "not.a.jwt"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
