package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard/internal/config"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
)

func newService(secret string) Authenticator {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret}})
}

func TestService_IssueAndValidate(t *testing.T) {
	service := newService("segredo")

	token, err := service.IssueToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "ops", claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	service := newService("segredo")

	otherSecret, err := newService("outro").IssueToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	expired, err := service.IssueToken("ops", domain.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Role: domain.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		err   error
	}{
		{name: "assinatura de outro segredo", token: otherSecret, err: ErrInvalidToken},
		{name: "token expirado", token: expired, err: ErrExpiredToken},
		{name: "algoritmo none", token: noneToken, err: ErrInvalidToken},
		{name: "texto qualquer", token: "abc.def.ghi", err: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestService_MissingSecret(t *testing.T) {
	service := newService("")

	_, err := service.IssueToken("ops", domain.RoleAdmin, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = service.ValidateToken("abc")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
