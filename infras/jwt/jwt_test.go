package jwt_test

import (
	"context"
	"haven/config"
	"haven/infras/jwt"
	"haven/infras/otel/mocks"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "haven"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60 * 24

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	svc := jwt.New(newConfig(), mocks.NewOtel())
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "admin-1", "owner@sunsethaven.ng", "super_admin")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, "owner@sunsethaven.ng", claims.Email)
	assert.Equal(t, "super_admin", claims.Role)
	assert.Equal(t, claims.ID, claims.TokenID)
	assert.Equal(t, "haven", claims.Issuer)

	refresh, err := svc.ValidateToken(ctx, pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RefreshToken, refresh.Type)
}

func TestValidateToken_Rejections(t *testing.T) {
	cfg := newConfig()
	svc := jwt.New(cfg, mocks.NewOtel())
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, "admin-1", "owner@sunsethaven.ng", "editor")
	require.NoError(t, err)

	sign := func(claims jwt.Claims, method gojwt.SigningMethod, key any) string {
		token, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}

	past := time.Now().Add(-2 * time.Hour)
	expired := sign(jwt.Claims{
		UserID: "admin-1",
		Type:   jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    "haven",
			IssuedAt:  gojwt.NewNumericDate(past),
			ExpiresAt: gojwt.NewNumericDate(past.Add(time.Hour)),
		},
	}, gojwt.SigningMethodHS256, []byte(cfg.JWT.AccessSecret))

	foreignIssuer := sign(jwt.Claims{
		UserID:           "admin-1",
		Type:             jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{Issuer: "someone-else"},
	}, gojwt.SigningMethodHS256, []byte(cfg.JWT.AccessSecret))

	unsigned := sign(jwt.Claims{
		UserID:           "admin-1",
		Type:             jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{Issuer: "haven"},
	}, gojwt.SigningMethodNone, gojwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name      string
		token     string
		tokenType jwt.TokenType
		wantErr   error
	}{
		{name: "refresh token used as access", token: pair.RefreshToken, tokenType: jwt.AccessToken, wantErr: jwt.ErrInvalidToken},
		{name: "access token used as refresh", token: pair.AccessToken, tokenType: jwt.RefreshToken, wantErr: jwt.ErrInvalidToken},
		{name: "garbage", token: "not-a-token", tokenType: jwt.AccessToken, wantErr: jwt.ErrInvalidToken},
		{name: "expired", token: expired, tokenType: jwt.AccessToken, wantErr: jwt.ErrExpiredToken},
		{name: "foreign issuer", token: foreignIssuer, tokenType: jwt.AccessToken, wantErr: jwt.ErrInvalidToken},
		{name: "alg none", token: unsigned, tokenType: jwt.AccessToken, wantErr: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(ctx, tt.token, tt.tokenType)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateToken_TypeClaimMismatch(t *testing.T) {
	cfg := newConfig()
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret

	svc := jwt.New(cfg, mocks.NewOtel())

	pair, err := svc.GenerateTokenPair(context.Background(), "admin-1", "owner@sunsethaven.ng", "viewer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), pair.RefreshToken, jwt.AccessToken)

	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "", wantErr: jwt.ErrMissingHeader},
		{header: "abc.def.ghi", wantErr: jwt.ErrMalformedHeader},
		{header: "Bearer ", wantErr: jwt.ErrMalformedHeader},
		{header: "Basic dXNlcjpwYXNz", wantErr: jwt.ErrMalformedHeader},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}
