package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateServiceToken_Success(t *testing.T) {
	tokenString, err := GenerateServiceToken("order-service", time.Hour, "secret-key")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateServiceToken(tokenString, "secret-key", "order-service")
	require.NoError(t, err)

	assert.Equal(t, "order-service", claims.Issuer)
	assert.Equal(t, "order-service", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateServiceToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateServiceToken(tt.issuer, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateServiceToken_WrongKey(t *testing.T) {
	tokenString, err := GenerateServiceToken("order-service", time.Hour, "secret-key")
	require.NoError(t, err)

	_, err = ValidateServiceToken(tokenString, "another-key", "order-service")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateServiceToken_WrongIssuer(t *testing.T) {
	tokenString, err := GenerateServiceToken("order-service", time.Hour, "secret-key")
	require.NoError(t, err)

	_, err = ValidateServiceToken(tokenString, "secret-key", "user-service")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateServiceToken_Expired(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "order-service",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-key"))
	require.NoError(t, err)

	_, err = ValidateServiceToken(tokenString, "secret-key", "order-service")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "no token", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic abc", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
