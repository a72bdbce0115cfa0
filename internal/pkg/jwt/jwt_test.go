package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	service := New("test_secret_key_32_characters_min", time.Hour)

	token, err := service.GenerateToken(42, "staff")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := New("one_secret_key_32_characters_long", time.Hour).GenerateToken(1, "member")
	require.NoError(t, err)

	_, err = New("other_secret_key_32_characters_ok", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := New("test_secret_key_32_characters_min", -time.Minute).GenerateToken(1, "member")
	require.NoError(t, err)

	_, err = New("test_secret_key_32_characters_min", -time.Minute).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsUnsignedAlgorithm(t *testing.T) {
	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{UserID: 1, Role: "admin"})
	tokenStr, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = New("test_secret_key_32_characters_min", time.Hour).ValidateToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
