package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/focusflow/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func signTestToken(t *testing.T, secret []byte, claims jwtx.Claims) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	claims := jwtx.NewAccessClaims("user-1", "alice", "focusflow", time.Hour, time.Now())
	token := signTestToken(t, testSecret, claims)
	require.Equal(t, 3, len(strings.Split(token, ".")))

	v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "focusflow"})
	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, claims.ID, got.ID)
}

func TestHS256Rejections(t *testing.T) {
	t.Parallel()

	v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "focusflow"})

	t.Run("wrong secret", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("user-1", "alice", "focusflow", time.Hour, time.Now())
		token := signTestToken(t, []byte("another-secret-another-secret-xx"), claims)

		_, err := v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("user-1", "alice", "focusflow", time.Hour, time.Now().Add(-2*time.Hour))
		token := signTestToken(t, testSecret, claims)

		_, err := v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("user-1", "alice", "elsewhere", time.Hour, time.Now())
		token := signTestToken(t, testSecret, claims)

		_, err := v.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("other hmac algorithm", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("user-1", "alice", "focusflow", time.Hour, time.Now())
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
		require.NoError(t, err)

		_, err = v.Verify(token)
		require.Error(t, err)
	})
}

func TestHS256SignerValidate(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSignerHS256(nil)
	require.Error(t, err)

	weak, err := jwtx.NewSignerHS256([]byte("short"))
	require.NoError(t, err)
	require.ErrorIs(t, weak.Validate(), jwtx.ErrWeakSecret)

	strong, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	require.NoError(t, strong.Validate())
	require.Equal(t, "HS256", strong.Alg())
}
