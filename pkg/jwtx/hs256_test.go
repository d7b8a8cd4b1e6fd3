package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("s", jwtx.MinHS256SecretSize))

func testSubject() jwtx.Subject {
	return jwtx.Subject{ID: "01J0000000000000000000000B", Email: "bob@example.com", Name: "Bob", Role: "admin"}
}

func TestHS256SignAndVerify(t *testing.T) {
	signer, err := jwtx.NewSignerHS256("", testSecret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	token, err := signer.Sign(jwtx.NewAccessClaims(testSubject(), time.Hour, exampleIssuer, time.Now()))
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS256(testSecret, exampleIssuer)
	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01J0000000000000000000000B", claims.UserID)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "bob@example.com", claims.Email)
}

func TestHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256("", []byte("short"))
	require.Error(t, err)
}

func TestHS256VerifyFailures(t *testing.T) {
	signer, err := jwtx.NewSignerHS256("", testSecret)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims(testSubject(), time.Hour, exampleIssuer, time.Now()))
		require.NoError(t, err)

		other := jwtx.NewVerifierHS256([]byte(strings.Repeat("x", 32)), exampleIssuer)
		_, err = other.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims(testSubject(), time.Minute, exampleIssuer, time.Now().Add(-time.Hour)))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierHS256(testSecret, exampleIssuer).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims(testSubject(), time.Hour, "someone-else", time.Now()))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierHS256(testSecret, exampleIssuer).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewVerifierHS256(testSecret, exampleIssuer).Verify("not-a-token")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}
