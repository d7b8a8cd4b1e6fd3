package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEd25519JWK(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	j := NewEd25519JWK("kid-1", "sig", "EdDSA", pub)
	require.Equal(t, "OKP", j.Kty)
	require.Equal(t, "Ed25519", j.Crv)
	require.Equal(t, "kid-1", j.Kid)

	key, err := parseJWKToKey(j)
	require.NoError(t, err)
	require.Equal(t, pub, key)
}

func TestParseJWKToKey_Unsupported(t *testing.T) {
	_, err := parseJWKToKey(JWK{Kty: "RSA"})
	require.Error(t, err)
}

func TestParseJWKToKey_BadSize(t *testing.T) {
	_, err := parseJWKToKey(JWK{Kty: "OKP", Crv: "Ed25519", X: base64.RawURLEncoding.EncodeToString([]byte("short"))})
	require.Error(t, err)
}

func TestKeySetGetMissing(t *testing.T) {
	_, err := NewKeySet().Get("nope")
	require.ErrorIs(t, err, ErrNoKey)
}
