package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-pepper")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPasswordProducesPHCFormat(t *testing.T) {
	for _, pw := range []string{"secret1", "P@ssw0rd!#$%^&*()", strings.Repeat("a", 100), "   spaces   "} {
		hash, err := HashPassword(pw)
		require.NoError(t, err)

		parts := strings.Split(hash, "$")
		require.Len(t, parts, 6)
		require.Equal(t, "argon2id", parts[1])
		require.Equal(t, "v=19", parts[2])
		require.Equal(t, "m=19456,t=2,p=1", parts[3])
		require.NotEmpty(t, parts[4])
		require.NotEmpty(t, parts[5])
	}
}

func TestHashPasswordUsesUniqueSalts(t *testing.T) {
	h1, err := HashPassword("samepassword")
	require.NoError(t, err)
	h2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.NoError(t, VerifyPassword("samepassword", h1))
	require.NoError(t, VerifyPassword("samepassword", h2))
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong-password", "Correct-Password", "correct-password ", ""} {
		require.ErrorIs(t, VerifyPassword(wrong, hash), ErrMismatch)
	}
}

func TestVerifyPasswordInvalidFormat(t *testing.T) {
	tests := map[string]string{
		"empty hash":         "",
		"wrong algorithm":    "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"missing parts":      "$argon2id$v=19$m=19456",
		"bad parameters":     "$argon2id$v=19$invalid$c2FsdA$aGFzaA",
		"invalid salt":       "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA",
		"invalid hash":       "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!",
		"wrong version":      "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"bcrypt style input": "$2a$12$abcdefghijklmnopqrstuv",
	}

	for name, hash := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, VerifyPassword("pw", hash), ErrInvalidFormat)
		})
	}
}

func TestArgon2Hasher(t *testing.T) {
	var h Argon2Hasher

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	ok, err := h.Verify("secret1", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = h.Verify("secret2", hash)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = h.Verify("secret1", "garbage")
	require.Error(t, err)
	require.False(t, ok)
}

func TestPepperPersistsAcrossReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")
	first, err := loadOrGeneratePepper(path)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := loadOrGeneratePepper(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRandomSecret(t *testing.T) {
	a, err := RandomSecret(32)
	require.NoError(t, err)
	b, err := RandomSecret(32)
	require.NoError(t, err)

	require.Len(t, a, 43)
	require.NotEqual(t, a, b)
}
