package app

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aussiebroadwan/quill/pkg/cryptox"
	"github.com/aussiebroadwan/quill/pkg/jwtx"
)

const (
	AlgHS256 = "HS256"
	AlgEdDSA = "EdDSA"
)

// Keys bundles what the HTTP layer needs to issue and check tokens.
type Keys struct {
	KeySet   *jwtx.KeySet
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
}

// InitKeys builds the signer and verifier for the configured algorithm.
//
// Algorithms:
//   - "HS256": tokens are signed with JWT_SECRET. In dev a random secret is
//     generated when none is set, so tokens do not survive restarts. The JWKS
//     stays empty.
//   - "EdDSA": tokens are signed with the Ed25519 key in AUTH_SIGNING_KEY_FILE,
//     created on first start. Without a file the key is ephemeral. The public
//     key is published at /.well-known/jwks.json.
func InitKeys(cfg Config, logger *slog.Logger) (*Keys, error) {
	keys := jwtx.NewKeySet()

	switch cfg.Algorithm {
	case AlgEdDSA:
		pemKey, persisted, err := loadOrGenerateSigningKey(cfg.SigningKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load signing key: %w", err)
		}

		signer, err := jwtx.NewSignerEdDSA(keyID(pemKey), pemKey)
		if err != nil {
			return nil, err
		}
		if err := keys.AddSigner(signer); err != nil {
			return nil, err
		}

		logger.Info("EdDSA signing key loaded", "kid", signer.KID(), "persisted", persisted)
		if !persisted {
			logger.Warn("AUTH_SIGNING_KEY_FILE not set, issued tokens will not survive a restart")
		}

		return &Keys{
			KeySet:   keys,
			Signer:   signer,
			Verifier: jwtx.NewVerifierEdDSA(keys, cfg.Issuer),
		}, nil

	case AlgHS256:
		secret := cfg.JWTSecret
		if secret == "" {
			if cfg.IsProduction() {
				return nil, errors.New("JWT_SECRET is required in production")
			}
			generated, err := cryptox.RandomSecret(jwtx.MinHS256SecretSize)
			if err != nil {
				return nil, err
			}
			secret = generated
			logger.Warn("JWT_SECRET not set, generated a random secret; tokens will not survive a restart")
		}

		signer, err := jwtx.NewSignerHS256("", []byte(secret))
		if err != nil {
			return nil, err
		}

		logger.Info("HS256 signing configured", "issuer", cfg.Issuer)
		return &Keys{
			KeySet:   keys,
			Signer:   signer,
			Verifier: jwtx.NewVerifierHS256([]byte(secret), cfg.Issuer),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported algorithm %q", cfg.Algorithm)
	}
}

// loadOrGenerateSigningKey reads a PKCS8 PEM key from file, creating it when
// it does not exist yet. An empty path yields an ephemeral key.
func loadOrGenerateSigningKey(file string) (pemKey []byte, persisted bool, err error) {
	if file == "" {
		pemKey, err = cryptox.GenerateEd25519Key()
		return pemKey, false, err
	}

	file = filepath.Clean(file)
	b, err := os.ReadFile(file)
	if err == nil {
		return b, true, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, err
	}

	if pemKey, err = cryptox.GenerateEd25519Key(); err != nil {
		return nil, false, err
	}
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, false, err
	}
	if err := os.WriteFile(file, pemKey, 0600); err != nil {
		return nil, false, err
	}
	return pemKey, true, nil
}

// keyID derives a stable kid so tokens keep verifying across restarts.
func keyID(pemKey []byte) string {
	sum := sha256.Sum256(pemKey)
	return hex.EncodeToString(sum[:8])
}
