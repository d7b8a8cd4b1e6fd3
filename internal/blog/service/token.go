package service

import (
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/pkg/jwtx"
)

// TokenService issues access tokens for authenticated users.
type TokenService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

// Issue mints a token carrying the user's id, email, name and role.
func (s *TokenService) Issue(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(jwtx.Subject{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}, s.TTL, s.Issuer, now)

	tok, err := s.Signer.Sign(claims)
	if err != nil {
		return "", domain.Internal(MsgInternal, err)
	}
	return tok, nil
}
