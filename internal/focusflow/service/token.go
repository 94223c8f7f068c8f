package service

import (
	"time"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/pkg/jwtx"
)

// TokenService issues the bearer tokens handed out on register and login.
type TokenService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// Issue signs an access token for u. The user ID is the subject.
func (s *TokenService) Issue(u domain.User) (string, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		u.ID,       // subject
		u.Username, // username
		s.Issuer,   // issuer
		ttl,        // token lifetime
		now,        // current time
	)
	return s.Signer.Sign(claims)
}
