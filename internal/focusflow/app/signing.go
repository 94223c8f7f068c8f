package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/focusflow/pkg/cryptox"
	"github.com/aussiebroadwan/focusflow/pkg/jwtx"
)

// InitSigning builds the HS256 signer and verifier from JWT_SECRET.
//
// Without a configured secret a random one is generated for this process
// only, so every token becomes invalid when the service restarts. Secrets
// shorter than jwtx.MinHS256SecretLen are accepted with a warning.
func InitSigning(cfg Config, logger *slog.Logger) (jwtx.Signer, jwtx.Verifier, error) {
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = []byte(cryptox.MustGenerateToken(cryptox.TokenSize256))
		logger.Warn("JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, nil, fmt.Errorf("create signer: %w", err)
	}

	if err := signer.Validate(); errors.Is(err, jwtx.ErrWeakSecret) {
		logger.Warn("JWT_SECRET is shorter than recommended", "err", err)
	}

	verifier := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: cfg.Issuer})

	logger.Info("token signing ready",
		"algorithm", signer.Alg(),
		"issuer", cfg.Issuer,
		"ttl", cfg.JWTExpire,
	)
	return signer, verifier, nil
}
