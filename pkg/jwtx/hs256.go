package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinHS256SecretLen is the shortest secret the HS256 signer accepts. RFC
// 7518 asks for at least the hash size.
const MinHS256SecretLen = 32

// ErrWeakSecret reports a signing secret shorter than MinHS256SecretLen.
var ErrWeakSecret = errors.New("jwtx: hs256 secret too short")

// HS256Signer signs tokens with a shared secret.
type HS256Signer struct {
	secret []byte
}

func newHS256Signer(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty hs256 secret")
	}

	// Copy so callers can wipe their buffer
	s := &HS256Signer{secret: append([]byte(nil), secret...)}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate reports ErrWeakSecret for short secrets. Signing still works,
// callers decide whether to refuse or warn.
func (s *HS256Signer) Validate() error {
	if len(s.secret) < MinHS256SecretLen {
		return fmt.Errorf("%w: %d bytes, want at least %d", ErrWeakSecret, len(s.secret), MinHS256SecretLen)
	}
	return nil
}

// HS256Verifier validates tokens signed by an HS256Signer with the same secret.
type HS256Verifier struct {
	secret []byte
	opts   VerifyOptions
}

// NewVerifierHS256 creates a verifier for the shared secret.
func NewVerifierHS256(secret []byte, opts VerifyOptions) *HS256Verifier {
	return &HS256Verifier{secret: append([]byte(nil), secret...), opts: opts}
}

// Verify validates the JWT string and returns its parsed Claims.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.opts.Leeway),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwtx: parse or verify: %w", classify(err))
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryWithLeeway(v.opts.Leeway); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

// classify maps jwt library errors onto the package sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Join(ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Join(ErrInvalidSig, err)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Join(ErrAlgMismatch, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Join(ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return errors.Join(ErrNotYetValid, err)
	default:
		return err
	}
}
