package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window of an admin session token. It doubles as the
// max-age of the session cookie so both expire together.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for every verification failure. Malformed,
// expired and badly-signed tokens are deliberately indistinguishable to
// callers so the HTTP boundary can only ever say "invalid or expired".
var ErrInvalidToken = errors.New("invalid or expired token")

// Payload is the verified subject carried by a session token.
type Payload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 session tokens. The signing key is
// process-wide configuration; tokens are stateless and cannot be revoked
// before their natural expiry.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue mints a signed token for the given admin, valid for TokenTTL.
func (s *TokenService) Issue(id, email string) (string, error) {
	now := s.now()
	c := claims{
		ID:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now.UTC()),
			ExpiresAt: jwt.NewNumericDate(now.UTC().Add(TokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry, returning the decoded payload on
// success and ErrInvalidToken on any failure.
func (s *TokenService) Verify(tokenString string) (*Payload, error) {
	p := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	var c claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || tok == nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if c.ID == "" {
		return nil, ErrInvalidToken
	}

	return &Payload{ID: c.ID, Email: c.Email}, nil
}
