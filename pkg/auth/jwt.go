package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shashiranjanraj/rentalease/config"
)

// ErrInvalidToken is returned for any token that fails to resolve: missing,
// malformed, expired, or signed with another key.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims holds the typed JWT payload.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Kind  Kind   `json:"kind"`
	jwt.RegisteredClaims
}

// Tokens issues and resolves HS256 bearer tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns a token service. secret must not be empty.
func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, config.ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("auth: token ttl must be positive, got %s", ttl)
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// NewTokensFromConfig builds a token service from JWT_SECRET and TOKEN_TTL.
func NewTokensFromConfig() (*Tokens, error) {
	return NewTokens(config.JWTSecret(), config.TokenTTL())
}

// Issue creates a signed token for p and returns it with its expiry.
func (t *Tokens) Issue(p Principal) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)

	claims := Claims{
		ID:    p.ID,
		Email: p.Email,
		Kind:  p.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Resolve verifies signature and expiry and returns the embedded principal.
func (t *Tokens) Resolve(raw string) (Principal, error) {
	if raw == "" {
		return Principal{}, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" || !claims.Kind.Valid() {
		return Principal{}, ErrInvalidToken
	}

	return Principal{ID: claims.ID, Email: claims.Email, Kind: claims.Kind}, nil
}
