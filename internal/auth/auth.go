// Package auth resolves API callers into domain actors. Users authenticate
// with HS256 bearer tokens whose subject is the user id; the admin
// capability is a separate static token.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const (
	// AdminTokenHeader carries the admin capability token.
	AdminTokenHeader = "X-Admin-Token"

	// AdminUserID is the actor id used when only the admin token is given.
	AdminUserID = "admin"

	minSecretLength = 16
	defaultLeeway   = 30 * time.Second
)

var (
	ErrMissingToken      = errors.New("missing bearer token")
	ErrInvalidToken      = errors.New("invalid bearer token")
	ErrInvalidAdminToken = errors.New("invalid admin token")
)

// Tokens issues and verifies user bearer tokens.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// TokensOption configures Tokens.
type TokensOption func(*Tokens)

// WithTokensNowFunc overrides the time function for testing.
func WithTokensNowFunc(f func() time.Time) TokensOption {
	return func(t *Tokens) {
		t.now = f
	}
}

// NewTokens creates a token issuer/verifier. The secret must be at least
// 16 bytes.
func NewTokens(secret, issuer string, ttl time.Duration, opts ...TokensOption) (*Tokens, error) {
	secret = strings.TrimSpace(secret)
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	t := &Tokens{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Issue signs a token for userID.
func (t *Tokens) Issue(userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id is required")
	}
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, issuer and expiry and returns the subject.
func (t *Tokens) Verify(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(defaultLeeway),
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// Authenticator turns request credentials into an Actor.
type Authenticator struct {
	tokens     *Tokens
	adminToken []byte
}

// NewAuthenticator creates an Authenticator. An empty adminToken disables
// the admin capability.
func NewAuthenticator(tokens *Tokens, adminToken string) *Authenticator {
	return &Authenticator{
		tokens:     tokens,
		adminToken: []byte(strings.TrimSpace(adminToken)),
	}
}

// Resolve builds the actor for the given Authorization and admin token
// header values. Both empty yields the anonymous actor. A present but
// invalid credential is an error; it never degrades to anonymous.
func (a *Authenticator) Resolve(authorization, adminToken string) (domain.Actor, error) {
	var actor domain.Actor

	if authorization != "" {
		raw, ok := bearerToken(authorization)
		if !ok {
			return domain.Actor{}, ErrMissingToken
		}
		sub, err := a.tokens.Verify(raw)
		if err != nil {
			return domain.Actor{}, err
		}
		actor.UserID = sub
	}

	if adminToken != "" {
		if !a.IsAdminToken(adminToken) {
			return domain.Actor{}, ErrInvalidAdminToken
		}
		actor.Admin = true
		if actor.UserID == "" {
			actor.UserID = AdminUserID
		}
	}

	return actor, nil
}

// IsAdminToken compares candidate with the configured admin token in
// constant time.
func (a *Authenticator) IsAdminToken(candidate string) bool {
	if len(a.adminToken) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), a.adminToken) == 1
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
