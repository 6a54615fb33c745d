// Package auth implements the signed identity token issued at login and
// verified on every protected request.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when the token's expiry is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed covers every other verification failure: bad
	// signature, wrong algorithm, unparsable string, missing subject.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims is the decoded identity assertion carried by a verified token.
type Claims struct {
	UserID string
	Role   string
}

// Codec signs and verifies identity tokens with a single HMAC secret.
// The secret is injected at construction; there is no package-level key.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec. A non-positive ttl defaults to 24 hours.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed HS256 token embedding the user id, role, and expiry.
func (c *Codec) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(c.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token string, returning its claims.
// Expired tokens fail with ErrTokenExpired; every other failure, including a
// valid signature with an empty subject, maps to ErrTokenMalformed.
func (c *Codec) Verify(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !tkn.Valid {
		return nil, ErrTokenMalformed
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrTokenMalformed
	}
	role, _ := claims["role"].(string)

	return &Claims{UserID: sub, Role: role}, nil
}
