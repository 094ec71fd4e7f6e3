// Package token implements the signed bearer tokens used by client and
// admin sessions: HS256 over base64url(header).base64url(payload), with
// `user_id` or `admin_id` as the principal claim.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
	ErrMissingClaim     = errors.New("missing required claim")
)

// Codec signs and verifies tokens with a process-wide secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Encode signs the given claims, filling in iat and exp defaults. Caller
// claims win over defaults, so tests can issue already-expired tokens.
func (c *Codec) Encode(claims jwt.MapClaims) (string, error) {
	now := time.Now()
	merged := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}
	for k, v := range claims {
		merged[k] = v
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, merged)
	return tok.SignedString(c.secret)
}

// Decode verifies the token and returns its claims. Only HS256 is accepted.
// Each name in required must be present in the payload or the decode fails
// with ErrMissingClaim.
func (c *Codec) Decode(tokenStr string, required ...string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformed
	}
	for _, name := range required {
		if _, present := claims[name]; !present {
			return nil, ErrMissingClaim
		}
	}
	return claims, nil
}

// NumericClaim extracts a claim that was serialized as a JSON number.
func NumericClaim(claims jwt.MapClaims, name string) (uint, bool) {
	switch v := claims[name].(type) {
	case float64:
		return uint(v), true
	case int:
		return uint(v), true
	case uint:
		return v, true
	default:
		return 0, false
	}
}
