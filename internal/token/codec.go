package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Decode failure taxonomy. Every error returned by Decode matches exactly
// one of these sentinels under errors.Is, in the priority order listed.
var (
	ErrTokenMissing          = errors.New("JWT token cannot be null or empty")
	ErrTokenExpired          = errors.New("JWT token has expired")
	ErrTokenSignatureInvalid = errors.New("JWT token signature is invalid")
	ErrTokenMalformed        = errors.New("JWT token is malformed")
	ErrTokenUnsupported      = errors.New("JWT token is unsupported")
	ErrTokenInvalid          = errors.New("JWT token is invalid")
	ErrTokenProcessing       = errors.New("JWT token processing failed")
)

// Claims are the session claims carried inside a signed token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Codec issues and decodes signed session tokens. It holds only the
// configured key and lifetime and is safe for concurrent use.
type Codec struct {
	secret   []byte
	lifetime time.Duration
}

func NewCodec(secret string, lifetime time.Duration) *Codec {
	return &Codec{
		secret:   []byte(secret),
		lifetime: lifetime,
	}
}

// Issue signs an HS256 token embedding the subject, the userId claim, and
// iat/exp stamped from the wall clock.
func (c *Codec) Issue(subject, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.lifetime)),
		},
		UserID: userID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the signature and expiry and returns the claims. Two
// decodes of the same unmodified token yield identical claims.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// classify maps jwt parse failures onto the taxonomy. Expiry is checked
// before the claim-validation umbrella because jwt/v5 wraps an expired
// token in both.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenUnsupported
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return ErrTokenInvalid
	default:
		return fmt.Errorf("%w: %v", ErrTokenProcessing, err)
	}
}

// IsTokenError reports whether err belongs to the decode taxonomy.
func IsTokenError(err error) bool {
	for _, kind := range []error{
		ErrTokenMissing,
		ErrTokenExpired,
		ErrTokenSignatureInvalid,
		ErrTokenMalformed,
		ErrTokenUnsupported,
		ErrTokenInvalid,
		ErrTokenProcessing,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
