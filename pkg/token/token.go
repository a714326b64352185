// pkg/token/token.go
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5" // Using v5
)

const (
	RoleScorer = "scorer"
	RoleAdmin  = "admin"
)

// Claims are issued by the identity service that owns scorer accounts; this
// service only verifies them.
type Claims struct {
	ScorerID uint   `json:"scorer_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// CanScore reports whether the bearer may write to the ball ledger.
func (c *Claims) CanScore() bool {
	return c.Role == RoleScorer || c.Role == RoleAdmin
}

// ValidateJWT parses, validates, and returns claims from a JWT string. An
// empty issuer skips the issuer check.
func ValidateJWT(tokenString, secretKey, issuer string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}
	if secretKey == "" {
		return nil, errors.New("jwt secret key is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("token has expired")
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return nil, errors.New("token is not yet valid")
		}
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, errors.New("token signature is invalid")
		}
		return nil, fmt.Errorf("could not parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if claims.ScorerID == 0 {
		return nil, errors.New("scorer_id claim is missing or zero")
	}

	return claims, nil
}

// GenerateJWT mints a scorer token. Production tokens come from the identity
// service; this exists for local tooling and tests.
func GenerateJWT(scorerID uint, role, secretKey, issuer string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		ScorerID: scorerID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
