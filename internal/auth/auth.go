package auth

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ISSUER   = "github.com/haguru/signup"
	SUBJECT  = "SIGNUP"
	AUDIENCE = "api." + ISSUER

	// SessionCookieName is the cookie that carries the signed token.
	SessionCookieName = "session_token"
	TokenTTL          = 15 * time.Minute
)

var ErrMissingSigningKey = errors.New("signing key is required")

// CustomClaims are the JWT claims issued to a newly created account.
type CustomClaims struct {
	UserID string `json:"userid"`
	jwt.RegisteredClaims
}

// CreateToken returns an ES256 signed token whose user id claim is accountID.
func CreateToken(accountID string, privateKey *ecdsa.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", ErrMissingSigningKey
	}

	now := time.Now()
	claims := CustomClaims{
		UserID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    ISSUER,
			Subject:   SUBJECT,
			Audience:  []string{AUDIENCE},
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)

	signedToken, err := token.SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken parses tokenString, checks its signature against publicKey and
// returns its claims.
func VerifyToken(tokenString string, publicKey *ecdsa.PublicKey) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	}, jwt.WithIssuer(ISSUER), jwt.WithAudience(AUDIENCE))
	if err != nil {
		return nil, fmt.Errorf("token parsing error: %w", err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token or claims")
}
