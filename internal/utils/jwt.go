package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/sphere-sync/models"
)

// ErrInvalidTokenParams is returned by [GenerateJWTToken] when any argument
// is empty or the lifetime is zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

var signingMethod = jwt.SigningMethodHS256

// GenerateJWTToken signs an HS256 token for userID. Besides iss, sub, iat
// and exp it carries a random jti so two tokens minted in the same second
// still differ. A negative ttl yields a token that is already expired.
func GenerateJWTToken(issuer, userID string, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || ttl == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(signingMethod, &claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies signature, issuer and expiry of
// tokenString. Tokens without exp or sub are rejected.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Token, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return []byte(signKey), nil },
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed := models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString}
	if parsed.UserID, err = parsed.GetUserID(); err != nil {
		return models.Token{}, err
	}

	return parsed, nil
}

// TokenSubject reads the subject of a token without verifying it. syncctl
// uses it to log whom a supplied token belongs to.
func TokenSubject(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", models.ErrEmptySubject
	}

	return claims.Subject, nil
}
