package utils

import (
	"errors"
	"medadmin-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const sessionIDClaim = "session_id"

var (
	ErrUnexpectedSigningMethod = errors.New(constvars.ErrDevAuthSigningMethod)
	ErrSessionClaimMissing     = errors.New(constvars.ErrDevAuthTokenInvalid)
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateSessionJWT signs an HS256 token carrying sessionID that expires after ttl.
func GenerateSessionJWT(sessionID, secret string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		sessionIDClaim: sessionID,
		"exp":          expiresAt.Unix(),
		"iat":          time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT verifies tokenString and returns its session id.
func ParseJWT(tokenString, secret string) (string, error) {
	return parseSessionJWT(tokenString, secret, false)
}

// ParseJWTAllowExpired is ParseJWT that still accepts a correctly signed token
// whose exp claim has passed. Any other validation failure is returned.
func ParseJWTAllowExpired(tokenString, secret string) (string, error) {
	return parseSessionJWT(tokenString, secret, true)
}

func parseSessionJWT(tokenString, secret string, allowExpired bool) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if !allowExpired || !errors.As(err, &validationErr) || validationErr.Errors != jwt.ValidationErrorExpired {
			return "", err
		}
	}
	if token == nil {
		return "", ErrSessionClaimMissing
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if sessionID, ok := claims[sessionIDClaim].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", ErrSessionClaimMissing
}
