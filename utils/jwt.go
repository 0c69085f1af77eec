package utils

import (
	"errors"
	"time"

	"darsehha/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT carrying the patient's email, display
// name and admin flag. The token expires after the specified duration.
func GenerateToken(email, name string, isAdmin bool, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   email,
		"email": email,
		"name":  name,
		"admin": isAdmin,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIdentityFromToken returns the email, name and admin flag from a
// valid token string.
func ExtractIdentityFromToken(tokenString string) (email, name string, isAdmin bool, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", false, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", false, errors.New("invalid token")
	}

	email, ok = claims["email"].(string)
	if !ok || email == "" {
		return "", "", false, errors.New("token does not contain a valid 'email' claim")
	}
	name, _ = claims["name"].(string)
	isAdmin, _ = claims["admin"].(bool)
	return email, name, isAdmin, nil
}
