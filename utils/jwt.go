package utils

import (
	"errors"
	"os"
	"time"

	"hirewire/config"

	"github.com/golang-jwt/jwt"
)

const devSecret = "HIREWIRE"

// The secret comes from config, then the environment. The fallback is for
// local development only.
func secretKey() []byte {
	if config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte(devSecret)
}

// PartyClaims identifies the caller of the interview routes.
type PartyClaims struct {
	PartyID string
	Role    string
}

// GenerateToken creates a signed JWT for a party (proposer or responder).
// Tokens are normally issued by the identity service; this is used by tools
// and tests.
func GenerateToken(partyID, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  partyID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
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

// ParsePartyToken validates tokenString and extracts the party claims.
func ParsePartyToken(tokenString string) (PartyClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return PartyClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return PartyClaims{}, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return PartyClaims{}, errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ := claims["role"].(string)

	return PartyClaims{PartyID: sub, Role: role}, nil
}
