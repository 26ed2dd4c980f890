package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies HS256 bearer tokens. The subject claim
// carries the user id; Validate additionally requires the subject to match
// the user the caller loaded for it.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: "go-talent-backend",
		ttl:    ttl,
	}
}

// Generate signs a token for the given user id and email.
func (m *TokenManager) Generate(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iss":   m.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) parse(tokenString string) (*jwt.Token, jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, ErrInvalidToken
	}
	return token, claims, nil
}

// ExtractSubject returns the subject (user id) of a verified token.
// Signature and expiry are checked; jwt/v5 rejects expired tokens in Parse.
func (m *TokenManager) ExtractSubject(tokenString string) (string, error) {
	_, claims, err := m.parse(tokenString)
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// IsValid reports whether the token is well-signed, unexpired, and issued
// for the given user id.
func (m *TokenManager) IsValid(tokenString, userID string) bool {
	sub, err := m.ExtractSubject(tokenString)
	if err != nil {
		return false
	}
	return sub == userID
}

// ExtractEmail returns the email claim of a verified token, if present.
func (m *TokenManager) ExtractEmail(tokenString string) string {
	_, claims, err := m.parse(tokenString)
	if err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
