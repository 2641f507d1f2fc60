package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"sejahtera/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is returned when the login form does not match the
// configured admin account.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionTTL bounds how long an admin session token stays valid.
const SessionTTL = 12 * time.Hour

// AuthService checks admin credentials and manages signed session tokens.
// The token replaces the ambient "logged in" flag a session store would
// carry: every protected request proves itself with the signature.
type AuthService interface {
	Login(username, password string) (string, error)
	ValidateSession(token string) error
}

type authService struct {
	adminUser     string
	adminPassword string
	secret        []byte
}

func NewAuthService(admin config.AdminConfig, secretKey string) AuthService {
	return &authService{
		adminUser:     admin.User,
		adminPassword: admin.Password,
		secret:        []byte(secretKey),
	}
}

// Login validates the credentials and returns a signed session token.
func (s *authService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "sejahtera",
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// ValidateSession verifies the signature and expiry of a session token.
func (s *authService) ValidateSession(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return errors.New("session token not valid")
	}
	return nil
}
