package services

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthService issues admin session tokens. There is a single admin identity
// configured through the environment; the dashboard has no self-service
// signup.
type AuthService struct {
	secretKey    []byte
	adminEmail   string
	passwordHash string
	logger       *zap.Logger
}

func NewAuthService(secret, adminEmail, passwordHash string, logger *zap.Logger) *AuthService {
	return &AuthService{
		secretKey:    []byte(secret),
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// Login verifies the admin credentials and returns a signed JWT.
func (s *AuthService) Login(email, password string) (string, *ServiceError) {
	if !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		return "", &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.logger.Warn("Failed admin login attempt", zap.String("email", email))
		return "", &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	}

	claims := jwt.MapClaims{
		"sub":  s.adminEmail,
		"role": "admin",
		"typ":  "access",
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		s.logger.Error("Token signing failed", zap.Error(err))
		return "", &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to issue token"}
	}
	return signed, nil
}
