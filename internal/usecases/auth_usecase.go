package usecases

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUsecase authenticates the dashboard operator configured through
// the environment. The password is bcrypt-hashed once at startup so the
// plaintext never sticks around.
type AuthUsecase struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
}

func NewAuthUsecase(username, password, secret string) (*AuthUsecase, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash operator password: %w", err)
	}
	return &AuthUsecase{
		username:     username,
		passwordHash: hashed,
		jwtSecret:    []byte(secret),
	}, nil
}

// Login verifies operator credentials and returns a signed session token.
func (uc *AuthUsecase) Login(username, password string) (string, error) {
	if username != uc.username {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uc.username,
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return tokenString, nil
}
