package service

import (
	"errors"

	"leadform/internal/util"
	"leadform/pkg/config"
)

// ErrInvalidCredentials is returned for any failed login. It never reveals
// which part of the credential was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	admin     config.AdminConfig
	jwtSecret string
}

func NewAuthService(admin config.AdminConfig, jwtSecret string) *AuthService {
	return &AuthService{
		admin:     admin,
		jwtSecret: jwtSecret,
	}
}

// Login checks the admin credential and returns a signed session token.
// The password is verified against a stored bcrypt hash.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.admin.Username {
		return "", ErrInvalidCredentials
	}

	if !util.CheckPassword(password, s.admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(username, s.jwtSecret)
	if err != nil {
		return "", err
	}

	return token, nil
}
