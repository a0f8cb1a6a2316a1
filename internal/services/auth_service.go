package services

import (
	"context"

	"kosht/pkg/utils"
)

// AuthConfig holds the single administrator credential. The password is kept
// as a bcrypt hash, never in clear text.
type AuthConfig struct {
	AdminUser         string
	AdminPasswordHash string
}

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type AuthService struct {
	cfg AuthConfig
}

func NewAuthService(cfg AuthConfig) AuthServiceInterface {
	return &AuthService{cfg: cfg}
}

func (a *AuthService) Login(_ context.Context, username, password string) (string, error) {
	if username != a.cfg.AdminUser {
		return "", utils.ErrWrongCredentials
	}
	if err := utils.ComparePasswords(a.cfg.AdminPasswordHash, password); err != nil {
		return "", utils.ErrWrongCredentials
	}

	token, err := utils.CreateToken(username, "admin")
	if err != nil {
		return "", err
	}
	return token, nil
}
