package service

import (
	"crypto/subtle"

	"osadash/internal/config"
	"osadash/internal/dto"
)

// AuthService is a placeholder login: a single admin credential pair from
// configuration. It is deliberately not a real authentication design — no
// sessions, no tokens, no user lookup.
type AuthService interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.AdminPass)) == 1
	if !userOK || !passOK {
		return nil, ErrCredencialesInvalidas
	}
	return &dto.LoginResponse{
		OK:   true,
		User: dto.LoginUser{Username: s.cfg.AdminUser},
	}, nil
}
