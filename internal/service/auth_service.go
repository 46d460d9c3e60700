package service

import (
	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"
	"go-stockdesk/pkg/jwt"
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login deliberately returns the same error for a missing user and a
// wrong password.
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.New(apperr.Unauthorized, "invalid credentials")
	}

	if !user.CheckPassword(password) {
		return nil, apperr.New(apperr.Unauthorized, "invalid credentials")
	}

	token, err := jwt.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
