package service

import (
	"errors"

	"go-stockdesk/internal/apperr"
	"go-stockdesk/internal/model"
	"go-stockdesk/internal/repository"
	"go-stockdesk/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Role     model.Role `json:"role" validate:"required"`
	Password string     `json:"password" validate:"required,min=6"`
}

type UpdateUserRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Role     model.Role `json:"role"`
	Password string     `json:"password"`
}

type UserService interface {
	CreateUser(req *CreateUserRequest) (*model.User, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*model.User, error)
	GetAllUsers() ([]model.User, error)
	GetUserByID(id uuid.UUID) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.Validation,
			"validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if !model.KnownRole(req.Role) {
		return nil, apperr.New(apperr.Validation, "unknown role: %s", req.Role)
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		if other, err := s.userRepo.FindByEmail(req.Email); err == nil && other.ID != user.ID {
			return nil, apperr.New(apperr.Conflict, "email already registered")
		}
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		if !model.KnownRole(req.Role) {
			return nil, apperr.New(apperr.Validation, "unknown role: %s", req.Role)
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, apperr.New(apperr.Validation, "password must be at least 6 characters")
		}
		if err := user.SetPassword(req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]model.User, error) {
	return s.userRepo.FindAll()
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "user not found")
		}
		return nil, err
	}
	return user, nil
}
