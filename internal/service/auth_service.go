package service

import (
	"errors"
	"fmt"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/repository"
	"go-warehouse-stock/pkg/token"
	"go-warehouse-stock/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(username, password string) (*AuthResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
	ListUsers() ([]model.UserResponse, error)
}

// RegisterRequest carries the fields needed to create an account. Role
// defaults to "user" when omitted.
type RegisterRequest struct {
	Username string     `json:"username" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Role     model.Role `json:"role" validate:"role"`
	RFIDCard *string    `json:"rfid_card"`
}

type AuthResponse struct {
	Token string             `json:"access_token"`
	User  model.UserResponse `json:"user"`
}

type TokenValidationResponse struct {
	User model.UserResponse `json:"user"`
	Role model.Role         `json:"role"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if req.Role == "" {
		req.Role = model.RoleUser
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// Uniqueness is case-sensitive exact match
	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUsernameTaken
	}
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		RFIDCard: req.RFIDCard,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	signed, err := token.Generate(user)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &AuthResponse{Token: signed, User: user.ToResponse()}, nil
}

func (s *authService) Login(username, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	signed, err := token.Generate(user)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &AuthResponse{Token: signed, User: user.ToResponse()}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := token.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return &TokenValidationResponse{User: user.ToResponse(), Role: user.Role}, nil
}

func (s *authService) ListUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}
