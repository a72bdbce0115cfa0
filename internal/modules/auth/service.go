package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"gymops/internal/domain"
	"gymops/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users UserRepository
	jwt   TokenIssuer
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(users UserRepository, jwt TokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a member account. Staff and admin accounts are created
// through RegisterWithRole by an admin, or seeded.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	return s.register(ctx, req, domain.RoleMember)
}

func (s *Service) RegisterWithRole(ctx context.Context, req RegisterRequest, role domain.UserRole) (*domain.User, error) {
	if role != domain.RoleMember && role != domain.RoleStaff && role != domain.RoleAdmin {
		return nil, ErrValidation
	}
	return s.register(ctx, req, role)
}

func (s *Service) register(ctx context.Context, req RegisterRequest, role domain.UserRole) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || strings.TrimSpace(req.Name) == "" {
		return nil, ErrValidation
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         strings.TrimSpace(req.Name),
		Phone:        req.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if fields := validator.Validate(user); fields != nil {
		return nil, ErrValidation
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: token}, nil
}
