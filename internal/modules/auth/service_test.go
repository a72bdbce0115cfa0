package auth

import (
	"context"
	"testing"

	"gymops/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestRegister_CreatesMember(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "new@gym.kz").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@gym.kz" && u.Role == domain.RoleMember && u.PasswordHash != ""
	})).Return(nil)

	service := NewService(users, new(MockTokenIssuer))
	user, err := service.Register(context.Background(), RegisterRequest{
		Email:    "  New@Gym.KZ ",
		Password: "password123",
		Name:     "Aruzhan",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@gym.kz", user.Email)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.Empty(t, user.PasswordHash)
	users.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "taken@gym.kz").
		Return(&domain.User{ID: 1, Email: "taken@gym.kz"}, nil)

	service := NewService(users, new(MockTokenIssuer))
	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "taken@gym.kz",
		Password: "password123",
		Name:     "X",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterWithRole_RejectsUnknownRole(t *testing.T) {
	service := NewService(new(MockUserRepository), new(MockTokenIssuer))

	_, err := service.RegisterWithRole(context.Background(), RegisterRequest{
		Email:    "x@gym.kz",
		Password: "password123",
		Name:     "X",
	}, domain.UserRole("superuser"))

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterWithRole_CreatesStaff(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "staff@gym.kz").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleStaff
	})).Return(nil)

	service := NewService(users, new(MockTokenIssuer))
	user, err := service.RegisterWithRole(context.Background(), RegisterRequest{
		Email:    "staff@gym.kz",
		Password: "password123",
		Name:     "Staff",
	}, domain.RoleStaff)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "yer@gym.kz").Return(&domain.User{
		ID:           7,
		Email:        "yer@gym.kz",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}, nil)

	issuer := new(MockTokenIssuer)
	issuer.On("GenerateToken", int64(7), "admin").Return("token-abc", nil)

	service := NewService(users, issuer)
	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "Yer@Gym.KZ",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", result.AccessToken)
	assert.Equal(t, int64(7), result.User.ID)
	assert.Empty(t, result.User.PasswordHash)
	issuer.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "yer@gym.kz").Return(&domain.User{
		ID:           7,
		Email:        "yer@gym.kz",
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
	}, nil)

	service := NewService(users, new(MockTokenIssuer))
	_, err = service.Login(context.Background(), LoginRequest{
		Email:    "yer@gym.kz",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@gym.kz").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, new(MockTokenIssuer))
	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@gym.kz",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
