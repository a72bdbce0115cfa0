package member

import (
	"context"
	"testing"
	"time"

	"gymops/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func TestOnboard_Success(t *testing.T) {
	members := new(MockMemberRepository)
	members.On("GetByUserID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)
	members.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
		return m.UserID == 3 && m.Plan == domain.PlanMonthly && m.FullName == "Dana S"
	})).Return(nil)

	service := NewService(members)
	member, err := service.Onboard(context.Background(), 3, OnboardRequest{
		FullName: "  Dana S ",
		Plan:     string(domain.PlanMonthly),
	})

	require.NoError(t, err)
	assert.Equal(t, "Dana S", member.FullName)
	assert.False(t, member.StartDate.IsZero())
	members.AssertExpectations(t)
}

func TestOnboard_UnknownPlan(t *testing.T) {
	service := NewService(new(MockMemberRepository))

	_, err := service.Onboard(context.Background(), 3, OnboardRequest{
		FullName: "Dana S",
		Plan:     "lifetime",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestOnboard_AlreadyOnboarded(t *testing.T) {
	members := new(MockMemberRepository)
	members.On("GetByUserID", mock.Anything, int64(3)).
		Return(&domain.Member{ID: 1, UserID: 3}, nil)

	service := NewService(members)
	_, err := service.Onboard(context.Background(), 3, OnboardRequest{
		FullName: "Dana S",
		Plan:     string(domain.PlanAnnual),
	})

	assert.ErrorIs(t, err, ErrAlreadyOnboarded)
	members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOnboard_EndBeforeStart(t *testing.T) {
	members := new(MockMemberRepository)
	members.On("GetByUserID", mock.Anything, int64(3)).Return(nil, gorm.ErrRecordNotFound)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	service := NewService(members)
	_, err := service.Onboard(context.Background(), 3, OnboardRequest{
		FullName:  "Dana S",
		Plan:      string(domain.PlanQuarterly),
		StartDate: &start,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetByUser_NotFound(t *testing.T) {
	members := new(MockMemberRepository)
	members.On("GetByUserID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(members)
	_, err := service.GetByUser(context.Background(), 9)

	assert.ErrorIs(t, err, ErrNotFound)
}
