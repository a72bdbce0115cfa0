package member

import (
	"context"
	"errors"
	"strings"
	"time"

	"gymops/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	members MemberRepository
}

func NewService(members MemberRepository) *Service {
	return &Service{members: members}
}

// Onboard creates the membership profile for a registered user. End dates
// are stored as given and never interpreted here.
func (s *Service) Onboard(ctx context.Context, userID int64, req OnboardRequest) (*domain.Member, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ErrValidation
	}
	plan := domain.MembershipPlan(req.Plan)
	if !plan.IsValid() {
		return nil, ErrValidation
	}

	if _, err := s.members.GetByUserID(ctx, userID); err == nil {
		return nil, ErrAlreadyOnboarded
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	start := now
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil && req.EndDate.Before(start) {
		return nil, ErrValidation
	}

	m := &domain.Member{
		UserID:           userID,
		FullName:         strings.TrimSpace(req.FullName),
		Phone:            req.Phone,
		Plan:             plan,
		StartDate:        start,
		EndDate:          req.EndDate,
		EmergencyContact: req.EmergencyContact,
		HealthNotes:      req.HealthNotes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByUser(ctx context.Context, userID int64) (*domain.Member, error) {
	m, err := s.members.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Member, error) {
	return s.members.List(ctx)
}
