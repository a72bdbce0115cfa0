package member

import (
	"context"

	"gymops/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByUserID(ctx context.Context, userID int64) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
}
