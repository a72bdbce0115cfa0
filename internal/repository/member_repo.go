package repository

import (
	"context"
	"time"

	"gymops/internal/domain"

	"gorm.io/gorm"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

type memberModel struct {
	ID               int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID           int64      `gorm:"column:user_id;uniqueIndex"`
	FullName         string     `gorm:"column:full_name"`
	Phone            *string    `gorm:"column:phone"`
	Plan             string     `gorm:"column:plan"`
	StartDate        time.Time  `gorm:"column:start_date"`
	EndDate          *time.Time `gorm:"column:end_date"`
	EmergencyContact *string    `gorm:"column:emergency_contact"`
	HealthNotes      *string    `gorm:"column:health_notes"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (memberModel) TableName() string { return "members" }

func toDomainMember(m memberModel) domain.Member {
	return domain.Member{
		ID:               m.ID,
		UserID:           m.UserID,
		FullName:         m.FullName,
		Phone:            strOr(m.Phone),
		Plan:             domain.MembershipPlan(m.Plan),
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		EmergencyContact: strOr(m.EmergencyContact),
		HealthNotes:      strOr(m.HealthNotes),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	m := memberModel{
		UserID:           member.UserID,
		FullName:         member.FullName,
		Phone:            optString(member.Phone),
		Plan:             string(member.Plan),
		StartDate:        member.StartDate,
		EndDate:          member.EndDate,
		EmergencyContact: optString(member.EmergencyContact),
		HealthNotes:      optString(member.HealthNotes),
		CreatedAt:        member.CreatedAt,
		UpdatedAt:        member.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	member.ID = m.ID
	return nil
}

func (r *MemberRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Member, error) {
	var m memberModel
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	member := toDomainMember(m)
	return &member, nil
}

func (r *MemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	var ms []memberModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Member, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainMember(m))
	}
	return out, nil
}
