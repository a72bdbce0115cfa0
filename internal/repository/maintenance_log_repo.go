package repository

import (
	"context"
	"time"

	"gymops/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceLogRepository struct {
	db *gorm.DB
}

func NewMaintenanceLogRepository(db *gorm.DB) *MaintenanceLogRepository {
	return &MaintenanceLogRepository{db: db}
}

type maintenanceLogModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	EquipmentID string     `gorm:"column:equipment_id;index"`
	Type        string     `gorm:"column:type"`
	Description string     `gorm:"column:description"`
	Cost        *float64   `gorm:"column:cost"`
	PerformedBy *string    `gorm:"column:performed_by"`
	PerformedAt time.Time  `gorm:"column:performed_at"`
	NextDue     *time.Time `gorm:"column:next_due"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (maintenanceLogModel) TableName() string { return "maintenance_logs" }

func toMaintenanceLogModel(entry *domain.MaintenanceLog) maintenanceLogModel {
	return maintenanceLogModel{
		ID:          entry.ID,
		EquipmentID: entry.EquipmentID,
		Type:        string(entry.Type),
		Description: entry.Description,
		Cost:        entry.Cost,
		PerformedBy: optString(entry.PerformedBy),
		PerformedAt: entry.PerformedAt,
		NextDue:     entry.NextDue,
		CreatedAt:   entry.CreatedAt,
	}
}

func toDomainMaintenanceLog(m maintenanceLogModel) domain.MaintenanceLog {
	return domain.MaintenanceLog{
		ID:          m.ID,
		EquipmentID: m.EquipmentID,
		Type:        domain.MaintenanceType(m.Type),
		Description: m.Description,
		Cost:        m.Cost,
		PerformedBy: strOr(m.PerformedBy),
		PerformedAt: m.PerformedAt,
		NextDue:     m.NextDue,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *MaintenanceLogRepository) Create(ctx context.Context, entry *domain.MaintenanceLog) error {
	m := toMaintenanceLogModel(entry)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *MaintenanceLogRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceLog, error) {
	var ms []maintenanceLogModel
	err := r.db.WithContext(ctx).
		Where("equipment_id = ?", equipmentID).
		Order("performed_at DESC, id").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toDomainMaintenanceLogs(ms), nil
}

func (r *MaintenanceLogRepository) ListAll(ctx context.Context) ([]domain.MaintenanceLog, error) {
	var ms []maintenanceLogModel
	if err := r.db.WithContext(ctx).Order("performed_at, id").Find(&ms).Error; err != nil {
		return nil, err
	}
	return toDomainMaintenanceLogs(ms), nil
}

func toDomainMaintenanceLogs(ms []maintenanceLogModel) []domain.MaintenanceLog {
	out := make([]domain.MaintenanceLog, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainMaintenanceLog(m))
	}
	return out
}
