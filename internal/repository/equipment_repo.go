package repository

import (
	"context"
	"errors"
	"time"

	"gymops/internal/domain"

	"gorm.io/gorm"
)

// ErrStaleRecord means an optimistic write found the row changed (or gone)
// since it was loaded. Callers reload and retry or surface a conflict.
var ErrStaleRecord = errors.New("record changed since it was loaded")

type EquipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

type equipmentModel struct {
	ID                  string     `gorm:"column:id;primaryKey"`
	Name                string     `gorm:"column:name"`
	Type                string     `gorm:"column:type"`
	Category            string     `gorm:"column:category"`
	Brand               *string    `gorm:"column:brand"`
	Model               *string    `gorm:"column:model"`
	SerialNumber        *string    `gorm:"column:serial_number;uniqueIndex"`
	Location            *string    `gorm:"column:location"`
	Quantity            int        `gorm:"column:quantity"`
	Available           int        `gorm:"column:available"`
	InUse               int        `gorm:"column:in_use"`
	Status              string     `gorm:"column:status"`
	Cost                *float64   `gorm:"column:cost"`
	PurchaseDate        *time.Time `gorm:"column:purchase_date"`
	WarrantyExpiry      *time.Time `gorm:"column:warranty_expiry"`
	MaintenanceRequired bool       `gorm:"column:maintenance_required"`
	LastMaintenance     *time.Time `gorm:"column:last_maintenance"`
	NextMaintenance     *time.Time `gorm:"column:next_maintenance"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

func toEquipmentModel(rec *domain.EquipmentRecord) equipmentModel {
	return equipmentModel{
		ID:                  rec.ID,
		Name:                rec.Name,
		Type:                rec.Type,
		Category:            rec.Category,
		Brand:               optString(rec.Brand),
		Model:               optString(rec.Model),
		SerialNumber:        optString(rec.SerialNumber),
		Location:            optString(rec.Location),
		Quantity:            rec.Quantity,
		Available:           rec.Available,
		InUse:               rec.InUse,
		Status:              string(rec.Status),
		Cost:                rec.Cost,
		PurchaseDate:        rec.PurchaseDate,
		WarrantyExpiry:      rec.WarrantyExpiry,
		MaintenanceRequired: rec.MaintenanceRequired,
		LastMaintenance:     rec.LastMaintenance,
		NextMaintenance:     rec.NextMaintenance,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
	}
}

func toDomainEquipment(m equipmentModel) domain.EquipmentRecord {
	return domain.EquipmentRecord{
		ID:                  m.ID,
		Name:                m.Name,
		Type:                m.Type,
		Category:            m.Category,
		Brand:               strOr(m.Brand),
		Model:               strOr(m.Model),
		SerialNumber:        strOr(m.SerialNumber),
		Location:            strOr(m.Location),
		Quantity:            m.Quantity,
		Available:           m.Available,
		InUse:               m.InUse,
		Status:              domain.EquipmentStatus(m.Status),
		Cost:                m.Cost,
		PurchaseDate:        m.PurchaseDate,
		WarrantyExpiry:      m.WarrantyExpiry,
		MaintenanceRequired: m.MaintenanceRequired,
		LastMaintenance:     m.LastMaintenance,
		NextMaintenance:     m.NextMaintenance,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func (r *EquipmentRepository) Create(ctx context.Context, rec *domain.EquipmentRecord) error {
	m := toEquipmentModel(rec)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.EquipmentRecord, error) {
	var m equipmentModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	rec := toDomainEquipment(m)
	return &rec, nil
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.EquipmentRecord, error) {
	var ms []equipmentModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.EquipmentRecord, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainEquipment(m))
	}
	return out, nil
}

// Update writes the full row guarded by the updated_at value the caller
// loaded. Zero rows affected means another writer got there first.
func (r *EquipmentRepository) Update(ctx context.Context, rec *domain.EquipmentRecord, loadedUpdatedAt time.Time) error {
	m := toEquipmentModel(rec)
	res := r.db.WithContext(ctx).
		Model(&equipmentModel{}).
		Where("id = ? AND updated_at = ?", rec.ID, loadedUpdatedAt).
		Select("*").Omit("id", "created_at").
		Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.staleOrMissing(ctx, rec.ID)
	}
	return nil
}

// Delete removes the record and all of its maintenance logs in one
// transaction, guarded the same way as Update.
func (r *EquipmentRepository) Delete(ctx context.Context, id string, loadedUpdatedAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND updated_at = ?", id, loadedUpdatedAt).Delete(&equipmentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.staleOrMissing(ctx, id)
		}
		return tx.Where("equipment_id = ?", id).Delete(&maintenanceLogModel{}).Error
	})
}

func (r *EquipmentRepository) staleOrMissing(ctx context.Context, id string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&equipmentModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrStaleRecord
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
