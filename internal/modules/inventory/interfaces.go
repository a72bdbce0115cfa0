package inventory

import (
	"context"
	"time"

	"gymops/internal/domain"
)

// EquipmentRepository defines the persistence operations the inventory
// service needs for equipment lines. Update and Delete take the
// updated_at value the caller loaded; a stale value must fail with
// repository.ErrStaleRecord so racing writers never overwrite each other.
type EquipmentRepository interface {
	Create(ctx context.Context, rec *domain.EquipmentRecord) error
	GetByID(ctx context.Context, id string) (*domain.EquipmentRecord, error)
	List(ctx context.Context) ([]domain.EquipmentRecord, error)
	Update(ctx context.Context, rec *domain.EquipmentRecord, loadedUpdatedAt time.Time) error
	Delete(ctx context.Context, id string, loadedUpdatedAt time.Time) error
}

// MaintenanceLogRepository persists service events.
type MaintenanceLogRepository interface {
	Create(ctx context.Context, entry *domain.MaintenanceLog) error
	ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceLog, error)
	ListAll(ctx context.Context) ([]domain.MaintenanceLog, error)
}

// EventSink receives inventory change events for live dashboards. All
// methods are fire-and-forget; the service ignores a nil sink.
type EventSink interface {
	EquipmentCreated(rec *domain.EquipmentRecord)
	EquipmentUpdated(rec *domain.EquipmentRecord)
	EquipmentDeleted(id string)
	MaintenanceLogged(rec *domain.EquipmentRecord, entry *domain.MaintenanceLog)
}
