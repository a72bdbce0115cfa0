package inventory

import (
	"context"
	"errors"
	"strings"
	"time"

	"gymops/internal/domain"
	"gymops/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service orchestrates all equipment mutations. It is the only component
// that writes equipment state; reads for analytics go through Snapshot.
type Service struct {
	equipment EquipmentRepository
	logs      MaintenanceLogRepository
	scheduler *Scheduler
	events    EventSink
}

func NewService(
	equipment EquipmentRepository,
	logs MaintenanceLogRepository,
	scheduler *Scheduler,
	events EventSink,
) *Service {
	return &Service{
		equipment: equipment,
		logs:      logs,
		scheduler: scheduler,
		events:    events,
	}
}

func (s *Service) Scheduler() *Scheduler {
	return s.scheduler
}

func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.EquipmentRecord, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Type) == "" {
		return nil, ErrValidation
	}
	if !domain.IsValidCategory(req.Category) {
		return nil, ErrValidation
	}
	if req.Quantity < 1 {
		return nil, ErrValidation
	}
	if req.Cost != nil && *req.Cost < 0 {
		return nil, ErrValidation
	}

	now := time.Now().UTC()
	rec := &domain.EquipmentRecord{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Type:           strings.TrimSpace(req.Type),
		Category:       req.Category,
		Brand:          req.Brand,
		Model:          req.Model,
		SerialNumber:   req.SerialNumber,
		Location:       req.Location,
		Quantity:       req.Quantity,
		Available:      req.Quantity,
		InUse:          0,
		Status:         domain.StatusOperational,
		Cost:           req.Cost,
		PurchaseDate:   req.PurchaseDate,
		WarrantyExpiry: req.WarrantyExpiry,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.equipment.Create(ctx, rec); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.events != nil {
		s.events.EquipmentCreated(rec)
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.EquipmentRecord, error) {
	rec, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]domain.EquipmentRecord, error) {
	return s.equipment.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateEquipmentRequest) (*domain.EquipmentRecord, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	loadedAt := rec.UpdatedAt
	now := time.Now().UTC()

	if err := applyQuantityPatch(rec, req); err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := transition(rec, domain.EquipmentStatus(*req.Status), now); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrValidation
		}
		rec.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		if strings.TrimSpace(*req.Type) == "" {
			return nil, ErrValidation
		}
		rec.Type = strings.TrimSpace(*req.Type)
	}
	if req.Category != nil {
		if !domain.IsValidCategory(*req.Category) {
			return nil, ErrValidation
		}
		rec.Category = *req.Category
	}
	if req.Brand != nil {
		rec.Brand = *req.Brand
	}
	if req.Model != nil {
		rec.Model = *req.Model
	}
	if req.SerialNumber != nil {
		rec.SerialNumber = *req.SerialNumber
	}
	if req.Location != nil {
		rec.Location = *req.Location
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			return nil, ErrValidation
		}
		rec.Cost = req.Cost
	}
	if req.PurchaseDate != nil {
		rec.PurchaseDate = req.PurchaseDate
	}
	if req.WarrantyExpiry != nil {
		rec.WarrantyExpiry = req.WarrantyExpiry
	}
	if req.NextMaintenance != nil {
		rec.NextMaintenance = req.NextMaintenance
	}

	rec.UpdatedAt = now
	if err := s.equipment.Update(ctx, rec, loadedAt); err != nil {
		return nil, mapWriteError(err)
	}

	if s.events != nil {
		s.events.EquipmentUpdated(rec)
	}
	return rec, nil
}

// Delete removes the record and its logs for good. A line with units still
// checked out is deletable; the operation is irreversible either way.
func (s *Service) Delete(ctx context.Context, id string) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.equipment.Delete(ctx, id, rec.UpdatedAt); err != nil {
		return mapWriteError(err)
	}
	if s.events != nil {
		s.events.EquipmentDeleted(id)
	}
	return nil
}

func (s *Service) LogMaintenance(ctx context.Context, id string, req LogMaintenanceRequest) (*domain.EquipmentRecord, *domain.MaintenanceLog, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	loadedAt := rec.UpdatedAt
	now := time.Now().UTC()

	entry := &domain.MaintenanceLog{
		ID:          uuid.NewString(),
		EquipmentID: rec.ID,
		Type:        domain.MaintenanceType(req.Type),
		Description: strings.TrimSpace(req.Description),
		Cost:        req.Cost,
		PerformedBy: req.PerformedBy,
		NextDue:     req.NextDue,
		CreatedAt:   now,
	}
	if req.PerformedAt != nil {
		entry.PerformedAt = *req.PerformedAt
	}

	if err := s.scheduler.ApplyLog(rec, entry, now); err != nil {
		return nil, nil, err
	}

	// The guarded record write goes first: if it loses the optimistic-lock
	// race the caller retries with nothing persisted, instead of a log row
	// whose record-side effects never landed.
	if err := s.equipment.Update(ctx, rec, loadedAt); err != nil {
		return nil, nil, mapWriteError(err)
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, nil, err
	}

	if s.events != nil {
		s.events.MaintenanceLogged(rec, entry)
	}
	return rec, entry, nil
}

func (s *Service) ListMaintenance(ctx context.Context, id string) ([]domain.MaintenanceLog, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.logs.ListByEquipment(ctx, id)
}

// MarkOverdue is the caller-invoked sweep that raises the
// maintenance_required flag on every record whose next maintenance is due
// or overdue as of the given instant. It returns how many records were
// flagged.
func (s *Service) MarkOverdue(ctx context.Context, asOf time.Time) (int, error) {
	records, err := s.equipment.List(ctx)
	if err != nil {
		return 0, err
	}

	flagged := 0
	for i := range records {
		rec := &records[i]
		if rec.MaintenanceRequired {
			continue
		}
		state := s.scheduler.Dueness(rec, asOf)
		if state != domain.DueStateDue && state != domain.DueStateOverdue {
			continue
		}

		loadedAt := rec.UpdatedAt
		rec.MaintenanceRequired = true
		rec.UpdatedAt = time.Now().UTC()
		if err := s.equipment.Update(ctx, rec, loadedAt); err != nil {
			// A concurrent edit wins; the next sweep picks the record up.
			if errors.Is(err, repository.ErrStaleRecord) {
				continue
			}
			return flagged, err
		}
		flagged++
		if s.events != nil {
			s.events.EquipmentUpdated(rec)
		}
	}
	return flagged, nil
}

// Snapshot returns the read view analytics aggregates over. Callers decide
// the cadence; the service keeps no cached state.
func (s *Service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	records, err := s.equipment.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Snapshot{Records: records, Logs: logs}, nil
}

// applyQuantityPatch resolves the requested unit counts against the loaded
// record. A new quantity without both companion fields is rejected: the
// patch cannot say whether available or in_use absorbs the difference.
func applyQuantityPatch(rec *domain.EquipmentRecord, req UpdateEquipmentRequest) error {
	if req.Quantity == nil && req.Available == nil && req.InUse == nil {
		return nil
	}

	if req.Quantity != nil && (req.Available == nil || req.InUse == nil) {
		return &QuantityStateError{
			Quantity:  *req.Quantity,
			Available: intOr(req.Available, rec.Available),
			InUse:     intOr(req.InUse, rec.InUse),
		}
	}

	quantity := intOr(req.Quantity, rec.Quantity)
	available := intOr(req.Available, rec.Available)
	inUse := intOr(req.InUse, rec.InUse)

	if quantity < 0 || available < 0 || inUse < 0 || available+inUse != quantity {
		return &QuantityStateError{Quantity: quantity, Available: available, InUse: inUse}
	}

	rec.Quantity = quantity
	rec.Available = available
	rec.InUse = inUse
	return nil
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func mapWriteError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrStaleRecord):
		return ErrConflict
	case isUniqueViolation(err):
		return ErrConflict
	default:
		return err
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
