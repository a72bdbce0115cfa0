package inventory

import (
	"strings"
	"time"

	"gymops/internal/domain"
)

// Scheduler decides maintenance due windows and applies the record-side
// effects of logging a service event. It owns no timers; periodic sweeps
// are driven by callers.
type Scheduler struct {
	schedule domain.Schedule
}

func NewScheduler(schedule domain.Schedule) *Scheduler {
	return &Scheduler{schedule: schedule}
}

func (s *Scheduler) Schedule() domain.Schedule {
	return s.schedule
}

// Dueness classifies a record's next-maintenance date as of a point in time.
func (s *Scheduler) Dueness(rec *domain.EquipmentRecord, asOf time.Time) domain.DueState {
	return s.schedule.Dueness(rec.NextMaintenance, asOf)
}

// ApplyLog validates a service event and folds it into the record:
// last_maintenance moves to the event time, next_maintenance follows the
// entry's next_due when given, and the maintenance_required flag clears.
// A record sitting in maintenance status returns to operational — the work
// it was waiting for has just been performed.
func (s *Scheduler) ApplyLog(rec *domain.EquipmentRecord, entry *domain.MaintenanceLog, now time.Time) error {
	if strings.TrimSpace(entry.Description) == "" {
		return ErrValidation
	}
	if !entry.Type.IsValid() {
		return ErrValidation
	}
	if entry.Cost != nil && *entry.Cost < 0 {
		return ErrValidation
	}
	if entry.PerformedAt.IsZero() {
		entry.PerformedAt = now
	}

	performed := entry.PerformedAt
	rec.LastMaintenance = &performed
	if entry.NextDue != nil {
		due := *entry.NextDue
		rec.NextMaintenance = &due
	}
	rec.MaintenanceRequired = false
	if rec.Status == domain.StatusMaintenance {
		rec.Status = domain.StatusOperational
	}
	rec.UpdatedAt = now
	return nil
}
