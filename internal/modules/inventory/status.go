package inventory

import (
	"time"

	"gymops/internal/domain"
)

// transition applies a caller-directed status change. It touches only
// status and updated_at; unit counts are never altered by a transition.
func transition(rec *domain.EquipmentRecord, next domain.EquipmentStatus, now time.Time) error {
	if !next.IsValid() {
		return ErrValidation
	}
	if rec.Status == next {
		return nil
	}
	if !rec.Status.CanTransitionTo(next) {
		return &TransitionError{From: rec.Status, To: next}
	}
	rec.Status = next
	rec.UpdatedAt = now
	return nil
}
