package inventory

import (
	"errors"
	"fmt"

	"gymops/internal/domain"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrNotFound             = errors.New("equipment not found")
	ErrConflict             = errors.New("equipment was modified concurrently")
	ErrInvalidQuantityState = errors.New("invalid quantity state")
	ErrInvalidTransition    = errors.New("invalid status transition")
)

// QuantityStateError reports a unit-count triple that breaks
// available + in_use == quantity or goes negative. Matches
// ErrInvalidQuantityState via errors.Is.
type QuantityStateError struct {
	Quantity  int
	Available int
	InUse     int
}

func (e *QuantityStateError) Error() string {
	return fmt.Sprintf("invalid quantity state: quantity=%d available=%d in_use=%d",
		e.Quantity, e.Available, e.InUse)
}

func (e *QuantityStateError) Is(target error) bool {
	return target == ErrInvalidQuantityState
}

// TransitionError reports a status change the state machine forbids.
// Matches ErrInvalidTransition via errors.Is.
type TransitionError struct {
	From domain.EquipmentStatus
	To   domain.EquipmentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
