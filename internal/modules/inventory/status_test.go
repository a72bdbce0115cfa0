package inventory

import (
	"testing"
	"time"

	"gymops/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTransition_AllowedMoves(t *testing.T) {
	allowed := []struct {
		from, to domain.EquipmentStatus
	}{
		{domain.StatusOperational, domain.StatusMaintenance},
		{domain.StatusMaintenance, domain.StatusOperational},
		{domain.StatusOperational, domain.StatusOutOfService},
		{domain.StatusOutOfService, domain.StatusOperational},
		{domain.StatusOutOfService, domain.StatusRetired},
		{domain.StatusMaintenance, domain.StatusOutOfService},
		{domain.StatusOperational, domain.StatusRetired},
		{domain.StatusMaintenance, domain.StatusRetired},
	}

	for _, tc := range allowed {
		rec := operationalRecord(5, 5, 0)
		rec.Status = tc.from
		now := time.Now().UTC()

		err := transition(rec, tc.to, now)

		assert.NoError(t, err, "%s -> %s should be allowed", tc.from, tc.to)
		assert.Equal(t, tc.to, rec.Status)
		assert.Equal(t, now, rec.UpdatedAt)
	}
}

func TestTransition_ForbiddenMoves(t *testing.T) {
	forbidden := []struct {
		from, to domain.EquipmentStatus
	}{
		{domain.StatusRetired, domain.StatusOperational},
		{domain.StatusRetired, domain.StatusMaintenance},
		{domain.StatusRetired, domain.StatusOutOfService},
		{domain.StatusOutOfService, domain.StatusMaintenance},
	}

	for _, tc := range forbidden {
		rec := operationalRecord(5, 5, 0)
		rec.Status = tc.from
		before := rec.UpdatedAt

		err := transition(rec, tc.to, time.Now().UTC())

		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be rejected", tc.from, tc.to)
		assert.Equal(t, tc.from, rec.Status)
		assert.Equal(t, before, rec.UpdatedAt)
	}
}

func TestTransition_SameStatusIsNoop(t *testing.T) {
	rec := operationalRecord(5, 5, 0)
	rec.Status = domain.StatusRetired
	before := rec.UpdatedAt

	err := transition(rec, domain.StatusRetired, time.Now().UTC())

	assert.NoError(t, err)
	assert.Equal(t, before, rec.UpdatedAt)
}

func TestTransition_UnknownStatusRejected(t *testing.T) {
	rec := operationalRecord(5, 5, 0)

	err := transition(rec, domain.EquipmentStatus("broken"), time.Now().UTC())

	assert.ErrorIs(t, err, ErrValidation)
}
