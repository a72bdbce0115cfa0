package domain

import "time"

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
	MaintenanceInspection MaintenanceType = "inspection"
	MaintenanceRepair     MaintenanceType = "repair"
)

func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenancePreventive, MaintenanceCorrective, MaintenanceInspection, MaintenanceRepair:
		return true
	default:
		return false
	}
}

// MaintenanceLog is one service event performed on an equipment line. Logs
// reference their equipment record; they are removed with it.
type MaintenanceLog struct {
	ID          string          `json:"id"`
	EquipmentID string          `json:"equipment_id"`
	Type        MaintenanceType `json:"type"`
	Description string          `json:"description"`
	Cost        *float64        `json:"cost,omitempty"`
	PerformedBy string          `json:"performed_by,omitempty"`
	PerformedAt time.Time       `json:"performed_at"`
	NextDue     *time.Time      `json:"next_due,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DueState classifies how a record's next maintenance date relates to a
// point in time.
type DueState string

const (
	DueStateNotDue   DueState = "not_due"
	DueStateUpcoming DueState = "upcoming"
	DueStateDue      DueState = "due"
	DueStateOverdue  DueState = "overdue"
)

// Schedule holds the maintenance-window configuration. With GraceDays at 0
// any instant strictly after the due date is already overdue.
type Schedule struct {
	GraceDays     int
	LookaheadDays int
}

func DefaultSchedule() Schedule {
	return Schedule{GraceDays: 0, LookaheadDays: 30}
}

// Dueness derives the due state of a next-maintenance date as of a given
// instant. A nil date is never due.
func (s Schedule) Dueness(next *time.Time, asOf time.Time) DueState {
	if next == nil {
		return DueStateNotDue
	}
	deadline := next.AddDate(0, 0, s.GraceDays)
	switch {
	case asOf.After(deadline):
		return DueStateOverdue
	case !asOf.Before(*next):
		return DueStateDue
	case next.Sub(asOf) <= time.Duration(s.LookaheadDays)*24*time.Hour:
		return DueStateUpcoming
	default:
		return DueStateNotDue
	}
}

// Snapshot is an immutable read view of the whole fleet at a point in
// time. Aggregations never mutate it.
type Snapshot struct {
	Records []EquipmentRecord `json:"records"`
	Logs    []MaintenanceLog  `json:"logs"`
}
