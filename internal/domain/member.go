package domain

import "time"

type MembershipPlan string

const (
	PlanMonthly   MembershipPlan = "monthly"
	PlanQuarterly MembershipPlan = "quarterly"
	PlanAnnual    MembershipPlan = "annual"
)

func (p MembershipPlan) IsValid() bool {
	switch p {
	case PlanMonthly, PlanQuarterly, PlanAnnual:
		return true
	default:
		return false
	}
}

// Member is a gym member profile created during onboarding. EndDate is
// stored as entered; nothing here derives an expiry status from it.
type Member struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	FullName         string         `json:"full_name"`
	Phone            string         `json:"phone,omitempty"`
	Plan             MembershipPlan `json:"plan"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          *time.Time     `json:"end_date,omitempty"`
	EmergencyContact string         `json:"emergency_contact,omitempty"`
	HealthNotes      string         `json:"health_notes,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
