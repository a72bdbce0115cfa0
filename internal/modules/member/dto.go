package member

import "time"

type OnboardRequest struct {
	FullName         string     `json:"full_name" binding:"required"`
	Phone            string     `json:"phone"`
	Plan             string     `json:"plan" binding:"required"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	EmergencyContact string     `json:"emergency_contact"`
	HealthNotes      string     `json:"health_notes"`
}
