package inventory

import "time"

type CreateEquipmentRequest struct {
	Name           string     `json:"name" binding:"required"`
	Type           string     `json:"type" binding:"required"`
	Category       string     `json:"category" binding:"required"`
	Quantity       int        `json:"quantity" binding:"required,min=1"`
	Brand          string     `json:"brand"`
	Model          string     `json:"model"`
	SerialNumber   string     `json:"serial_number"`
	Location       string     `json:"location"`
	Cost           *float64   `json:"cost" binding:"omitempty,gte=0"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
}

// UpdateEquipmentRequest is a partial patch; nil fields are left as-is.
// Supplying quantity requires supplying available and in_use with it,
// since a resize alone cannot say which side absorbs the delta.
type UpdateEquipmentRequest struct {
	Name            *string    `json:"name"`
	Type            *string    `json:"type"`
	Category        *string    `json:"category"`
	Brand           *string    `json:"brand"`
	Model           *string    `json:"model"`
	SerialNumber    *string    `json:"serial_number"`
	Location        *string    `json:"location"`
	Quantity        *int       `json:"quantity"`
	Available       *int       `json:"available"`
	InUse           *int       `json:"in_use"`
	Status          *string    `json:"status"`
	Cost            *float64   `json:"cost" binding:"omitempty,gte=0"`
	PurchaseDate    *time.Time `json:"purchase_date"`
	WarrantyExpiry  *time.Time `json:"warranty_expiry"`
	NextMaintenance *time.Time `json:"next_maintenance"`
}

type LogMaintenanceRequest struct {
	Type        string     `json:"type" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Cost        *float64   `json:"cost" binding:"omitempty,gte=0"`
	PerformedBy string     `json:"performed_by"`
	PerformedAt *time.Time `json:"performed_at"`
	NextDue     *time.Time `json:"next_due"`
}

type SweepRequest struct {
	AsOf *time.Time `json:"as_of"`
}

type SweepResult struct {
	Flagged int `json:"flagged"`
}
