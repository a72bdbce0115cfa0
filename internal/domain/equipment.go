package domain

import "time"

type EquipmentStatus string

const (
	StatusOperational  EquipmentStatus = "operational"
	StatusMaintenance  EquipmentStatus = "maintenance"
	StatusOutOfService EquipmentStatus = "out_of_service"
	StatusRetired      EquipmentStatus = "retired"
)

func (s EquipmentStatus) IsValid() bool {
	switch s {
	case StatusOperational, StatusMaintenance, StatusOutOfService, StatusRetired:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status machine allows moving from s
// to next. Retired is terminal.
func (s EquipmentStatus) CanTransitionTo(next EquipmentStatus) bool {
	if s == StatusRetired {
		return false
	}
	if next == StatusRetired {
		return true
	}
	switch s {
	case StatusOperational:
		return next == StatusMaintenance || next == StatusOutOfService
	case StatusMaintenance:
		return next == StatusOperational || next == StatusOutOfService
	case StatusOutOfService:
		return next == StatusOperational
	default:
		return false
	}
}

const (
	CategoryCardio      = "Cardio"
	CategoryStrength    = "Strength Training"
	CategoryFreeWeights = "Free Weights"
	CategoryFunctional  = "Functional Training"
	CategoryAccessories = "Accessories"
)

var EquipmentCategories = []string{
	CategoryCardio,
	CategoryStrength,
	CategoryFreeWeights,
	CategoryFunctional,
	CategoryAccessories,
}

func IsValidCategory(category string) bool {
	for _, c := range EquipmentCategories {
		if c == category {
			return true
		}
	}
	return false
}

// EquipmentRecord is one inventory line covering one or more identical
// physical units of the same item.
type EquipmentRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Location     string `json:"location,omitempty"`

	// Unit accounting. Available + InUse == Quantity holds at all times.
	Quantity  int `json:"quantity"`
	Available int `json:"available"`
	InUse     int `json:"in_use"`

	Status EquipmentStatus `json:"status"`

	Cost           *float64   `json:"cost,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	WarrantyExpiry *time.Time `json:"warranty_expiry,omitempty"`

	MaintenanceRequired bool       `json:"maintenance_required"`
	LastMaintenance     *time.Time `json:"last_maintenance,omitempty"`
	NextMaintenance     *time.Time `json:"next_maintenance,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Utilization is the fraction of units currently checked out. A line with
// zero units has utilization 0, never NaN.
func (e *EquipmentRecord) Utilization() float64 {
	if e.Quantity == 0 {
		return 0
	}
	return float64(e.InUse) / float64(e.Quantity)
}

// QuantityConsistent reports whether the unit counts satisfy
// Available + InUse == Quantity with no negative component.
func (e *EquipmentRecord) QuantityConsistent() bool {
	return e.Quantity >= 0 && e.Available >= 0 && e.InUse >= 0 &&
		e.Available+e.InUse == e.Quantity
}
