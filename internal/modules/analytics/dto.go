package analytics

import (
	"time"

	"gymops/internal/domain"
)

type FleetStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	TotalValue float64        `json:"total_value"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Value    float64 `json:"value"`
}

type UtilizationEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	InUse       int     `json:"in_use"`
	Utilization float64 `json:"utilization"`
}

type MaintenanceDueEntry struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	NextMaintenance *time.Time      `json:"next_maintenance,omitempty"`
	State           domain.DueState `json:"state"`
}

type Overview struct {
	Stats          FleetStats            `json:"stats"`
	Categories     []CategoryStat        `json:"categories"`
	MostUsed       []UtilizationEntry    `json:"most_used"`
	LeastUsed      []UtilizationEntry    `json:"least_used"`
	MaintenanceDue []MaintenanceDueEntry `json:"maintenance_due"`
}

// Bucketing tells the trend series how to cut time. Calendar months or a
// fixed window of N days; nothing is hard-coded in the aggregation.
type Bucketing struct {
	Kind       BucketKind
	WindowDays int
	// Anchor is the start of the first fixed window; ignored for months.
	Anchor time.Time
}

type BucketKind string

const (
	BucketByMonth  BucketKind = "month"
	BucketByWindow BucketKind = "window"
)

type TrendPoint struct {
	BucketStart       time.Time `json:"bucket_start"`
	AcquisitionsValue float64   `json:"acquisitions_value"`
	AvgUtilization    float64   `json:"avg_utilization"`
	MaintenanceCost   float64   `json:"maintenance_cost"`
}
