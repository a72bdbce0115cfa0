package analytics

import (
	"context"
	"testing"
	"time"

	"gymops/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSnapshotSource struct {
	mock.Mock
}

func (m *MockSnapshotSource) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

func newOverviewService(snap *domain.Snapshot) *Service {
	source := new(MockSnapshotSource)
	source.On("Snapshot", mock.Anything).Return(snap, nil)
	return NewService(source, domain.DefaultSchedule())
}

func record(id, category string, quantity, inUse int, cost *float64) domain.EquipmentRecord {
	return domain.EquipmentRecord{
		ID:        id,
		Name:      "Item " + id,
		Type:      "Generic",
		Category:  category,
		Quantity:  quantity,
		Available: quantity - inUse,
		InUse:     inUse,
		Status:    domain.StatusOperational,
		Cost:      cost,
	}
}

func cost(v float64) *float64 { return &v }

func TestOverview_EmptySnapshot(t *testing.T) {
	service := newOverviewService(&domain.Snapshot{})

	overview, err := service.Overview(context.Background(), time.Now().UTC(), 5)

	require.NoError(t, err)
	assert.Equal(t, 0, overview.Stats.Total)
	assert.Zero(t, overview.Stats.TotalValue)
	assert.Empty(t, overview.Categories)
	assert.Empty(t, overview.MostUsed)
	assert.Empty(t, overview.LeastUsed)
	assert.Empty(t, overview.MaintenanceDue)
}

func TestOverview_FleetStats(t *testing.T) {
	r1 := record("a", domain.CategoryCardio, 5, 0, cost(1000))
	r2 := record("b", domain.CategoryStrength, 3, 1, nil) // no cost contributes 0
	r3 := record("c", domain.CategoryCardio, 2, 0, cost(250))
	r3.Status = domain.StatusMaintenance
	service := newOverviewService(&domain.Snapshot{Records: []domain.EquipmentRecord{r1, r2, r3}})

	overview, err := service.Overview(context.Background(), time.Now().UTC(), 5)

	require.NoError(t, err)
	assert.Equal(t, 3, overview.Stats.Total)
	assert.Equal(t, 1250.0, overview.Stats.TotalValue)
	assert.Equal(t, 2, overview.Stats.ByStatus[string(domain.StatusOperational)])
	assert.Equal(t, 1, overview.Stats.ByStatus[string(domain.StatusMaintenance)])
}

func TestOverview_CategoryDistribution(t *testing.T) {
	records := []domain.EquipmentRecord{
		record("a", domain.CategoryCardio, 5, 0, cost(1000)),
		record("b", domain.CategoryStrength, 2, 0, cost(300)),
		record("c", domain.CategoryCardio, 3, 0, cost(500)),
	}
	service := newOverviewService(&domain.Snapshot{Records: records})

	overview, err := service.Overview(context.Background(), time.Now().UTC(), 5)

	require.NoError(t, err)
	require.Len(t, overview.Categories, 2)
	// First-seen insertion order, not sorted.
	assert.Equal(t, domain.CategoryCardio, overview.Categories[0].Category)
	assert.Equal(t, 8, overview.Categories[0].Count)
	assert.Equal(t, 5*1000.0+3*500.0, overview.Categories[0].Value)
	assert.Equal(t, domain.CategoryStrength, overview.Categories[1].Category)
	assert.Equal(t, 2, overview.Categories[1].Count)

	// Sum of category counts equals sum of quantities.
	total := 0
	for _, c := range overview.Categories {
		total += c.Count
	}
	assert.Equal(t, 5+2+3, total)
}

func TestOverview_UtilizationRanking(t *testing.T) {
	records := []domain.EquipmentRecord{
		record("a", domain.CategoryCardio, 10, 5, nil),  // 0.5
		record("b", domain.CategoryCardio, 4, 4, nil),   // 1.0
		record("c", domain.CategoryCardio, 0, 0, nil),   // empty line, guard -> 0
		record("d", domain.CategoryCardio, 10, 0, nil),  // 0.0
		record("e", domain.CategoryStrength, 8, 4, nil), // 0.5, ties with "a"
	}
	service := newOverviewService(&domain.Snapshot{Records: records})

	overview, err := service.Overview(context.Background(), time.Now().UTC(), 3)

	require.NoError(t, err)
	require.Len(t, overview.MostUsed, 3)
	assert.Equal(t, "b", overview.MostUsed[0].ID)
	// Tie at 0.5 broken by id ascending.
	assert.Equal(t, "a", overview.MostUsed[1].ID)
	assert.Equal(t, "e", overview.MostUsed[2].ID)

	// Least used excludes the zero-quantity line entirely.
	require.Len(t, overview.LeastUsed, 3)
	assert.Equal(t, "d", overview.LeastUsed[0].ID)
	for _, e := range overview.LeastUsed {
		assert.NotEqual(t, "c", e.ID)
	}

	// The guard keeps utilization finite everywhere.
	for _, e := range append(overview.MostUsed, overview.LeastUsed...) {
		assert.GreaterOrEqual(t, e.Utilization, 0.0)
		assert.LessOrEqual(t, e.Utilization, 1.0)
	}
}

func TestOverview_MaintenanceDueOrdering(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	overdue := now.AddDate(0, 0, -5)
	dueSoon := now.AddDate(0, 0, 10)
	later := now.AddDate(0, 0, 25)
	farAway := now.AddDate(0, 0, 90)

	r1 := record("a", domain.CategoryCardio, 1, 0, nil)
	r1.NextMaintenance = &later
	r2 := record("b", domain.CategoryCardio, 1, 0, nil)
	r2.NextMaintenance = &overdue
	r3 := record("c", domain.CategoryCardio, 1, 0, nil)
	r3.NextMaintenance = &dueSoon
	r4 := record("d", domain.CategoryCardio, 1, 0, nil)
	r4.NextMaintenance = &farAway // beyond lookahead, excluded
	r5 := record("e", domain.CategoryCardio, 1, 0, nil) // no date, excluded

	service := newOverviewService(&domain.Snapshot{
		Records: []domain.EquipmentRecord{r1, r2, r3, r4, r5},
	})

	overview, err := service.Overview(context.Background(), now, 5)

	require.NoError(t, err)
	require.Len(t, overview.MaintenanceDue, 3)
	assert.Equal(t, "b", overview.MaintenanceDue[0].ID)
	assert.Equal(t, domain.DueStateOverdue, overview.MaintenanceDue[0].State)
	assert.Equal(t, "c", overview.MaintenanceDue[1].ID)
	assert.Equal(t, "a", overview.MaintenanceDue[2].ID)
}

func TestOverview_NegativeCountsRejected(t *testing.T) {
	bad := record("a", domain.CategoryCardio, 5, 0, nil)
	bad.InUse = -1
	service := newOverviewService(&domain.Snapshot{Records: []domain.EquipmentRecord{bad}})

	_, err := service.Overview(context.Background(), time.Now().UTC(), 5)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestTrends_MonthlyBuckets(t *testing.T) {
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	janLate := time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	r1 := record("a", domain.CategoryCardio, 10, 5, cost(1000))
	r1.PurchaseDate = &jan
	r2 := record("b", domain.CategoryCardio, 4, 4, cost(400))
	r2.PurchaseDate = &janLate
	r3 := record("c", domain.CategoryStrength, 2, 0, cost(900))
	r3.PurchaseDate = &mar
	r4 := record("d", domain.CategoryStrength, 2, 0, cost(999)) // no purchase date, excluded

	logCost := 75.0
	logs := []domain.MaintenanceLog{
		{ID: "l1", EquipmentID: "a", Type: domain.MaintenanceRepair, Description: "x", Cost: &logCost, PerformedAt: janLate},
		{ID: "l2", EquipmentID: "a", Type: domain.MaintenanceRepair, Description: "y", PerformedAt: mar}, // no cost
	}

	service := newOverviewService(&domain.Snapshot{
		Records: []domain.EquipmentRecord{r1, r2, r3, r4},
		Logs:    logs,
	})

	points, err := service.Trends(context.Background(), Bucketing{Kind: BucketByMonth})

	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), points[0].BucketStart)
	assert.Equal(t, 1400.0, points[0].AcquisitionsValue)
	assert.Equal(t, 75.0, points[0].MaintenanceCost)
	assert.InDelta(t, (0.5+1.0)/2, points[0].AvgUtilization, 1e-9)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), points[1].BucketStart)
	assert.Equal(t, 900.0, points[1].AcquisitionsValue)
	assert.Zero(t, points[1].MaintenanceCost)
}

func TestTrends_FixedWindowBuckets(t *testing.T) {
	anchor := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	day3 := anchor.AddDate(0, 0, 3)
	day12 := anchor.AddDate(0, 0, 12)

	r1 := record("a", domain.CategoryCardio, 5, 0, cost(100))
	r1.PurchaseDate = &day3
	r2 := record("b", domain.CategoryCardio, 5, 0, cost(200))
	r2.PurchaseDate = &day12

	service := newOverviewService(&domain.Snapshot{Records: []domain.EquipmentRecord{r1, r2}})

	points, err := service.Trends(context.Background(), Bucketing{
		Kind:       BucketByWindow,
		WindowDays: 7,
		Anchor:     anchor,
	})

	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, anchor, points[0].BucketStart)
	assert.Equal(t, 100.0, points[0].AcquisitionsValue)
	assert.Equal(t, anchor.AddDate(0, 0, 7), points[1].BucketStart)
	assert.Equal(t, 200.0, points[1].AcquisitionsValue)
}

func TestTrends_RejectsBadBucketing(t *testing.T) {
	service := newOverviewService(&domain.Snapshot{})

	_, err := service.Trends(context.Background(), Bucketing{Kind: "quarter"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Trends(context.Background(), Bucketing{Kind: BucketByWindow, WindowDays: 0})
	assert.ErrorIs(t, err, ErrValidation)
}
