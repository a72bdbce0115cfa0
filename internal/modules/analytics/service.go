package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gymops/internal/domain"
)

var ErrValidation = errors.New("validation error")

// SnapshotSource hands out the read view the aggregations run over.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

// Service derives fleet-wide statistics from snapshots. Every aggregation
// is a pure function of its input: no caching, no mutation, safe to call
// concurrently on stale snapshots.
type Service struct {
	source   SnapshotSource
	schedule domain.Schedule
}

func NewService(source SnapshotSource, schedule domain.Schedule) *Service {
	return &Service{source: source, schedule: schedule}
}

func (s *Service) Overview(ctx context.Context, now time.Time, topN int) (*Overview, error) {
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRecords(snap.Records); err != nil {
		return nil, err
	}

	return &Overview{
		Stats:          fleetStats(snap.Records),
		Categories:     categoryDistribution(snap.Records),
		MostUsed:       mostUsed(snap.Records, topN),
		LeastUsed:      leastUsed(snap.Records, topN),
		MaintenanceDue: maintenanceDue(snap.Records, now, s.schedule),
	}, nil
}

func (s *Service) Trends(ctx context.Context, bucketing Bucketing) ([]TrendPoint, error) {
	switch bucketing.Kind {
	case BucketByMonth:
	case BucketByWindow:
		if bucketing.WindowDays < 1 {
			return nil, fmt.Errorf("%w: window_days must be at least 1", ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown bucket kind %q", ErrValidation, bucketing.Kind)
	}

	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRecords(snap.Records); err != nil {
		return nil, err
	}
	return trendSeries(snap.Records, snap.Logs, bucketing), nil
}

// validateRecords rejects input no aggregation can summarize safely.
// Negative counts mean an upstream invariant broke; summing them would
// quietly produce garbage.
func validateRecords(records []domain.EquipmentRecord) error {
	for _, r := range records {
		if r.Quantity < 0 || r.InUse < 0 {
			return fmt.Errorf("%w: record %s has negative counts", ErrValidation, r.ID)
		}
	}
	return nil
}

func fleetStats(records []domain.EquipmentRecord) FleetStats {
	stats := FleetStats{
		Total:    len(records),
		ByStatus: make(map[string]int),
	}
	for _, r := range records {
		stats.ByStatus[string(r.Status)]++
		if r.Cost != nil {
			stats.TotalValue += *r.Cost
		}
	}
	return stats
}

// categoryDistribution groups by category in first-seen order. Callers
// wanting a sorted breakdown sort it themselves.
func categoryDistribution(records []domain.EquipmentRecord) []CategoryStat {
	index := make(map[string]int)
	out := make([]CategoryStat, 0)
	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(out)
			index[r.Category] = i
			out = append(out, CategoryStat{Category: r.Category})
		}
		out[i].Count += r.Quantity
		if r.Cost != nil {
			out[i].Value += *r.Cost * float64(r.Quantity)
		}
	}
	return out
}

func mostUsed(records []domain.EquipmentRecord, n int) []UtilizationEntry {
	entries := utilizationEntries(records, false)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Utilization != entries[j].Utilization {
			return entries[i].Utilization > entries[j].Utilization
		}
		return entries[i].ID < entries[j].ID
	})
	return topN(entries, n)
}

// leastUsed only considers lines that own at least one unit; an empty line
// is not meaningfully "unused".
func leastUsed(records []domain.EquipmentRecord, n int) []UtilizationEntry {
	entries := utilizationEntries(records, true)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Utilization != entries[j].Utilization {
			return entries[i].Utilization < entries[j].Utilization
		}
		return entries[i].ID < entries[j].ID
	})
	return topN(entries, n)
}

func utilizationEntries(records []domain.EquipmentRecord, skipEmpty bool) []UtilizationEntry {
	out := make([]UtilizationEntry, 0, len(records))
	for i := range records {
		r := &records[i]
		if skipEmpty && r.Quantity == 0 {
			continue
		}
		out = append(out, UtilizationEntry{
			ID:          r.ID,
			Name:        r.Name,
			Quantity:    r.Quantity,
			InUse:       r.InUse,
			Utilization: r.Utilization(),
		})
	}
	return out
}

func topN(entries []UtilizationEntry, n int) []UtilizationEntry {
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// maintenanceDue lists every record needing attention, most urgent first:
// next_maintenance ascending, records without a date last.
func maintenanceDue(records []domain.EquipmentRecord, now time.Time, schedule domain.Schedule) []MaintenanceDueEntry {
	out := make([]MaintenanceDueEntry, 0)
	for i := range records {
		r := &records[i]
		state := schedule.Dueness(r.NextMaintenance, now)
		if state == domain.DueStateNotDue {
			continue
		}
		out = append(out, MaintenanceDueEntry{
			ID:              r.ID,
			Name:            r.Name,
			NextMaintenance: r.NextMaintenance,
			State:           state,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].NextMaintenance, out[j].NextMaintenance
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.Before(*b)
		default:
			return out[i].ID < out[j].ID
		}
	})
	return out
}

func trendSeries(records []domain.EquipmentRecord, logs []domain.MaintenanceLog, bucketing Bucketing) []TrendPoint {
	type bucketAgg struct {
		value       float64
		utilSum     float64
		utilN       int
		maintenance float64
	}
	buckets := make(map[time.Time]*bucketAgg)
	get := func(t time.Time) *bucketAgg {
		key := bucketStart(t, bucketing)
		agg, ok := buckets[key]
		if !ok {
			agg = &bucketAgg{}
			buckets[key] = agg
		}
		return agg
	}

	for i := range records {
		r := &records[i]
		if r.PurchaseDate == nil {
			continue
		}
		agg := get(*r.PurchaseDate)
		if r.Cost != nil {
			agg.value += *r.Cost
		}
		agg.utilSum += r.Utilization()
		agg.utilN++
	}
	for i := range logs {
		l := &logs[i]
		if l.Cost == nil {
			continue
		}
		get(l.PerformedAt).maintenance += *l.Cost
	}

	out := make([]TrendPoint, 0, len(buckets))
	for start, agg := range buckets {
		p := TrendPoint{
			BucketStart:       start,
			AcquisitionsValue: agg.value,
			MaintenanceCost:   agg.maintenance,
		}
		if agg.utilN > 0 {
			p.AvgUtilization = agg.utilSum / float64(agg.utilN)
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BucketStart.Before(out[j].BucketStart) })
	return out
}

func bucketStart(t time.Time, bucketing Bucketing) time.Time {
	t = t.UTC()
	if bucketing.Kind == BucketByMonth {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	window := time.Duration(bucketing.WindowDays) * 24 * time.Hour
	anchor := bucketing.Anchor.UTC()
	offset := t.Sub(anchor)
	if offset < 0 {
		// Round toward earlier windows so pre-anchor times land in the
		// window that contains them.
		offset -= window - time.Nanosecond
	}
	return anchor.Add((offset / window) * window)
}
