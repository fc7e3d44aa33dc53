package analyzer

import (
	"github.com/ebsight/ebsight/internal/models"
	"github.com/ebsight/ebsight/pkg/utils"
)

// SnapshotUsage summarizes the data footprint of one volume's snapshot
// history. Totals are the sum of each snapshot's full size: the upstream
// metric already counts the cumulative data a snapshot references, and
// the documented behavior of this tool is to total those figures rather
// than compute deltas between consecutive readings.
type SnapshotUsage struct {
	TotalBytes        int64
	TotalChangedBytes int64
	DailyChangeBytes  float64
	SpanDays          int
}

// CalculateSnapshotUsage reduces a chronological snapshot sequence to its
// usage figures. Sequences of zero or one snapshot report a zero daily
// change rate.
func CalculateSnapshotUsage(snapshots []models.SnapshotInfo) SnapshotUsage {
	var usage SnapshotUsage

	for _, snapshot := range snapshots {
		usage.TotalBytes += snapshot.FullSizeBytes
	}
	usage.TotalChangedBytes = usage.TotalBytes

	if len(snapshots) < 2 {
		return usage
	}

	first := snapshots[0].StartTime
	last := snapshots[len(snapshots)-1].StartTime
	usage.SpanDays = utils.DaysBetween(first, last)
	usage.DailyChangeBytes = float64(usage.TotalChangedBytes) / float64(usage.SpanDays)

	return usage
}
