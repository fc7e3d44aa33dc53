package analyzer

import (
	"math"
	"testing"
	"time"

	"github.com/ebsight/ebsight/internal/models"
)

func TestBuildVolumeSummary(t *testing.T) {
	base := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		volume    models.VolumeInfo
		snapshots []models.SnapshotInfo
		rate      float64
		check     func(t *testing.T, s models.VolumeSummary)
	}{
		{
			name:   "zero allocated size clamps percentages",
			volume: models.VolumeInfo{VolumeID: "vol-zero", SizeGiB: 0},
			snapshots: makeSnapshots("vol-zero", base, 24*time.Hour,
				[]int64{10 * gib, 10 * gib}),
			rate: 0.05,
			check: func(t *testing.T, s models.VolumeSummary) {
				if s.UsagePercent != 0 {
					t.Errorf("UsagePercent = %.2f, want 0", s.UsagePercent)
				}
				if s.DailyChangePercent != 0 {
					t.Errorf("DailyChangePercent = %.2f, want 0", s.DailyChangePercent)
				}
				if s.TotalSnapshotSizeGiB != 20 {
					t.Errorf("TotalSnapshotSizeGiB = %.2f, want 20", s.TotalSnapshotSizeGiB)
				}
			},
		},
		{
			name:      "no snapshots",
			volume:    models.VolumeInfo{VolumeID: "vol-empty", SizeGiB: 100},
			snapshots: nil,
			rate:      0.05,
			check: func(t *testing.T, s models.VolumeSummary) {
				if s.SnapshotCount != 0 {
					t.Errorf("SnapshotCount = %d, want 0", s.SnapshotCount)
				}
				if s.UsagePercent != 0 || s.DailyChangeGiB != 0 {
					t.Errorf("usage = %.2f, daily change = %.2f, want zeros", s.UsagePercent, s.DailyChangeGiB)
				}
				if s.Costs.Monthly != 0 {
					t.Errorf("Monthly cost = %.2f, want 0", s.Costs.Monthly)
				}
			},
		},
		{
			name:   "150 GiB volume with weekly snapshot history",
			volume: models.VolumeInfo{VolumeID: "vol-week", DeviceName: "/dev/sdf", SizeGiB: 150},
			snapshots: makeSnapshots("vol-week", base, 24*time.Hour,
				[]int64{12240656794, 12240656794, 12240656794, 12240656794, 12240656794, 12240656794, 12240656794}),
			rate: 0.05,
			check: func(t *testing.T, s models.VolumeSummary) {
				if s.SnapshotCount != 7 {
					t.Errorf("SnapshotCount = %d, want 7", s.SnapshotCount)
				}
				if math.Abs(s.UsagePercent-53.2) > 0.05 {
					t.Errorf("UsagePercent = %.2f, want ~53.2", s.UsagePercent)
				}
				if math.Abs(s.DailyChangeGiB-13.3) > 0.05 {
					t.Errorf("DailyChangeGiB = %.2f, want ~13.3", s.DailyChangeGiB)
				}
				if math.Abs(s.Costs.Monthly-s.TotalSnapshotSizeGiB*0.05) > 1e-9 {
					t.Errorf("Monthly cost = %.4f, want size*rate", s.Costs.Monthly)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := BuildVolumeSummary(tt.volume, tt.snapshots, models.VolumeMetrics{}, tt.rate)
			tt.check(t, summary)
		})
	}
}

func TestBuildVolumeSummary_Deterministic(t *testing.T) {
	base := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	volume := models.VolumeInfo{VolumeID: "vol-det", SizeGiB: 80}
	snapshots := makeSnapshots("vol-det", base, 24*time.Hour, []int64{gib, 2 * gib, 3 * gib})
	metrics := models.VolumeMetrics{ReadOpsP99: 120, WriteOpsP99: 45}

	first := BuildVolumeSummary(volume, snapshots, metrics, 0.05)
	second := BuildVolumeSummary(volume, snapshots, metrics, 0.05)

	if first != second {
		t.Errorf("summaries differ across identical inputs:\n%+v\n%+v", first, second)
	}
}
