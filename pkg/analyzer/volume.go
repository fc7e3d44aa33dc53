package analyzer

import (
	"github.com/ebsight/ebsight/internal/models"
	"github.com/ebsight/ebsight/pkg/pricing"
)

const bytesPerGiB = float64(1 << 30)

// BuildVolumeSummary assembles the per-volume analysis record from the
// volume, its snapshot history, its performance metrics, and the snapshot
// GB-month rate. Pure and deterministic; a zero allocated size clamps the
// percentage figures to 0 instead of failing.
func BuildVolumeSummary(volume models.VolumeInfo, snapshots []models.SnapshotInfo, metrics models.VolumeMetrics, ratePerGBMonth float64) models.VolumeSummary {
	usage := CalculateSnapshotUsage(snapshots)

	volumeSizeGiB := float64(volume.SizeGiB)
	totalSnapshotGiB := float64(usage.TotalBytes) / bytesPerGiB
	dailyChangeGiB := usage.DailyChangeBytes / bytesPerGiB

	var usagePercent, dailyChangePercent float64
	if volumeSizeGiB > 0 {
		usagePercent = totalSnapshotGiB / volumeSizeGiB * 100
		dailyChangePercent = dailyChangeGiB / volumeSizeGiB * 100
	}

	return models.VolumeSummary{
		VolumeID:             volume.VolumeID,
		DeviceName:           volume.DeviceName,
		VolumeSizeGiB:        volumeSizeGiB,
		TotalSnapshotSizeGiB: totalSnapshotGiB,
		SnapshotCount:        len(snapshots),
		UsagePercent:         usagePercent,
		DailyChangeGiB:       dailyChangeGiB,
		DailyChangePercent:   dailyChangePercent,
		TotalChangedGiB:      float64(usage.TotalChangedBytes) / bytesPerGiB,
		Costs:                pricing.CalculateSnapshotCosts(totalSnapshotGiB, ratePerGBMonth),
		Metrics:              metrics,
	}
}
