package analyzer

import (
	"math"

	"github.com/ebsight/ebsight/internal/models"
)

// Appliance sizing policy: the SSD tier is sized as a fixed fraction of
// total fleet storage, rounded up to the next supported capacity step.
const (
	ssdSizeFraction = 0.1135
	ssdIncrementGB  = 1.0
)

// AccumulateFleet sums the per-volume summaries into fleet-wide totals
func AccumulateFleet(summaries []models.VolumeSummary) models.FleetTotals {
	var totals models.FleetTotals

	for _, summary := range summaries {
		totals.VolumeCount++
		totals.TotalStorageGiB += summary.VolumeSizeGiB
		totals.TotalDailyChangeGiB += summary.DailyChangeGiB
		totals.ReadIOPSP99 += summary.Metrics.ReadOpsP99
		totals.WriteIOPSP99 += summary.Metrics.WriteOpsP99
		totals.ReadIOPSPeak += summary.Metrics.ReadOpsPeak
		totals.WriteIOPSPeak += summary.Metrics.WriteOpsPeak
		totals.ReadMBpsP99 += summary.Metrics.ReadThroughputP99
		totals.WriteMBpsP99 += summary.Metrics.WriteThroughputP99
		totals.ReadMBpsPeak += summary.Metrics.ReadThroughputPeak
		totals.WriteMBpsPeak += summary.Metrics.WriteThroughputPeak
	}

	return totals
}

// RecommendSizing derives the storage appliance suggestion from fleet
// totals. IOPS and throughput requirements pass through as the summed
// p99 (sustained) and p99.9 (peak) figures.
func RecommendSizing(totals models.FleetTotals) models.SizingRecommendation {
	ssdSizeGB := roundUpToIncrement(totals.TotalStorageGiB*ssdSizeFraction, ssdIncrementGB)

	var ssdPercent float64
	if totals.TotalStorageGiB > 0 {
		ssdPercent = ssdSizeGB / totals.TotalStorageGiB * 100
	}

	return models.SizingRecommendation{
		TotalStorageGB:          totals.TotalStorageGiB,
		RecommendedSSDSizeGB:    ssdSizeGB,
		SSDPercentOfTotal:       ssdPercent,
		SustainedIOPS:           totals.ReadIOPSP99 + totals.WriteIOPSP99,
		PeakIOPS:                totals.ReadIOPSPeak + totals.WriteIOPSPeak,
		SustainedThroughputMBps: totals.ReadMBpsP99 + totals.WriteMBpsP99,
		PeakThroughputMBps:      totals.ReadMBpsPeak + totals.WriteMBpsPeak,
	}
}

// roundUpToIncrement rounds value up to the next multiple of step
func roundUpToIncrement(value, step float64) float64 {
	if value <= 0 {
		return 0
	}
	return math.Ceil(value/step) * step
}
