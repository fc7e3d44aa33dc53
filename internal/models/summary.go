package models

// SnapshotCosts holds the estimated backup cost schedule for a volume
type SnapshotCosts struct {
	Daily   float64
	Weekly  float64
	Monthly float64
	Annual  float64
}

// VolumeSummary is the per-volume analysis result. It is assembled once
// per run and never persisted.
type VolumeSummary struct {
	VolumeID             string
	DeviceName           string
	VolumeSizeGiB        float64
	TotalSnapshotSizeGiB float64
	SnapshotCount        int
	UsagePercent         float64
	DailyChangeGiB       float64
	DailyChangePercent   float64
	TotalChangedGiB      float64
	Costs                SnapshotCosts
	Metrics              VolumeMetrics
}

// FleetTotals aggregates all VolumeSummary records for an instance
type FleetTotals struct {
	VolumeCount         int
	TotalStorageGiB     float64
	TotalDailyChangeGiB float64
	ReadIOPSP99         float64
	WriteIOPSP99        float64
	ReadIOPSPeak        float64
	WriteIOPSPeak       float64
	ReadMBpsP99         float64
	WriteMBpsP99        float64
	ReadMBpsPeak        float64
	WriteMBpsPeak       float64
}

// SizingRecommendation is the suggested storage appliance capacity and
// performance derived from fleet totals.
type SizingRecommendation struct {
	TotalStorageGB          float64
	RecommendedSSDSizeGB    float64
	SSDPercentOfTotal       float64
	SustainedIOPS           float64
	PeakIOPS                float64
	SustainedThroughputMBps float64
	PeakThroughputMBps      float64
}
