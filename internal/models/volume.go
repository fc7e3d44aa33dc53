package models

import "time"

// VolumeInfo represents an EBS volume attached to the analyzed instance
type VolumeInfo struct {
	VolumeID     string
	Name         string
	DeviceName   string
	SizeGiB      int32
	VolumeType   string
	State        string
	Region       string
	CreationTime time.Time
}

// SnapshotInfo represents one EBS snapshot of a volume.
// FullSizeBytes is the cumulative data footprint referenced by the
// snapshot at capture time, not the incremental delta to its predecessor.
type SnapshotInfo struct {
	SnapshotID    string
	VolumeID      string
	FullSizeBytes int64
	VolumeSizeGiB int32
	StartTime     time.Time
	Description   string
}
