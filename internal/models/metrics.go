package models

// VolumeMetrics holds CloudWatch performance statistics for one volume
// over the trailing analysis window. IOPS figures are operations per
// second, throughput figures are MiB per second.
type VolumeMetrics struct {
	ReadOpsP99          float64
	WriteOpsP99         float64
	ReadOpsPeak         float64
	WriteOpsPeak        float64
	ReadThroughputP99   float64
	WriteThroughputP99  float64
	ReadThroughputPeak  float64
	WriteThroughputPeak float64
	QueueLengthP99      float64
}
