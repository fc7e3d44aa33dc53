package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwTypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/ebsight/ebsight/internal/models"
)

const (
	// metricWindowDays is the trailing window for volume performance statistics
	metricWindowDays = 7

	// metricPeriodSeconds is the CloudWatch aggregation period
	metricPeriodSeconds = 600

	bytesPerMiB = 1024 * 1024
)

// MetricsClient struct for CloudWatch client
type MetricsClient struct {
	client *cloudwatch.Client
	region string
}

// NewMetricsClient creates a new MetricsClient using the given region and profile
func NewMetricsClient(ctx context.Context, region, profile string) (*MetricsClient, error) {
	cfg, err := LoadConfig(ctx, region, profile)
	if err != nil {
		return nil, err
	}

	return &MetricsClient{
		client: cloudwatch.NewFromConfig(cfg),
		region: region,
	}, nil
}

// volumeMetricSpec describes one AWS/EBS metric query and where its
// scaled p99/p99.9 results land on the VolumeMetrics record
type volumeMetricSpec struct {
	metricName string
	// scale converts the raw statistic into the reported unit
	scale    float64
	withPeak bool
	assign   func(m *models.VolumeMetrics, p99, peak float64)
}

var volumeMetricSpecs = []volumeMetricSpec{
	{
		metricName: "VolumeReadOps",
		scale:      1.0 / metricPeriodSeconds, // ops per period -> ops/s
		withPeak:   true,
		assign: func(m *models.VolumeMetrics, p99, peak float64) {
			m.ReadOpsP99 = p99
			m.ReadOpsPeak = peak
		},
	},
	{
		metricName: "VolumeWriteOps",
		scale:      1.0 / metricPeriodSeconds,
		withPeak:   true,
		assign: func(m *models.VolumeMetrics, p99, peak float64) {
			m.WriteOpsP99 = p99
			m.WriteOpsPeak = peak
		},
	},
	{
		metricName: "VolumeReadBytes",
		scale:      1.0 / (metricPeriodSeconds * bytesPerMiB), // bytes per period -> MiB/s
		withPeak:   true,
		assign: func(m *models.VolumeMetrics, p99, peak float64) {
			m.ReadThroughputP99 = p99
			m.ReadThroughputPeak = peak
		},
	},
	{
		metricName: "VolumeWriteBytes",
		scale:      1.0 / (metricPeriodSeconds * bytesPerMiB),
		withPeak:   true,
		assign: func(m *models.VolumeMetrics, p99, peak float64) {
			m.WriteThroughputP99 = p99
			m.WriteThroughputPeak = peak
		},
	},
	{
		metricName: "VolumeQueueLength",
		scale:      1.0,
		withPeak:   false,
		assign: func(m *models.VolumeMetrics, p99, _ float64) {
			m.QueueLengthP99 = p99
		},
	},
}

// GetVolumeMetrics returns p99 and peak performance statistics for a
// volume over the trailing 7-day window. Metrics with no datapoints are
// reported as zero rather than as an error.
func (c *MetricsClient) GetVolumeMetrics(ctx context.Context, volumeID string) (models.VolumeMetrics, error) {
	endTime := time.Now()
	startTime := endTime.AddDate(0, 0, -metricWindowDays)

	var metrics models.VolumeMetrics

	for _, spec := range volumeMetricSpecs {
		stats := []string{"p99"}
		if spec.withPeak {
			stats = append(stats, "p99.9")
		}

		input := &cloudwatch.GetMetricStatisticsInput{
			Namespace:  aws.String("AWS/EBS"),
			MetricName: aws.String(spec.metricName),
			Dimensions: []cwTypes.Dimension{
				{
					Name:  aws.String("VolumeId"),
					Value: aws.String(volumeID),
				},
			},
			StartTime:          aws.Time(startTime),
			EndTime:            aws.Time(endTime),
			Period:             aws.Int32(metricPeriodSeconds),
			ExtendedStatistics: stats,
		}

		result, err := c.client.GetMetricStatistics(ctx, input)
		if err != nil {
			return metrics, fmt.Errorf("error getting %s for volume %s: %w", spec.metricName, volumeID, err)
		}

		p99 := maxExtendedStatistic(result.Datapoints, "p99") * spec.scale
		peak := maxExtendedStatistic(result.Datapoints, "p99.9") * spec.scale
		spec.assign(&metrics, p99, peak)
	}

	return metrics, nil
}

// maxExtendedStatistic returns the largest value of the named extended
// statistic across the returned datapoints, or 0 when no data exists
func maxExtendedStatistic(datapoints []cwTypes.Datapoint, stat string) float64 {
	max := 0.0
	for _, point := range datapoints {
		if value, ok := point.ExtendedStatistics[stat]; ok && value > max {
			max = value
		}
	}
	return max
}
