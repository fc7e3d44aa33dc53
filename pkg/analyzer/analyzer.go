package analyzer

import (
	"context"
	"fmt"

	"github.com/inconshreveable/log15"

	"github.com/ebsight/ebsight/internal/models"
)

// ResourceLister enumerates the cloud resources under analysis. The EC2
// client satisfies this; tests inject fixtures.
type ResourceLister interface {
	GetAttachedVolumes(ctx context.Context, instanceID string) ([]models.VolumeInfo, error)
	GetSnapshots(ctx context.Context, volumeID string) ([]models.SnapshotInfo, error)
}

// MetricFetcher returns performance statistics for a volume over the
// trailing analysis window
type MetricFetcher interface {
	GetVolumeMetrics(ctx context.Context, volumeID string) (models.VolumeMetrics, error)
}

// VolumeError records a per-volume fetch failure. The run continues past
// these; they are reported alongside the successful summaries.
type VolumeError struct {
	VolumeID string
	Err      error
}

func (e VolumeError) Error() string {
	return fmt.Sprintf("volume %s: %v", e.VolumeID, e.Err)
}

// Report is the result of analyzing one instance's volumes
type Report struct {
	Volumes   []models.VolumeInfo
	Summaries []models.VolumeSummary
	Errors    []VolumeError
}

// Analyzer runs the per-volume analysis pipeline against injected
// collaborators, keeping all cloud-call side effects at the boundary
type Analyzer struct {
	lister         ResourceLister
	metrics        MetricFetcher
	ratePerGBMonth float64
	log            log15.Logger
}

// New creates an Analyzer. The snapshot GB-month rate is resolved by the
// caller so the pipeline itself stays free of pricing lookups.
func New(lister ResourceLister, metrics MetricFetcher, ratePerGBMonth float64, logger log15.Logger) *Analyzer {
	if logger == nil {
		logger = log15.New("module", "analyzer")
	}

	return &Analyzer{
		lister:         lister,
		metrics:        metrics,
		ratePerGBMonth: ratePerGBMonth,
		log:            logger,
	}
}

// AnalyzeInstance analyzes every volume attached to an instance. A
// failure to list the volumes is fatal; failures on individual volumes
// are recorded on the report and the remaining volumes still complete.
func (a *Analyzer) AnalyzeInstance(ctx context.Context, instanceID string) (Report, error) {
	var report Report

	volumes, err := a.lister.GetAttachedVolumes(ctx, instanceID)
	if err != nil {
		return report, fmt.Errorf("error listing volumes for instance %s: %w", instanceID, err)
	}
	report.Volumes = volumes

	for _, volume := range volumes {
		summary, err := a.analyzeVolume(ctx, volume)
		if err != nil {
			a.log.Warn("skipping volume", "volume", volume.VolumeID, "err", err)
			report.Errors = append(report.Errors, VolumeError{VolumeID: volume.VolumeID, Err: err})
			continue
		}

		report.Summaries = append(report.Summaries, summary)
	}

	return report, nil
}

// analyzeVolume fetches one volume's snapshot history and metrics and
// reduces them to a summary record
func (a *Analyzer) analyzeVolume(ctx context.Context, volume models.VolumeInfo) (models.VolumeSummary, error) {
	snapshots, err := a.lister.GetSnapshots(ctx, volume.VolumeID)
	if err != nil {
		return models.VolumeSummary{}, fmt.Errorf("fetching snapshots: %w", err)
	}

	a.log.Debug("snapshot history fetched", "volume", volume.VolumeID, "snapshots", len(snapshots))

	metrics, err := a.metrics.GetVolumeMetrics(ctx, volume.VolumeID)
	if err != nil {
		// Metric failures degrade to zeros rather than dropping the volume
		a.log.Warn("could not fetch metrics", "volume", volume.VolumeID, "err", err)
		metrics = models.VolumeMetrics{}
	}

	return BuildVolumeSummary(volume, snapshots, metrics, a.ratePerGBMonth), nil
}
