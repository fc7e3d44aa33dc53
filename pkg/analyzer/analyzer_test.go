package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/inconshreveable/log15"

	"github.com/ebsight/ebsight/internal/models"
)

type fakeLister struct {
	volumes     []models.VolumeInfo
	volumesErr  error
	snapshots   map[string][]models.SnapshotInfo
	snapshotErr map[string]error
}

func (f *fakeLister) GetAttachedVolumes(_ context.Context, _ string) ([]models.VolumeInfo, error) {
	return f.volumes, f.volumesErr
}

func (f *fakeLister) GetSnapshots(_ context.Context, volumeID string) ([]models.SnapshotInfo, error) {
	if err, ok := f.snapshotErr[volumeID]; ok {
		return nil, err
	}
	return f.snapshots[volumeID], nil
}

type fakeMetrics struct {
	metrics map[string]models.VolumeMetrics
	errs    map[string]error
}

func (f *fakeMetrics) GetVolumeMetrics(_ context.Context, volumeID string) (models.VolumeMetrics, error) {
	if err, ok := f.errs[volumeID]; ok {
		return models.VolumeMetrics{}, err
	}
	return f.metrics[volumeID], nil
}

func quietLogger() log15.Logger {
	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())
	return logger
}

func TestAnalyzeInstance_ListFailureIsFatal(t *testing.T) {
	lister := &fakeLister{volumesErr: errors.New("access denied")}
	a := New(lister, &fakeMetrics{}, 0.05, quietLogger())

	_, err := a.AnalyzeInstance(context.Background(), "i-0abc")
	if err == nil {
		t.Fatal("expected error when volume listing fails")
	}
}

func TestAnalyzeInstance_PerVolumeErrorContinues(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	lister := &fakeLister{
		volumes: []models.VolumeInfo{
			{VolumeID: "vol-ok", SizeGiB: 100},
			{VolumeID: "vol-bad", SizeGiB: 50},
		},
		snapshots: map[string][]models.SnapshotInfo{
			"vol-ok": makeSnapshots("vol-ok", base, 24*time.Hour, []int64{10 * gib, 10 * gib}),
		},
		snapshotErr: map[string]error{
			"vol-bad": errors.New("snapshot not found"),
		},
	}
	metrics := &fakeMetrics{
		metrics: map[string]models.VolumeMetrics{
			"vol-ok": {ReadOpsP99: 100},
		},
	}

	a := New(lister, metrics, 0.05, quietLogger())

	report, err := a.AnalyzeInstance(context.Background(), "i-0abc")
	if err != nil {
		t.Fatalf("AnalyzeInstance() error = %v", err)
	}

	if len(report.Summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(report.Summaries))
	}
	if report.Summaries[0].VolumeID != "vol-ok" {
		t.Errorf("summary volume = %s, want vol-ok", report.Summaries[0].VolumeID)
	}
	if len(report.Errors) != 1 || report.Errors[0].VolumeID != "vol-bad" {
		t.Fatalf("errors = %+v, want one entry for vol-bad", report.Errors)
	}
}

func TestAnalyzeInstance_MetricFailureDegradesToZeros(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	lister := &fakeLister{
		volumes: []models.VolumeInfo{{VolumeID: "vol-1", SizeGiB: 100}},
		snapshots: map[string][]models.SnapshotInfo{
			"vol-1": makeSnapshots("vol-1", base, 24*time.Hour, []int64{5 * gib}),
		},
	}
	metrics := &fakeMetrics{
		errs: map[string]error{"vol-1": errors.New("throttled")},
	}

	a := New(lister, metrics, 0.05, quietLogger())

	report, err := a.AnalyzeInstance(context.Background(), "i-0abc")
	if err != nil {
		t.Fatalf("AnalyzeInstance() error = %v", err)
	}

	if len(report.Summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(report.Summaries))
	}
	if report.Summaries[0].Metrics != (models.VolumeMetrics{}) {
		t.Errorf("metrics = %+v, want zeros", report.Summaries[0].Metrics)
	}
	if len(report.Errors) != 0 {
		t.Errorf("errors = %+v, metric failure should not be recorded as fatal", report.Errors)
	}
}
