package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ebsight/ebsight/internal/models"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		maxValue   float64
		width      int
		wantFilled int
	}{
		{name: "full bar", value: 10, maxValue: 10, width: 20, wantFilled: 20},
		{name: "half bar", value: 5, maxValue: 10, width: 20, wantFilled: 10},
		{name: "zero value", value: 0, maxValue: 10, width: 20, wantFilled: 0},
		{name: "zero max renders empty", value: 5, maxValue: 0, width: 20, wantFilled: 0},
		{name: "value above max clamps", value: 15, maxValue: 10, width: 20, wantFilled: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderBar(tt.value, tt.maxValue, tt.width)

			filled := strings.Count(bar, "█")
			empty := strings.Count(bar, "░")

			if filled != tt.wantFilled {
				t.Errorf("filled = %d, want %d", filled, tt.wantFilled)
			}
			if filled+empty != tt.width {
				t.Errorf("bar length = %d runes, want %d", filled+empty, tt.width)
			}
		})
	}
}

func TestPrintVolumeGraphs(t *testing.T) {
	var buf bytes.Buffer
	PrintVolumeGraphs(&buf, testSummary())

	out := buf.String()
	if !strings.Contains(out, "Size Comparison for vol-0123456789abcdef0") {
		t.Errorf("missing size comparison header:\n%s", out)
	}
	if !strings.Contains(out, "IOPS Breakdown") {
		t.Errorf("missing IOPS section for a volume with activity:\n%s", out)
	}
}

func TestPrintVolumeGraphs_NoActivitySkipsIOPS(t *testing.T) {
	summary := testSummary()
	summary.Metrics = models.VolumeMetrics{}

	var buf bytes.Buffer
	PrintVolumeGraphs(&buf, summary)

	if strings.Contains(buf.String(), "IOPS Breakdown") {
		t.Errorf("IOPS section rendered for idle volume:\n%s", buf.String())
	}
}
