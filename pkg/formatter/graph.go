package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/ebsight/ebsight/internal/models"
)

const graphWidth = 50

// renderBar builds one horizontal bar scaled against maxValue
func renderBar(value, maxValue float64, width int) string {
	if maxValue <= 0 {
		return strings.Repeat("░", width)
	}

	filled := int(value / maxValue * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// PrintVolumeGraphs renders the size comparison and IOPS breakdown bars
// for one volume summary
func PrintVolumeGraphs(w io.Writer, summary models.VolumeSummary) {
	fmt.Fprintf(w, "\nSize Comparison for %s\n", summary.VolumeID)
	fmt.Fprintln(w, strings.Repeat("=", graphWidth+12))

	maxSize := summary.VolumeSizeGiB
	if summary.TotalSnapshotSizeGiB > maxSize {
		maxSize = summary.TotalSnapshotSizeGiB
	}

	fmt.Fprintf(w, "Volume Size    %s %.2f GiB\n", renderBar(summary.VolumeSizeGiB, maxSize, graphWidth), summary.VolumeSizeGiB)
	fmt.Fprintf(w, "Snapshot Size  %s %.2f GiB\n", renderBar(summary.TotalSnapshotSizeGiB, maxSize, graphWidth), summary.TotalSnapshotSizeGiB)

	m := summary.Metrics
	if m.ReadOpsP99 <= 0 && m.WriteOpsP99 <= 0 {
		return
	}

	maxIOPS := maxFloat(m.ReadOpsP99, m.WriteOpsP99, m.ReadOpsPeak, m.WriteOpsPeak)
	if maxIOPS <= 0 {
		return
	}

	fmt.Fprintln(w, "\nIOPS Breakdown")
	fmt.Fprintln(w, strings.Repeat("=", graphWidth+12))

	fmt.Fprintf(w, "P99 Read     %s %.1f\n", renderBar(m.ReadOpsP99, maxIOPS, graphWidth), m.ReadOpsP99)
	fmt.Fprintf(w, "P99 Write    %s %.1f\n", renderBar(m.WriteOpsP99, maxIOPS, graphWidth), m.WriteOpsP99)
	fmt.Fprintf(w, "Peak Read    %s %.1f\n", renderBar(m.ReadOpsPeak, maxIOPS, graphWidth), m.ReadOpsPeak)
	fmt.Fprintf(w, "Peak Write   %s %.1f\n", renderBar(m.WriteOpsPeak, maxIOPS, graphWidth), m.WriteOpsPeak)
}

func maxFloat(values ...float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
