package formatter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ebsight/ebsight/internal/models"
)

// PrintFleetTable prints the consolidated per-volume table with a totals
// row, kubectl style
func PrintFleetTable(w io.Writer, summaries []models.VolumeSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No volume summaries to display.")
		return
	}

	fmt.Fprintln(w, "\n## Volume Analysis Summary")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "VOLUME ID\tMOUNT\tSIZE (GiB)\tUSED %\tP99 IOPS (R/W)\tPEAK IOPS (R/W)\tP99 MiB/s (R/W)\tPEAK MiB/s (R/W)\tQUEUE")

	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%.0f/%.0f\t%.0f/%.0f\t%.1f/%.1f\t%.1f/%.1f\t%.2f\n",
			s.VolumeID,
			s.DeviceName,
			s.VolumeSizeGiB,
			s.UsagePercent,
			s.Metrics.ReadOpsP99, s.Metrics.WriteOpsP99,
			s.Metrics.ReadOpsPeak, s.Metrics.WriteOpsPeak,
			s.Metrics.ReadThroughputP99, s.Metrics.WriteThroughputP99,
			s.Metrics.ReadThroughputPeak, s.Metrics.WriteThroughputPeak,
			s.Metrics.QueueLengthP99,
		)
	}

	printFleetTotals(tw, summaries)

	tw.Flush()
}

// printFleetTotals prints the summary row at the bottom of the table
func printFleetTotals(tw *tabwriter.Writer, summaries []models.VolumeSummary) {
	totals := models.FleetTotals{}
	for _, s := range summaries {
		totals.TotalStorageGiB += s.VolumeSizeGiB
		totals.ReadIOPSP99 += s.Metrics.ReadOpsP99
		totals.WriteIOPSP99 += s.Metrics.WriteOpsP99
		totals.ReadIOPSPeak += s.Metrics.ReadOpsPeak
		totals.WriteIOPSPeak += s.Metrics.WriteOpsPeak
		totals.ReadMBpsP99 += s.Metrics.ReadThroughputP99
		totals.WriteMBpsP99 += s.Metrics.WriteThroughputP99
		totals.ReadMBpsPeak += s.Metrics.ReadThroughputPeak
		totals.WriteMBpsPeak += s.Metrics.WriteThroughputPeak
	}

	fmt.Fprintf(tw, "Total:\t\t%.1f\t\t%.0f/%.0f\t%.0f/%.0f\t%.1f/%.1f\t%.1f/%.1f\t\n",
		totals.TotalStorageGiB,
		totals.ReadIOPSP99, totals.WriteIOPSP99,
		totals.ReadIOPSPeak, totals.WriteIOPSPeak,
		totals.ReadMBpsP99, totals.WriteMBpsP99,
		totals.ReadMBpsPeak, totals.WriteMBpsPeak,
	)
}

// PrintSizingRecommendation prints the storage appliance sizing section
func PrintSizingRecommendation(w io.Writer, rec models.SizingRecommendation) {
	fmt.Fprintln(w, "\n## FSx for NetApp ONTAP Sizing Recommendations")

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintf(tw, "Total Storage Required (GB)\t%.0f\n", rec.TotalStorageGB)
	fmt.Fprintf(tw, "Recommended SSD Size (GB)\t%.0f (%.1f%% of total)\n", rec.RecommendedSSDSizeGB, rec.SSDPercentOfTotal)
	fmt.Fprintf(tw, "Sustained IOPS Required\t%.0f\n", rec.SustainedIOPS)
	fmt.Fprintf(tw, "Peak IOPS Required\t%.0f\n", rec.PeakIOPS)
	fmt.Fprintf(tw, "Sustained Throughput (MiB/s)\t%.1f\n", rec.SustainedThroughputMBps)
	fmt.Fprintf(tw, "Peak Throughput (MiB/s)\t%.1f\n", rec.PeakThroughputMBps)

	tw.Flush()
}
