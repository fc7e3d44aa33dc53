package formatter

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/ebsight/ebsight/internal/models"
)

// PrintVolumeSummary prints the analysis of a single volume, either as a
// compact metric/value table or as the verbose block with the full cost
// schedule
func PrintVolumeSummary(summary models.VolumeSummary, verbose bool) {
	if verbose {
		printVerboseSummary(summary)
		return
	}

	fmt.Println("\nVolume Summary:")

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "Volume Size\t%.1f GiB\n", summary.VolumeSizeGiB)
	fmt.Fprintf(w, "Snapshot Total Size\t%.1f GiB\n", summary.TotalSnapshotSizeGiB)
	fmt.Fprintf(w, "Usage %%\t%.1f%%\n", summary.UsagePercent)
	fmt.Fprintf(w, "Snapshot Count\t%d\n", summary.SnapshotCount)
	fmt.Fprintf(w, "Daily Change Rate\t%.2f GiB (%.1f%%)\n", summary.DailyChangeGiB, summary.DailyChangePercent)
	fmt.Fprintf(w, "Total Changed Data\t%.1f GiB\n", summary.TotalChangedGiB)
	fmt.Fprintf(w, "Daily Backup Cost\t$%.2f\n", summary.Costs.Daily)
	fmt.Fprintf(w, "Monthly Backup Cost\t$%.2f\n", summary.Costs.Monthly)
	fmt.Fprintf(w, "Annual Backup Cost\t$%.2f\n", summary.Costs.Annual)

	w.Flush()
}

func printVerboseSummary(summary models.VolumeSummary) {
	fmt.Println("\nVolume Summary:")
	fmt.Printf("  Volume Size: %.2f GiB\n", summary.VolumeSizeGiB)
	fmt.Printf("  Total Size of All Snapshots: %.2f GiB (%s)\n",
		summary.TotalSnapshotSizeGiB, humanize.IBytes(uint64(summary.TotalSnapshotSizeGiB*float64(1<<30))))
	fmt.Printf("  Percentage of Original Volume: %.2f%%\n", summary.UsagePercent)
	fmt.Printf("  Number of Snapshots: %d\n", summary.SnapshotCount)
	fmt.Printf("  Average Daily Change: %.2f GiB/day (%.1f%%)\n", summary.DailyChangeGiB, summary.DailyChangePercent)
	fmt.Printf("  Total Data Changed: %.2f GiB\n", summary.TotalChangedGiB)

	fmt.Println("\nCost Estimates:")
	fmt.Printf("  Daily Cost: $%.2f\n", summary.Costs.Daily)
	fmt.Printf("  Weekly Cost: $%.2f\n", summary.Costs.Weekly)
	fmt.Printf("  Monthly Cost: $%.2f\n", summary.Costs.Monthly)
	fmt.Printf("  Annual Cost: $%.2f\n", summary.Costs.Annual)
}
