package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ebsight/ebsight/internal/models"
)

// csvHeaders lists every field of the console tables, one column each
var csvHeaders = []string{
	"Instance ID", "Instance Name", "Volume ID", "Device Name",
	"Volume Size (GiB)", "Total Snapshot Size (GiB)", "Snapshot Count",
	"Usage Percentage", "Daily Change (GiB)", "Daily Change (%)",
	"Total Changed Data (GiB)",
	"Daily Cost ($)", "Weekly Cost ($)", "Monthly Cost ($)", "Annual Cost ($)",
	"P99 Read IOPS", "P99 Write IOPS", "Peak Read IOPS", "Peak Write IOPS",
	"P99 Read MiB/s", "P99 Write MiB/s", "Peak Read MiB/s", "Peak Write MiB/s",
	"P99 Queue Length",
}

// WriteCSV writes one row per volume summary to w
func WriteCSV(w io.Writer, instance models.InstanceInfo, summaries []models.VolumeSummary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeaders); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, s := range summaries {
		row := []string{
			instance.InstanceID,
			instance.Name,
			s.VolumeID,
			s.DeviceName,
			formatFloat(s.VolumeSizeGiB, 2),
			formatFloat(s.TotalSnapshotSizeGiB, 2),
			strconv.Itoa(s.SnapshotCount),
			formatFloat(s.UsagePercent, 2),
			formatFloat(s.DailyChangeGiB, 2),
			formatFloat(s.DailyChangePercent, 2),
			formatFloat(s.TotalChangedGiB, 2),
			formatFloat(s.Costs.Daily, 3),
			formatFloat(s.Costs.Weekly, 2),
			formatFloat(s.Costs.Monthly, 2),
			formatFloat(s.Costs.Annual, 2),
			formatFloat(s.Metrics.ReadOpsP99, 1),
			formatFloat(s.Metrics.WriteOpsP99, 1),
			formatFloat(s.Metrics.ReadOpsPeak, 1),
			formatFloat(s.Metrics.WriteOpsPeak, 1),
			formatFloat(s.Metrics.ReadThroughputP99, 1),
			formatFloat(s.Metrics.WriteThroughputP99, 1),
			formatFloat(s.Metrics.ReadThroughputPeak, 1),
			formatFloat(s.Metrics.WriteThroughputPeak, 1),
			formatFloat(s.Metrics.QueueLengthP99, 2),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row for %s: %w", s.VolumeID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportCSVFile writes the report to a timestamped file and returns its name
func ExportCSVFile(instance models.InstanceInfo, summaries []models.VolumeSummary, now time.Time) (string, error) {
	filename := fmt.Sprintf("snapshot_analysis_%s_%s.csv", instance.InstanceID, now.Format("20060102_150405"))

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, instance, summaries); err != nil {
		return "", err
	}

	return filename, nil
}

func formatFloat(value float64, decimals int) string {
	return strconv.FormatFloat(value, 'f', decimals, 64)
}
