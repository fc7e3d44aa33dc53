package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/ebsight/ebsight/internal/version"
	"github.com/ebsight/ebsight/pkg/analyzer"
	"github.com/ebsight/ebsight/pkg/aws"
	"github.com/ebsight/ebsight/pkg/formatter"
	"github.com/ebsight/ebsight/pkg/pricing"
	"github.com/ebsight/ebsight/pkg/utils"
)

var (
	region      string
	profile     string
	verbose     bool
	exportCSV   bool
	showGraphs  bool
	showFSx     bool
	showVersion bool
)

// startAnalysisSpinner creates and starts a spinner with a message for the given instance
func startAnalysisSpinner(instanceID string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Analyzing volumes of %s ...", instanceID)
	s.Start()
	return s
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "ebsight [instance-id]",
		Short: "CLI tool to analyze EBS volume snapshots and performance",
		Long: `ebsight analyzes the EBS volumes attached to an EC2 instance:
snapshot footprint and growth, 7-day performance percentiles, backup cost
estimates, and an optional FSx for NetApp ONTAP sizing recommendation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				info := version.Get()
				fmt.Printf("ebsight version %s (built: %s, commit: %s, %s)\n",
					info.Version, info.BuildDate, info.GitCommit, info.GoVersion)
				return nil
			}

			if region == "" {
				region = utils.GetDefaultRegion()
			}
			if !utils.IsValidRegion(region) {
				return fmt.Errorf("invalid region %q", region)
			}

			instanceID := ""
			if len(args) > 0 {
				instanceID = strings.TrimSpace(args[0])
			}
			if instanceID == "" {
				var err error
				instanceID, err = promptInstanceID()
				if err != nil {
					return err
				}
			}

			return runAnalysis(cmd.Context(), instanceID)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show detailed snapshot information")
	rootCmd.Flags().BoolVarP(&exportCSV, "csv", "c", false, "Export results to CSV")
	rootCmd.Flags().BoolVarP(&showGraphs, "graph", "g", false, "Show ASCII graphs")
	rootCmd.Flags().BoolVarP(&showFSx, "fsx", "f", false, "Show FSx for NetApp ONTAP sizing recommendations")
	rootCmd.Flags().StringVarP(&profile, "profile", "p", "", "AWS shared config profile")
	rootCmd.Flags().StringVarP(&region, "region", "r", "", fmt.Sprintf("AWS region (default: %s)", utils.GetDefaultRegion()))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// promptInstanceID reads the instance id from stdin when it was not
// supplied as an argument
func promptInstanceID() (string, error) {
	fmt.Print("Enter EC2 Instance ID: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("error reading instance id: %w", err)
		}
		return "", fmt.Errorf("no instance id provided")
	}

	instanceID := strings.TrimSpace(scanner.Text())
	if instanceID == "" {
		return "", fmt.Errorf("no instance id provided")
	}

	return instanceID, nil
}

// runAnalysis drives the whole pipeline for one instance
func runAnalysis(ctx context.Context, instanceID string) error {
	logger := log15.New("module", "ebsight")
	logLevel := log15.LvlWarn
	if verbose {
		logLevel = log15.LvlDebug
	}
	logger.SetHandler(log15.LvlFilterHandler(logLevel, log15.StderrHandler))

	ec2Client, err := aws.NewEC2Client(ctx, region, profile)
	if err != nil {
		return err
	}

	metricsClient, err := aws.NewMetricsClient(ctx, region, profile)
	if err != nil {
		return err
	}

	instance, err := ec2Client.GetInstance(ctx, instanceID)
	if err != nil {
		return err
	}

	instanceName := instance.Name
	if instanceName == "" {
		instanceName = "No Name"
	}
	fmt.Printf("Analyzing EC2 Instance: %s (%s) in %s\n", instance.InstanceID, instanceName, region)

	rate, rateSource := pricing.GetSnapshotPriceWithSource(region)
	if msg := pricing.GetInitMessage(); msg != "" {
		fmt.Println(msg)
	}
	logger.Debug("snapshot pricing resolved", "rate", rate, "source", rateSource)

	scanStartTime := time.Now()
	s := startAnalysisSpinner(instanceID)

	a := analyzer.New(ec2Client, metricsClient, rate, logger)
	report, err := a.AnalyzeInstance(ctx, instanceID)

	scanDuration := time.Since(scanStartTime)

	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("✓ [%d volumes analyzed] Completed in %.2f seconds\n",
		len(report.Summaries), scanDuration.Seconds())
	s.Stop()

	if len(report.Volumes) == 0 {
		fmt.Println("No volumes found attached to this instance.")
		return nil
	}

	for _, volErr := range report.Errors {
		fmt.Printf("Error analyzing volume %s: %v\n", volErr.VolumeID, volErr.Err)
	}

	for _, summary := range report.Summaries {
		fmt.Printf("\nAnalyzing Volume: %s (%s)\n", summary.VolumeID, summary.DeviceName)
		formatter.PrintVolumeSummary(summary, verbose)

		if showGraphs {
			formatter.PrintVolumeGraphs(os.Stdout, summary)
		}
	}

	formatter.PrintFleetTable(os.Stdout, report.Summaries)

	if showFSx {
		totals := analyzer.AccumulateFleet(report.Summaries)
		formatter.PrintSizingRecommendation(os.Stdout, analyzer.RecommendSizing(totals))
	}

	if exportCSV && len(report.Summaries) > 0 {
		filename, err := formatter.ExportCSVFile(instance, report.Summaries, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("\nCSV report exported to: %s\n", filename)
	}

	formatter.PrintScanTimestamp(scanStartTime, scanDuration)
	formatter.PrintPricingAPIStats()

	return nil
}
