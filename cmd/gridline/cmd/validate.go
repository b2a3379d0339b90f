package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gridlinehq/gridline/internal/validate"
	"github.com/gridlinehq/gridline/pkg/errors"
	"github.com/gridlinehq/gridline/pkg/logging"
	"github.com/gridlinehq/gridline/pkg/season"
)

// reportFilePermissions applies to a written validation report.
const reportFilePermissions = 0o644

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Cross-check the entries and stats documents",
	Long: `Builds the offline validation report: drivers present in the roster but
absent from stats, stats slugs absent from the roster, and per-driver
missing fields (allTime, bySeason, or season records without points or
team).

Findings are diagnostics, not failures; the command only exits non-zero
when an input file cannot be read or parsed.`,
	Args: cobra.NoArgs,
	Example: `  gridline validate
  gridline validate --entries data/entries-2026.json --stats data/stats.json
  gridline validate --out data/stats-validation-report.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		entriesPath, _ := cmd.Flags().GetString("entries")
		statsPath, _ := cmd.Flags().GetString("stats")
		outPath, _ := cmd.Flags().GetString("out")

		dataDir := viper.GetString("data-dir")
		if entriesPath == "" {
			entriesPath = filepath.Join(dataDir, viper.GetString("entries-file"))
		}
		if statsPath == "" {
			statsPath = filepath.Join(dataDir, viper.GetString("stats-file"))
		}

		var roster season.Roster
		if err := readDocument(entriesPath, &roster); err != nil {
			return err
		}
		var stats season.StatsDocument
		if err := readDocument(statsPath, &stats); err != nil {
			return err
		}

		report := validate.Check(&roster, &stats)

		logging.Info().
			Int("entries_drivers", report.Summary.EntriesDrivers).
			Int("stats_drivers", report.Summary.StatsDrivers).
			Int("missing_in_stats", len(report.MissingInStats)).
			Int("missing_in_entries", len(report.MissingInEntries)).
			Int("drivers_with_missing_fields", len(report.DriversWithMissingFields)).
			Msg("Validation complete")

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return errors.WrapParse("json", "report", err)
		}
		data = append(data, '\n')

		if outPath == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(outPath, data, reportFilePermissions); err != nil {
			return errors.WrapIO("write", outPath, err)
		}
		fmt.Printf("Report written to %s\n", outPath)
		return nil
	},
}

func init() {
	validateCmd.Flags().String("entries", "", "Path to the entries document (default from data-dir)")
	validateCmd.Flags().String("stats", "", "Path to the stats document (default from data-dir)")
	validateCmd.Flags().String("out", "", "Write the report to a file instead of stdout")
	rootCmd.AddCommand(validateCmd)
}

// readDocument reads and decodes one local JSON document. Unreadable or
// unparseable input is the one condition that fails the command.
func readDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}
