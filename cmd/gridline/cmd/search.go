package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gridlinehq/gridline/internal/cmd/output"
	"github.com/gridlinehq/gridline/internal/cmd/table"
	"github.com/gridlinehq/gridline/pkg/season"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find drivers by name",
	Long: `Searches driver display names across the roster by case-insensitive
substring match. One match resolves directly; several produce a
disambiguation list.`,
	Args: cobra.MinimumNArgs(1),
	Example: `  gridline search verst
  gridline search "de"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		client := newFetchClient()
		roster, err := client.Roster(cmd.Context())
		if err != nil {
			loadFailed("search", err)
			return nil
		}

		result := season.FindDrivers(roster, query)

		formatter, flags, err := formatterFor(cmd)
		if err != nil {
			return err
		}
		if output.Format(flags.Output) != output.FormatTable {
			return formatter.Format(os.Stdout, result)
		}

		switch result.Outcome {
		case season.SearchNoResults:
			fmt.Printf("No results for %q.\n", query)
			return nil
		case season.SearchSingleMatch:
			match := result.Matches[0]
			fmt.Printf("%s (%s), %s\n", match.DriverName, match.Nationality, match.TeamName)
			fmt.Printf("Driver slug: %s, team slug: %s\n", match.DriverSlug, match.TeamSlug)
			return nil
		default:
			fmt.Printf("%d matches for %q:\n", len(result.Matches), query)
			return formatter.Format(os.Stdout, table.SearchToTableData(result))
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
