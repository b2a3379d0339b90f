// Package cmd implements the gridline CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gridlinehq/gridline/internal/cmd/globals"
	"github.com/gridlinehq/gridline/internal/cmd/output"
	"github.com/gridlinehq/gridline/internal/fetch"
	"github.com/gridlinehq/gridline/pkg/logging"
)

var (
	configFile  string
	globalFlags *globals.Flags

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gridline",
	Short: "Motorsport season data CLI",
	Long: `Gridline renders a motorsport season from its three data documents:
the entries roster (teams and drivers), the race calendar, and the
historical stats. The documents are loaded from a local data directory or
an HTTP base URL and reconciled by slug, tolerating the naming drift
between them.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.gridline.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory holding the season JSON documents")
	rootCmd.PersistentFlags().String("base-url", "", "HTTP base URL to fetch documents from instead of data-dir")
	globalFlags = globals.AddFlags(rootCmd)

	for _, flag := range []string{"data-dir", "base-url", "verbose", "quiet"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
		}
	}

	viper.SetDefault("entries-file", fetch.DefaultEntriesFile)
	viper.SetDefault("calendar-file", fetch.DefaultCalendarFile)
	viper.SetDefault("stats-file", fetch.DefaultStatsFile)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".gridline" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gridline")
	}

	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("GRIDLINE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil && globalFlags != nil && globalFlags.Verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	configureLogging()
}

// setupCommand is called before any command runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	if globalFlags.Output == "" {
		globalFlags.Output = string(output.DetectFormat(""))
	}
	if _, err := output.ParseFormat(globalFlags.Output); err != nil {
		return err
	}
	return nil
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	level := zerolog.InfoLevel
	if globalFlags != nil && globalFlags.Verbose || viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	if globalFlags != nil && globalFlags.Quiet || viper.GetBool("quiet") {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	config := &logging.Config{
		Level:     level.String(),
		Format:    os.Getenv("LOG_FORMAT"),
		Output:    os.Getenv("LOG_OUTPUT"),
		AddCaller: level <= zerolog.DebugLevel,
		NoColor:   globalFlags != nil && globalFlags.NoColor,
	}
	if config.Format == "" {
		config.Format = "auto"
	}
	if config.Output == "" {
		config.Output = "stderr"
	}

	logging.Configure(config)
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envFile); err == nil {
			if globalFlags != nil && globalFlags.Verbose {
				fmt.Fprintf(os.Stderr, "Loaded %s\n", envFile)
			}
		}
	}
}

// newFetchClient builds the document client from configuration.
func newFetchClient() *fetch.Client {
	return fetch.New(fetch.Config{
		DataDir:      viper.GetString("data-dir"),
		BaseURL:      viper.GetString("base-url"),
		EntriesFile:  viper.GetString("entries-file"),
		CalendarFile: viper.GetString("calendar-file"),
		StatsFile:    viper.GetString("stats-file"),
	})
}

// formatterFor resolves the output formatter for a command invocation.
func formatterFor(cmd *cobra.Command) (output.Formatter, *globals.Flags, error) {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return nil, nil, err
	}
	if flags.Output == "" {
		flags.Output = string(output.DetectFormat(""))
	}
	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return nil, nil, err
	}
	return output.NewFormatter(format), flags, nil
}

// loadFailed reports a document-unavailable state for one view. The other
// views stay unaffected, so the process still exits cleanly.
func loadFailed(view string, err error) {
	logging.Err(err).Str("view", view).Msg("Document load failed")
	fmt.Printf("Could not load %s.\n", view)
}
