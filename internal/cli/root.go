// Package cli provides the footballdata command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/k64z/footballdata/config"
	"github.com/k64z/footballdata/footballdata"
	"github.com/k64z/footballdata/pretty"
)

// Version information, set by build flags.
var (
	Version   = "dev"
	GitCommit = "none"
)

type app struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "footballdata",
		Short: "Query the football-data.org API",
		Long: `footballdata fetches areas, competitions, standings and matches from
the football-data.org v4 API and prints the JSON response.

The API token is read from FOOTBALL_DATA_API_TOKEN (a .env file in the
working directory is honoured) or from the api_token key of --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log requests to stderr")

	root.AddCommand(
		a.newAreasCmd(),
		a.newCompetitionsCmd(),
		a.newStandingsCmd(),
		a.newMatchesCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "footballdata version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", GitCommit)
		},
	}
}

func (a *app) newClient(cmd *cobra.Command) (*footballdata.Client, error) {
	level := zerolog.InfoLevel
	if a.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().
		Timestamp().
		Logger()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return footballdata.New(cfg, footballdata.WithLogger(logger))
}

func printResult(cmd *cobra.Command, v any) error {
	return pretty.Fprint(cmd.OutOrStdout(), v)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
