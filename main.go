package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/k64z/footballdata/config"
	"github.com/k64z/footballdata/filter"
	"github.com/k64z/footballdata/footballdata"
	"github.com/k64z/footballdata/pretty"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	// Debug so every request URL is traced, stdout carries only the JSON.
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	cfg, err := config.Load(os.Getenv("FOOTBALL_DATA_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := run(context.Background(), cfg, os.Stdout, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}

// run prints the Premier League standings on new year's day 2025.
func run(ctx context.Context, cfg config.Config, out io.Writer, logger zerolog.Logger) error {
	client, err := footballdata.New(cfg, footballdata.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	logger.Debug().Str("api", client.BaseURL()).Msg("fetching standings")

	filters := filter.FromMap(map[string]any{filter.Date: "2025-01-01"})

	standings, err := client.GetCompetitionStandings(ctx, "2021", filters)
	if err != nil {
		return fmt.Errorf("get standings: %w", err)
	}

	return pretty.Fprint(out, standings)
}
