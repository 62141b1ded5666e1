package cli

import (
	"github.com/spf13/cobra"

	"github.com/k64z/footballdata/filter"
)

func addFilterFlag(cmd *cobra.Command, target *[]string) {
	cmd.Flags().StringArrayVarP(target, "filter", "f", nil,
		"query filter as key=value, list values separated by commas (repeatable)")
}

func (a *app) newAreasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "areas [id]",
		Short: "Show one area, or all areas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			var id string
			if len(args) == 1 {
				id = args[0]
			}

			result, err := c.GetArea(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
}

func (a *app) newCompetitionsCmd() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "competitions [id|code]",
		Short: "Show one competition, or list competitions",
		Long: `Show a competition by id or code (e.g. PL), or list competitions.

Filters only apply to the listing:
  footballdata competitions --filter areas=2081,2072`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := filter.Parse(filters)
			if err != nil {
				return err
			}

			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			var id string
			if len(args) == 1 {
				id = args[0]
			}

			result, err := c.GetCompetition(cmd.Context(), id, set)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
	addFilterFlag(cmd, &filters)

	return cmd
}

func (a *app) newStandingsCmd() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "standings <id|code>",
		Short: "Show the standings of a competition",
		Long: `Show the standings of a competition.

Examples:
  footballdata standings 2021 --filter date=2025-01-01
  footballdata standings PL -f matchday=15 -f season=2023`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := filter.Parse(filters)
			if err != nil {
				return err
			}

			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := c.GetCompetitionStandings(cmd.Context(), args[0], set)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
	addFilterFlag(cmd, &filters)

	return cmd
}

func (a *app) newMatchesCmd() *cobra.Command {
	var filters []string

	cmd := &cobra.Command{
		Use:   "matches <id|code>",
		Short: "Show the matches of a competition",
		Long: `Show the matches of a competition.

Example:
  footballdata matches 2021 -f dateFrom=2025-01-01 -f dateTo=2025-01-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := filter.Parse(filters)
			if err != nil {
				return err
			}

			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}

			result, err := c.GetCompetitionMatches(cmd.Context(), args[0], set)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}
	addFilterFlag(cmd, &filters)

	return cmd
}
