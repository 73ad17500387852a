package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics laid out by the saved preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.adapter.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			prefs, err := a.adapter.Preferences(cmd.Context())
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).statistics(stats, prefs)
			return nil
		},
	}
}

func (a *App) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search all sections of every entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results, err := a.adapter.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).searchResults(query, results)
			return nil
		},
	}
}
