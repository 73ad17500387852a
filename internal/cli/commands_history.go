package cli

import (
	"fmt"

	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/spf13/cobra"
)

func (a *App) historyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history [month]",
		Short: "Show the dates with entries in a month (YYYY-MM, current by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := a.now().Format(models.MonthLayout)
			if len(args) == 1 {
				month = args[0]
			}

			days, err := a.adapter.History(cmd.Context(), month)
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).history(month, days)
			return nil
		},
	}
}

func (a *App) favoritesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List favorite entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.adapter.Favorites(cmd.Context())
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).entries(entries, "no favorites yet")
			return nil
		},
	}
}

func (a *App) timelineCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "timeline <section>",
		Short:     "List entries having content in one section, grouped by month",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"thoughts", "diet", "exercise", "todos", "discoveries"},
		RunE: func(cmd *cobra.Command, args []string) error {
			section := models.Section(args[0])
			if !section.IsValid() {
				return fmt.Errorf("unknown section %q", args[0])
			}

			groups, err := a.adapter.Timeline(cmd.Context(), section)
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).timeline(section, groups)
			return nil
		},
	}
}
