package cli

import (
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/spf13/cobra"
)

func (a *App) prefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change what the stats command displays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := a.adapter.Preferences(cmd.Context())
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).preferences(prefs)
			return nil
		},
	}
	cmd.AddCommand(a.prefsSetCommand(), a.prefsResetCommand())
	return cmd
}

// prefToggles maps flag names to the fields of a partial update.
var prefToggles = []struct {
	flag  string
	usage string
	field func(u *models.StatisticsPreferencesUpdate) **bool
}{
	{"section-overview", "show entries per section", func(u *models.StatisticsPreferencesUpdate) **bool { return &u.ShowSectionOverview }},
	{"todo-progress", "show todo completion", func(u *models.StatisticsPreferencesUpdate) **bool { return &u.ShowTodoProgress }},
	{"streak", "show current and longest streak", func(u *models.StatisticsPreferencesUpdate) **bool { return &u.ShowStreak }},
	{"favorites", "show favorite count", func(u *models.StatisticsPreferencesUpdate) **bool { return &u.ShowFavorites }},
	{"weekly-activity", "show this week's activity", func(u *models.StatisticsPreferencesUpdate) **bool { return &u.ShowWeeklyActivity }},
}

func (a *App) prefsSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change individual toggles, e.g. --streak=true --favorites=false",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update models.StatisticsPreferencesUpdate
			for _, toggle := range prefToggles {
				if !cmd.Flags().Changed(toggle.flag) {
					continue
				}
				value, err := cmd.Flags().GetBool(toggle.flag)
				if err != nil {
					return err
				}
				*toggle.field(&update) = &value
			}

			prefs, err := a.adapter.UpdatePreferences(cmd.Context(), update)
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).preferences(prefs)
			return nil
		},
	}
	for _, toggle := range prefToggles {
		cmd.Flags().Bool(toggle.flag, false, toggle.usage)
	}
	return cmd
}

func (a *App) prefsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default toggles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefs, err := a.adapter.ResetPreferences(cmd.Context())
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).preferences(prefs)
			return nil
		},
	}
}
