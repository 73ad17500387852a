package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/spf13/cobra"
)

func (a *App) dayCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Show the entry of a date (today by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				date = args[0]
			}

			entry, err := a.adapter.OpenDay(cmd.Context(), date)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entry)
			}
			newRenderer(cmd.OutOrStdout()).entry(entry)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw entry JSON")
	return cmd
}

func (a *App) saveCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "save <date>",
		Short: "Store a whole entry read from a JSON file",
		Long: `Store a whole entry for <date>. The entry replaces what was saved before.

  $ diary day 2024-01-10 --json > day.json
  $ $EDITOR day.json
  $ diary save 2024-01-10 --file day.json
  $ cat day.json | diary save 2024-01-10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := readEntry(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			saved, err := a.adapter.SaveEntry(cmd.Context(), args[0], entry)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, newStyles(out).ok("saved "+saved.Date))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", `entry JSON file ("-" for stdin)`)
	return cmd
}

func (a *App) listCommand() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, optionally within a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.adapter.ListEntries(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).entries(models.FilterWithContent(entries), "no entries")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last date (YYYY-MM-DD)")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}

func (a *App) favoriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <date>",
		Short: "Toggle the favorite flag of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.adapter.OpenDay(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			entry.IsFavorite = !entry.IsFavorite
			saved, err := a.adapter.SaveEntry(cmd.Context(), entry.Date, entry)
			if err != nil {
				return err
			}

			state := "removed from favorites"
			if saved.IsFavorite {
				state = "added to favorites"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, newStyles(out).ok(saved.Date+" "+state))
			return nil
		},
	}
}

func readEntry(stdin io.Reader, file string) (models.DailyEntry, error) {
	var (
		data []byte
		err  error
	)
	if file == "" || file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("read entry: %w", err)
	}

	entry, err := models.DecodeEntry(data)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("decode entry: %w", err)
	}
	return entry, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
