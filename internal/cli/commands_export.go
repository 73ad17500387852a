package cli

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	from, to string
	format   string
	output   string
	copy     bool

	noThoughts bool
	noDiet     bool
	noExercise bool
	noTodos    bool
}

func (f exportFlags) request() models.ExportRequest {
	return models.ExportRequest{
		From: f.from,
		To:   f.to,
		Options: models.ExportOptions{
			Format:          models.ExportFormat(f.format),
			IncludeThoughts: !f.noThoughts,
			IncludeDiet:     !f.noDiet,
			IncludeExercise: !f.noExercise,
			IncludeTodos:    !f.noTodos,
		},
	}
}

func (a *App) exportCommand() *cobra.Command {
	var flags exportFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a date range to markdown or JSON",
		Long: `Export the entries of a date range. The document is written to the
file name chosen by the server (diary-export-<date>.<md|json>) unless
--output is given; "--output -" prints it.

  $ diary export --from 2024-01-01 --to 2024-01-31
  $ diary export --from 2024-01-01 --to 2024-01-31 --format json --no-diet -o jan.json
  $ diary export --from 2024-01-01 --to 2024-01-07 --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.adapter.Export(cmd.Context(), flags.request())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			st := newStyles(out)

			switch flags.output {
			case "-":
				fmt.Fprint(out, doc.Content)
			default:
				path := flags.output
				if path == "" {
					path = doc.FileName
				}
				if path == "" {
					path = "diary-export." + models.ExportFormat(flags.format).Extension()
				}
				if err = os.WriteFile(path, []byte(doc.Content), 0o600); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintln(out, st.ok("exported to "+path))
			}

			if flags.copy {
				if err = a.copyText(doc.Content); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(out, st.ok("copied to clipboard"))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.from, "from", "", "first date (YYYY-MM-DD)")
	f.StringVar(&flags.to, "to", "", "last date (YYYY-MM-DD)")
	f.StringVar(&flags.format, "format", string(models.ExportMarkdown), "markdown or json")
	f.StringVarP(&flags.output, "output", "o", "", `output file ("-" for stdout)`)
	f.BoolVar(&flags.copy, "copy", false, "also copy the document to the clipboard")
	f.BoolVar(&flags.noThoughts, "no-thoughts", false, "leave out thoughts")
	f.BoolVar(&flags.noDiet, "no-diet", false, "leave out diet")
	f.BoolVar(&flags.noExercise, "no-exercise", false, "leave out exercises")
	f.BoolVar(&flags.noTodos, "no-todos", false, "leave out todos")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
