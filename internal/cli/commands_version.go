package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			r := newRenderer(out)
			r.field("Client version", orNA(a.build.BuildVersion()))
			r.field("Build date", orNA(a.build.BuildDate()))
			r.field("Build commit", orNA(a.build.BuildCommit()))

			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			r.field("Server version", serverVersion)
			return nil
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
