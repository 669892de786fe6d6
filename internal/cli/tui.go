package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/tui"
)

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal search UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The UI owns the terminal; logs go to a file or nowhere.
			logFile, _ := cmd.Flags().GetString("log-file")
			if logFile == "" {
				config.SetLogOutput(io.Discard)
			} else {
				f, err := tea.LogToFile(logFile, "showsearch")
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				config.SetLogOutput(f)
			}

			cfg, api := newClient()
			defer api.Close()
			return tui.Run(cmd.Context(), cfg, api)
		},
	}
	cmd.Flags().String("log-file", "", "Write logs to this file while the UI runs")
	return cmd
}
