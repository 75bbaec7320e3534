package cli

import (
	"context"
	"fmt"

	dluluapp "github.com/GeekPO11/dlulu/internal/app"
	"github.com/GeekPO11/dlulu/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newFocusCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Show today's focus suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() && !plain {
				p := tea.NewProgram(newFocusModel(app))
				_, err := p.Run()
				return err
			}

			resp, err := app.Focus.Suggest(context.Background(), dluluapp.FocusRequest{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFocus(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print without the interactive view")
	return cmd
}
