package cli

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"springbox/internal/term"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the sandbox in the terminal",
		Long:  "Run the sandbox in the terminal. Each cell covers terminal.cell_width x terminal.cell_height world units.",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, c, err := newSandbox()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return term.New(cfg.Terminal, w, c).Run(ctx)
		},
	}
}
