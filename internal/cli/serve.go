package cli

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"springbox/internal/stream"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the sandbox over a websocket",
		Long: "Host one shared sandbox at ws://<addr>/ws. Clients send hello, then pointer\n" +
			"and command envelopes; every client receives state snapshots.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.Server.Addr = addr
			}
			w, c, err := newSandbox()
			if err != nil {
				return err
			}
			if presetName != "" {
				w.SetSimulating(true)
			}

			room := stream.NewRoom(c, cfg.Server.TickHz, cfg.Server.BroadcastHz)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return stream.Serve(ctx, cfg.Server.Addr, room)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
