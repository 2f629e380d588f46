package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"springbox/internal/physics"
	"springbox/internal/ui"
)

func runCmd() *cobra.Command {
	var steps, every int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a preset headlessly and report statistics",
		Example: "  springbox run --preset cloth --steps 600\n" +
			"  springbox run --preset rope --steps 120 --every 20",
		RunE: func(cmd *cobra.Command, args []string) error {
			if presetName == "" {
				presetName = "cloth"
			}
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			w, _, err := newSandbox()
			if err != nil {
				return err
			}

			ui.Banner(fmt.Sprintf("%s, %d steps", presetName, steps))
			w.SetSimulating(true)

			headers := []string{"Tick", "Nodes", "Sticks", "Energy", "Mean strain", "Max strain"}
			var rows [][]string
			start := time.Now()
			for i := 1; i <= steps; i++ {
				w.Step()
				if every > 0 && (i%every == 0 || i == steps) {
					rows = append(rows, statsRow(w.Stats()))
				}
			}
			elapsed := time.Since(start)

			if every > 0 {
				ui.Table(headers, rows)
				fmt.Println()
			}

			s := w.Stats()
			ui.KV("Nodes", fmt.Sprintf("%d (%d locked)", s.Nodes, s.Locked))
			ui.KV("Sticks", s.Sticks)
			ui.KV("Kinetic energy", fmt.Sprintf("%.3f", s.KineticEnergy))
			ui.KV("Mean strain", fmt.Sprintf("%.4f", s.MeanStrain))
			ui.KV("Max strain", fmt.Sprintf("%.4f", s.MaxStrain))
			ui.KV("Stepping", fmt.Sprintf("%s (%.1f µs/step)", elapsed.Round(time.Microsecond), float64(elapsed.Microseconds())/float64(steps)))

			if s.Diverged() {
				fmt.Println()
				ui.Warn.Printf("  %s Simulation diverged (max strain %.3g); try a smaller spring_constant or damping.\n", ui.StatusIcon(false), s.MaxStrain)
			} else {
				fmt.Printf("\n  %s settled\n", ui.StatusIcon(true))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 600, "Number of simulation steps")
	cmd.Flags().IntVar(&every, "every", 0, "Print a stats row every N steps")
	return cmd
}

func statsRow(s physics.Stats) []string {
	return []string{
		fmt.Sprint(s.Tick),
		fmt.Sprint(s.Nodes),
		fmt.Sprint(s.Sticks),
		fmt.Sprintf("%.3f", s.KineticEnergy),
		fmt.Sprintf("%.4f", s.MeanStrain),
		fmt.Sprintf("%.4f", s.MaxStrain),
	}
}
