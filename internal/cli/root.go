package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"springbox/internal/config"
	"springbox/internal/game"
	"springbox/internal/geom"
	"springbox/internal/interact"
	"springbox/internal/physics"
	"springbox/internal/preset"
	"springbox/internal/ui"
)

var version = "0.3.0"

var (
	cfg        *config.Config
	configPath string
	envFiles   []string
	presetName string
	policyFlag string
)

var rootCmd = &cobra.Command{
	Use:   "springbox",
	Short: "springbox — a 2D mass-spring sandbox",
	Long: ui.Brand.Sprint("springbox") + " — place nodes and link them with springs\n" +
		ui.Subtle.Sprint("Runs in a window by default; see `springbox tui`, `run`, and `serve`"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		w, c, err := newSandbox()
		if err != nil {
			return err
		}
		game.New(cfg, w, c).Run()
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate("springbox {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env", nil, "Dotenv files to load before applying SPRINGBOX_* overrides (default .env)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "Start from a preset scene")
	rootCmd.PersistentFlags().StringVar(&policyFlag, "policy", "", "Cut policy: sweep or nearest")

	rootCmd.AddCommand(
		tuiCmd(),
		runCmd(),
		serveCmd(),
		presetsCmd(),
		configCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.Error(err)
	}
	return err
}

func loadConfig() error {
	if err := config.LoadEnv(envFiles...); err != nil {
		return err
	}
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := c.ApplyEnv(); err != nil {
		return err
	}
	if policyFlag != "" {
		c.Physics.CutPolicy = policyFlag
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg = c
	return nil
}

// newSandbox builds a world and controller from the loaded config, adding the
// --preset scene if one was named.
func newSandbox() (*physics.World, *interact.Controller, error) {
	w := physics.NewWorld(cfg.Params())
	c := interact.NewController(w)
	c.Policy = cfg.CutPolicy()

	if presetName != "" {
		origin := geom.V(float64(cfg.Window.Width)/4, float64(cfg.Window.Height)/6)
		if err := preset.Build(presetName, w, origin); err != nil {
			return nil, nil, err
		}
	}
	return w, c, nil
}
