package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"springbox/internal/geom"
	"springbox/internal/physics"
)

// Config holds springbox settings. Scenes are never stored here.
type Config struct {
	Physics  PhysicsConfig  `toml:"physics"`
	Window   WindowConfig   `toml:"window"`
	Audio    AudioConfig    `toml:"audio"`
	Terminal TerminalConfig `toml:"terminal"`
	Server   ServerConfig   `toml:"server"`
}

// PhysicsConfig mirrors physics.Params plus the initial cut policy.
type PhysicsConfig struct {
	Gravity        float64 `toml:"gravity"`
	SpringConstant float64 `toml:"spring_constant"`
	Damping        float64 `toml:"damping"`
	NodeRadius     float64 `toml:"node_radius"`
	CutThreshold   float64 `toml:"cut_threshold"`
	CutMargin      float64 `toml:"cut_margin"`
	CutPolicy      string  `toml:"cut_policy"` // "sweep" or "nearest"
}

// WindowConfig controls the raylib front end.
type WindowConfig struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	TargetFPS int32  `toml:"target_fps"`
	Title     string `toml:"title"`
	HighDPI   bool   `toml:"high_dpi"`
}

// AudioConfig names the feedback sounds. Empty paths disable a sound.
type AudioConfig struct {
	Enabled     bool    `toml:"enabled"`
	Volume      float32 `toml:"volume"`
	Pop         string  `toml:"pop"`
	FixedPop    string  `toml:"fixed_pop"`
	Rope        string  `toml:"rope"`
	Cut         string  `toml:"cut"`
	CutCooldown float64 `toml:"cut_cooldown"` // seconds between cut sounds
}

// TerminalConfig maps terminal cells to world units for the tcell front end.
type TerminalConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	TickMillis int     `toml:"tick_ms"`
}

// ServerConfig controls the websocket room.
type ServerConfig struct {
	Addr        string `toml:"addr"`
	TickHz      int    `toml:"tick_hz"`
	BroadcastHz int    `toml:"broadcast_hz"`
}

// Default returns the default configuration.
func Default() *Config {
	p := physics.DefaultParams()
	return &Config{
		Physics: PhysicsConfig{
			Gravity:        p.Gravity,
			SpringConstant: p.SpringConstant,
			Damping:        p.Damping,
			NodeRadius:     p.NodeRadius,
			CutThreshold:   p.CutThreshold,
			CutMargin:      p.CutMargin,
			CutPolicy:      physics.CutSweep.String(),
		},
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
			Title:     "springbox",
			HighDPI:   true,
		},
		Audio: AudioConfig{
			Enabled:     true,
			Volume:      0.8,
			Pop:         "assets/sounds/pop.mp3",
			FixedPop:    "assets/sounds/fixedPop.mp3",
			Rope:        "",
			Cut:         "assets/sounds/cut.mp3",
			CutCooldown: 0.05,
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			TickMillis: 16,
		},
		Server: ServerConfig{
			Addr:        ":8080",
			TickHz:      60,
			BroadcastHz: 30,
		},
	}
}

// Dir returns the springbox config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "springbox")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads path on top of the defaults. A missing file is not an error.
// An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	p := c.Physics
	for name, v := range map[string]float64{
		"gravity":         p.Gravity,
		"spring_constant": p.SpringConstant,
		"damping":         p.Damping,
		"node_radius":     p.NodeRadius,
		"cut_threshold":   p.CutThreshold,
		"cut_margin":      p.CutMargin,
	} {
		if !geom.IsFinite(v) {
			return fmt.Errorf("physics.%s: %w", name, physics.ErrNonFinite)
		}
	}
	if p.NodeRadius <= 0 {
		return fmt.Errorf("physics.node_radius must be positive, got %v", p.NodeRadius)
	}
	if _, err := physics.ParseCutPolicy(p.CutPolicy); err != nil {
		return fmt.Errorf("physics.cut_policy: %w", err)
	}
	if c.Server.TickHz <= 0 || c.Server.BroadcastHz <= 0 {
		return fmt.Errorf("server rates must be positive, got tick %d broadcast %d", c.Server.TickHz, c.Server.BroadcastHz)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive")
	}
	return nil
}

// Params converts the physics section into World parameters.
func (c *Config) Params() physics.Params {
	return physics.Params{
		Gravity:        c.Physics.Gravity,
		SpringConstant: c.Physics.SpringConstant,
		Damping:        c.Physics.Damping,
		NodeRadius:     c.Physics.NodeRadius,
		CutThreshold:   c.Physics.CutThreshold,
		CutMargin:      c.Physics.CutMargin,
	}
}

// CutPolicy returns the configured policy, falling back to sweep.
func (c *Config) CutPolicy() physics.CutPolicy {
	p, _ := physics.ParseCutPolicy(c.Physics.CutPolicy)
	return p
}
