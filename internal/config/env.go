package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override individual config fields.
const (
	EnvGravity   = "SPRINGBOX_GRAVITY"
	EnvSpringK   = "SPRINGBOX_SPRING_K"
	EnvDamping   = "SPRINGBOX_DAMPING"
	EnvCutPolicy = "SPRINGBOX_CUT_POLICY"
	EnvAddr      = "SPRINGBOX_ADDR"
	EnvNoAudio   = "SPRINGBOX_NO_AUDIO"
)

// LoadEnv loads dotenv files (".env" when none are named) into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from SPRINGBOX_* variables.
func (c *Config) ApplyEnv() error {
	floats := []struct {
		key string
		dst *float64
	}{
		{EnvGravity, &c.Physics.Gravity},
		{EnvSpringK, &c.Physics.SpringConstant},
		{EnvDamping, &c.Physics.Damping},
	}
	for _, f := range floats {
		v, ok := os.LookupEnv(f.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = parsed
	}

	if v := os.Getenv(EnvCutPolicy); v != "" {
		c.Physics.CutPolicy = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvNoAudio); v != "" {
		off, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNoAudio, err)
		}
		c.Audio.Enabled = !off
	}
	return nil
}
