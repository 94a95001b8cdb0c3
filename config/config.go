// Package config loads the YAML run configuration of sirsim and turns it into
// simulation parameters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sirsim/scan"
	"github.com/katalvlaran/sirsim/sim"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
// It is always joined to agent.ErrConfiguration.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds all sirsim configuration.
type Config struct {
	// Initial compartment sizes
	Population PopulationConfig `yaml:"population"`

	// Transmission and recovery
	Disease DiseaseConfig `yaml:"disease"`

	// Loop control and engine choices
	Run RunConfig `yaml:"run"`

	// Image and CSV artifacts
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// PopulationConfig sets the day-0 compartments; their sum is the population.
type PopulationConfig struct {
	Susceptible int `yaml:"susceptible"`
	Infectious  int `yaml:"infectious"`
	Recovered   int `yaml:"recovered"`
}

// DiseaseConfig configures transmission and recovery.
type DiseaseConfig struct {
	InfectiousRadius float64 `yaml:"infectious_radius"` // unit-square distance
	DaysToRecover    int     `yaml:"days_to_recover"`
}

// RunConfig configures the simulation loop.
type RunConfig struct {
	MaxDays  int    `yaml:"max_days"`
	Seed     int64  `yaml:"seed"`     // 0 ⇒ rng.DefaultSeed
	Movement string `yaml:"movement"` // non-infectious, all
	Scanner  string `yaml:"scanner"`  // brute, grid, parallel
	Workers  int    `yaml:"workers"`  // parallel scanner only; 0 ⇒ GOMAXPROCS
}

// OutputConfig configures the visualization collaborators.
type OutputConfig struct {
	Dir          string   `yaml:"dir"`
	Render       bool     `yaml:"render"`        // scatter PNG per frame
	RenderStages []string `yaml:"render_stages"` // seed, monitor, move, infect
	Trend        bool     `yaml:"trend"`         // trend PNG at end of run
	TrendCSV     bool     `yaml:"trend_csv"`
	Animation    bool     `yaml:"animation"`  // GIF of the rendered stages
	ImageSize    int      `yaml:"image_size"` // pixels per side
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the classic configuration: 1000 susceptible agents, one
// infectious, radius 0.025, seven days to recover, at most 100 days.
func Default() *Config {
	return &Config{
		Population: PopulationConfig{
			Susceptible: 1000,
			Infectious:  1,
			Recovered:   0,
		},
		Disease: DiseaseConfig{
			InfectiousRadius: 0.025,
			DaysToRecover:    7,
		},
		Run: RunConfig{
			MaxDays:  100,
			Seed:     0,
			Movement: sim.MoveNonInfectious.String(),
			Scanner:  string(scan.KindGrid),
			Workers:  0,
		},
		Output: OutputConfig{
			Dir:          ".",
			Render:       false,
			RenderStages: []string{sim.StageSeed.String(), sim.StageMove.String(), sim.StageInfect.String()},
			Trend:        true,
			TrendCSV:     false,
			Animation:    false,
			ImageSize:    600,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file on top of Default.
// A missing file yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}

// applyEnvOverrides applies SIRSIM_* environment variable overrides.
// Unparseable numbers are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SIRSIM_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Run.Seed = seed
		}
	}
	if v := os.Getenv("SIRSIM_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SIRSIM_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
}
