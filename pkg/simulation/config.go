package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lao-tseu-is-alive/go-neon-task/pkg/motion"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/viewport"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

type Config struct {
	// Window
	WindowWidth  float64 `json:"windowWidth,omitempty" jsonschema:"minimum=1,description=Initial window width in pixels"`
	WindowHeight float64 `json:"windowHeight,omitempty" jsonschema:"minimum=1,description=Initial window height in pixels"`
	TickRate     int     `json:"tickRate,omitempty" jsonschema:"minimum=1,maximum=1000,description=Frames per second of the headless loop"`

	// Motion
	MinDistance    float64 `json:"minDistance,omitempty" jsonschema:"description=Closest two item centers may get after a frame"`
	BounceStrength float64 `json:"bounceStrength,omitempty" jsonschema:"description=Speed given to an item after a close encounter"`
	SpawnSpeed     float64 `json:"spawnSpeed,omitempty" jsonschema:"description=Max speed per axis of a new item"`
	Seed           uint64  `json:"seed,omitempty" jsonschema:"description=Seed of the spawn generator (0 picks a random one)"`

	// Safe rectangle
	Layout viewport.Layout `json:"layout,omitempty"`

	// Titles of the todos on the board at start
	Todos []string `json:"todos,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowWidth:    1000,
		WindowHeight:   900,
		TickRate:       60,
		MinDistance:    motion.DefaultMinDistance,
		BounceStrength: motion.DefaultBounceStrength,
		SpawnSpeed:     motion.DefaultSpawnSpeed,
		Layout:         viewport.DefaultLayout(),
		Todos:          []string{"Buy milk", "Walk the dog", "Write the report"},
	}
}

// Params returns the motion parameters of the configuration.
func (c *Config) Params() motion.Params {
	return motion.Params{
		MinDistance:    c.MinDistance,
		BounceStrength: c.BounceStrength,
	}
}

// Validate checks the values the motion engine relies on.
// LoadConfig calls it, configs built in code should too.
func (c *Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.WindowWidth, c.WindowHeight))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tickRate must be positive, got %d", c.TickRate))
	}
	if c.MinDistance <= 0 {
		errs = append(errs, fmt.Errorf("minDistance must be positive, got %v", c.MinDistance))
	}
	if c.BounceStrength <= 0 {
		errs = append(errs, fmt.Errorf("bounceStrength must be positive, got %v", c.BounceStrength))
	}
	if c.SpawnSpeed < 0 {
		errs = append(errs, fmt.Errorf("spawnSpeed must not be negative, got %v", c.SpawnSpeed))
	}
	for name, m := range map[string]viewport.Margins{"desktop": c.Layout.Desktop, "mobile": c.Layout.Mobile} {
		if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
			errs = append(errs, fmt.Errorf("%s margins must not be negative, got %+v", name, m))
		}
	}
	return errors.Join(errs...)
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
// Fields missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, on top of the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
