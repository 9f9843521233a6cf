package config

import (
	"fmt"
	"os"

	"voxel-sandbox/internal/world"

	"gopkg.in/yaml.v3"
)

// Config is the full set of startup tunables. It is set once at startup and
// read-only afterwards.
type Config struct {
	// Presentation
	WindowTitle  string `yaml:"window_title"`
	VSyncEnabled bool   `yaml:"vsync_enabled"`
	ShowFPS      bool   `yaml:"show_fps"`

	// Interaction
	BuildDistance float64 `yaml:"build_distance"`

	// Terrain generation
	ChunkSize        int     `yaml:"chunk_size"`
	ChunkHeight      int     `yaml:"chunk_height"`
	PerlinOctaves    int     `yaml:"perlin_octaves"`
	PerlinSeed       int64   `yaml:"perlin_seed"`
	PerlinScale      float64 `yaml:"perlin_scale"`
	TerrainAmplitude float64 `yaml:"terrain_amplitude"`

	// Gameplay block roles
	DefaultBlock    string `yaml:"default_block"`
	SecondaryBlock  string `yaml:"secondary_block"`
	FoundationBlock string `yaml:"foundation_block"`

	// Player
	PlayerSpeed      float64 `yaml:"player_speed"`
	PlayerJumpHeight float64 `yaml:"player_jump_height"`
	GravityStrength  float64 `yaml:"gravity_strength"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		WindowTitle:      "Voxel Sandbox",
		VSyncEnabled:     true,
		ShowFPS:          true,
		BuildDistance:    16.0,
		ChunkSize:        20,
		ChunkHeight:      8,
		PerlinOctaves:    3,
		PerlinSeed:       3817,
		PerlinScale:      48.0,
		TerrainAmplitude: 3.5,
		DefaultBlock:     "grass",
		SecondaryBlock:   "dirt",
		FoundationBlock:  "stone",
		PlayerSpeed:      6.0,
		PlayerJumpHeight: 2.0,
		GravityStrength:  1.0,
	}
}

// Load reads a YAML configuration file, applying it on top of the defaults.
// An empty path returns the defaults unchanged. The result is validated;
// validation failure is fatal at startup, before any generation is attempted.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the tunables that generation depends on.
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkHeight <= 0 {
		return fmt.Errorf("chunk_height must be positive, got %d", c.ChunkHeight)
	}
	if c.PerlinOctaves <= 0 {
		return fmt.Errorf("perlin_octaves must be positive, got %d", c.PerlinOctaves)
	}
	if c.PerlinScale <= 0 {
		return fmt.Errorf("perlin_scale must be positive, got %v", c.PerlinScale)
	}
	if c.TerrainAmplitude < 0 {
		return fmt.Errorf("terrain_amplitude must not be negative, got %v", c.TerrainAmplitude)
	}
	if _, err := c.Roles(); err != nil {
		return err
	}
	return nil
}

// Roles resolves the configured block role names to kinds.
func (c *Config) Roles() (world.BlockRoles, error) {
	surface, err := world.ParseBlockKind(c.DefaultBlock)
	if err != nil {
		return world.BlockRoles{}, fmt.Errorf("default_block: %w", err)
	}
	secondary, err := world.ParseBlockKind(c.SecondaryBlock)
	if err != nil {
		return world.BlockRoles{}, fmt.Errorf("secondary_block: %w", err)
	}
	foundation, err := world.ParseBlockKind(c.FoundationBlock)
	if err != nil {
		return world.BlockRoles{}, fmt.Errorf("foundation_block: %w", err)
	}
	return world.BlockRoles{Surface: surface, Secondary: secondary, Foundation: foundation}, nil
}
