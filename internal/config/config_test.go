package config

import (
	"os"
	"path/filepath"
	"testing"

	"voxel-sandbox/internal/world"
)

// TestDefaultsAreValid verifies the built-in configuration passes its own
// validation.
func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
	if cfg.ChunkSize != 20 || cfg.ChunkHeight != 8 {
		t.Errorf("default chunk dims = %dx%d, want 20x8", cfg.ChunkSize, cfg.ChunkHeight)
	}
	if cfg.PerlinSeed != 3817 || cfg.PerlinOctaves != 3 {
		t.Errorf("default noise params = seed %d octaves %d, want 3817/3", cfg.PerlinSeed, cfg.PerlinOctaves)
	}
}

// TestLoadEmptyPathUsesDefaults verifies Load("") returns the defaults.
func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if *cfg != *Default() {
		t.Error("Load(\"\") differs from Default()")
	}
}

// TestLoadOverlaysFile verifies YAML values apply on top of defaults,
// leaving unmentioned fields alone.
func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("chunk_size: 8\nperlin_seed: 99\ndefault_block: stone\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ChunkSize != 8 || cfg.PerlinSeed != 99 {
		t.Errorf("overrides not applied: chunk_size=%d perlin_seed=%d", cfg.ChunkSize, cfg.PerlinSeed)
	}
	if cfg.DefaultBlock != "stone" {
		t.Errorf("default_block = %q, want stone", cfg.DefaultBlock)
	}
	if cfg.ChunkHeight != 8 || cfg.PerlinScale != 48.0 {
		t.Error("unmentioned fields lost their defaults")
	}
}

// TestValidateRejectsBadDimensions verifies generation-critical tunables are
// checked before any generation runs.
func TestValidateRejectsBadDimensions(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.ChunkSize = 0 },
		func(c *Config) { c.ChunkSize = -4 },
		func(c *Config) { c.ChunkHeight = 0 },
		func(c *Config) { c.PerlinOctaves = 0 },
		func(c *Config) { c.PerlinScale = 0 },
		func(c *Config) { c.TerrainAmplitude = -1 },
	}

	for i, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: Validate() accepted an invalid config", i)
		}
	}
}

// TestValidateRejectsUnknownBlockRole verifies a role naming an unregistered
// kind fails at startup.
func TestValidateRejectsUnknownBlockRole(t *testing.T) {
	cfg := Default()
	cfg.SecondaryBlock = "obsidian"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted unknown secondary_block")
	}
}

// TestRolesResolveKinds verifies role names map to the expected kinds.
func TestRolesResolveKinds(t *testing.T) {
	roles, err := Default().Roles()
	if err != nil {
		t.Fatalf("Roles() failed: %v", err)
	}
	want := world.BlockRoles{Surface: world.KindGrass, Secondary: world.KindDirt, Foundation: world.KindStone}
	if roles != want {
		t.Errorf("Roles() = %+v, want %+v", roles, want)
	}
}
