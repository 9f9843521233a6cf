package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"voxel-sandbox/internal/registry"
	"voxel-sandbox/internal/world"
)

func grassDef() *registry.BlockDefinition {
	return &registry.BlockDefinition{
		Kind:        world.KindGrass,
		Name:        "grass",
		BaseColor:   color.RGBA{R: 95, G: 159, B: 53, A: 255},
		TextureName: "grass_top.png",
	}
}

// TestMissingTextureFallsBackToBaseColor verifies a missing file degrades to
// a solid fill of the definition's base color.
func TestMissingTextureFallsBackToBaseColor(t *testing.T) {
	p := NewProvider(t.TempDir())

	img := p.Texture(grassDef())
	if img == nil {
		t.Fatal("Texture returned nil")
	}
	bounds := img.Bounds()
	if bounds.Dx() != TextureSize || bounds.Dy() != TextureSize {
		t.Fatalf("fallback bounds = %v, want %dx%d", bounds, TextureSize, TextureSize)
	}
	r, g, b, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 95 || uint8(g>>8) != 159 || uint8(b>>8) != 53 {
		t.Errorf("fallback pixel = (%d,%d,%d), want base color (95,159,53)", r>>8, g>>8, b>>8)
	}
}

// TestCorruptTextureFallsBack verifies undecodable files degrade the same
// way instead of failing.
func TestCorruptTextureFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "grass_top.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := NewProvider(dir)
	img := p.Texture(grassDef())
	r, g, b, _ := img.At(3, 3).RGBA()
	if uint8(r>>8) != 95 || uint8(g>>8) != 159 || uint8(b>>8) != 53 {
		t.Errorf("corrupt-file pixel = (%d,%d,%d), want base color", r>>8, g>>8, b>>8)
	}
}

// TestTextureLoadedOnceAndCached verifies repeat resolution returns the
// cached image instead of reloading.
func TestTextureLoadedOnceAndCached(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "grass_top.png"), 16)

	p := NewProvider(dir)
	def := grassDef()

	first := p.Texture(def)
	// Deleting the backing file proves the second resolution never touches
	// disk.
	if err := os.Remove(filepath.Join(dir, "grass_top.png")); err != nil {
		t.Fatal(err)
	}
	second := p.Texture(def)

	if first != second {
		t.Error("second resolution did not return the cached image")
	}
}

// TestTextureNormalizedToBlockSize verifies odd-sized textures are scaled to
// the block texture size.
func TestTextureNormalizedToBlockSize(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "grass_top.png"), 8)

	p := NewProvider(dir)
	img := p.Texture(grassDef())

	bounds := img.Bounds()
	if bounds.Dx() != TextureSize || bounds.Dy() != TextureSize {
		t.Errorf("normalized bounds = %v, want %dx%d", bounds, TextureSize, TextureSize)
	}
}

// TestUntexturedDefinitionUsesSolidFill verifies an empty texture name skips
// disk entirely.
func TestUntexturedDefinitionUsesSolidFill(t *testing.T) {
	p := NewProvider(t.TempDir())
	def := &registry.BlockDefinition{
		Kind:      world.KindStone,
		Name:      "stone",
		BaseColor: color.RGBA{R: 130, G: 130, B: 130, A: 255},
	}

	img := p.Texture(def)
	r, g, b, _ := img.At(7, 7).RGBA()
	if uint8(r>>8) != 130 || uint8(g>>8) != 130 || uint8(b>>8) != 130 {
		t.Errorf("solid fill pixel = (%d,%d,%d), want (130,130,130)", r>>8, g>>8, b>>8)
	}
}

func writeTestPNG(t *testing.T, path string, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 10, G: 200, B: 30, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}
