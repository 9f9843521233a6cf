package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"voxel-sandbox/internal/registry"

	"golang.org/x/image/draw"
)

// TextureSize is the edge length every block texture is normalized to.
const TextureSize = 16

// Provider resolves block definitions to pixel data. Textures are loaded
// from disk once and cached for the life of the session; a missing or
// corrupt file degrades to a solid fill of the definition's base color and
// never blocks gameplay.
type Provider struct {
	mu    sync.RWMutex
	dir   string
	cache map[string]image.Image
}

// NewProvider creates a provider rooted at the given texture directory.
func NewProvider(dir string) *Provider {
	return &Provider{
		dir:   dir,
		cache: make(map[string]image.Image),
	}
}

// Texture returns the pixel data for a block definition.
func (p *Provider) Texture(def *registry.BlockDefinition) image.Image {
	key := def.TextureName
	if key == "" {
		key = "solid:" + def.Name
	}

	p.mu.RLock()
	if img, ok := p.cache[key]; ok {
		p.mu.RUnlock()
		return img
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double check locking
	if img, ok := p.cache[key]; ok {
		return img
	}

	img := p.resolve(def)
	p.cache[key] = img
	return img
}

func (p *Provider) resolve(def *registry.BlockDefinition) image.Image {
	if def.TextureName == "" {
		return solidFill(def)
	}
	img, err := p.load(def.TextureName)
	if err != nil {
		fmt.Printf("Warning: failed to load texture %s: %v\n", def.TextureName, err)
		return solidFill(def)
	}
	return img
}

func (p *Provider) load(name string) (image.Image, error) {
	f, err := os.Open(filepath.Join(p.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	if bounds.Dx() == TextureSize && bounds.Dy() == TextureSize {
		return src, nil
	}

	// Normalize odd-sized textures to the block texture size.
	dst := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst, nil
}

func solidFill(def *registry.BlockDefinition) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			img.SetRGBA(x, y, def.BaseColor)
		}
	}
	return img
}
