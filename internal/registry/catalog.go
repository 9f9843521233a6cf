package registry

import (
	"fmt"
	"image/color"

	"voxel-sandbox/internal/world"
)

// BlockDefinition holds the visual identity of one block kind. Definitions
// are immutable once registered.
type BlockDefinition struct {
	Kind           world.BlockKind
	Name           string
	BaseColor      color.RGBA
	HighlightColor color.RGBA
	TextureName    string // texture file name; empty means solid color only
}

// Catalog maps every block kind to exactly one definition. The built-in
// kinds are registered up front; lookup of an unregistered kind is a
// configuration error, not a recoverable runtime condition.
type Catalog struct {
	defs  map[world.BlockKind]*BlockDefinition
	order []world.BlockKind
}

// NewCatalog builds a catalog pre-populated with the built-in block kinds.
func NewCatalog() *Catalog {
	c := &Catalog{defs: make(map[world.BlockKind]*BlockDefinition)}

	c.Register(&BlockDefinition{
		Kind:           world.KindGrass,
		Name:           "grass",
		BaseColor:      color.RGBA{R: 95, G: 159, B: 53, A: 255},
		HighlightColor: color.RGBA{R: 123, G: 190, B: 82, A: 255},
		TextureName:    "grass_top.png",
	})
	c.Register(&BlockDefinition{
		Kind:           world.KindDirt,
		Name:           "dirt",
		BaseColor:      color.RGBA{R: 151, G: 106, B: 68, A: 255},
		HighlightColor: color.RGBA{R: 181, G: 141, B: 102, A: 255},
		TextureName:    "dirt.png",
	})
	c.Register(&BlockDefinition{
		Kind:           world.KindStone,
		Name:           "stone",
		BaseColor:      color.RGBA{R: 130, G: 130, B: 130, A: 255},
		HighlightColor: color.RGBA{R: 169, G: 169, B: 169, A: 255},
		TextureName:    "stone.png",
	})

	return c
}

// Register adds or replaces the definition for a kind.
func (c *Catalog) Register(def *BlockDefinition) {
	if _, exists := c.defs[def.Kind]; !exists {
		c.order = append(c.order, def.Kind)
	}
	c.defs[def.Kind] = def
}

// DefinitionOf returns the definition for a kind. An unknown kind means the
// enumeration and the catalog fell out of lock-step.
func (c *Catalog) DefinitionOf(kind world.BlockKind) (*BlockDefinition, error) {
	def, ok := c.defs[kind]
	if !ok {
		return nil, fmt.Errorf("no block definition registered for kind %s", kind)
	}
	return def, nil
}

// Kinds returns all registered kinds in registration order. The hotkey
// mapping (1..n) follows this order.
func (c *Catalog) Kinds() []world.BlockKind {
	out := make([]world.BlockKind, len(c.order))
	copy(out, c.order)
	return out
}
