package game

import (
	"voxel-sandbox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// EditEngine translates hover hits into terrain mutations. It is stateless
// between events: every request is independent, there is no selection or
// drag mode.
type EditEngine struct {
	store *world.TerrainStore
}

// NewEditEngine wraps the store with the gameplay edit rules.
func NewEditEngine(store *world.TerrainStore) *EditEngine {
	return &EditEngine{store: store}
}

// HandlePlace inserts a block of kind next to the hovered block, along the
// hit-face normal. A nil hovered block (ray missed everything) is ignored;
// an occupied target cell is the store's silent no-op.
func (e *EditEngine) HandlePlace(hovered *world.Block, normal mgl32.Vec3, kind world.BlockKind) {
	if hovered == nil {
		return
	}
	e.store.PlaceAdjacentBlock(hovered.Position(), normal, kind)
}

// HandleRemove removes the hovered block. A nil hovered block is ignored,
// and the floor layer (y <= 0) can never be removed.
func (e *EditEngine) HandleRemove(hovered *world.Block) {
	if hovered == nil {
		return
	}
	if hovered.Coord.Y <= 0 {
		return
	}
	e.store.RemoveBlock(hovered)
}
