package render

import (
	"voxel-sandbox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Handle is an opaque reference to one instantiated scene object. The core
// never inspects it; it only hands it back for disposal.
type Handle uint64

// SceneHost is the boundary to the rendering engine. It turns blocks into
// visible, collidable objects and answers hover queries. Implementations own
// the scene graph; the terrain store keeps ownership of the blocks.
type SceneHost interface {
	// Hovered reports the block currently under the cursor and the unit
	// normal of the hit face. ok is false when the ray missed everything or
	// hit a non-block object.
	Hovered() (block *world.Block, normal mgl32.Vec3, ok bool)

	// Instantiate makes a block visible and collidable.
	Instantiate(*world.Block) Handle

	// Dispose removes the scene object behind the handle.
	Dispose(Handle)
}

// TextOverlay displays HUD strings keyed by slot id. No logic.
type TextOverlay interface {
	SetText(id, text string)
}
