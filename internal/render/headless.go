package render

import (
	"voxel-sandbox/internal/physics"
	"voxel-sandbox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// HeadlessHost is a SceneHost without a GPU: scene objects are bare handles
// and hover queries are answered by raycasting the terrain store from a
// virtual camera. It doubles as the TextOverlay. Useful for tests, the CLI
// front end, and any driver that does not open a window.
type HeadlessHost struct {
	store *world.TerrainStore
	eye   mgl32.Vec3
	look  mgl32.Vec3
	reach float32

	nextHandle Handle
	objects    map[Handle]*world.Block
	texts      map[string]string
}

// NewHeadlessHost creates a host whose hover ray extends reach units from
// the camera.
func NewHeadlessHost(reach float32) *HeadlessHost {
	return &HeadlessHost{
		look:    mgl32.Vec3{0, -1, 0},
		reach:   reach,
		objects: make(map[Handle]*world.Block),
		texts:   make(map[string]string),
	}
}

// SetStore wires the terrain store the hover ray samples. Must be called
// before the first Hovered query; Instantiate works without it.
func (h *HeadlessHost) SetStore(store *world.TerrainStore) {
	h.store = store
}

// SetCamera positions the virtual eye and normalizes the look direction.
func (h *HeadlessHost) SetCamera(eye, look mgl32.Vec3) {
	h.eye = eye
	if look.Len() > 0 {
		look = look.Normalize()
	}
	h.look = look
}

// Hovered resolves the block under the virtual crosshair via a grid raycast.
func (h *HeadlessHost) Hovered() (*world.Block, mgl32.Vec3, bool) {
	if h.store == nil {
		return nil, mgl32.Vec3{}, false
	}
	result := physics.Raycast(h.eye, h.look, h.reach, h.store)
	if !result.Hit {
		return nil, mgl32.Vec3{}, false
	}
	return result.Block, result.Normal, true
}

// Instantiate records the block as a live scene object and returns its
// handle.
func (h *HeadlessHost) Instantiate(b *world.Block) Handle {
	h.nextHandle++
	h.objects[h.nextHandle] = b
	return h.nextHandle
}

// Dispose drops the scene object. Unknown handles are ignored.
func (h *HeadlessHost) Dispose(handle Handle) {
	delete(h.objects, handle)
}

// ObjectCount returns the number of live scene objects.
func (h *HeadlessHost) ObjectCount() int {
	return len(h.objects)
}

// SetText implements TextOverlay.
func (h *HeadlessHost) SetText(id, text string) {
	h.texts[id] = text
}

// Text returns the last string set for a HUD slot.
func (h *HeadlessHost) Text(id string) string {
	return h.texts[id]
}
