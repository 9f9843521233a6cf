package world

import (
	"voxel-sandbox/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockListener observes structural mutations of the terrain store. Calls
// run top-down from the store, so the rendering side never calls back into
// terrain code.
type BlockListener interface {
	BlockPlaced(*Block)
	BlockRemoved(*Block)
}

// TerrainStore owns the full set of currently placed blocks, keyed by grid
// coordinate. A coordinate is present iff a visible block occupies that cell.
//
// The store is an unbounded sparse map rather than a dense array: the chunk
// volume is small and fixed, sparsity represents removed cells without
// tombstones, and edits may land outside the generated bounds.
//
// All access is single-threaded; every mutation happens on the game loop.
type TerrainStore struct {
	heights   *HeightField
	roles     BlockRoles
	chunkSize int
	blocks    map[GridCoordinate]*Block
	listener  BlockListener
}

// NewTerrainStore builds the store and runs the one-time generation pass.
// The listener (may be nil) sees every generated block before the store is
// returned, and every edit afterwards.
func NewTerrainStore(heights *HeightField, roles BlockRoles, chunkSize int, listener BlockListener) *TerrainStore {
	s := &TerrainStore{
		heights:   heights,
		roles:     roles,
		chunkSize: chunkSize,
		blocks:    make(map[GridCoordinate]*Block),
		listener:  listener,
	}
	s.generateInitialChunk()
	return s
}

// generateInitialChunk fills every column in [-chunkSize/2, chunkSize/2) on
// both lateral axes. Columns with height <= 0 stay empty; no foundation block
// is forced.
func (s *TerrainStore) generateInitialChunk() {
	defer profiling.Track("world.GenerateInitialChunk")()
	half := s.chunkSize / 2
	for x := -half; x < half; x++ {
		for z := -half; z < half; z++ {
			height := s.heights.HeightAt(x, z)
			columnTop := height - 1
			for y := 0; y < height; y++ {
				s.spawn(GridCoordinate{X: x, Y: y, Z: z}, s.roles.KindForLayer(y, columnTop))
			}
		}
	}
}

func (s *TerrainStore) spawn(coord GridCoordinate, kind BlockKind) *Block {
	if existing, ok := s.blocks[coord]; ok {
		return existing
	}
	b := NewBlock(coord, kind)
	s.blocks[coord] = b
	if s.listener != nil {
		s.listener.BlockPlaced(b)
	}
	return b
}

// PlaceAdjacentBlock inserts a new block of the given kind in the cell next
// to anchor along the hit-face normal. An occupied target is a silent no-op;
// placement never overwrites. The normal is trusted to be a unit axis-aligned
// vector, consistent with cube-face hit normals.
func (s *TerrainStore) PlaceAdjacentBlock(anchor, normal mgl32.Vec3, kind BlockKind) {
	target := CoordinateOf(anchor.Add(normal))
	if _, ok := s.blocks[target]; ok {
		return
	}
	s.spawn(target, kind)
}

// RemoveBlock evicts the block from its cell, notifying the listener first.
// A coordinate no longer present means the reference is stale; that is a
// normal race with input processing and a silent no-op.
func (s *TerrainStore) RemoveBlock(b *Block) {
	coord := CoordinateOf(b.Position())
	if _, ok := s.blocks[coord]; !ok {
		return
	}
	if s.listener != nil {
		s.listener.BlockRemoved(b)
	}
	delete(s.blocks, coord)
}

// BlockAt looks up the block occupying the cell under the given continuous
// position, or nil if the cell is empty.
func (s *TerrainStore) BlockAt(pos mgl32.Vec3) *Block {
	return s.blocks[CoordinateOf(pos)]
}

// ActiveBlockCount returns the current occupancy. O(1); cheap enough for
// per-frame HUD display.
func (s *TerrainStore) ActiveBlockCount() int {
	return len(s.blocks)
}

// ActiveBlocks returns all placed blocks in no particular order.
func (s *TerrainStore) ActiveBlocks() []*Block {
	out := make([]*Block, 0, len(s.blocks))
	for _, b := range s.blocks {
		out = append(out, b)
	}
	return out
}
