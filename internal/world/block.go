package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// BlockKind identifies a block type.
type BlockKind uint8

const (
	KindGrass BlockKind = iota
	KindDirt
	KindStone
	KindCount // Sentinel value for iteration and validation
)

var kindNames = [KindCount]string{
	KindGrass: "grass",
	KindDirt:  "dirt",
	KindStone: "stone",
}

func (k BlockKind) String() string {
	if k >= KindCount {
		return fmt.Sprintf("BlockKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseBlockKind resolves a kind by its configuration name.
func ParseBlockKind(name string) (BlockKind, error) {
	for k, n := range kindNames {
		if n == name {
			return BlockKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown block kind %q", name)
}

// Block is one placed block instance. The ID is the render identity: it lets
// the scene host tell instances apart when reporting hits, without the host
// ever owning the block.
type Block struct {
	ID    uuid.UUID
	Kind  BlockKind
	Coord GridCoordinate
}

// NewBlock creates a block instance at the given cell.
func NewBlock(coord GridCoordinate, kind BlockKind) *Block {
	return &Block{
		ID:    uuid.New(),
		Kind:  kind,
		Coord: coord,
	}
}

// Position returns the block's cell center as a continuous position.
func (b *Block) Position() mgl32.Vec3 {
	return b.Coord.Vec3()
}
