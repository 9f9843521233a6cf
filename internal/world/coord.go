package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GridCoordinate is the integer address of one grid cell. It is the key type
// of the terrain store; continuous positions are always snapped through
// CoordinateOf before any lookup.
type GridCoordinate struct {
	X, Y, Z int
}

// CoordinateOf snaps a continuous position to its grid cell. Each axis rounds
// half away from zero (math.Round), so 0.5 snaps to 1 and -0.5 snaps to -1.
func CoordinateOf(pos mgl32.Vec3) GridCoordinate {
	return GridCoordinate{
		X: int(math.Round(float64(pos.X()))),
		Y: int(math.Round(float64(pos.Y()))),
		Z: int(math.Round(float64(pos.Z()))),
	}
}

// Vec3 returns the center of the cell as a continuous position.
func (c GridCoordinate) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}
