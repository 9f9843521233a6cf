package physics

import (
	"math"

	"voxel-sandbox/internal/profiling"
	"voxel-sandbox/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinReachDistance skips samples right at the eye so the viewer's own
	// cell never counts as a hit.
	MinReachDistance = 0.1

	stepSize = 0.02
)

// RaycastResult stores the outcome of a raycast operation.
type RaycastResult struct {
	Block    *world.Block
	Normal   mgl32.Vec3 // unit axis-aligned normal of the hit face
	Distance float32
	Hit      bool
}

// Raycast marches from start along direction in fixed steps, sampling the
// terrain store at each point. On the first occupied cell it reports the
// block plus the face normal, derived from the last empty cell the ray
// crossed before entering the hit cell.
func Raycast(start, direction mgl32.Vec3, maxDist float32, store *world.TerrainStore) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	steps := int(maxDist / stepSize)
	var lastEmpty world.GridCoordinate
	haveEmpty := false

	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < MinReachDistance {
			continue
		}

		pos := start.Add(direction.Mul(dist))
		coord := world.CoordinateOf(pos)

		b := store.BlockAt(pos)
		if b == nil {
			lastEmpty = coord
			haveEmpty = true
			continue
		}

		return RaycastResult{
			Block:    b,
			Normal:   faceNormal(lastEmpty, coord, haveEmpty, direction),
			Distance: dist,
			Hit:      true,
		}
	}

	return RaycastResult{}
}

// faceNormal derives the entry-face normal from the transition between the
// last empty cell and the hit cell. When the small step crossed more than
// one cell boundary at once, the axis the ray travels fastest along wins.
func faceNormal(lastEmpty, hit world.GridCoordinate, haveEmpty bool, direction mgl32.Vec3) mgl32.Vec3 {
	if !haveEmpty {
		// Ray started inside a block; fall back to facing the viewer.
		return pickAxis(direction.Mul(-1))
	}

	dx := lastEmpty.X - hit.X
	dy := lastEmpty.Y - hit.Y
	dz := lastEmpty.Z - hit.Z

	changed := 0
	if dx != 0 {
		changed++
	}
	if dy != 0 {
		changed++
	}
	if dz != 0 {
		changed++
	}
	if changed == 1 {
		return mgl32.Vec3{clampUnit(dx), clampUnit(dy), clampUnit(dz)}
	}
	return pickAxis(direction.Mul(-1))
}

func clampUnit(d int) float32 {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// pickAxis collapses an arbitrary vector onto its dominant axis as a unit
// vector.
func pickAxis(v mgl32.Vec3) mgl32.Vec3 {
	ax := math.Abs(float64(v.X()))
	ay := math.Abs(float64(v.Y()))
	az := math.Abs(float64(v.Z()))

	switch {
	case ax >= ay && ax >= az:
		return mgl32.Vec3{sign(v.X()), 0, 0}
	case ay >= az:
		return mgl32.Vec3{0, sign(v.Y()), 0}
	default:
		return mgl32.Vec3{0, 0, sign(v.Z())}
	}
}

func sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}
