package voxmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AdjacencyMode selects which neighbour cells count as adjacent.
type AdjacencyMode int

const (
	// AdjacencyCardinal considers only the 6 face-sharing neighbours.
	AdjacencyCardinal AdjacencyMode = iota
	// AdjacencyNonCardinal considers all 26 surrounding cells, including
	// edge and corner diagonals. Occlusion weighting needs this mode.
	AdjacencyNonCardinal
)

type gridCell [3]int32

// NeighbourhoodIndex is a precomputed occupancy index over a voxel model,
// answering the adjacency queries occlusion weighting needs. It snapshots
// occupancy at build time; mutating the source model afterwards does not
// affect it.
type NeighbourhoodIndex struct {
	mode  AdjacencyMode
	cells map[gridCell]struct{}
}

// BuildNeighbourhoodIndex indexes the full voxel set of model. Voxel
// positions are quantized to integer grid cells.
func BuildNeighbourhoodIndex(model *VoxelModel, mode AdjacencyMode) *NeighbourhoodIndex {
	idx := &NeighbourhoodIndex{
		mode:  mode,
		cells: make(map[gridCell]struct{}, model.VoxelCount()),
	}
	for _, v := range model.Voxels() {
		idx.cells[cellOf(v.Position)] = struct{}{}
	}
	return idx
}

func cellOf(pos mgl32.Vec3) gridCell {
	return gridCell{
		int32(math.Floor(float64(pos.X()))),
		int32(math.Floor(float64(pos.Y()))),
		int32(math.Floor(float64(pos.Z()))),
	}
}

func (idx *NeighbourhoodIndex) Mode() AdjacencyMode {
	return idx.mode
}

// Occupied reports whether the grid cell at (x,y,z) holds a voxel.
func (idx *NeighbourhoodIndex) Occupied(x, y, z int32) bool {
	_, ok := idx.cells[gridCell{x, y, z}]
	return ok
}

// NeighbourOccupied reports whether the cell at offset (dx,dy,dz) from pos is
// occupied. Offsets outside the index's adjacency mode report false: a
// cardinal index answers only the 6 face-sharing offsets.
func (idx *NeighbourhoodIndex) NeighbourOccupied(pos mgl32.Vec3, dx, dy, dz int32) bool {
	if idx.mode == AdjacencyCardinal && abs32(dx)+abs32(dy)+abs32(dz) > 1 {
		return false
	}
	c := cellOf(pos)
	return idx.Occupied(c[0]+dx, c[1]+dy, c[2]+dz)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
