package voxmesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OcclusionFloatsPerVoxel is the size of one voxel's occlusion block: four
// weight components for each of the cube's 24 vertices.
const OcclusionFloatsPerVoxel = VerticesPerVoxel * 4

// OcclusionCalculator maps a voxel position and a neighbourhood index to
// per-vertex occlusion weights in [0,1]. Implementations must be pure so
// occlusion strategy can vary independently of the buffering core.
type OcclusionCalculator interface {
	Weights(pos mgl32.Vec3, idx *NeighbourhoodIndex) [OcclusionFloatsPerVoxel]float32
}

// occlusionLevels darkens a vertex by how many of its three outward
// neighbour cells are occupied. Level 3 means both in-plane sides are
// blocked, the fully-occluded corner case.
var occlusionLevels = [4]float32{1.0, 0.75, 0.55, 0.35}

// CornerOcclusion is the default calculator: for each cube vertex it samples
// the two side cells and the corner cell adjacent to that vertex beyond the
// face it belongs to, then grades the result on a four-level scale.
type CornerOcclusion struct{}

func (CornerOcclusion) Weights(pos mgl32.Vec3, idx *NeighbourhoodIndex) [OcclusionFloatsPerVoxel]float32 {
	var out [OcclusionFloatsPerVoxel]float32

	for vtx := 0; vtx < VerticesPerVoxel; vtx++ {
		// Corner signs come from the vertex position within the unit cube.
		sx := cornerSign(CubePositions[vtx*3+0])
		sy := cornerSign(CubePositions[vtx*3+1])
		sz := cornerSign(CubePositions[vtx*3+2])

		// The face normal fixes one axis; the remaining two are the
		// in-plane directions toward this vertex's corner.
		nx := int32(CubeNormals[vtx*3+0])
		ny := int32(CubeNormals[vtx*3+1])
		nz := int32(CubeNormals[vtx*3+2])

		var a1, a2 [3]int32
		switch {
		case nx != 0:
			a1 = [3]int32{0, sy, 0}
			a2 = [3]int32{0, 0, sz}
		case ny != 0:
			a1 = [3]int32{sx, 0, 0}
			a2 = [3]int32{0, 0, sz}
		default:
			a1 = [3]int32{sx, 0, 0}
			a2 = [3]int32{0, sy, 0}
		}

		side1 := idx.NeighbourOccupied(pos, nx+a1[0], ny+a1[1], nz+a1[2])
		side2 := idx.NeighbourOccupied(pos, nx+a2[0], ny+a2[1], nz+a2[2])
		corner := idx.NeighbourOccupied(pos, nx+a1[0]+a2[0], ny+a1[1]+a2[1], nz+a1[2]+a2[2])

		level := 0
		if side1 && side2 {
			level = 3
		} else {
			if side1 {
				level++
			}
			if side2 {
				level++
			}
			if corner {
				level++
			}
		}

		w := occlusionLevels[level]
		out[vtx*4+0] = w
		out[vtx*4+1] = w
		out[vtx*4+2] = w
		out[vtx*4+3] = w
	}

	return out
}

func cornerSign(component float32) int32 {
	if component > 0 {
		return 1
	}
	return -1
}
