package voxmesh

import (
	"fmt"
	"math"
)

// Per-voxel element counts for the fixed cube template.
const (
	VerticesPerVoxel  = 24
	TrianglesPerVoxel = 12
	IndicesPerVoxel   = TrianglesPerVoxel * 3
)

// AttributeBuffer is one dense, non-interleaved vertex attribute array in a
// layout a graphics API can bind directly.
type AttributeBuffer struct {
	Name          string
	NumComponents int
	Data          []float32
}

// IndexBuffer holds triangle indices, three per triangle.
type IndexBuffer struct {
	Name          string
	NumComponents int
	Data          []uint32
}

// ChunkResult is the buffered output for one fixed-size slice of the voxel
// sequence. Buffers are freshly allocated per chunk and never mutated after
// the result is returned, so callers may retain them across later chunks.
type ChunkResult struct {
	Position  AttributeBuffer
	Color     AttributeBuffer
	Occlusion AttributeBuffer
	Normal    AttributeBuffer
	TexCoord  AttributeBuffer
	Indices   IndexBuffer

	// VoxelCount is the number of voxels buffered into this chunk; the last
	// chunk may hold fewer than the configured chunk size.
	VoxelCount int
	// IndexCount is the total number of index elements (VoxelCount * 36).
	IndexCount int
	// MoreChunks reports whether voxels remain beyond this chunk.
	MoreChunks bool
	// Progress is voxels consumed before this chunk over total voxels, in [0,1).
	Progress float64
}

// texcoord has 2 components, everything else 3 or 4; the widest per-voxel
// buffer is occlusion/colour at 24*4 = 96 floats.
const maxChunkVoxels = math.MaxInt32 / (VerticesPerVoxel * 4)

// newChunkBuffers allocates the six-buffer set sized exactly for count
// voxels. The occlusion buffer is pre-filled with 1.0 (fully unoccluded) so
// the occlusion-disabled path needs no further writes. Oversized chunks are
// reported as a recoverable error; callers may retry with a smaller chunk
// size.
func newChunkBuffers(count int) (*ChunkResult, error) {
	if count > maxChunkVoxels {
		return nil, fmt.Errorf("chunk of %d voxels exceeds the maximum bufferable size of %d", count, maxChunkVoxels)
	}

	chunk := &ChunkResult{
		Position:  AttributeBuffer{Name: "position", NumComponents: 3, Data: make([]float32, count*VerticesPerVoxel*3)},
		Color:     AttributeBuffer{Name: "color", NumComponents: 4, Data: make([]float32, count*VerticesPerVoxel*4)},
		Occlusion: AttributeBuffer{Name: "occlusion", NumComponents: 4, Data: make([]float32, count*VerticesPerVoxel*4)},
		Normal:    AttributeBuffer{Name: "normal", NumComponents: 3, Data: make([]float32, count*VerticesPerVoxel*3)},
		TexCoord:  AttributeBuffer{Name: "texcoord", NumComponents: 2, Data: make([]float32, count*VerticesPerVoxel*2)},
		Indices:   IndexBuffer{Name: "indices", NumComponents: 3, Data: make([]uint32, count*IndicesPerVoxel)},
	}
	for i := range chunk.Occlusion.Data {
		chunk.Occlusion.Data[i] = 1.0
	}
	return chunk, nil
}
