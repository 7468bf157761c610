package voxmesh

import (
	"fmt"
)

// ChunkedBufferBuilder incrementally converts a voxel model into fixed-size
// GPU-consumable chunks. It snapshots the model at construction, so later
// mutation of the source does not affect produced or in-flight chunks.
//
// Chunks must be requested sequentially via ProduceNext, starting at index 0;
// produced chunks are cached and retrievable at random via Get. The builder
// is single-owner and synchronous; callers needing incremental responsiveness
// drive ProduceNext from their own scheduling loop.
type ChunkedBufferBuilder struct {
	voxels    []Voxel
	total     int
	chunkSize int
	cursor    int
	cache     map[int]*ChunkResult

	neighbours *NeighbourhoodIndex
	occlusion  OcclusionCalculator
}

// NewChunkedBufferBuilder snapshots model and prepares sequential chunk
// production with chunkSize voxels per chunk. If withOcclusion is set, a
// non-cardinal neighbourhood index is built eagerly over the full voxel set
// and the default corner-occlusion calculator weights every chunk; otherwise
// every occlusion component stays at 1.0.
//
// A chunk size below 1 is caller misuse and panics.
func NewChunkedBufferBuilder(model *VoxelModel, chunkSize int, withOcclusion bool) *ChunkedBufferBuilder {
	var calc OcclusionCalculator
	if withOcclusion {
		calc = CornerOcclusion{}
	}
	return NewChunkedBufferBuilderWithCalculator(model, chunkSize, calc)
}

// NewChunkedBufferBuilderWithCalculator is the swappable-strategy variant:
// occlusion buffering is enabled iff calc is non-nil.
func NewChunkedBufferBuilderWithCalculator(model *VoxelModel, chunkSize int, calc OcclusionCalculator) *ChunkedBufferBuilder {
	if chunkSize <= 0 {
		panic(fmt.Sprintf("voxmesh: chunk size must be positive, got %d", chunkSize))
	}

	b := &ChunkedBufferBuilder{
		voxels:    append([]Voxel(nil), model.Voxels()...),
		total:     model.VoxelCount(),
		chunkSize: chunkSize,
		cache:     make(map[int]*ChunkResult),
		occlusion: calc,
	}
	if calc != nil {
		b.neighbours = BuildNeighbourhoodIndex(model, AdjacencyNonCardinal)
	}
	return b
}

// TotalVoxels returns the snapshot's voxel count.
func (b *ChunkedBufferBuilder) TotalVoxels() int {
	return b.total
}

// ChunkCount returns the number of chunks the snapshot will produce,
// ceil(total / chunkSize).
func (b *ChunkedBufferBuilder) ChunkCount() int {
	return (b.total + b.chunkSize - 1) / b.chunkSize
}

// HasMore reports whether another ProduceNext call is valid.
func (b *ChunkedBufferBuilder) HasMore() bool {
	return b.cursor*b.chunkSize < b.total
}

// Get returns the chunk previously produced at index, or false if that index
// has not been produced yet. It never triggers generation.
func (b *ChunkedBufferBuilder) Get(index int) (*ChunkResult, bool) {
	chunk, ok := b.cache[index]
	return chunk, ok
}

// ProduceNext buffers the next chunk of the voxel sequence, caches it at the
// current cursor and advances the cursor. Calling it when no voxels remain
// violates the sequential-cursor contract and panics; the only recoverable
// failure is an oversized allocation.
func (b *ChunkedBufferBuilder) ProduceNext() (*ChunkResult, error) {
	start := b.cursor * b.chunkSize
	if start >= b.total {
		panic(fmt.Sprintf("voxmesh: chunk %d starts at voxel %d, past the end of the %d-voxel model", b.cursor, start, b.total))
	}
	end := start + b.chunkSize
	if end > b.total {
		end = b.total
	}
	count := end - start

	chunk, err := newChunkBuffers(count)
	if err != nil {
		return nil, err
	}

	// Normals and texcoords never vary per voxel: write the template into
	// the first voxel's slot once, then block-copy it into every other slot.
	copy(chunk.Normal.Data, CubeNormals[:])
	copy(chunk.TexCoord.Data, CubeTexCoords[:])
	for i := 1; i < count; i++ {
		copy(chunk.Normal.Data[i*len(CubeNormals):], chunk.Normal.Data[:len(CubeNormals)])
		copy(chunk.TexCoord.Data[i*len(CubeTexCoords):], chunk.TexCoord.Data[:len(CubeTexCoords)])
	}

	for i := 0; i < count; i++ {
		v := b.voxels[start+i]

		// Template cube translated by the voxel's world position.
		posBase := i * VerticesPerVoxel * 3
		for c := 0; c < VerticesPerVoxel*3; c++ {
			chunk.Position.Data[posBase+c] = CubePositions[c] + v.Position[c%3]
		}

		// One RGBA replicated across the cube's 24 vertices.
		colBase := i * VerticesPerVoxel * 4
		for vtx := 0; vtx < VerticesPerVoxel; vtx++ {
			o := colBase + vtx*4
			chunk.Color.Data[o+0] = v.Color[0]
			chunk.Color.Data[o+1] = v.Color[1]
			chunk.Color.Data[o+2] = v.Color[2]
			chunk.Color.Data[o+3] = v.Color[3]
		}

		// Indices reference only this voxel's own 24-vertex block.
		idxBase := i * IndicesPerVoxel
		vertOffset := uint32(i) * VerticesPerVoxel
		for c := 0; c < IndicesPerVoxel; c++ {
			chunk.Indices.Data[idxBase+c] = CubeIndices[c] + vertOffset
		}

		// Occlusion genuinely varies per voxel and per vertex; without a
		// calculator the buffer keeps its 1.0 fill.
		if b.occlusion != nil {
			weights := b.occlusion.Weights(v.Position, b.neighbours)
			copy(chunk.Occlusion.Data[i*OcclusionFloatsPerVoxel:], weights[:])
		}
	}

	chunk.VoxelCount = count
	chunk.IndexCount = count * IndicesPerVoxel
	chunk.MoreChunks = end != b.total
	chunk.Progress = float64(start) / float64(b.total)

	b.cache[b.cursor] = chunk
	b.cursor++
	return chunk, nil
}
