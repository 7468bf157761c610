package voxmesh

import (
	"fmt"
	"io"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportGLB writes the builder's full chunk sequence to w as a binary glTF
// document, one mesh primitive per chunk. Chunks already produced are taken
// from the cache; the rest are produced in order. Occlusion weights are baked
// into COLOR_0 (glTF has no per-vertex occlusion attribute); with occlusion
// disabled the bake multiplies by 1.0 and colours pass through untouched.
func ExportGLB(w io.Writer, builder *ChunkedBufferBuilder) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxmesh"

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{
		PBRMetallicRoughness: pbr,
		AlphaMode:            gltf.AlphaOpaque,
	}}

	mesh := &gltf.Mesh{Name: "voxels"}
	for i := 0; i < builder.ChunkCount(); i++ {
		chunk, ok := builder.Get(i)
		if !ok {
			var err error
			chunk, err = builder.ProduceNext()
			if err != nil {
				return fmt.Errorf("buffering chunk %d: %w", i, err)
			}
		}
		mesh.Primitives = append(mesh.Primitives, chunkPrimitive(doc, chunk))
	}
	doc.Meshes = []*gltf.Mesh{mesh}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	return enc.Encode(doc)
}

// SaveGLB is ExportGLB to a file path.
func SaveGLB(path string, builder *ChunkedBufferBuilder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ExportGLB(f, builder); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func chunkPrimitive(doc *gltf.Document, chunk *ChunkResult) *gltf.Primitive {
	vertexCount := chunk.VoxelCount * VerticesPerVoxel

	positions := make([][3]float32, vertexCount)
	normals := make([][3]float32, vertexCount)
	texcoords := make([][2]float32, vertexCount)
	colors := make([][4]float32, vertexCount)

	for i := 0; i < vertexCount; i++ {
		copy(positions[i][:], chunk.Position.Data[i*3:i*3+3])
		copy(normals[i][:], chunk.Normal.Data[i*3:i*3+3])
		copy(texcoords[i][:], chunk.TexCoord.Data[i*2:i*2+2])

		// Occlusion darkens the colour channels; alpha stays the voxel's own.
		colors[i][0] = chunk.Color.Data[i*4+0] * chunk.Occlusion.Data[i*4+0]
		colors[i][1] = chunk.Color.Data[i*4+1] * chunk.Occlusion.Data[i*4+1]
		colors[i][2] = chunk.Color.Data[i*4+2] * chunk.Occlusion.Data[i*4+2]
		colors[i][3] = chunk.Color.Data[i*4+3]
	}

	indices := make([]uint32, len(chunk.Indices.Data))
	copy(indices, chunk.Indices.Data)

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION:   uint32(modeler.WritePosition(doc, positions)),
			gltf.NORMAL:     uint32(modeler.WriteNormal(doc, normals)),
			gltf.TEXCOORD_0: uint32(modeler.WriteTextureCoord(doc, texcoords)),
			gltf.COLOR_0:    uint32(modeler.WriteColor(doc, colors)),
		},
		Indices:  gltf.Index(uint32(modeler.WriteIndices(doc, indices))),
		Material: gltf.Index(0),
	}
	return prim
}
