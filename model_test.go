package voxmesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelFromVox_ResolvesPalette(t *testing.T) {
	grid := VoxGridModel{
		SizeX: 2, SizeY: 2, SizeZ: 2,
		Voxels: []VoxGridVoxel{
			{X: 0, Y: 0, Z: 0, ColorIndex: 1},
			{X: 1, Y: 1, Z: 1, ColorIndex: 2},
		},
	}
	palette := defaultVoxPalette()
	palette[1] = [4]byte{255, 0, 0, 255}
	palette[2] = [4]byte{0, 0, 255, 51}

	model := ModelFromVox(grid, palette)
	require.Equal(t, 2, model.VoxelCount())

	v0 := model.Voxels()[0]
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, v0.Position)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, v0.Color)

	v1 := model.Voxels()[1]
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, v1.Position)
	assert.InDelta(t, 1.0, v1.Color[2], 1e-6)
	assert.InDelta(t, 0.2, v1.Color[3], 1e-6)
}

func TestScaleModel_IdentityAndInvalidFactors(t *testing.T) {
	model := makeTestModel(4)
	assert.Same(t, model, ScaleModel(model, 1.0))
	assert.Same(t, model, ScaleModel(model, 0))
	assert.Same(t, model, ScaleModel(model, -2))
}

func TestScaleModel_UpscaleReplicates(t *testing.T) {
	model := NewVoxelModel([]Voxel{
		{Position: mgl32.Vec3{0, 0, 0}, Color: mgl32.Vec4{1, 0, 0, 1}},
	})

	scaled := ScaleModel(model, 2.0)
	// One voxel becomes a 2x2x2 block.
	require.Equal(t, 8, scaled.VoxelCount())
	for _, v := range scaled.Voxels() {
		assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, v.Color)
		for c := 0; c < 3; c++ {
			assert.Contains(t, []float32{0, 1}, v.Position[c])
		}
	}
}

func TestScaleModel_DownscaleVotesMajorityColour(t *testing.T) {
	red := mgl32.Vec4{1, 0, 0, 1}
	blue := mgl32.Vec4{0, 0, 1, 1}

	// A 2x2x2 block collapsing into one cell: 7 red voxels, 1 blue.
	voxels := make([]Voxel, 0, 8)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				color := red
				if x == 0 && y == 0 && z == 0 {
					color = blue
				}
				voxels = append(voxels, Voxel{
					Position: mgl32.Vec3{float32(x), float32(y), float32(z)},
					Color:    color,
				})
			}
		}
	}

	scaled := ScaleModel(NewVoxelModel(voxels), 0.5)
	require.Equal(t, 1, scaled.VoxelCount())
	assert.Equal(t, red, scaled.Voxels()[0].Color)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, scaled.Voxels()[0].Position)
}
