package voxmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Voxel is one unit cube sample of a model: a world position and a
// normalized RGBA colour. Voxels carry no identity beyond position+colour;
// duplicates are legal and buffered independently.
type Voxel struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
}

// VoxelModel is an ordered, finite collection of voxels with a stable
// iteration order.
type VoxelModel struct {
	voxels []Voxel
}

func NewVoxelModel(voxels []Voxel) *VoxelModel {
	return &VoxelModel{voxels: voxels}
}

func (m *VoxelModel) Add(v Voxel) {
	m.voxels = append(m.voxels, v)
}

func (m *VoxelModel) VoxelCount() int {
	return len(m.voxels)
}

// Voxels returns the model's voxels in iteration order. The slice is the
// model's backing storage; consumers that must survive later mutation (the
// chunked builder does) take their own copy.
func (m *VoxelModel) Voxels() []Voxel {
	return m.voxels
}

// ModelFromVox resolves a parsed .vox grid model against its palette into a
// renderable voxel model with normalized colours.
func ModelFromVox(grid VoxGridModel, palette VoxPalette) *VoxelModel {
	voxels := make([]Voxel, 0, len(grid.Voxels))
	for _, gv := range grid.Voxels {
		c := palette[gv.ColorIndex]
		voxels = append(voxels, Voxel{
			Position: mgl32.Vec3{float32(gv.X), float32(gv.Y), float32(gv.Z)},
			Color: mgl32.Vec4{
				float32(c[0]) / 255.0,
				float32(c[1]) / 255.0,
				float32(c[2]) / 255.0,
				float32(c[3]) / 255.0,
			},
		})
	}
	return NewVoxelModel(voxels)
}

// ScaleModel resamples a model by the given factor. Upscaling replicates
// each voxel across its enlarged footprint; downscaling groups voxels into
// target cells and keeps the majority colour per cell. A factor of 1 (or
// anything non-positive) returns the model unchanged.
func ScaleModel(model *VoxelModel, scale float32) *VoxelModel {
	if scale <= 0 || scale == 1.0 {
		return model
	}

	if scale > 1.0 {
		newVoxels := make([]Voxel, 0, model.VoxelCount())
		for _, v := range model.Voxels() {
			startX := int32(v.Position.X() * scale)
			startY := int32(v.Position.Y() * scale)
			startZ := int32(v.Position.Z() * scale)
			endX := int32((v.Position.X() + 1) * scale)
			endY := int32((v.Position.Y() + 1) * scale)
			endZ := int32((v.Position.Z() + 1) * scale)

			for x := startX; x < endX; x++ {
				for y := startY; y < endY; y++ {
					for z := startZ; z < endZ; z++ {
						newVoxels = append(newVoxels, Voxel{
							Position: mgl32.Vec3{float32(x), float32(y), float32(z)},
							Color:    v.Color,
						})
					}
				}
			}
		}
		return NewVoxelModel(newVoxels)
	}

	// Downscaling with majority-colour voting per target cell.
	type cell [3]int32
	groups := make(map[cell]map[mgl32.Vec4]int)
	order := make([]cell, 0)
	for _, v := range model.Voxels() {
		c := cell{
			int32(math.Floor(float64(v.Position.X() * scale))),
			int32(math.Floor(float64(v.Position.Y() * scale))),
			int32(math.Floor(float64(v.Position.Z() * scale))),
		}
		if groups[c] == nil {
			groups[c] = make(map[mgl32.Vec4]int)
			order = append(order, c)
		}
		groups[c][v.Color]++
	}

	newVoxels := make([]Voxel, 0, len(groups))
	for _, c := range order {
		maxCount := 0
		var bestColor mgl32.Vec4
		for color, count := range groups[c] {
			if count > maxCount {
				maxCount = count
				bestColor = color
			}
		}
		newVoxels = append(newVoxels, Voxel{
			Position: mgl32.Vec3{float32(c[0]), float32(c[1]), float32(c[2])},
			Color:    bestColor,
		})
	}
	return NewVoxelModel(newVoxels)
}
