package voxmesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NewSphereModel generates a solid sphere of the given radius (in voxels),
// centered so all coordinates are non-negative.
func NewSphereModel(radius float32, color mgl32.Vec4) *VoxelModel {
	r := int(radius)
	r2 := radius * radius
	model := NewVoxelModel(nil)

	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			for z := -r; z <= r; z++ {
				fx, fy, fz := float32(x), float32(y), float32(z)
				if fx*fx+fy*fy+fz*fz <= r2 {
					model.Add(Voxel{
						Position: mgl32.Vec3{float32(x + r), float32(y + r), float32(z + r)},
						Color:    color,
					})
				}
			}
		}
	}
	return model
}

// NewBoxModel generates a solid axis-aligned box of sx*sy*sz voxels.
func NewBoxModel(sx, sy, sz int, color mgl32.Vec4) *VoxelModel {
	model := NewVoxelModel(make([]Voxel, 0, sx*sy*sz))
	for x := 0; x < sx; x++ {
		for y := 0; y < sy; y++ {
			for z := 0; z < sz; z++ {
				model.Add(Voxel{
					Position: mgl32.Vec3{float32(x), float32(y), float32(z)},
					Color:    color,
				})
			}
		}
	}
	return model
}

// NewPyramidModel generates a solid square pyramid with the given base size
// and height, apex up along Y.
func NewPyramidModel(size, height int, color mgl32.Vec4) *VoxelModel {
	model := NewVoxelModel(nil)
	half := float32(size) * 0.5

	for y := 0; y < height; y++ {
		scale := 1.0 - float32(y)/float32(height)
		limit := int(half * scale)
		for x := -limit; x <= limit; x++ {
			for z := -limit; z <= limit; z++ {
				model.Add(Voxel{
					Position: mgl32.Vec3{float32(x) + half, float32(y), float32(z) + half},
					Color:    color,
				})
			}
		}
	}
	return model
}
