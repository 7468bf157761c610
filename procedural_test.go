package voxmesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewBoxModel_FillsExactVolume(t *testing.T) {
	model := NewBoxModel(3, 4, 5, mgl32.Vec4{1, 1, 1, 1})
	if got, want := model.VoxelCount(), 3*4*5; got != want {
		t.Errorf("box voxel count = %d, want %d", got, want)
	}
}

func TestNewSphereModel_ContainsCenterNotCorner(t *testing.T) {
	model := NewSphereModel(4, mgl32.Vec4{1, 1, 1, 1})
	idx := BuildNeighbourhoodIndex(model, AdjacencyNonCardinal)

	// Center sits at (r,r,r) after the non-negative shift.
	if !idx.Occupied(4, 4, 4) {
		t.Errorf("sphere must contain its center")
	}
	if idx.Occupied(0, 0, 0) {
		t.Errorf("sphere must not reach the bounding-box corner")
	}
	if model.VoxelCount() == 0 {
		t.Fatalf("sphere generated no voxels")
	}
}

func TestNewPyramidModel_ShrinksTowardApex(t *testing.T) {
	model := NewPyramidModel(8, 6, mgl32.Vec4{1, 1, 1, 1})

	perLayer := make(map[float32]int)
	for _, v := range model.Voxels() {
		perLayer[v.Position.Y()]++
	}
	if perLayer[0] <= perLayer[4] {
		t.Errorf("base layer (%d voxels) must be wider than an upper layer (%d voxels)",
			perLayer[0], perLayer[4])
	}
}
