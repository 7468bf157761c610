package voxmesh

import (
	"testing"
)

func TestCubeTemplate_Shape(t *testing.T) {
	if len(CubePositions) != VerticesPerVoxel*3 {
		t.Fatalf("expected %d position components, got %d", VerticesPerVoxel*3, len(CubePositions))
	}
	if len(CubeNormals) != VerticesPerVoxel*3 {
		t.Fatalf("expected %d normal components, got %d", VerticesPerVoxel*3, len(CubeNormals))
	}
	if len(CubeTexCoords) != VerticesPerVoxel*2 {
		t.Fatalf("expected %d texcoord components, got %d", VerticesPerVoxel*2, len(CubeTexCoords))
	}
	if len(CubeIndices) != IndicesPerVoxel {
		t.Fatalf("expected %d indices, got %d", IndicesPerVoxel, len(CubeIndices))
	}
}

func TestCubeTemplate_UnitCubeAtOrigin(t *testing.T) {
	for i, p := range CubePositions {
		if p != 0.5 && p != -0.5 {
			t.Errorf("position component %d = %f, want ±0.5", i, p)
		}
	}
}

func TestCubeTemplate_NormalsAreAxisAligned(t *testing.T) {
	for vtx := 0; vtx < VerticesPerVoxel; vtx++ {
		nonZero := 0
		for c := 0; c < 3; c++ {
			n := CubeNormals[vtx*3+c]
			if n == 1 || n == -1 {
				nonZero++
			} else if n != 0 {
				t.Errorf("vertex %d normal component %d = %f, want 0 or ±1", vtx, c, n)
			}
		}
		if nonZero != 1 {
			t.Errorf("vertex %d normal must have exactly one unit component", vtx)
		}
	}
}

func TestCubeTemplate_IndicesAreLocal(t *testing.T) {
	seen := make(map[uint32]int)
	for i, idx := range CubeIndices {
		if idx >= VerticesPerVoxel {
			t.Errorf("index %d = %d, out of the local range [0, 23]", i, idx)
		}
		seen[idx]++
	}
	// Two triangles per face share two of the face's four vertices.
	if len(seen) != VerticesPerVoxel {
		t.Errorf("indices reference %d distinct vertices, want all %d", len(seen), VerticesPerVoxel)
	}
}

func TestCubeTemplate_QuadPattern(t *testing.T) {
	for face := 0; face < 6; face++ {
		base := uint32(face * 4)
		got := CubeIndices[face*6 : face*6+6]
		want := [6]uint32{base, base + 1, base + 2, base, base + 2, base + 3}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("face %d index %d = %d, want %d", face, i, got[i], want[i])
			}
		}
	}
}
