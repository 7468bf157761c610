package voxmesh

// The canonical unit cube every voxel is instantiated from: 6 faces, 4
// vertices each, centered at the origin. Faces share no vertices so each
// face can carry its own normal.

// CubePositions holds 24 vertex positions (x,y,z) spanning [-0.5, 0.5].
var CubePositions = [VerticesPerVoxel * 3]float32{
	// +Z (front)
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5,
	// -Z (back)
	0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5,
	-0.5, 0.5, -0.5,
	0.5, 0.5, -0.5,
	// +X (right)
	0.5, -0.5, 0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
	0.5, 0.5, 0.5,
	// -X (left)
	-0.5, -0.5, -0.5,
	-0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5,
	-0.5, 0.5, -0.5,
	// +Y (top)
	-0.5, 0.5, 0.5,
	0.5, 0.5, 0.5,
	0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5,
	// -Y (bottom)
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, -0.5, 0.5,
	-0.5, -0.5, 0.5,
}

// CubeNormals holds one outward normal per vertex, constant across a face.
var CubeNormals = [VerticesPerVoxel * 3]float32{
	0, 0, 1,
	0, 0, 1,
	0, 0, 1,
	0, 0, 1,

	0, 0, -1,
	0, 0, -1,
	0, 0, -1,
	0, 0, -1,

	1, 0, 0,
	1, 0, 0,
	1, 0, 0,
	1, 0, 0,

	-1, 0, 0,
	-1, 0, 0,
	-1, 0, 0,
	-1, 0, 0,

	0, 1, 0,
	0, 1, 0,
	0, 1, 0,
	0, 1, 0,

	0, -1, 0,
	0, -1, 0,
	0, -1, 0,
	0, -1, 0,
}

// CubeTexCoords maps each face onto the full [0,1] texture square.
var CubeTexCoords = [VerticesPerVoxel * 2]float32{
	0, 0, 1, 0, 1, 1, 0, 1,
	0, 0, 1, 0, 1, 1, 0, 1,
	0, 0, 1, 0, 1, 1, 0, 1,
	0, 0, 1, 0, 1, 1, 0, 1,
	0, 0, 1, 0, 1, 1, 0, 1,
	0, 0, 1, 0, 1, 1, 0, 1,
}

// CubeIndices holds 12 triangles, two per face, in the quad pattern
// [base+0, base+1, base+2, base+0, base+2, base+3]. Values are local to one
// cube (0-23) and must be offset by voxelIndex*24 when instantiated.
var CubeIndices = [IndicesPerVoxel]uint32{
	0, 1, 2, 0, 2, 3,
	4, 5, 6, 4, 6, 7,
	8, 9, 10, 8, 10, 11,
	12, 13, 14, 12, 14, 15,
	16, 17, 18, 16, 18, 19,
	20, 21, 22, 20, 22, 23,
}
