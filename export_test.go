package voxmesh

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGLB_WritesBinaryDocument(t *testing.T) {
	model := NewBoxModel(3, 3, 3, mgl32.Vec4{0.2, 0.6, 0.9, 1})
	builder := NewChunkedBufferBuilder(model, 10, false)

	var buf bytes.Buffer
	require.NoError(t, ExportGLB(&buf, builder))

	// GLB containers start with the "glTF" magic.
	require.Greater(t, buf.Len(), 12)
	assert.Equal(t, []byte("glTF"), buf.Bytes()[:4])

	// The export must have drained every chunk.
	assert.False(t, builder.HasMore())
}

func TestExportGLB_ReusesAlreadyProducedChunks(t *testing.T) {
	model := NewBoxModel(3, 3, 3, mgl32.Vec4{1, 1, 1, 1})
	builder := NewChunkedBufferBuilder(model, 10, false)

	first, err := builder.ProduceNext()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportGLB(&buf, builder))
	assert.Equal(t, []byte("glTF"), buf.Bytes()[:4])

	// The pre-produced chunk is still the cached one; export did not rewind
	// or regenerate it.
	cached, ok := builder.Get(0)
	require.True(t, ok)
	assert.Same(t, first, cached)
}

func TestExportGLB_WithOcclusion(t *testing.T) {
	// A solid box guarantees interior corners that the occlusion pass
	// darkens, exercising the COLOR_0 bake path.
	model := NewBoxModel(4, 4, 4, mgl32.Vec4{1, 1, 1, 1})
	builder := NewChunkedBufferBuilder(model, 16, true)

	var buf bytes.Buffer
	require.NoError(t, ExportGLB(&buf, builder))
	assert.Equal(t, []byte("glTF"), buf.Bytes()[:4])
}
