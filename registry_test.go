package voxmesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRegistry_AddAndLookup(t *testing.T) {
	registry := NewModelRegistry()
	model := NewBoxModel(2, 2, 2, mgl32.Vec4{1, 1, 1, 1})

	id := registry.AddModelFromSource(model, "assets/crate.vox")
	require.NotEmpty(t, id)

	entry, ok := registry.Model(id)
	require.True(t, ok)
	assert.Same(t, model, entry.Model)
	assert.Equal(t, "assets/crate.vox", entry.SourcePath)

	_, ok = registry.Model(ModelId("missing"))
	assert.False(t, ok)
}

func TestModelRegistry_IdsAreUnique(t *testing.T) {
	registry := NewModelRegistry()
	model := NewBoxModel(1, 1, 1, mgl32.Vec4{1, 1, 1, 1})

	seen := make(map[ModelId]bool)
	for i := 0; i < 10; i++ {
		id := registry.AddModel(model)
		if seen[id] {
			t.Fatalf("duplicate model id %s", id)
		}
		seen[id] = true
	}
	assert.Equal(t, 10, registry.Len())
	assert.Len(t, registry.Ids(), 10)
}
