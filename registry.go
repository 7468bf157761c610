package voxmesh

import (
	"github.com/google/uuid"
)

type ModelId string

func makeModelId() ModelId {
	return ModelId(uuid.NewString())
}

// ModelEntry pairs a registered model with where it came from. SourcePath is
// empty for procedural or hand-assembled models.
type ModelEntry struct {
	Model      *VoxelModel
	SourcePath string
}

// ModelRegistry tracks loaded and generated voxel models by id so a tool can
// hold several models and buffer them independently.
type ModelRegistry struct {
	models map[ModelId]ModelEntry
}

func NewModelRegistry() *ModelRegistry {
	return &ModelRegistry{
		models: make(map[ModelId]ModelEntry),
	}
}

func (r *ModelRegistry) AddModel(model *VoxelModel) ModelId {
	return r.AddModelFromSource(model, "")
}

func (r *ModelRegistry) AddModelFromSource(model *VoxelModel, sourcePath string) ModelId {
	id := makeModelId()
	r.models[id] = ModelEntry{Model: model, SourcePath: sourcePath}
	return id
}

func (r *ModelRegistry) Model(id ModelId) (ModelEntry, bool) {
	entry, ok := r.models[id]
	return entry, ok
}

func (r *ModelRegistry) Len() int {
	return len(r.models)
}

// Ids returns the registered model ids in unspecified order.
func (r *ModelRegistry) Ids() []ModelId {
	ids := make([]ModelId, 0, len(r.models))
	for id := range r.models {
		ids = append(ids, id)
	}
	return ids
}
