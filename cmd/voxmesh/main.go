package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxtools/voxmesh"
)

func main() {
	in := flag.String("in", "", "Input MagicaVoxel .vox file (omit for the demo sphere)")
	out := flag.String("out", "out.glb", "Output .glb file")
	chunkSize := flag.Int("chunk-size", 1000, "Voxels buffered per chunk")
	occlusion := flag.Bool("occlusion", false, "Compute per-vertex ambient occlusion weights")
	scale := flag.Float64("scale", 1.0, "Resample the model by this factor before buffering")
	sphereRadius := flag.Float64("sphere-radius", 12, "Demo sphere radius, used when no input file is given")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := voxmesh.NewDefaultLogger("voxmesh", *debug)

	if *chunkSize <= 0 {
		logger.Errorf("chunk size must be positive, got %d", *chunkSize)
		os.Exit(2)
	}

	registry := voxmesh.NewModelRegistry()
	id, err := loadModel(registry, *in, float32(*sphereRadius))
	if err != nil {
		logger.Errorf("loading model: %v", err)
		os.Exit(1)
	}
	entry, _ := registry.Model(id)
	model := entry.Model

	if *scale != 1.0 {
		before := model.VoxelCount()
		model = voxmesh.ScaleModel(model, float32(*scale))
		logger.Debugf("scaled model by %.2f: %d -> %d voxels", *scale, before, model.VoxelCount())
	}

	if model.VoxelCount() == 0 {
		logger.Errorf("model holds no voxels, nothing to buffer")
		os.Exit(1)
	}

	builder := voxmesh.NewChunkedBufferBuilder(model, *chunkSize, *occlusion)
	logger.Infof("buffering %d voxels in %d chunk(s) of up to %d (occlusion=%v)",
		builder.TotalVoxels(), builder.ChunkCount(), *chunkSize, *occlusion)

	f, err := os.Create(*out)
	if err != nil {
		logger.Errorf("creating %s: %v", *out, err)
		os.Exit(1)
	}

	if err := exportWithProgress(f, builder, logger); err != nil {
		f.Close()
		logger.Errorf("exporting: %v", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		logger.Errorf("closing %s: %v", *out, err)
		os.Exit(1)
	}
	logger.Infof("wrote %s", *out)
}

func loadModel(registry *voxmesh.ModelRegistry, path string, sphereRadius float32) (voxmesh.ModelId, error) {
	if path == "" {
		model := voxmesh.NewSphereModel(sphereRadius, mgl32.Vec4{0.8, 0.3, 0.2, 1.0})
		return registry.AddModel(model), nil
	}

	vf, err := voxmesh.LoadVoxFile(path)
	if err != nil {
		return "", err
	}
	if len(vf.Models) == 0 {
		return "", fmt.Errorf("%s holds no models", path)
	}
	model := voxmesh.ModelFromVox(vf.Models[0], vf.Palette)
	return registry.AddModelFromSource(model, path), nil
}

// exportWithProgress mirrors voxmesh.ExportGLB but logs each chunk as it is
// produced, one ProduceNext per loop turn.
func exportWithProgress(f *os.File, builder *voxmesh.ChunkedBufferBuilder, logger voxmesh.Logger) error {
	if !logger.DebugEnabled() {
		return voxmesh.ExportGLB(f, builder)
	}

	// Produce up front so the export loop below only hits the cache; Get
	// never regenerates.
	for i := 0; builder.HasMore(); i++ {
		chunk, err := builder.ProduceNext()
		if err != nil {
			return err
		}
		logger.Debugf("chunk %d: %d voxels, %d indices, progress %.2f, more=%v",
			i, chunk.VoxelCount, chunk.IndexCount, chunk.Progress, chunk.MoreChunks)
	}
	return voxmesh.ExportGLB(f, builder)
}
