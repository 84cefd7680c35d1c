package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whitted-tracer/internal/imageio"
	"whitted-tracer/internal/scene"
)

const tinyScene = `
width: 24
height: 16
fov: 90
background: [0.1, 0.1, 0.1]
lights:
  - spherical: {point: [0, 2, -2], intensity: 300}
shapes:
  - sphere: {center: [0, 0, -4], radius: 1}
    color: [0.9, 0.2, 0.2]
`

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestBuildIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Alpha.yml"), tinyScene)
	writeFile(t, filepath.Join(dir, "alpha.yaml"), tinyScene)
	writeFile(t, filepath.Join(dir, "nested", "beta.yaml"), tinyScene)
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	idx := BuildIndex(dir)
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"alpha", "beta"}, idx.Names())

	p, ok := idx.ResolvePath("scenes/ALPHA.yml")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "alpha.yaml"), p)

	_, ok = idx.ResolvePath("gamma")
	assert.False(t, ok)

	jobs := idx.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "beta", jobs[1].Name)
	assert.Equal(t, filepath.Join(dir, "nested", "beta.yaml"), jobs[1].Path)
}

func TestRunAndManifest(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(src, "tiny.yaml"), tinyScene)
	writeFile(t, filepath.Join(src, "broken.yaml"), "width: 1\nheight: 2\nfov: 90\n")

	demo := scene.Demo()
	demo.Width, demo.Height = 40, 30

	jobs := append(BuildIndex(src).Jobs(),
		Job{Name: "demo", Scene: demo},
		Job{Name: "missing", Path: filepath.Join(src, "missing.yaml")},
	)
	cfg := Config{OutputDir: out, Format: imageio.PNG, Thumbnail: 8, Workers: 3, RenderWorkers: 2}
	results := Run(cfg, jobs)
	require.Len(t, results, 4)

	byName := map[string]Result{}
	for _, r := range results {
		byName[r.Name] = r
	}
	assert.False(t, byName["broken"].Success)
	assert.Contains(t, byName["broken"].Error, "width must be >= height")
	assert.False(t, byName["missing"].Success)

	for _, name := range []string{"tiny", "demo"} {
		r := byName[name]
		require.True(t, r.Success, "%s: %s", name, r.Error)
		assert.FileExists(t, r.Output)
		assert.FileExists(t, r.Thumbnail)
	}
	assert.Equal(t, 24, byName["tiny"].Width)

	manifest := filepath.Join(out, "manifest.json")
	require.NoError(t, WriteManifest(manifest, results))
	data, err := os.ReadFile(manifest)
	require.NoError(t, err)

	var entries []ManifestEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, e.Name+".png", e.Image)
		assert.Equal(t, e.Name+"_thumb.png", e.Thumbnail)
	}
}

func TestRunInvalidInlineScene(t *testing.T) {
	res := Run(Config{OutputDir: t.TempDir(), Format: imageio.BMP}, []Job{
		{Name: "portrait", Scene: &scene.Scene{Width: 1, Height: 2, FOV: 90, ShadowBias: 1e-6}},
	})
	require.Len(t, res, 1)
	assert.False(t, res[0].Success)
	assert.NotEmpty(t, res[0].Error)
}
