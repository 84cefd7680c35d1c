// Package raster turns a scene into a buffer of display pixels.
package raster

import (
	"image"
	"sync"

	"whitted-tracer/internal/scene"
)

// Renderer owns a scene and the buffer it renders into.
type Renderer struct {
	Scene *scene.Scene
	FB    *FrameBuffer

	// Workers is the number of goroutines splitting the rows. Zero or one
	// renders on the calling goroutine.
	Workers int
}

// NewRenderer allocates a buffer at the scene's dimensions.
func NewRenderer(sc *scene.Scene, workers int) *Renderer {
	return &Renderer{
		Scene:   sc,
		FB:      NewFrameBuffer(sc.Width, sc.Height),
		Workers: workers,
	}
}

// Render recomputes every pixel. The result depends only on the scene, so
// repeated calls give identical buffers.
func (r *Renderer) Render() {
	cam := scene.NewCamera(r.Scene)

	if r.Workers <= 1 || r.FB.Height < 2 {
		for y := 0; y < r.FB.Height; y++ {
			r.renderRow(cam, y)
		}
		return
	}

	// Worker pool over row indices
	rowChan := make(chan int, r.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < r.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				r.renderRow(cam, y)
			}
		}()
	}

	for y := 0; y < r.FB.Height; y++ {
		rowChan <- y
	}
	close(rowChan)

	wg.Wait()
}

func (r *Renderer) renderRow(cam scene.Camera, y int) {
	row := r.FB.Row(y)
	for x := 0; x < r.FB.Width; x++ {
		c := r.Scene.Color(cam.PrimeRay(x, y)).NRGBA()
		i := x * 4
		row[i] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
		row[i+3] = c.A
	}
}

// Render draws sc into a new image.
func Render(sc *scene.Scene, workers int) *image.NRGBA {
	r := NewRenderer(sc, workers)
	r.Render()
	return r.FB.Image()
}
