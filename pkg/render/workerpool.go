package render

import (
	"image"
	"runtime"
	"sync"

	"github.com/timo-eberl/tracy/pkg/core"
	"github.com/timo-eberl/tracy/pkg/integrator"
	"github.com/timo-eberl/tracy/pkg/scene"
)

const tileSize = 32

// tileTask is one worker's unit of work: render every pixel in Bounds for
// one full-image pass, splatting into a tile-local halo buffer.
type tileTask struct {
	Bounds   image.Rectangle
	BaseSeed uint64
}

// tileResult carries a tile-local film back to the caller for merging into
// the shared accumulator, matching the halo-buffer strategy: each worker
// writes only to memory it owns, so no locking is needed inside a tile.
type tileResult struct {
	OriginX, OriginY int
	Film             *Film
}

// renderTiles splits the image into tileSize x tileSize tiles and renders
// one full pass across numWorkers goroutines. Every tile's halo-inflated
// local film is merged into dst by the calling goroutine as results arrive,
// so merges are serialized without a lock or atomic float adds, and they are
// cheap relative to tracing.
func renderTiles(s *scene.Scene, cam *Camera, filter Filter, dst *Film, baseSeed uint64, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tasks := make(chan tileTask, 256)
	results := make(chan tileResult, 256)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				results <- renderTile(s, cam, filter, task)
			}
		}()
	}

	go func() {
		for y := 0; y < dst.Height; y += tileSize {
			for x := 0; x < dst.Width; x += tileSize {
				tasks <- tileTask{
					Bounds:   image.Rect(x, y, min(x+tileSize, dst.Width), min(y+tileSize, dst.Height)),
					BaseSeed: baseSeed,
				}
			}
		}
		close(tasks)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		dst.Merge(r.Film, r.OriginX, r.OriginY)
	}
}

func renderTile(s *scene.Scene, cam *Camera, filter Filter, task tileTask) tileResult {
	halo := int(filter.Radius()) + 1
	originX := task.Bounds.Min.X - halo
	originY := task.Bounds.Min.Y - halo
	localW := (task.Bounds.Dx() + 2*halo)
	localH := (task.Bounds.Dy() + 2*halo)
	local := NewFilm(localW, localH)

	for y := task.Bounds.Min.Y; y < task.Bounds.Max.Y; y++ {
		for x := task.Bounds.Min.X; x < task.Bounds.Max.X; x++ {
			rng := core.Seed(task.BaseSeed, x, y, cam.width)
			jx := rng.Float64() - 0.5
			jy := rng.Float64() - 0.5
			fx := float64(x) + 0.5 + jx
			fy := float64(y) + 0.5 + jy

			ray := cam.Ray(fx, fy)
			l := integrator.Radiance(s, ray, 0, rng)

			// Splat in the local film's coordinate space, offset by the
			// halo so contributions that land just outside the tile's own
			// pixels are still captured before the merge.
			local.Splat(fx-float64(originX), fy-float64(originY), l, filter)
		}
	}

	return tileResult{OriginX: originX, OriginY: originY, Film: local}
}
