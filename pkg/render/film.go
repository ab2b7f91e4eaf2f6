package render

import (
	"math"

	"github.com/timo-eberl/tracy/pkg/core"
)

// Film is the progressive accumulator: for every pixel it holds the running
// sum of filter-weighted radiance and the running sum of filter weights.
// Resolve divides the two to recover the pixel's current estimate.
type Film struct {
	Width, Height int
	weightedSum   []core.Vec3
	weights       []float64
}

// NewFilm allocates a zeroed film buffer of size width x height.
func NewFilm(width, height int) *Film {
	return &Film{
		Width:       width,
		Height:      height,
		weightedSum: make([]core.Vec3, width*height),
		weights:     make([]float64, width*height),
	}
}

// Splat distributes radiance L sampled at film position (fx,fy) to every
// pixel whose center lies within the filter's support radius, weighted by
// the filter kernel. Non-finite samples are refused so they cannot poison a
// pixel permanently.
func (f *Film) Splat(fx, fy float64, l core.Vec3, filter Filter) {
	if !l.IsFinite() {
		return
	}
	r := filter.Radius()
	nxMin := int(math.Ceil(fx - 0.5 - r))
	nxMax := int(math.Floor(fx - 0.5 + r))
	nyMin := int(math.Ceil(fy - 0.5 - r))
	nyMax := int(math.Floor(fy - 0.5 + r))

	for ny := nyMin; ny <= nyMax; ny++ {
		if ny < 0 || ny >= f.Height {
			continue
		}
		for nx := nxMin; nx <= nxMax; nx++ {
			if nx < 0 || nx >= f.Width {
				continue
			}
			w := filter.Weight(fx-(float64(nx)+0.5), fy-(float64(ny)+0.5))
			if w == 0 {
				continue
			}
			idx := ny*f.Width + nx
			f.weightedSum[idx] = f.weightedSum[idx].Add(l.Multiply(w))
			f.weights[idx] += w
		}
	}
}

// Merge adds another film's accumulators into f. Used to fold a tile-local
// halo buffer (see renderTile) into the shared image-wide film in one step,
// instead of synchronizing every splat.
func (f *Film) Merge(other *Film, originX, originY int) {
	for y := 0; y < other.Height; y++ {
		gy := originY + y
		if gy < 0 || gy >= f.Height {
			continue
		}
		for x := 0; x < other.Width; x++ {
			gx := originX + x
			if gx < 0 || gx >= f.Width {
				continue
			}
			srcIdx := y*other.Width + x
			dstIdx := gy*f.Width + gx
			f.weightedSum[dstIdx] = f.weightedSum[dstIdx].Add(other.weightedSum[srcIdx])
			f.weights[dstIdx] += other.weights[srcIdx]
		}
	}
}

// Resolve returns the current radiance estimate for pixel (x,y): the
// weighted sum divided by the summed weight, or black if no sample has
// reached this pixel yet.
func (f *Film) Resolve(x, y int) core.Vec3 {
	idx := y*f.Width + x
	w := f.weights[idx]
	if w == 0 {
		return core.Vec3{}
	}
	return f.weightedSum[idx].Multiply(1 / w)
}

// SummedWeight returns Σw for pixel (x,y), exposed for testable-property
// checks on the accumulator law.
func (f *Film) SummedWeight(x, y int) float64 {
	return f.weights[y*f.Width+x]
}
