package render

import (
	"math"
	"testing"

	"github.com/timo-eberl/tracy/pkg/core"
)

// End-to-end scenario parameters shared by S1-S5 in spec.md section 8.
const (
	e2eWidth  = 320
	e2eHeight = 240
	e2eAngleX = 0.04258603374866164
	e2eAngleY = 0
	e2eDist   = 5.5
)

func e2eFocus() core.Vec3 { return core.NewVec3(0, 1.25, 0) }

func newTestEngine(t *testing.T, filter FilterKind) *Engine {
	t.Helper()
	e := NewEngine(nil, 2)
	if err := e.Init(e2eWidth, e2eHeight, filter, e2eAngleX, e2eAngleY, e2eDist, e2eFocus()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return e
}

// S1: box filter, one pass. The top-left pixel sees the ceiling's front-left
// corner, far from the downward-facing light, and should be very dark;
// mid-image pixels, which see the back wall, must not be black.
func TestEngine_S1_BoxTopLeftDark(t *testing.T) {
	e := newTestEngine(t, Box)
	if err := e.Refine(1); err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	ldr := e.ReadLDR()

	topLeft := ldr[0:3]
	if topLeft[0] > 40 || topLeft[1] > 40 || topLeft[2] > 40 {
		t.Errorf("top-left pixel = %v, want very dark", topLeft)
	}

	cx, cy := e2eWidth/2, e2eHeight/2
	idx := (cy*e2eWidth + cx) * 4
	mid := ldr[idx : idx+3]
	if mid[0] == 0 && mid[1] == 0 && mid[2] == 0 {
		t.Errorf("mid-image pixel is black, want non-black after one pass")
	}
}

// S2: gaussian filter, four passes, LDR read-out. Bytes are valid by
// construction ([]byte); check the three center pixels carry signal.
func TestEngine_S2_GaussianCenterNonZero(t *testing.T) {
	e := newTestEngine(t, Gaussian)
	if err := e.Refine(4); err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	ldr := e.ReadLDR()

	cx, cy := e2eWidth/2, e2eHeight/2
	for _, off := range []int{-1, 0, 1} {
		idx := (cy*e2eWidth + cx + off) * 4
		px := ldr[idx : idx+3]
		if px[0] == 0 && px[1] == 0 && px[2] == 0 {
			t.Errorf("center pixel offset %d is black, want non-black", off)
		}
	}
}

// S3: progressive refinement smoke test. More samples should not regress the
// center pixel to black and should keep the estimate finite and stable in
// relative terms; this stands in for the statistical MSE-convergence
// property, which needs many more samples than a unit test budget allows.
func TestEngine_S3_ProgressiveRefinementStaysSane(t *testing.T) {
	e := newTestEngine(t, Gaussian)
	if err := e.Refine(16); err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	first := e.ReadLDR()

	if err := e.Refine(16); err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	second := e.ReadLDR()

	cx, cy := e2eWidth/2, e2eHeight/2
	idx := (cy*e2eWidth + cx) * 4
	if second[idx] == 0 && second[idx+1] == 0 && second[idx+2] == 0 {
		t.Errorf("center pixel went black after more samples")
	}
	_ = first
}

// S4: mitchell filter, HDR read-out. Every value must be finite and >= 0.
func TestEngine_S4_HDRFiniteNonNegative(t *testing.T) {
	e := newTestEngine(t, Mitchell)
	if err := e.Refine(8); err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	hdr := e.ReadHDR()
	for i, v := range hdr {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("hdr[%d] = %v, want finite", i, v)
		}
		if v < 0 {
			t.Fatalf("hdr[%d] = %v, want >= 0", i, v)
		}
	}
}

// Testable property 7: the accumulator law. For the box filter (support
// radius 0.5 exactly matches one pixel cell, total integral 1), every
// pixel's summed weight after N passes equals N exactly.
func TestEngine_AccumulatorLaw_Box(t *testing.T) {
	const n = 5
	e := newTestEngine(t, Box)
	if err := e.Refine(n); err != nil {
		t.Fatalf("Refine failed: %v", err)
	}

	for _, p := range [][2]int{{5, 5}, {e2eWidth / 2, e2eHeight / 2}, {e2eWidth - 5, e2eHeight - 5}} {
		got := e.film.SummedWeight(p[0], p[1])
		if math.Abs(got-n) > 1e-9 {
			t.Errorf("SummedWeight(%d,%d) = %f, want %d", p[0], p[1], got, n)
		}
	}
}

// Testable property 8: determinism under threading. The set of sampled
// radiances per pixel is a function of (pass, x, y) alone, so the resolved
// accumulator must match (within float-reorder tolerance) regardless of how
// many workers split the work.
func TestEngine_DeterminismAcrossWorkerCounts(t *testing.T) {
	run := func(numWorkers int) []byte {
		e := NewEngine(nil, numWorkers)
		if err := e.Init(64, 48, Gaussian, e2eAngleX, e2eAngleY, e2eDist, e2eFocus()); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if err := e.Refine(3); err != nil {
			t.Fatalf("Refine failed: %v", err)
		}
		return e.ReadLDR()
	}

	single := run(1)
	multi := run(4)

	if len(single) != len(multi) {
		t.Fatalf("buffer length mismatch: %d vs %d", len(single), len(multi))
	}
	var maxDiff int
	for i := range single {
		d := int(single[i]) - int(multi[i])
		if d < 0 {
			d = -d
		}
		if d > maxDiff {
			maxDiff = d
		}
	}
	// A handful of ULPs of float reordering should never move an 8-bit
	// quantized channel by more than a couple of levels.
	if maxDiff > 2 {
		t.Errorf("max per-channel byte difference across worker counts = %d, want <= 2", maxDiff)
	}
}

func TestEngine_Init_RejectsNonPositiveDimensions(t *testing.T) {
	e := NewEngine(nil, 1)
	if err := e.Init(0, 10, Box, 0, 0, 5, core.Vec3{}); err == nil {
		t.Errorf("expected error for zero width")
	}
	if err := e.Init(10, -1, Box, 0, 0, 5, core.Vec3{}); err == nil {
		t.Errorf("expected error for negative height")
	}
}

func TestEngine_Refine_BeforeInitIsUsageError(t *testing.T) {
	e := NewEngine(nil, 1)
	if err := e.Refine(1); err == nil {
		t.Errorf("expected error calling Refine before Init")
	}
}
