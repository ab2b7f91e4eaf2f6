package render

import (
	"math"
	"testing"

	"github.com/timo-eberl/tracy/pkg/core"
)

func TestLinearToSRGB_Endpoints(t *testing.T) {
	if got := linearToSRGB(0); got != 0 {
		t.Errorf("linearToSRGB(0) = %f, want 0", got)
	}
	if got := linearToSRGB(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("linearToSRGB(1) = %f, want 1", got)
	}
}

func TestLinearToSRGB_Monotone(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := linearToSRGB(float64(i) / 100)
		if v < prev {
			t.Fatalf("linearToSRGB not monotone at step %d: %f < %f", i, v, prev)
		}
		prev = v
	}
}

func TestReinhardLuminance_BlackInBlackOut(t *testing.T) {
	got := reinhardLuminance(core.Vec3{})
	if !got.IsZero() {
		t.Errorf("reinhardLuminance(black) = %v, want black", got)
	}
}

func TestReinhardLuminance_PreservesChromaticity(t *testing.T) {
	l := core.NewVec3(4, 2, 1)
	mapped := reinhardLuminance(l)
	// Ratios between channels must be preserved since reinhardLuminance
	// scales all channels by the same factor.
	wantRatio := l.X / l.Y
	gotRatio := mapped.X / mapped.Y
	if math.Abs(gotRatio-wantRatio) > 1e-9 {
		t.Errorf("chromaticity not preserved: ratio %f, want %f", gotRatio, wantRatio)
	}
}

func TestQuantize_Bounds(t *testing.T) {
	if got := quantize(-1); got != 0 {
		t.Errorf("quantize(-1) = %d, want 0", got)
	}
	if got := quantize(2); got != 255 {
		t.Errorf("quantize(2) = %d, want 255", got)
	}
	if got := quantize(1); got != 255 {
		t.Errorf("quantize(1) = %d, want 255", got)
	}
}
