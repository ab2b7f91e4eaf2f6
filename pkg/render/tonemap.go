package render

import (
	"math"

	"github.com/timo-eberl/tracy/pkg/core"
)

// linearToSRGB applies the sRGB transfer function to a single linear
// channel value already clamped to [0,1].
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// reinhardLuminance tone-maps L by scaling it so its Rec. 709 luminance Y
// moves to Y/(1+Y), preserving chromaticity. Black in, black out.
func reinhardLuminance(l core.Vec3) core.Vec3 {
	y := l.Luminance()
	if y <= 0 {
		return core.Vec3{}
	}
	scale := (y / (1 + y)) / y
	return l.Multiply(scale)
}

func quantize(v float64) byte {
	v = math.Max(0, math.Min(1, v))
	q := math.Floor(255.999 * v)
	if q > 255 {
		q = 255
	}
	return byte(q)
}

// ToLDR renders the film to an 8-bit RGBA buffer. When toneMap is true,
// Reinhard-by-luminance runs before the sRGB transfer; otherwise radiance is
// clamped directly to [0,1] and gamma-encoded without Reinhard.
func (f *Film) ToLDR(toneMap bool) []byte {
	buf := make([]byte, f.Width*f.Height*4)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			l := f.Resolve(x, y)
			if toneMap {
				l = reinhardLuminance(l)
			}
			l = l.Clamp(0, 1)
			idx := (y*f.Width + x) * 4
			buf[idx+0] = quantize(linearToSRGB(l.X))
			buf[idx+1] = quantize(linearToSRGB(l.Y))
			buf[idx+2] = quantize(linearToSRGB(l.Z))
			buf[idx+3] = 255
		}
	}
	return buf
}

// ToHDR renders the film to a W*H*3 buffer of linear float32s, without tone
// mapping. Negative components, which the Mitchell filter's negative lobes
// can produce, are clamped to zero.
func (f *Film) ToHDR() []float32 {
	buf := make([]float32, f.Width*f.Height*3)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			l := f.Resolve(x, y).Clamp(0, math.Inf(1))
			idx := (y*f.Width + x) * 3
			buf[idx+0] = float32(l.X)
			buf[idx+1] = float32(l.Y)
			buf[idx+2] = float32(l.Z)
		}
	}
	return buf
}
