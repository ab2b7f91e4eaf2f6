package render

// RenderStats summarizes a completed refine pass: not required by the
// external interface, but a cheap instrument any progressive-engine caller
// wants for progress reporting.
type RenderStats struct {
	Passes         int
	TotalSamples   int64
	AverageSamples float64
	TotalPixels    int
}

func finalizeStats(passes int, width, height int) RenderStats {
	totalPixels := width * height
	totalSamples := int64(passes) * int64(totalPixels)
	avg := 0.0
	if totalPixels > 0 {
		avg = float64(totalSamples) / float64(totalPixels)
	}
	return RenderStats{
		Passes:         passes,
		TotalSamples:   totalSamples,
		AverageSamples: avg,
		TotalPixels:    totalPixels,
	}
}
