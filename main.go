// Command tracy is the batch CLI driver for the progressive path tracer: it
// calls Init once, loops Refine+ReadLDR writing a PNG after every pass,
// optionally dumps ReadHDR once at the end, and reports timing the way the
// teacher's CLI does.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/timo-eberl/tracy/pkg/core"
	"github.com/timo-eberl/tracy/pkg/render"
)

// Config holds the CLI's parsed flags.
type Config struct {
	Width, Height int
	Filter        string
	Passes        int
	SamplesPerPass int
	Workers       int
	AngleX, AngleY float64
	Dist          float64
	FocusX, FocusY, FocusZ float64
	Overrides     string
	Out           string
	HDR           bool
	CPUProfile    string
	Help          bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	filterKind, err := parseFilter(config.Filter)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	logger := render.DefaultLogger{}
	engine := render.NewEngine(logger, config.Workers)

	focus := core.NewVec3(config.FocusX, config.FocusY, config.FocusZ)
	if err := engine.Init(config.Width, config.Height, filterKind, config.AngleX, config.AngleY, config.Dist, focus); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	if config.Overrides != "" {
		if err := engine.ApplySceneOverrides(config.Overrides); err != nil {
			fmt.Printf("error applying scene overrides: %v\n", err)
			os.Exit(1)
		}
	}

	outDir := filepath.Dir(config.Out)
	if outDir != "." {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			fmt.Printf("error creating output directory: %v\n", err)
			os.Exit(1)
		}
	}

	logger.Printf("tracy: rendering %dx%d, filter=%s, %d passes x %d samples\n",
		config.Width, config.Height, config.Filter, config.Passes, config.SamplesPerPass)

	start := time.Now()
	for pass := 1; pass <= config.Passes; pass++ {
		passStart := time.Now()
		if err := engine.Refine(config.SamplesPerPass); err != nil {
			fmt.Printf("error during refine: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("tracy: pass %d/%d done in %v (total samples/px so far: %.1f)\n",
			pass, config.Passes, time.Since(passStart), engine.Stats().AverageSamples)

		if err := writePNG(config.Out, engine); err != nil {
			fmt.Printf("error writing image: %v\n", err)
			os.Exit(1)
		}
	}

	if config.HDR {
		hdrPath := replaceExt(config.Out, ".hdr.txt")
		if err := writeHDR(hdrPath, engine); err != nil {
			fmt.Printf("error writing HDR readout: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("tracy: HDR linear readout written to %s\n", hdrPath)
	}

	logger.Printf("tracy: render completed in %v, output %s\n", time.Since(start), config.Out)
}

func parseFlags() Config {
	c := Config{}
	flag.IntVar(&c.Width, "width", 320, "image width in pixels")
	flag.IntVar(&c.Height, "height", 240, "image height in pixels")
	flag.StringVar(&c.Filter, "filter", "gaussian", "reconstruction filter: box, gaussian, mitchell")
	flag.IntVar(&c.Passes, "passes", 4, "number of times to refine+write the output image")
	flag.IntVar(&c.SamplesPerPass, "samples-per-pass", 4, "full-image passes run per refine call")
	flag.IntVar(&c.Workers, "workers", 0, "parallel worker count (0 = runtime.NumCPU())")
	flag.Float64Var(&c.AngleX, "angle-x", 0.04258603374866164, "camera orbit angle around X, radians")
	flag.Float64Var(&c.AngleY, "angle-y", 0, "camera orbit angle around Y, radians")
	flag.Float64Var(&c.Dist, "dist", 5.5, "camera distance from the focus point")
	flag.Float64Var(&c.FocusX, "focus-x", 0, "camera focus point X")
	flag.Float64Var(&c.FocusY, "focus-y", 1.25, "camera focus point Y")
	flag.Float64Var(&c.FocusZ, "focus-z", 0, "camera focus point Z")
	flag.StringVar(&c.Overrides, "overrides", "", "path to a YAML scene color overrides file")
	flag.StringVar(&c.Out, "out", "output/render.png", "output PNG path")
	flag.BoolVar(&c.HDR, "hdr", false, "also write a raw linear-float HDR readout alongside the PNG")
	flag.StringVar(&c.CPUProfile, "cpuprofile", "", "write a CPU profile to this file")
	flag.BoolVar(&c.Help, "help", false, "show help information")
	flag.Parse()
	return c
}

func showHelp() {
	fmt.Println("tracy: progressive Monte-Carlo path tracer (fixed Cornell-style scene)")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tracy -passes=10 -samples-per-pass=8 -out=output/cornell.png")
	fmt.Println("  tracy -filter=mitchell -width=640 -height=480 -hdr")
}

func parseFilter(name string) (render.FilterKind, error) {
	switch name {
	case "box":
		return render.Box, nil
	case "gaussian":
		return render.Gaussian, nil
	case "mitchell":
		return render.Mitchell, nil
	default:
		return 0, fmt.Errorf("unknown filter %q (want box, gaussian, or mitchell)", name)
	}
}

func writePNG(path string, engine *render.Engine) error {
	pixels := engine.ReadLDR()
	img := image.NewRGBA(image.Rect(0, 0, engine.Width(), engine.Height()))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// writeHDR writes the raw linear-float readout as plain text triples, one
// pixel per line, for offline inspection; it is not an interchange format.
func writeHDR(path string, engine *render.Engine) error {
	floats := engine.ReadHDR()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := engine.Width()
	for y := 0; y < engine.Height(); y++ {
		for x := 0; x < w; x++ {
			idx := (y*w + x) * 3
			r, g, b := floats[idx], floats[idx+1], floats[idx+2]
			if math.IsNaN(float64(r)) || math.IsNaN(float64(g)) || math.IsNaN(float64(b)) ||
				math.IsInf(float64(r), 0) || math.IsInf(float64(g), 0) || math.IsInf(float64(b), 0) {
				return fmt.Errorf("non-finite HDR sample at (%d,%d)", x, y)
			}
			if _, err := fmt.Fprintf(f, "%g %g %g\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return nil
}

func replaceExt(path, newExt string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + newExt
}
