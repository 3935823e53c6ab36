package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tinyraster/internal/config"
	"tinyraster/internal/model"
	"tinyraster/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	output := flag.String("o", "", "Color image path (default: framebuffer.tga)")
	depthOutput := flag.String("z", "", "Depth image path (default: zbuffer.tga)")
	width := flag.Int("width", 0, "Image width (default: 800)")
	height := flag.Int("height", 0, "Image height (default: 800)")
	angle := flag.Float64("angle", 0, "Rotation around Y in degrees (default: 30)")
	seed := flag.Int64("seed", 0, "Face color seed (default: 1)")
	workers := flag.Int("workers", 0, "Rasterizer goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Log render details to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] obj/model.obj\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	flags := config.Flags{
		Output:      *output,
		DepthOutput: *depthOutput,
		Width:       *width,
		Height:      *height,
		Seed:        *seed,
		Workers:     *workers,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "angle" {
			flags.Angle = angle
		}
	})

	// CLI flags override config file
	cfg.Resolve(flags)

	m, err := model.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Model: %d vertices, %d faces\n", m.NumVerts(), m.NumFaces())

	start := time.Now()
	frame, stats := scene.Render(m, cfg.SceneOptions())
	fmt.Printf("Rendered %dx%d in %.3fs: %d drawn, %d culled, %d skipped\n",
		cfg.Width, cfg.Height, time.Since(start).Seconds(), stats.Drawn, stats.Discarded, stats.Skipped)

	if err := frame.Save(cfg.Output, cfg.DepthOutput, *cfg.FlipVertical); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing images: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output: %s, %s\n", cfg.Output, cfg.DepthOutput)
}
