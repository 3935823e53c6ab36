package main

import (
	"flag"
	"fmt"
	"os"

	"tinyraster/internal/config"
	"tinyraster/internal/model"
	"tinyraster/internal/raster"
	"tinyraster/internal/scene"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s obj/model.obj\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	m, err := model.Load(flag.Arg(0))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	lo, hi := m.Bounds()
	fmt.Printf("Vertices: %d, Faces: %d\n", m.NumVerts(), m.NumFaces())
	fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	fmt.Printf("  Size: %.3f x %.3f x %.3f\n", hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])

	// Screen-space classification with the default camera
	var cfg config.Config
	cfg.Resolve(config.Flags{})
	opts := cfg.SceneOptions()

	var front, back, tiny, skipped int
	var area float64
	for i := 0; i < m.NumFaces(); i++ {
		var tri raster.Triangle
		ok := true
		for k := 0; k < 3 && ok; k++ {
			tri[k], ok = scene.Project(scene.Transform(m.Vert(i, k), opts), opts.Width, opts.Height)
		}
		if !ok {
			skipped++
			continue
		}
		a := tri.Area()
		switch {
		case a < 0:
			back++
		case a < 1:
			tiny++
		default:
			front++
			area += a
		}
	}
	fmt.Printf("  --- %dx%d screen, %.0f° ---\n", opts.Width, opts.Height, *cfg.Angle)
	fmt.Printf("  Front facing: %d (%.0f px²)\n", front, area)
	fmt.Printf("  Back facing:  %d\n", back)
	fmt.Printf("  Sub-pixel:    %d\n", tiny)
	fmt.Printf("  Unprojected:  %d\n", skipped)
}
