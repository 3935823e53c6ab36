package main

import (
	"flag"
	"fmt"
	"os"

	"tinyraster/internal/raster"
)

func main() {
	output := flag.String("o", "framebuffer.tga", "Output image path")
	flip := flag.Bool("flip", true, "Write row 0 at the bottom of the image")
	flag.Parse()

	const width, height = 640, 640

	fb := raster.NewImage(width, height)
	fb.Fill(raster.RGB(0, 0, 0))

	tri := raster.Triangle{
		{X: 17, Y: 4, Z: 13},
		{X: 620, Y: 20, Z: 128},
		{X: 90, Y: 559, Z: 255},
	}
	colors := [3]raster.Color{
		raster.RGB(255, 0, 0),
		raster.RGB(0, 255, 0),
		raster.RGB(0, 0, 255),
	}
	raster.NewRasterizer(0).Gouraud(fb, tri, colors)

	if *flip {
		fb = fb.FlipVertical()
	}
	if err := fb.Save(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output: %s\n", *output)
}
