package scene

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"tinyraster/internal/raster"
)

// Frame is the output of one render: a color buffer and the depth buffer
// that resolved it.
type Frame struct {
	Color *raster.Image
	Depth *raster.Image
}

// NewFrame allocates a frame with an opaque black color buffer and an empty
// depth buffer.
func NewFrame(w, h int) *Frame {
	f := &Frame{
		Color: raster.NewImage(w, h),
		Depth: raster.NewImage(w, h),
	}
	f.Color.Fill(raster.RGB(0, 0, 0))
	f.Depth.Fill(raster.Gray(0))
	return f
}

// Save writes the color buffer to colorPath and the depth buffer to
// depthPath concurrently. With flip set, row 0 ends up at the bottom of the
// file, matching a y-up screen.
func (f *Frame) Save(colorPath, depthPath string, flip bool) error {
	var g errgroup.Group
	for _, out := range []struct {
		img  *raster.Image
		path string
	}{
		{f.Color, colorPath},
		{f.Depth, depthPath},
	} {
		g.Go(func() error {
			img := out.img
			if flip {
				img = img.FlipVertical()
			}
			if err := img.Save(out.path); err != nil {
				return fmt.Errorf("scene: %w", err)
			}
			Logger().Debug("image written", "path", out.path)
			return nil
		})
	}
	return g.Wait()
}
