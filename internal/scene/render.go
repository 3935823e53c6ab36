package scene

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"tinyraster/internal/mathutil"
	"tinyraster/internal/raster"
)

// Mesh is the geometry Render consumes.
type Mesh interface {
	NumFaces() int
	Vert(face, corner int) mgl64.Vec3
}

// Options controls the camera and output size of a frame.
type Options struct {
	Width, Height  int
	Angle          float64 // rotation around Y, radians
	CameraDistance float64 // c of the perspective divide
	Perspective    bool
	Seed           int64 // face color sequence
	Workers        int   // rasterizer goroutines, <= 0 means NumCPU
}

// DefaultOptions returns the standard 800×800 camera setup.
func DefaultOptions() Options {
	return Options{
		Width:          800,
		Height:         800,
		Angle:          mathutil.DefaultViewAngle,
		CameraDistance: mathutil.DefaultCameraDistance,
		Perspective:    true,
		Seed:           1,
	}
}

// Stats counts what happened to the faces of a frame.
type Stats struct {
	Faces     int
	Drawn     int // passed the area test
	Discarded int // back facing or below one pixel
	Skipped   int // a vertex could not be projected
}

// Render draws every face of m with a random flat color, using the depth
// buffer to resolve occlusion. Faces are drawn in model order.
func Render(m Mesh, opts Options) (*Frame, Stats) {
	start := time.Now()

	frame := NewFrame(opts.Width, opts.Height)
	r := raster.NewRasterizer(opts.Workers)
	rng := rand.New(rand.NewSource(opts.Seed))

	stats := Stats{Faces: m.NumFaces()}
	for i := 0; i < stats.Faces; i++ {
		var tri raster.Triangle
		ok := true
		for k := 0; k < 3 && ok; k++ {
			tri[k], ok = Project(Transform(m.Vert(i, k), opts), opts.Width, opts.Height)
		}

		// Draw the color even for skipped faces so the sequence only
		// depends on the face index.
		var c raster.Color
		for ch := raster.Blue; ch <= raster.Red; ch++ {
			c[ch] = uint8(rng.Intn(255))
		}

		switch {
		case !ok:
			stats.Skipped++
			continue
		case tri.Discarded():
			stats.Discarded++
			continue
		}
		r.FillDepth(frame.Depth, frame.Color, tri, c)
		stats.Drawn++
	}

	Logger().Debug("frame rendered",
		"faces", stats.Faces,
		"drawn", stats.Drawn,
		"discarded", stats.Discarded,
		"skipped", stats.Skipped,
		"elapsed", time.Since(start))

	return frame, stats
}
