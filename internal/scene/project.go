package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"tinyraster/internal/mathutil"
	"tinyraster/internal/raster"
)

// MaxDepth is the largest depth sample a projected vertex can carry.
const MaxDepth = 255

// Transform rotates a model-space point around Y and, if enabled, applies
// the perspective divide.
func Transform(v mgl64.Vec3, opts Options) mgl64.Vec4 {
	p := mathutil.Rotate(v, opts.Angle)
	if opts.Perspective {
		p = mathutil.Perspective(p, opts.CameraDistance)
	}
	return p
}

// Project maps normalized [-1,1] coordinates to a w×h screen and depth to
// [0,MaxDepth]. Coordinates are truncated toward zero. Depth is clamped
// here so the rasterizer never sees values outside the 8-bit range.
// ok is false when v has a non-finite component (a point on the camera
// plane after the perspective divide).
func Project(v mgl64.Vec4, w, h int) (vert raster.Vertex, ok bool) {
	for _, c := range v[:3] {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return raster.Vertex{}, false
		}
	}
	x := (v.X() + 1) * float64(w) / 2
	y := (v.Y() + 1) * float64(h) / 2
	z := (v.Z() + 1) * MaxDepth / 2

	limit := float64(4 * max(w, h, MaxDepth))
	if math.Abs(x) > limit || math.Abs(y) > limit {
		return raster.Vertex{}, false
	}
	z = math.Max(0, math.Min(MaxDepth, z))

	return raster.Vertex{X: int(x), Y: int(y), Z: int(z)}, true
}
