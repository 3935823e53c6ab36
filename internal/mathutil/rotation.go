package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotY returns a homogeneous rotation around the Y axis. Angle in radians.
func RotY(a float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DY(a)
}

// Rotate turns a model-space point around the Y axis and lifts it to
// homogeneous coordinates (w=1).
func Rotate(v mgl64.Vec3, a float64) mgl64.Vec4 {
	return RotY(a).Mul4x1(v.Vec4(1))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
