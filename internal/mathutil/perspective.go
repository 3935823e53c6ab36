package mathutil

import "github.com/go-gl/mathgl/mgl64"

// Perspective divides v by (1 - z/c), with the camera at distance c on +Z.
// Points closer to the camera grow, points further away shrink.
func Perspective(v mgl64.Vec4, c float64) mgl64.Vec4 {
	return v.Mul(1 / (1 - v.Z()/c))
}
