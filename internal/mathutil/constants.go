package mathutil

import "math"

// Default camera setup of the renderer.
const (
	// DefaultViewAngle is the model rotation around Y: 30°.
	DefaultViewAngle = math.Pi / 6

	// DefaultCameraDistance is the c of the perspective divide.
	DefaultCameraDistance = 3.0
)
