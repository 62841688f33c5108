package geometry

import "math"

// Pose is a position plus an orientation angle (radians, counter-clockwise,
// 0 facing +Y).
type Pose struct {
	Position Vector2D `json:"position"`
	Angle    float64  `json:"angle"`
}

// Forward is the axis the pose moves along.
func (p Pose) Forward() Vector2D {
	return Direction(p.Angle)
}

// Right is the forward axis turned a quarter clockwise.
func (p Pose) Right() Vector2D {
	return Vector2D{X: math.Cos(p.Angle), Y: math.Sin(p.Angle)}
}

// Rotate turns the pose by delta radians.
func (p *Pose) Rotate(delta float64) {
	p.Angle = NormalizeAngle(p.Angle + delta)
}

// NormalizeAngle wraps an angle into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
