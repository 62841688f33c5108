// Package steering turns a pose toward a target at a bounded angular rate.
package steering

import (
	"math"

	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/geometry"
)

// Compute returns the angle between the pose's forward axis and the bearing to
// target, in [0, Pi], and the rotation sign that closes it along the shorter
// path: -1 when the target is on the right, +1 otherwise.
//
// A target coincident with the pose has no bearing; Compute returns (0, +1)
// so that any step built from it is a no-op.
func Compute(pose geometry.Pose, target geometry.Vector2D) (maxAngle, sign float64) {
	toTarget := target.Sub(pose.Position)
	if toTarget.LenSqr() < geometry.Epsilon*geometry.Epsilon {
		return 0, 1
	}
	dir := toTarget.Normalize()
	cos := math.Max(-1, math.Min(1, pose.Forward().Dot(dir)))
	maxAngle = math.Acos(cos)

	sign = 1
	if pose.Right().Dot(dir) > 0 {
		sign = -1
	}
	return maxAngle, sign
}

// ApplyStep rotates pose by sign * min(turnRate*dt, maxAngle) and returns the
// rotation applied. The pose never turns past direct alignment.
func ApplyStep(pose *geometry.Pose, maxAngle, sign, turnRate, dt float64) float64 {
	delta := sign * math.Min(math.Abs(turnRate)*dt, maxAngle)
	pose.Rotate(delta)
	return delta
}

// Step computes and applies one rate-limited turn toward target.
func Step(pose *geometry.Pose, target geometry.Vector2D, turnRate, dt float64) float64 {
	maxAngle, sign := Compute(*pose, target)
	return ApplyStep(pose, maxAngle, sign, turnRate, dt)
}

// Face aligns pose with target immediately. No-op when coincident.
func Face(pose *geometry.Pose, target geometry.Vector2D) {
	toTarget := target.Sub(pose.Position)
	if toTarget.LenSqr() < geometry.Epsilon*geometry.Epsilon {
		return
	}
	// forward is (-sin a, cos a)
	pose.Angle = math.Atan2(-toTarget.X, toTarget.Y)
}
