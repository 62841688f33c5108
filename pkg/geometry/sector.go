package geometry

import "math"

// IsClockwise reports whether turning from a toward b is a clockwise turn.
func IsClockwise(a, b Vector2D) bool {
	return -a.X*b.Y+a.Y*b.X > 0
}

// IsWithinRadius is an inclusive range check on squared distances.
func IsWithinRadius(p, center Vector2D, radius float64) bool {
	return p.DistanceSquaredTo(center) <= radius*radius
}

// IsWithinSector reports whether point lies within radius of center and its
// bearing from center falls between the boundary directions of startAngle and
// endAngle (counter-clockwise from start to end).
//
// Points exactly on a boundary ray may land on either side.
func IsWithinSector(point, center Vector2D, startAngle, endAngle, radius float64) bool {
	if !IsWithinRadius(point, center, radius) {
		return false
	}
	span := endAngle - startAngle
	if span >= 2*math.Pi {
		return true
	}
	if span < 0 {
		return false
	}
	rel := point.Sub(center)
	afterStart := !IsClockwise(Direction(startAngle), rel)
	beforeEnd := IsClockwise(Direction(endAngle), rel)
	if span <= math.Pi {
		return afterStart && beforeEnd
	}
	// reflex wedge: everything outside the complementary convex wedge
	return afterStart || beforeEnd
}
