package geometry

import (
	"math"
	"testing"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vector2D
	}{
		{"Zero faces up", 0, Vector2D{0, 1}},
		{"Quarter turn faces left", math.Pi / 2, Vector2D{-1, 0}},
		{"Half turn faces down", math.Pi, Vector2D{0, -1}},
		{"Negative quarter faces right", -math.Pi / 2, Vector2D{1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.angle); !got.Eq(tt.want) {
				t.Errorf("Direction(%v) = %v; want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, -5.678}
	want := "(1.23, -5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		if got := v1.Add(v2); !got.Eq(Vector2D{4, 6}) {
			t.Errorf("%v.Add(%v) = %v", v1, v2, got)
		}
	})
	t.Run("Sub", func(t *testing.T) {
		if got := v1.Sub(v2); !got.Eq(Vector2D{-2, -2}) {
			t.Errorf("%v.Sub(%v) = %v", v1, v2, got)
		}
	})
	t.Run("Mul", func(t *testing.T) {
		if got := v1.Mul(2); !got.Eq(Vector2D{2, 4}) {
			t.Errorf("%v.Mul(2) = %v", v1, got)
		}
	})
}

func TestVector_Products(t *testing.T) {
	x := Vector2D{1, 0}
	y := Vector2D{0, 1}

	if got := x.Dot(y); got != 0 {
		t.Errorf("Dot orthogonal = %v; want 0", got)
	}
	if got := x.Cross(y); got != 1 {
		t.Errorf("Cross X,Y = %v; want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("Cross Y,X = %v; want -1", got)
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4}
	if got := v.LenSqr(); got != 25 {
		t.Errorf("LenSqr = %v; want 25", got)
	}
	if got := v.Len(); !floatEquals(got, 5) {
		t.Errorf("Len = %v; want 5", got)
	}
	if got := v.Normalize(); !got.Eq(Vector2D{0.6, 0.8}) {
		t.Errorf("Normalize = %v; want (0.6, 0.8)", got)
	}
	if got := (Vector2D{}).Normalize(); !got.Eq(Vector2D{}) {
		t.Errorf("Normalize zero = %v; want zero vector", got)
	}
	if got := v.DistanceTo(Vector2D{}); !floatEquals(got, 5) {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
}

func TestVector_Rotate(t *testing.T) {
	got := Vector2D{1, 0}.Rotate(math.Pi / 2)
	if !got.Eq(Vector2D{0, 1}) {
		t.Errorf("Rotate 90deg = %v; want (0, 1)", got)
	}
}

func TestPose_Axes(t *testing.T) {
	p := Pose{Angle: math.Pi / 2}
	if got := p.Forward(); !got.Eq(Vector2D{-1, 0}) {
		t.Errorf("Forward = %v; want (-1, 0)", got)
	}
	if got := p.Right(); !got.Eq(Vector2D{0, 1}) {
		t.Errorf("Right = %v; want (0, 1)", got)
	}
	// right is forward turned a quarter clockwise
	if got := p.Forward().Rotate(-math.Pi / 2); !got.Eq(p.Right()) {
		t.Errorf("Forward rotated -90deg = %v; want Right %v", got, p.Right())
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-5 * math.Pi / 2, -math.Pi / 2},
		{4 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); !floatEquals(got, tt.want) {
			t.Errorf("NormalizeAngle(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
