package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"add", a.Add(b), V3(5, -3, 9)},
		{"sub", a.Sub(b), V3(-3, 7, -3)},
		{"scale", a.Scale(2), V3(2, 4, 6)},
		{"negate", a.Negate(), V3(-1, -2, -3)},
		{"min", a.Min(b), V3(1, -5, 3)},
		{"max", a.Max(b), V3(4, 2, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !vecNear(tc.got, tc.want, eps) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}

	if got := a.Dot(b); got != 1*4+2*-5+3*6 {
		t.Errorf("Dot = %v, want 12", got)
	}
}

func TestVec3CrossFormula(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)
	want := V3(2*6-3*5, 3*4-1*6, 1*5-2*4)
	if got := a.Cross(b); !vecNear(got, want, eps) {
		t.Errorf("Cross = %v, want %v", got, want)
	}

	// Basis vectors follow the right-hand rule.
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); !vecNear(got, V3(0, 0, 1), eps) {
		t.Errorf("X × Y = %v, want Z", got)
	}
}

func TestVec3CrossAntiCommutative(t *testing.T) {
	pairs := [][2]Vec3{
		{V3(1, 0, 0), V3(0, 1, 0)},
		{V3(1, 2, 3), V3(-4, 5, 0.5)},
		{V3(0, 0, 0), V3(7, 8, 9)},
		{V3(-2.5, 1e3, 3), V3(0.001, -7, 11)},
	}

	for _, p := range pairs {
		ab := p[0].Cross(p[1])
		ba := p[1].Cross(p[0])
		if !vecNear(ab, ba.Negate(), 1e-9) {
			t.Errorf("cross(%v, %v) = %v, want %v", p[0], p[1], ab, ba.Negate())
		}
	}
}

func TestVec3Normalize(t *testing.T) {
	vectors := []Vec3{
		V3(3, 4, 0),
		V3(1, 1, 1),
		V3(-0.001, 0.002, 0),
		V3(1e6, -2e6, 3e6),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if math.Abs(n.Len()-1) > 1e-9 {
			t.Errorf("Normalize(%v).Len() = %v, want 1", v, n.Len())
		}
		if n.Dot(v) <= 0 {
			t.Errorf("Normalize(%v) = %v points away from input", v, n)
		}
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n := Zero3().Normalize()
	if n != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero vector", n)
	}
	if !n.IsFinite() {
		t.Error("Normalize(zero) must not produce NaN")
	}
}

func TestVec3Len(t *testing.T) {
	if got := V3(2, 3, 6).Len(); got != 7 {
		t.Errorf("Len = %v, want 7", got)
	}
}

func TestVec2(t *testing.T) {
	a := V2(3, 1)
	b := V2(1, 4)

	if got := a.Sub(b); got != V2(2, -3) {
		t.Errorf("Sub = %v, want (2,-3)", got)
	}
	if got := a.Cross(b); got != 3*4-1*1 {
		t.Errorf("Cross = %v, want 11", got)
	}
	if got, want := a.Cross(b), -b.Cross(a); got != want {
		t.Errorf("Cross not anti-commutative: %v vs %v", got, want)
	}
	if V2(math.Inf(1), 0).IsFinite() {
		t.Error("infinite Vec2 reported finite")
	}
}
