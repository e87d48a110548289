package main

import "math"

// Matrix is a 2x3 affine transformation in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// x' = A*x + B*y + C
// y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate creates a rotation matrix, angle in radians.
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * other, applying other before m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Invert returns the inverse transformation. The second return value is
// false for degenerate (non-invertible) matrices.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}
