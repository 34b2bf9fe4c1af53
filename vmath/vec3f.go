package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for physics-heavy calculations
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// V3FAddScaled computes a + b*s without an intermediate vector,
// the common integration step position += velocity*dt
func V3FAddScaled(a, b Vec3F, s float64) Vec3F {
	return Vec3F{a.X + b.X*s, a.Y + b.Y*s, a.Z + b.Z*s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist returns the Euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}
