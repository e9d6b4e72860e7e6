package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Distance is the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return toVector(a).Distance(toVector(b))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves v toward target by at most step.
func Approach(v, target, step int) int {
	switch {
	case v < target:
		return min(v+step, target)
	case v > target:
		return max(v-step, target)
	}
	return v
}

func toVector(p Point) cp.Vector {
	return cp.Vector{X: float64(p.X), Y: float64(p.Y)}
}
