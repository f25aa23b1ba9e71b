// internal/utils/math.go
package utils

import "math"

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Direction returns the unit vector pointing from (x1, y1) to (x2, y2) and the distance
// between the points. A zero distance yields a zero vector.
func Direction(x1, y1, x2, y2 float64) (dx, dy, dist float64) {
	dx = x2 - x1
	dy = y2 - y1
	dist = math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// Lerp performs linear interpolation between from and to.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}
