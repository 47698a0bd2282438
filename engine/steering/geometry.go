package steering

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Epsilon is the smallest positive value used for distances and tuning
// parameters that would otherwise divide by zero.
const Epsilon = 1e-6

// positive clamps v to at least Epsilon. NaN clamps too.
func positive(v float64) float64 {
	if !(v > Epsilon) {
		return Epsilon
	}
	return v
}

// direction splits v into a unit vector and its length. A vector shorter
// than Epsilon yields a zero direction and zero length.
func direction(v cp.Vector) (cp.Vector, float64) {
	length := v.Length()
	if !(length > Epsilon) {
		return cp.Vector{}, 0
	}
	return v.Mult(1 / length), length
}

// wrapAngle maps a into (-Pi, Pi].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// seekVelocity returns the full-speed velocity from 'from' to 'to' and the
// distance between them. ok is false when the points coincide.
func seekVelocity(from, to cp.Vector, speed float64) (desired cp.Vector, distance float64, ok bool) {
	dir, distance := direction(to.Sub(from))
	if distance == 0 {
		return cp.Vector{}, 0, false
	}
	return dir.Mult(speed), distance, true
}

// seekOutput is the plain seek: full speed toward to, as a velocity change.
func seekOutput(k *KinematicData, to cp.Vector) Output {
	desired, _, ok := seekVelocity(k.Location, to, k.MaximumSpeed)
	if !ok {
		return NoEffect()
	}
	return VelocityOutput(desired.Sub(k.Velocity))
}
