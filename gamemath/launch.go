package gamemath

// PowerLevel buckets a pull distance into a discrete power level 1..3.
// Bucketing (rather than a continuous mapping) keeps launch outcomes
// reproducible across device sizes.
func PowerLevel(pullDist, maxPull, splitLow, splitHigh float64) int {
	norm := pullDist / maxPull
	switch {
	case norm < splitLow:
		return 1
	case norm < splitHigh:
		return 2
	default:
		return 3
	}
}

// IsThrowGesture reports whether a pull is long enough to register as a
// throw. Callers must not spawn a ball when this returns false.
func IsThrowGesture(pull Vec, minDist float64) bool {
	return pull.Len() >= minDist
}

// LaunchVelocity maps a drag pull onto an initial velocity.
//
// pull is dragEnd-dragStart, toTarget is the vector from the throw origin to
// the bin center. A pull pointing away from the target is inverted, so
// pulling back and releasing throws forward (slingshot), while a short
// forward flick is honored as-is. The result is the normalized direction
// scaled by speed, with vx clamped to [-maxSpeedX, maxSpeedX] and vy to the
// asymmetric [maxRiseVy, maxDropVy] range.
//
// Deterministic; returns the zero vector for a degenerate pull.
func LaunchVelocity(pull, toTarget Vec, speed, maxSpeedX, maxRiseVy, maxDropVy float64) Vec {
	dir := pull.Normalized()
	if dir == (Vec{}) {
		return Vec{}
	}
	if dir.Dot(toTarget) < 0 {
		dir = dir.Scale(-1)
	}
	v := dir.Scale(speed)
	v.X = ClampSpeed(v.X, maxSpeedX)
	v.Y = ClampRange(v.Y, maxRiseVy, maxDropVy)
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampRange clamps a value to [lo, hi].
func ClampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
