package component

import "math"

// ResolveDamage applies damage to the shield first and lets any overflow
// reach health. absorbed reports whether the shield took the whole hit.
//
// newHealth is not clamped; callers decide liveness from its sign. Negative
// or NaN damage is treated as zero so a hit can never heal.
func ResolveDamage(damage, shield, health float64) (newShield, newHealth float64, absorbed bool) {
	if damage < 0 || math.IsNaN(damage) {
		damage = 0
	}
	leftover := shield - damage
	if leftover >= 0 {
		return leftover, health, true
	}
	return 0, health + leftover, false
}
