package types

import (
	"fmt"
	"math"
)

// Joules is an energy amount.
type Joules float64

// Humanized returns a human-readable string with automatic unit (uJ, mJ, J, kJ).
func (j Joules) Humanized() string {
	v := float64(j)
	a := math.Abs(v)
	switch {
	case a >= 1e3:
		return fmt.Sprintf("%.2f kJ", v/1e3)
	case a >= 1 || a == 0:
		return fmt.Sprintf("%.2f J", v)
	case a >= 1e-3:
		return fmt.Sprintf("%.2f mJ", v*1e3)
	default:
		return fmt.Sprintf("%.2f uJ", v*1e6)
	}
}

// MilliJoules returns the amount in mJ.
func (j Joules) MilliJoules() float64 { return float64(j) * 1e3 }

// Watts is a power level.
type Watts float64

// Humanized returns a human-readable string with automatic unit (mW, W).
func (w Watts) Humanized() string {
	v := float64(w)
	if a := math.Abs(v); a > 0 && a < 1 {
		return fmt.Sprintf("%.1f mW", v*1e3)
	}
	return fmt.Sprintf("%.3f W", v)
}
