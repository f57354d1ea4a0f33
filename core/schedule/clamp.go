package schedule

import "github.com/robdg22/jetshift/core/model"

// clampWake enforces a traveler's fixed must-wake-by time. Comparison
// is on time of day only, at minute resolution; a proposed wake later
// than the constraint is replaced by the constraint on the same day.
func clampWake(proposed model.ClockTime, t model.Traveler) model.ClockTime {
	if !t.HasWakeConstraint {
		return proposed
	}
	if proposed.After(t.WakeBy) {
		return t.WakeBy
	}
	return proposed
}

// rebalanceBedtime shifts bedtime earlier by exactly the minutes the
// wake time was pulled earlier, preserving the intended sleep duration
// instead of silently shortening it. Identity when the clamp had no
// effect.
func rebalanceBedtime(bed, proposedWake, clampedWake model.ClockTime) model.ClockTime {
	pulled := clampedWake.MinutesBefore(proposedWake)
	if pulled <= 0 {
		return bed
	}
	return bed.Add(-pulled)
}

// applyWakeConstraint runs the clamp and rebalance together. Travel-day
// and pre-return entries deliberately skip it; every other phase that
// derives wake time from a shift goes through here.
func applyWakeConstraint(bed, wake model.ClockTime, t model.Traveler) (model.ClockTime, model.ClockTime) {
	clamped := clampWake(wake, t)
	return rebalanceBedtime(bed, wake, clamped), clamped
}
