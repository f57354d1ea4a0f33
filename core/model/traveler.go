package model

// Traveler is an age-scoped sleep profile. Bedtime and WakeTime are the
// traveler's normal times at home, timezone-naive.
type Traveler struct {
	Name     string    `json:"name"`
	Age      int       `json:"age"` // expected in [0, 120], validated upstream
	Bedtime  ClockTime `json:"bedtime"`
	WakeTime ClockTime `json:"wake_time"`

	// HasWakeConstraint marks a fixed latest permissible wake time,
	// e.g. for work or school. WakeBy is meaningful only when set.
	HasWakeConstraint bool      `json:"has_wake_constraint"`
	WakeBy            ClockTime `json:"wake_by,omitempty"`

	// StrategyOverride replaces the trip's default strategy for this
	// traveler when non-nil.
	StrategyOverride *Strategy `json:"strategy_override,omitempty"`
}

// AdjustmentIncrement returns the per-day shift in minutes the traveler
// can comfortably absorb. It is a pure function of age: young children
// adjust in smaller steps.
func (t Traveler) AdjustmentIncrement() int {
	switch {
	case t.Age <= 5:
		return 20
	case t.Age <= 12:
		return 25
	default:
		return 30
	}
}

// RecommendedSleepHours returns the age-banded sleep duration range in
// hours. Display only; the planner never reads it.
func (t Traveler) RecommendedSleepHours() (min, max float64) {
	switch {
	case t.Age <= 2:
		return 11, 14
	case t.Age <= 5:
		return 10, 13
	case t.Age <= 12:
		return 9, 11
	case t.Age <= 17:
		return 8, 10
	default:
		return 7, 9
	}
}

// EffectiveStrategy resolves the strategy governing this traveler's plan:
// the personal override when present, otherwise the trip default.
func (t Traveler) EffectiveStrategy(tripDefault Strategy) Strategy {
	if t.StrategyOverride != nil {
		return *t.StrategyOverride
	}
	return tripDefault
}
