// Package schedule computes day-by-day sleep plans that shift a
// traveler's bedtime and wake time across the phases of a trip. The
// planner is a pipeline of pure functions: no state survives a call,
// and every request recomputes the full plan from its inputs.
package schedule

import (
	"math"

	"github.com/robdg22/jetshift/core/model"
	"github.com/robdg22/jetshift/core/recommend"
)

const (
	preAdjustmentDays  = 3
	preReturnDays      = 2
	maxRecoveryDays    = 3
	maxDestinationDays = 4
	maxRepeatDays      = 7
	maxHomeTimeDays    = 14
	postArrivalDays    = 4
)

// Planner computes traveler schedules. It holds only the timezone
// resolver; plans for different travelers may be computed concurrently.
type Planner struct {
	tz model.OffsetResolver
}

// New builds a Planner around the given timezone resolver. A nil
// resolver yields zero offsets for every leg.
func New(tz model.OffsetResolver) *Planner {
	return &Planner{tz: tz}
}

// legContext carries the per-leg quantities every phase planner needs.
type legContext struct {
	leg            *model.FlightLeg
	strategy       model.Strategy
	direction      model.Direction
	offsetHours    int
	totalOffsetMin int
	targetMin      int // minutes of offset the strategy aims to absorb
	incr           int // traveler's per-day adjustment increment
}

func (p *Planner) newLegContext(t model.Traveler, strat model.Strategy, leg *model.FlightLeg) legContext {
	offsetHours := leg.TimezoneOffsetHours(p.tz)
	total := absInt(offsetHours) * 60
	return legContext{
		leg:            leg,
		strategy:       strat,
		direction:      model.DirectionForOffset(offsetHours),
		offsetHours:    offsetHours,
		totalOffsetMin: total,
		targetMin:      int(math.Round(float64(total) * strat.AdjustmentPercentage())),
		incr:           t.AdjustmentIncrement(),
	}
}

// ComputeSchedule assembles the full ordered plan for one traveler.
// A trip without an outbound leg yields an empty plan, never an error.
func (p *Planner) ComputeSchedule(t model.Traveler, trip model.Trip) []model.DailyScheduleEntry {
	if trip.Outbound == nil {
		return nil
	}
	strat := t.EffectiveStrategy(trip.Strategy)
	octx := p.newLegContext(t, strat, trip.Outbound)

	entries := preAdjustmentEntries(t, octx)
	entries = append(entries, travelDayEntry(t, octx, true))

	if trip.Return == nil {
		return append(entries, postArrivalEntries(t, octx)...)
	}

	reserved := 0
	if strat.Kind == model.StrategyMinimizeTotal {
		reserved = preReturnDays
	}
	entries = append(entries, destinationEntries(t, octx, trip.DaysAtDestination(), reserved)...)
	if strat.Kind == model.StrategyMinimizeTotal {
		entries = append(entries, preReturnEntries(t, octx, trip.Return)...)
	}

	rctx := p.newLegContext(t, strat, trip.Return)
	entries = append(entries, travelDayEntry(t, rctx, false))
	entries = append(entries, postReturnEntries(t, octx, trip.Return)...)
	return entries
}

// RecoveryDays exposes the recovery estimate for the trip's outbound
// offset, as shown alongside a computed plan.
func (p *Planner) RecoveryDays(t model.Traveler, trip model.Trip) int {
	if trip.Outbound == nil {
		return 0
	}
	strat := t.EffectiveStrategy(trip.Strategy)
	return recommend.RecoveryDays(strat, trip.Outbound.TimezoneOffsetHours(p.tz))
}

// OffsetHours returns the signed timezone change of the outbound leg,
// 0 when the trip has none.
func (p *Planner) OffsetHours(trip model.Trip) int {
	if trip.Outbound == nil {
		return 0
	}
	return trip.Outbound.TimezoneOffsetHours(p.tz)
}

// signedOffset applies the sign convention used by every phase: the
// magnitude is the remaining adjustment, negative while adjusting
// eastbound, positive while westbound.
func signedOffset(magnitude int, dir model.Direction) int {
	switch dir {
	case model.DirectionEast:
		return -magnitude
	case model.DirectionWest:
		return magnitude
	default:
		return 0
	}
}

// mirror flips the direction, mapping an outbound leg to its return.
func mirror(dir model.Direction) model.Direction {
	switch dir {
	case model.DirectionEast:
		return model.DirectionWest
	case model.DirectionWest:
		return model.DirectionEast
	default:
		return model.DirectionNone
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
