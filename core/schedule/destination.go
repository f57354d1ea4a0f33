package schedule

import (
	"fmt"

	"github.com/robdg22/jetshift/core/model"
)

// destinationEntries plans the gradual approach to the traveler's own
// normal times after arrival. reserved is the number of trailing days
// held back for the pre-return phase (2 under minimize-total, else 0).
func destinationEntries(t model.Traveler, ctx legContext, daysAtDestination, reserved int) []model.DailyScheduleEntry {
	if ctx.strategy.Kind == model.StrategyNone {
		return homeTimeEntries(t, ctx, min(maxHomeTimeDays, max(1, daysAtDestination-1)))
	}

	usable := daysAtDestination - reserved - 1
	shown := min(maxDestinationDays, max(1, usable))
	entries := make([]model.DailyScheduleEntry, 0, shown)
	for k := 1; k <= shown; k++ {
		entries = append(entries, destinationDay(t, ctx, k))
	}

	// Days past the computed window repeat the last times, fully
	// adjusted, capped to keep the list bounded.
	extra := min(maxRepeatDays, max(0, usable-shown))
	last := entries[len(entries)-1]
	for j := 1; j <= extra; j++ {
		day := shown + j
		entries = append(entries, model.DailyScheduleEntry{
			Date:            ctx.leg.ArrivalDate.AddDays(day - 1),
			DayLabel:        fmt.Sprintf("Day %d", day),
			Stage:           model.StageAtDestination,
			TravelDirection: ctx.direction,
			Bedtime:         last.Bedtime,
			WakeTime:        last.WakeTime,
		})
	}
	return entries
}

// postArrivalEntries is the one-way variant of the destination phase:
// a fixed number of days computed with the same day formula.
func postArrivalEntries(t model.Traveler, ctx legContext) []model.DailyScheduleEntry {
	if ctx.strategy.Kind == model.StrategyNone {
		return homeTimeEntries(t, ctx, postArrivalDays)
	}
	entries := make([]model.DailyScheduleEntry, 0, postArrivalDays)
	for k := 1; k <= postArrivalDays; k++ {
		entries = append(entries, destinationDay(t, ctx, k))
	}
	return entries
}

// destinationDay computes day k, where day 1 is the arrival date
// itself. The pre-flight
// adjustment is credited first; whatever remains maps onto one side of
// the sleep window depending on direction: westbound pulls the wake time
// earlier while holding bedtime (stay up), eastbound pulls bedtime
// earlier while holding the wake time (alarm-forced early waking).
func destinationDay(t model.Traveler, ctx legContext, k int) model.DailyScheduleEntry {
	preFlight := min(preAdjustmentDays*ctx.incr, ctx.targetMin)
	adjusted := preFlight + min(k*ctx.incr, max(0, ctx.targetMin-preFlight))
	remaining := max(0, ctx.targetMin-adjusted)

	entry := model.DailyScheduleEntry{
		Date:            ctx.leg.ArrivalDate.AddDays(k - 1),
		DayLabel:        fmt.Sprintf("Day %d", k),
		Stage:           model.StageAtDestination,
		TravelDirection: ctx.direction,
		Bedtime:         t.Bedtime,
		WakeTime:        t.WakeTime,
	}
	switch ctx.direction {
	case model.DirectionWest:
		bed, wake := applyWakeConstraint(t.Bedtime, t.WakeTime.Add(-remaining), t)
		entry.Bedtime, entry.WakeTime = bed, wake
	case model.DirectionEast:
		bed, wake := applyWakeConstraint(t.Bedtime.Add(-remaining), t.WakeTime, t)
		entry.Bedtime, entry.WakeTime = bed, wake
	}
	entry.BodyClockOffsetMinutes = signedOffset(remaining, ctx.direction)
	return entry
}

// homeTimeEntries fills the destination window with the traveler's
// unmodified times for the no-adjustment strategy.
func homeTimeEntries(t model.Traveler, ctx legContext, count int) []model.DailyScheduleEntry {
	entries := make([]model.DailyScheduleEntry, 0, count)
	for k := 1; k <= count; k++ {
		entries = append(entries, model.DailyScheduleEntry{
			Date:            ctx.leg.ArrivalDate.AddDays(k - 1),
			DayLabel:        fmt.Sprintf("Day %d", k),
			Stage:           model.StageAtDestination,
			TravelDirection: ctx.direction,
			Bedtime:         t.Bedtime,
			WakeTime:        t.WakeTime,
		})
	}
	return entries
}
