package schedule

import (
	"fmt"

	"github.com/robdg22/jetshift/core/model"
)

// preAdjustmentEntries plans the three days before departure. Day d
// (1 = three days out) carries a cumulative shift of min(d*incr,
// target): earlier for eastbound travel, later for westbound.
func preAdjustmentEntries(t model.Traveler, ctx legContext) []model.DailyScheduleEntry {
	entries := make([]model.DailyScheduleEntry, 0, preAdjustmentDays)
	for d := 1; d <= preAdjustmentDays; d++ {
		daysBefore := preAdjustmentDays - d + 1
		entry := model.DailyScheduleEntry{
			Date:            ctx.leg.DepartureDate.AddDays(-daysBefore),
			DayLabel:        daysBeforeLabel(daysBefore),
			Stage:           model.StagePreAdjustment,
			TravelDirection: ctx.direction,
			Bedtime:         t.Bedtime,
			WakeTime:        t.WakeTime,
		}
		if ctx.strategy.Kind != model.StrategyNone && ctx.direction != model.DirectionNone {
			cum := min(d*ctx.incr, ctx.targetMin)
			shift := cum
			if ctx.direction == model.DirectionEast {
				shift = -cum
			}
			bed := t.Bedtime.Add(shift)
			wake := t.WakeTime.Add(shift)
			entry.Bedtime, entry.WakeTime = applyWakeConstraint(bed, wake, t)
			entry.BodyClockOffsetMinutes = signedOffset(ctx.targetMin-cum, ctx.direction)
		}
		entries = append(entries, entry)
	}
	return entries
}

func daysBeforeLabel(n int) string {
	if n == 1 {
		return "1 day before"
	}
	return fmt.Sprintf("%d days before", n)
}
