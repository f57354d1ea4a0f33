package schedule

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/robdg22/jetshift/core/model"
	"github.com/robdg22/jetshift/core/recommend"
)

// postReturnEntries plans the recovery days back home. Bedtime and wake
// time interpolate linearly from the post-travel schedule back to the
// traveler's normal times, reaching them on the last recovery day. The
// wake constraint always applies here: the traveler typically has to be
// functional for work or school immediately.
func postReturnEntries(t model.Traveler, octx legContext, returnLeg *model.FlightLeg) []model.DailyScheduleEntry {
	days := min(maxRecoveryDays, recommend.RecoveryDays(octx.strategy, octx.offsetHours))
	if days <= 0 {
		return nil
	}

	// Residual carried home: the outbound target, minus whatever the
	// pre-return days already unwound under minimize-total.
	residual := octx.targetMin
	if octx.strategy.Kind == model.StrategyMinimizeTotal {
		residual = max(0, residual-preReturnDays*octx.incr)
	}

	// Back home an eastbound-adjusted body runs ahead of the local
	// clock, so the post-travel window sits earlier than normal; a
	// westbound-adjusted body sits later.
	sign := 1
	if octx.direction == model.DirectionEast {
		sign = -1
	}
	bedSeq := interpolate(int(t.Bedtime)+sign*residual, int(t.Bedtime), days)
	wakeSeq := interpolate(int(t.WakeTime)+sign*residual, int(t.WakeTime), days)

	returnDir := mirror(octx.direction)
	entries := make([]model.DailyScheduleEntry, 0, days)
	for r := 1; r <= days; r++ {
		bed := model.ClockTime(0).Add(bedSeq[r])
		wake := model.ClockTime(0).Add(wakeSeq[r])
		bed, wake = applyWakeConstraint(bed, wake, t)
		mag := int(math.Round(float64(residual) * float64(days-r) / float64(days)))
		entries = append(entries, model.DailyScheduleEntry{
			Date:                   returnLeg.ArrivalDate.AddDays(r),
			DayLabel:               fmt.Sprintf("Recovery Day %d", r),
			Stage:                  model.StagePostReturn,
			TravelDirection:        returnDir,
			Bedtime:                bed,
			WakeTime:               wake,
			BodyClockOffsetMinutes: signedOffset(mag, returnDir),
		})
	}
	return entries
}

// interpolate spans steps+1 evenly spaced minute marks from the
// post-travel value to the normal value, rounded to whole minutes.
// Values are raw (unwrapped) minutes so windows crossing midnight
// interpolate smoothly.
func interpolate(from, to, steps int) []int {
	seq := make([]float64, steps+1)
	floats.Span(seq, float64(from), float64(to))
	out := make([]int, len(seq))
	for i, v := range seq {
		out[i] = int(math.Round(v))
	}
	return out
}
