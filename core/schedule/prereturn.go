package schedule

import (
	"fmt"

	"github.com/robdg22/jetshift/core/model"
)

// preReturnEntries plans the two shift-back days before the return
// flight, present only under the minimize-total strategy. The starting
// point is a fixed destination steady-state anchor already leaning
// toward home; each day shifts a further increment back. The wake
// constraint is not applied here.
func preReturnEntries(t model.Traveler, octx legContext, returnLeg *model.FlightLeg) []model.DailyScheduleEntry {
	returnDir := mirror(octx.direction)
	entries := make([]model.DailyScheduleEntry, 0, preReturnDays)
	for d := 1; d <= preReturnDays; d++ {
		daysBefore := preReturnDays - d + 1
		entry := model.DailyScheduleEntry{
			Date:            returnLeg.DepartureDate.AddDays(-daysBefore),
			DayLabel:        preReturnLabel(daysBefore),
			Stage:           model.StagePreReturn,
			TravelDirection: returnDir,
			Bedtime:         t.Bedtime,
			WakeTime:        t.WakeTime,
		}
		if octx.direction != model.DirectionNone {
			bed, wake := preReturnAnchor(octx.direction)
			shift := d * octx.incr
			if octx.direction == model.DirectionWest {
				// Heading back east: shift earlier toward home.
				shift = -shift
			}
			entry.Bedtime = bed.Add(shift)
			entry.WakeTime = wake.Add(shift)
			entry.BodyClockOffsetMinutes = signedOffset(d*octx.incr, returnDir)
		}
		entries = append(entries, entry)
	}
	return entries
}

// preReturnAnchor is the assumed steady-state sleep window at the
// destination, biased toward home time by the outbound direction.
func preReturnAnchor(outbound model.Direction) (bed, wake model.ClockTime) {
	if outbound == model.DirectionEast {
		return model.NewClock(22, 0), model.NewClock(5, 30)
	}
	return model.NewClock(22, 0), model.NewClock(6, 30)
}

func preReturnLabel(n int) string {
	if n == 1 {
		return "1 day before return"
	}
	return fmt.Sprintf("%d days before return", n)
}
