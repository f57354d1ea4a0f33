package schedule

import "github.com/robdg22/jetshift/core/model"

// Travel-day sleep is anchored to fixed local clock times rather than
// the traveler's own schedule: westbound flyers stay up late, eastbound
// flyers take a short nap and push through.
const (
	msgEastbound   = "Short morning nap if tired, then stay awake as long as possible"
	msgWestbound   = "Stay up as late as possible"
	msgNoOffset    = "No time change on this flight. Keep your usual sleep times"
	msgStayOnHome  = "Stay on home time for this trip"
	hotelTransferM = 120
)

// travelDayEntry plans the single entry for one flight leg. The wake
// constraint is deliberately not applied: travel-day sleep is already
// exceptional.
func travelDayEntry(t model.Traveler, ctx legContext, outbound bool) model.DailyScheduleEntry {
	entry := model.DailyScheduleEntry{
		Date:            ctx.leg.DepartureDate,
		DayLabel:        "Travel Day",
		Stage:           model.StageTravelDayOutbound,
		TravelDirection: ctx.direction,
		Bedtime:         t.Bedtime,
		WakeTime:        t.WakeTime,
	}
	if !outbound {
		entry.DayLabel = "Return Travel Day"
		entry.Stage = model.StageTravelDayReturn
	}

	switch {
	case ctx.strategy.Kind == model.StrategyNone:
		entry.StrategyMessage = msgStayOnHome
	case ctx.direction == model.DirectionEast:
		entry.Bedtime = model.NewClock(22, 0)
		entry.WakeTime = model.NewClock(7, 0)
		entry.StrategyMessage = msgEastbound
		entry.BodyClockOffsetMinutes = signedOffset(travelDayResidual(ctx), ctx.direction)
	case ctx.direction == model.DirectionWest:
		entry.Bedtime = model.NewClock(23, 0)
		entry.WakeTime = model.NewClock(8, 0)
		entry.StrategyMessage = msgWestbound
		entry.BodyClockOffsetMinutes = signedOffset(travelDayResidual(ctx), ctx.direction)
	default:
		entry.StrategyMessage = msgNoOffset
	}

	if outbound {
		hotel := ctx.leg.ArrivalTime.Add(hotelTransferM)
		entry.HotelArrivalEstimate = &hotel
	}
	return entry
}

// travelDayResidual is the strategy's target offset left after the
// three pre-adjustment days, floored at zero. Measuring against the
// target rather than the raw timezone change keeps the offset magnitude
// from growing between the pre-adjustment and destination phases under
// partial strategies.
func travelDayResidual(ctx legContext) int {
	return max(0, ctx.targetMin-preAdjustmentDays*ctx.incr)
}
