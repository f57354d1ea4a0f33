package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robdg22/jetshift/core/model"
)

// Recovery after a full eastbound adjustment interpolates linearly from
// the destination-shifted times back to normal, landing exactly on the
// traveler's own schedule on the last day.
func TestPostReturnInterpolation(t *testing.T) {
	p := New(testResolver())
	trip := nycLondonTrip(12, model.FullStrategy())
	entries := p.ComputeSchedule(adult(), trip)
	post := entriesByStage(entries, model.StagePostReturn)
	require.Len(t, post, 3) // full 5h east estimates 5 days, capped to 3

	// Residual 300 minutes; the window walks from 18:00/02:00 back to
	// 23:00/07:00 in three even steps.
	wantBed := []model.ClockTime{
		model.NewClock(19, 40),
		model.NewClock(21, 20),
		model.NewClock(23, 0),
	}
	wantWake := []model.ClockTime{
		model.NewClock(3, 40),
		model.NewClock(5, 20),
		model.NewClock(7, 0),
	}
	wantOffset := []int{200, 100, 0}
	arrival := trip.Return.ArrivalDate
	for i, e := range post {
		assert.Equal(t, arrival.AddDays(i+1), e.Date, e.DayLabel)
		assert.Equal(t, wantBed[i], e.Bedtime, e.DayLabel)
		assert.Equal(t, wantWake[i], e.WakeTime, e.DayLabel)
		assert.Equal(t, wantOffset[i], e.BodyClockOffsetMinutes, e.DayLabel)
	}
	assert.Equal(t, "Recovery Day 1", post[0].DayLabel)
}

// Minimize-total carries a smaller residual home: the pre-return days
// already unwound two increments.
func TestPostReturnMinimizeTotalResidual(t *testing.T) {
	p := New(testResolver())
	dep := model.NewDate(2025, time.June, 15)
	trip := model.Trip{
		HomeTimezone: "America/New_York",
		Outbound:     leg("New York", "America/New_York", "Moscow", "Europe/Moscow", dep),
		Return:       leg("Moscow", "Europe/Moscow", "New York", "America/New_York", dep.AddDays(9)),
		Strategy:     model.MinimizeTotalStrategy(),
	}
	entries := p.ComputeSchedule(adult(), trip)
	post := entriesByStage(entries, model.StagePostReturn)
	require.Len(t, post, 2) // 7h offset: 7/3 estimates 2 recovery days

	// Target round(420*0.7)=294, minus 60 unwound, leaves 234.
	assert.Equal(t, 117, post[0].BodyClockOffsetMinutes)
	assert.Equal(t, 0, post[1].BodyClockOffsetMinutes)
	assert.Equal(t, adult().Bedtime, post[1].Bedtime)
	assert.Equal(t, adult().WakeTime, post[1].WakeTime)
}

// The wake constraint always applies during recovery.
func TestPostReturnWakeConstraint(t *testing.T) {
	p := New(testResolver())
	tr := adult()
	tr.HasWakeConstraint = true
	tr.WakeBy = model.NewClock(7, 0)

	// Westbound outbound means the recovery window starts later than
	// normal, which the constraint must cap.
	dep := model.NewDate(2025, time.June, 15)
	trip := model.Trip{
		HomeTimezone: "Europe/London",
		Outbound:     leg("London", "Europe/London", "Los Angeles", "America/Los_Angeles", dep),
		Return:       leg("Los Angeles", "America/Los_Angeles", "London", "Europe/London", dep.AddDays(12)),
		Strategy:     model.FullStrategy(),
	}
	entries := p.ComputeSchedule(tr, trip)
	post := entriesByStage(entries, model.StagePostReturn)
	require.NotEmpty(t, post)
	for _, e := range post {
		assert.False(t, e.WakeTime.After(tr.WakeBy), "%s wakes at %s", e.DayLabel, e.WakeTime)
	}
}
