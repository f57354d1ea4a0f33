package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robdg22/jetshift/core/model"
)

type stubResolver map[string]int

func (s stubResolver) OffsetAt(id string, _ time.Time) (int, error) {
	v, ok := s[id]
	if !ok {
		return 0, errors.New("unknown zone")
	}
	return v, nil
}

// Summer offsets for the cities the scenarios use.
func testResolver() stubResolver {
	return stubResolver{
		"America/New_York":    -4 * 3600,
		"America/Los_Angeles": -7 * 3600,
		"Europe/London":       1 * 3600,
		"Europe/Dublin":       1 * 3600,
		"Europe/Moscow":       3 * 3600,
	}
}

func adult() model.Traveler {
	return model.Traveler{
		Name:     "Alex",
		Age:      35,
		Bedtime:  model.NewClock(23, 0),
		WakeTime: model.NewClock(7, 0),
	}
}

func leg(depCity, depTZ, arrCity, arrTZ string, depDate model.Date) *model.FlightLeg {
	return &model.FlightLeg{
		DepartureCity:     depCity,
		DepartureTimezone: depTZ,
		ArrivalCity:       arrCity,
		ArrivalTimezone:   arrTZ,
		DepartureDate:     depDate,
		DepartureTime:     model.NewClock(18, 0),
		ArrivalDate:       depDate.AddDays(1),
		ArrivalTime:       model.NewClock(7, 0),
	}
}

// nycLondonTrip is a 5h eastbound round trip departing 2025-06-15.
func nycLondonTrip(daysAtDestination int, strategy model.Strategy) model.Trip {
	dep := model.NewDate(2025, time.June, 15)
	return model.Trip{
		HomeTimezone: "America/New_York",
		Outbound:     leg("New York", "America/New_York", "London", "Europe/London", dep),
		Return:       leg("London", "Europe/London", "New York", "America/New_York", dep.AddDays(daysAtDestination)),
		Strategy:     strategy,
	}
}

func entriesByStage(entries []model.DailyScheduleEntry, stage model.ScheduleStage) []model.DailyScheduleEntry {
	var out []model.DailyScheduleEntry
	for _, e := range entries {
		if e.Stage == stage {
			out = append(out, e)
		}
	}
	return out
}

func TestComputeScheduleWithoutOutboundIsEmpty(t *testing.T) {
	p := New(testResolver())
	entries := p.ComputeSchedule(adult(), model.Trip{Strategy: model.FullStrategy()})
	assert.Empty(t, entries)
}

// NYC to London, 5h east, full adjustment: the day before departure the
// schedule has already moved 90 minutes earlier, and the travel day
// anchors to the eastbound 22:00 bedtime.
func TestEastboundFullAdjustment(t *testing.T) {
	p := New(testResolver())
	trip := nycLondonTrip(12, model.FullStrategy())
	entries := p.ComputeSchedule(adult(), trip)
	require.NotEmpty(t, entries)

	pre := entriesByStage(entries, model.StagePreAdjustment)
	require.Len(t, pre, 3)

	assert.Equal(t, "3 days before", pre[0].DayLabel)
	assert.Equal(t, model.NewDate(2025, time.June, 12), pre[0].Date)
	assert.Equal(t, model.NewClock(22, 30), pre[0].Bedtime)
	assert.Equal(t, model.NewClock(6, 30), pre[0].WakeTime)
	assert.Equal(t, -270, pre[0].BodyClockOffsetMinutes)

	assert.Equal(t, "1 day before", pre[2].DayLabel)
	assert.Equal(t, model.NewClock(21, 30), pre[2].Bedtime)
	assert.Equal(t, -210, pre[2].BodyClockOffsetMinutes)

	travel := entriesByStage(entries, model.StageTravelDayOutbound)
	require.Len(t, travel, 1)
	td := travel[0]
	assert.Equal(t, "Travel Day", td.DayLabel)
	assert.Equal(t, trip.Outbound.DepartureDate, td.Date)
	assert.Equal(t, model.NewClock(22, 0), td.Bedtime)
	assert.Equal(t, model.NewClock(7, 0), td.WakeTime)
	assert.Equal(t, "Short morning nap if tired, then stay awake as long as possible", td.StrategyMessage)
	assert.Equal(t, -210, td.BodyClockOffsetMinutes)
	require.NotNil(t, td.HotelArrivalEstimate)
	assert.Equal(t, model.NewClock(9, 0), *td.HotelArrivalEstimate)
}

// London to LA, 8h west, full adjustment: two days out the wake time
// has moved an hour later, and the travel day means staying up late.
func TestWestboundFullAdjustment(t *testing.T) {
	p := New(testResolver())
	dep := model.NewDate(2025, time.June, 15)
	trip := model.Trip{
		HomeTimezone: "Europe/London",
		Outbound:     leg("London", "Europe/London", "Los Angeles", "America/Los_Angeles", dep),
		Return:       leg("Los Angeles", "America/Los_Angeles", "London", "Europe/London", dep.AddDays(12)),
		Strategy:     model.FullStrategy(),
	}
	teen := model.Traveler{Name: "Sam", Age: 14, Bedtime: model.NewClock(23, 0), WakeTime: model.NewClock(7, 0)}

	entries := p.ComputeSchedule(teen, trip)
	pre := entriesByStage(entries, model.StagePreAdjustment)
	require.Len(t, pre, 3)
	assert.Equal(t, "2 days before", pre[1].DayLabel)
	assert.Equal(t, model.NewClock(8, 0), pre[1].WakeTime)
	assert.Equal(t, 420, pre[1].BodyClockOffsetMinutes)

	td := entriesByStage(entries, model.StageTravelDayOutbound)[0]
	assert.Equal(t, model.NewClock(23, 0), td.Bedtime)
	assert.Equal(t, model.NewClock(8, 0), td.WakeTime)
	assert.Equal(t, "Stay up as late as possible", td.StrategyMessage)
	assert.Equal(t, 390, td.BodyClockOffsetMinutes)
}

// London to Dublin carries no timezone change: every strategy collapses
// to the traveler's own times with a zero body clock offset.
func TestZeroOffsetIdempotence(t *testing.T) {
	p := New(testResolver())
	dep := model.NewDate(2025, time.June, 15)
	strategies := []model.Strategy{
		model.FullStrategy(),
		model.PartialStrategy(0.6),
		model.MinimizeTotalStrategy(),
		model.NoStrategy(),
	}
	for _, strat := range strategies {
		trip := model.Trip{
			HomeTimezone: "Europe/London",
			Outbound:     leg("London", "Europe/London", "Dublin", "Europe/Dublin", dep),
			Return:       leg("Dublin", "Europe/Dublin", "London", "Europe/London", dep.AddDays(8)),
			Strategy:     strat,
		}
		entries := p.ComputeSchedule(adult(), trip)
		require.NotEmpty(t, entries, strat.String())
		for _, e := range entries {
			assert.Equal(t, model.NewClock(23, 0), e.Bedtime, "%s %s", strat, e.DayLabel)
			assert.Equal(t, model.NewClock(7, 0), e.WakeTime, "%s %s", strat, e.DayLabel)
			assert.Equal(t, 0, e.BodyClockOffsetMinutes, "%s %s", strat, e.DayLabel)
		}
	}
}

// Strategy "none" keeps home time everywhere and bounds the destination
// window.
func TestNoAdjustmentIdempotence(t *testing.T) {
	p := New(testResolver())
	trip := nycLondonTrip(20, model.NoStrategy())
	entries := p.ComputeSchedule(adult(), trip)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		assert.Equal(t, model.NewClock(23, 0), e.Bedtime, e.DayLabel)
		assert.Equal(t, model.NewClock(7, 0), e.WakeTime, e.DayLabel)
		assert.Equal(t, 0, e.BodyClockOffsetMinutes, e.DayLabel)
	}

	dest := entriesByStage(entries, model.StageAtDestination)
	assert.Len(t, dest, 14)

	td := entriesByStage(entries, model.StageTravelDayOutbound)[0]
	assert.Equal(t, "Stay on home time for this trip", td.StrategyMessage)
	assert.Empty(t, entriesByStage(entries, model.StagePostReturn))
}

// The body clock offset magnitude never grows across the outbound arc
// and hits zero once the destination days finish adjusting, under every
// adjusting strategy and both directions.
func TestMonotonicApproachToZeroOffset(t *testing.T) {
	p := New(testResolver())
	dep := model.NewDate(2025, time.June, 15)
	westTrip := func(strat model.Strategy) model.Trip {
		return model.Trip{
			HomeTimezone: "Europe/London",
			Outbound:     leg("London", "Europe/London", "Los Angeles", "America/Los_Angeles", dep),
			Return:       leg("Los Angeles", "America/Los_Angeles", "London", "Europe/London", dep.AddDays(12)),
			Strategy:     strat,
		}
	}
	cases := []struct {
		name string
		trip model.Trip
	}{
		{"full east", nycLondonTrip(12, model.FullStrategy())},
		{"partial east", nycLondonTrip(12, model.PartialStrategy(0.6))},
		{"minimize total east", nycLondonTrip(12, model.MinimizeTotalStrategy())},
		{"full west", westTrip(model.FullStrategy())},
		{"partial west", westTrip(model.PartialStrategy(0.6))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			entries := p.ComputeSchedule(adult(), c.trip)
			require.NotEmpty(t, entries)

			prev := -1
			reachedZero := false
			for _, e := range entries {
				if e.Stage == model.StagePreReturn || e.Stage == model.StageTravelDayReturn || e.Stage == model.StagePostReturn {
					break
				}
				mag := e.BodyClockOffsetMinutes
				if mag < 0 {
					mag = -mag
				}
				if prev >= 0 && mag > prev {
					t.Fatalf("offset magnitude grew at %s: %d > %d", e.DayLabel, mag, prev)
				}
				prev = mag
				if mag == 0 {
					reachedZero = true
				}
			}
			assert.True(t, reachedZero, "offset never reached zero at destination")
		})
	}
}

// Partial adjustment bounds the travel-day offset by the strategy's
// target, not the raw timezone change: 60% of 8h is 288 minutes, minus
// the 90 already shifted before the flight.
func TestTravelDayResidualUsesStrategyTarget(t *testing.T) {
	p := New(testResolver())
	dep := model.NewDate(2025, time.June, 15)
	trip := model.Trip{
		HomeTimezone: "Europe/London",
		Outbound:     leg("London", "Europe/London", "Los Angeles", "America/Los_Angeles", dep),
		Return:       leg("Los Angeles", "America/Los_Angeles", "London", "Europe/London", dep.AddDays(12)),
		Strategy:     model.PartialStrategy(0.6),
	}
	entries := p.ComputeSchedule(adult(), trip)
	td := entriesByStage(entries, model.StageTravelDayOutbound)[0]
	assert.Equal(t, 198, td.BodyClockOffsetMinutes)
}

// Every calendar day carries at most one prescription, and the arrival
// day itself is covered by destination day one.
func TestScheduleDatesDistinct(t *testing.T) {
	p := New(testResolver())
	for _, strat := range []model.Strategy{model.FullStrategy(), model.MinimizeTotalStrategy()} {
		trip := nycLondonTrip(12, strat)
		entries := p.ComputeSchedule(adult(), trip)
		require.NotEmpty(t, entries, strat.String())

		seen := map[string]string{}
		for _, e := range entries {
			if prev, ok := seen[e.Date.String()]; ok {
				t.Fatalf("%s: duplicate date %s: %s and %s", strat, e.Date, prev, e.DayLabel)
			}
			seen[e.Date.String()] = e.DayLabel
		}
		if _, ok := seen[trip.Outbound.ArrivalDate.String()]; !ok {
			t.Fatalf("%s: no entry on arrival date %s", strat, trip.Outbound.ArrivalDate)
		}
	}
}

// Reversing the trip reverses the sign of every offset while leaving
// magnitudes identical.
func TestDirectionSymmetry(t *testing.T) {
	p := New(testResolver())
	dep := model.NewDate(2025, time.June, 15)

	east := nycLondonTrip(12, model.FullStrategy())
	west := model.Trip{
		HomeTimezone: "Europe/London",
		Outbound:     leg("London", "Europe/London", "New York", "America/New_York", dep),
		Return:       leg("New York", "America/New_York", "London", "Europe/London", dep.AddDays(12)),
		Strategy:     model.FullStrategy(),
	}

	a := p.ComputeSchedule(adult(), east)
	b := p.ComputeSchedule(adult(), west)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, -a[i].BodyClockOffsetMinutes, b[i].BodyClockOffsetMinutes, a[i].DayLabel)
	}
}

// With a wake-by constraint, no phase that applies the clamp may wake
// the traveler later than the constraint, and bedtimes shift earlier to
// preserve sleep.
func TestWakeConstraintInvariant(t *testing.T) {
	p := New(testResolver())
	dep := model.NewDate(2025, time.June, 15)
	trip := model.Trip{
		HomeTimezone: "Europe/London",
		Outbound:     leg("London", "Europe/London", "Los Angeles", "America/Los_Angeles", dep),
		Return:       leg("Los Angeles", "America/Los_Angeles", "London", "Europe/London", dep.AddDays(12)),
		Strategy:     model.FullStrategy(),
	}
	tr := adult()
	tr.HasWakeConstraint = true
	tr.WakeBy = model.NewClock(6, 45)

	entries := p.ComputeSchedule(tr, trip)
	clampedStages := map[model.ScheduleStage]bool{
		model.StagePreAdjustment: true,
		model.StageAtDestination: true,
		model.StagePostReturn:    true,
	}
	for _, e := range entries {
		if !clampedStages[e.Stage] {
			continue
		}
		if e.WakeTime.After(tr.WakeBy) {
			t.Fatalf("%s wakes at %s, after constraint %s", e.DayLabel, e.WakeTime, tr.WakeBy)
		}
	}

	// Westbound day one proposes 07:30; the clamp pulls it to 06:45 and
	// bedtime rebalances by the same 45 minutes.
	pre := entriesByStage(entries, model.StagePreAdjustment)
	assert.Equal(t, model.NewClock(6, 45), pre[0].WakeTime)
	assert.Equal(t, model.NewClock(22, 45), pre[0].Bedtime)
}

func TestStageOrderRoundTrip(t *testing.T) {
	p := New(testResolver())
	entries := p.ComputeSchedule(adult(), nycLondonTrip(9, model.MinimizeTotalStrategy()))
	prev := model.StagePreAdjustment
	for _, e := range entries {
		if e.Stage < prev {
			t.Fatalf("stage order violated: %s after %s", e.Stage, prev)
		}
		prev = e.Stage
	}
}
