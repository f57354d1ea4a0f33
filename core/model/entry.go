package model

import (
	"fmt"
	"strings"
)

// ScheduleStage names a segment of the trip arc. Stages are totally
// ordered for a round trip; one-way trips stop at StageAtDestination.
type ScheduleStage int

const (
	// StagePreAdjustment covers the three days before departure.
	StagePreAdjustment ScheduleStage = iota
	// StageTravelDayOutbound is the outbound flight day.
	StageTravelDayOutbound
	// StageAtDestination covers the destination days (and the
	// post-arrival days of a one-way trip).
	StageAtDestination
	// StagePreReturn covers the two shift-back days before the return
	// flight, present only under the minimize-total strategy.
	StagePreReturn
	// StageTravelDayReturn is the return flight day.
	StageTravelDayReturn
	// StagePostReturn covers the recovery days back home.
	StagePostReturn
)

func (s ScheduleStage) String() string {
	switch s {
	case StagePreAdjustment:
		return "pre_adjustment"
	case StageTravelDayOutbound:
		return "travel_day_outbound"
	case StageAtDestination:
		return "at_destination"
	case StagePreReturn:
		return "pre_return"
	case StageTravelDayReturn:
		return "travel_day_return"
	case StagePostReturn:
		return "post_return"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the stage as its string form.
func (s ScheduleStage) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (s *ScheduleStage) UnmarshalJSON(data []byte) error {
	name := strings.Trim(string(data), `"`)
	for _, stage := range []ScheduleStage{
		StagePreAdjustment, StageTravelDayOutbound, StageAtDestination,
		StagePreReturn, StageTravelDayReturn, StagePostReturn,
	} {
		if stage.String() == name {
			*s = stage
			return nil
		}
	}
	return fmt.Errorf("unknown schedule stage %s", data)
}

// DailyScheduleEntry is one day of a traveler's plan. Entries are pure
// values computed fresh on every request and never mutated after
// construction; any input change regenerates the full list.
type DailyScheduleEntry struct {
	Date     Date          `json:"date"`
	DayLabel string        `json:"day_label"`
	Bedtime  ClockTime     `json:"bedtime"`
	WakeTime ClockTime     `json:"wake_time"`
	Stage    ScheduleStage `json:"stage"`

	// StrategyMessage is set only on travel-day entries.
	StrategyMessage string `json:"strategy_message,omitempty"`
	// HotelArrivalEstimate is set only on the outbound travel day.
	HotelArrivalEstimate *ClockTime `json:"hotel_arrival_estimate,omitempty"`

	TravelDirection Direction `json:"travel_direction"`

	// BodyClockOffsetMinutes is the signed remaining adjustment:
	// negative while adjusting eastbound, positive while westbound,
	// zero once the body clock matches local time.
	BodyClockOffsetMinutes int `json:"body_clock_offset_minutes"`
}
