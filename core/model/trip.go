package model

import (
	"fmt"
	"strings"
	"time"
)

// Direction is the direction of travel relative to the timezone change.
type Direction int

const (
	// DirectionNone means no timezone change.
	DirectionNone Direction = iota
	// DirectionEast requires advancing the body clock (earlier times).
	DirectionEast
	// DirectionWest requires delaying the body clock (later times).
	DirectionWest
)

// DirectionForOffset maps a signed timezone offset to a travel direction.
func DirectionForOffset(offsetHours int) Direction {
	switch {
	case offsetHours > 0:
		return DirectionEast
	case offsetHours < 0:
		return DirectionWest
	default:
		return DirectionNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionEast:
		return "east"
	case DirectionWest:
		return "west"
	default:
		return "none"
	}
}

// MarshalJSON encodes the direction as its string form.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (d *Direction) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(data), `"`) {
	case "east":
		*d = DirectionEast
	case "west":
		*d = DirectionWest
	case "none", "":
		*d = DirectionNone
	default:
		return fmt.Errorf("unknown direction %s", data)
	}
	return nil
}

// OffsetResolver looks up a timezone's UTC offset at a given instant.
// Implementations must be safe for concurrent use and referentially
// stable for the duration of a computation.
type OffsetResolver interface {
	// OffsetAt returns the UTC offset in seconds of the zone named by
	// identifier at the given instant.
	OffsetAt(identifier string, at time.Time) (int, error)
}

// FlightLeg describes one flight. Departure and arrival times are local
// to their respective cities.
type FlightLeg struct {
	DepartureCity     string    `json:"departure_city"`
	DepartureTimezone string    `json:"departure_timezone"`
	ArrivalCity       string    `json:"arrival_city"`
	ArrivalTimezone   string    `json:"arrival_timezone"`
	DepartureDate     Date      `json:"departure_date"`
	DepartureTime     ClockTime `json:"departure_time"`
	ArrivalDate       Date      `json:"arrival_date"`
	ArrivalTime       ClockTime `json:"arrival_time"`
}

// TimezoneOffsetHours derives the signed timezone change of the leg:
// arrival zone offset minus departure zone offset, both evaluated at the
// departure instant. Unresolvable zones degrade to a zero contribution
// rather than an error; a slightly wrong plan beats no plan.
func (l FlightLeg) TimezoneOffsetHours(r OffsetResolver) int {
	if r == nil {
		return 0
	}
	at := l.DepartureTime.On(l.DepartureDate, time.UTC)
	dep, err := r.OffsetAt(l.DepartureTimezone, at)
	if err != nil {
		dep = 0
	}
	arr, err := r.OffsetAt(l.ArrivalTimezone, at)
	if err != nil {
		arr = 0
	}
	return (arr - dep) / 3600
}

// Trip describes a one-way or round trip. Return is nil for one-way
// trips. Strategy is the trip-wide default, overridable per traveler.
type Trip struct {
	HomeTimezone string     `json:"home_timezone"`
	Outbound     *FlightLeg `json:"outbound"`
	Return       *FlightLeg `json:"return,omitempty"`
	Strategy     Strategy   `json:"strategy"`
}

// DaysAtDestination returns the number of days between the outbound and
// return departures, 0 for one-way trips.
func (t Trip) DaysAtDestination() int {
	if t.Outbound == nil || t.Return == nil {
		return 0
	}
	d := t.Outbound.DepartureDate.DaysUntil(t.Return.DepartureDate)
	if d < 0 {
		return 0
	}
	return d
}
