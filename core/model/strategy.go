package model

import (
	"encoding/json"
	"fmt"
)

// StrategyKind enumerates the closed set of adjustment strategies.
type StrategyKind int

const (
	// StrategyNone keeps the traveler on home time for the whole trip.
	StrategyNone StrategyKind = iota
	// StrategyPartial shifts only a fraction of the timezone offset.
	StrategyPartial
	// StrategyMinimizeTotal shifts partially and starts re-adjusting
	// toward home two days before the return flight.
	StrategyMinimizeTotal
	// StrategyFull shifts the complete timezone offset.
	StrategyFull
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyNone:
		return "none"
	case StrategyPartial:
		return "partial"
	case StrategyMinimizeTotal:
		return "minimize_total"
	case StrategyFull:
		return "full"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Strategy is an immutable adjustment strategy. Percentage is meaningful
// only for StrategyPartial; the other kinds carry fixed percentages.
type Strategy struct {
	Kind       StrategyKind
	Percentage float64
}

// FullStrategy adjusts 100% of the timezone offset.
func FullStrategy() Strategy { return Strategy{Kind: StrategyFull} }

// PartialStrategy adjusts the given fraction of the offset. Callers
// normally pass p in [0.5, 0.8]; AdjustmentPercentage clamps to [0, 1].
func PartialStrategy(p float64) Strategy { return Strategy{Kind: StrategyPartial, Percentage: p} }

// MinimizeTotalStrategy trades destination synchrony for a faster round
// trip: a fixed 70% outbound adjustment plus a pre-return shift-back.
func MinimizeTotalStrategy() Strategy { return Strategy{Kind: StrategyMinimizeTotal} }

// NoStrategy keeps the traveler on home time.
func NoStrategy() Strategy { return Strategy{Kind: StrategyNone} }

// AdjustmentPercentage returns the fraction of the timezone offset this
// strategy shifts, clamped to [0, 1] for out-of-range partials.
func (s Strategy) AdjustmentPercentage() float64 {
	switch s.Kind {
	case StrategyFull:
		return 1.0
	case StrategyPartial:
		p := s.Percentage
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		return p
	case StrategyMinimizeTotal:
		return 0.7
	default:
		return 0
	}
}

func (s Strategy) String() string {
	if s.Kind == StrategyPartial {
		return fmt.Sprintf("partial(%.0f%%)", s.AdjustmentPercentage()*100)
	}
	return s.Kind.String()
}

type strategyJSON struct {
	Kind       string  `json:"kind"`
	Percentage float64 `json:"percentage,omitempty"`
}

// MarshalJSON encodes the strategy with a string kind.
func (s Strategy) MarshalJSON() ([]byte, error) {
	out := strategyJSON{Kind: s.Kind.String()}
	if s.Kind == StrategyPartial {
		out.Percentage = s.AdjustmentPercentage()
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a string kind plus optional percentage.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var in strategyJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "none", "":
		*s = NoStrategy()
	case "partial":
		*s = PartialStrategy(in.Percentage)
	case "minimize_total":
		*s = MinimizeTotalStrategy()
	case "full":
		*s = FullStrategy()
	default:
		return fmt.Errorf("unknown strategy kind %q", in.Kind)
	}
	return nil
}
