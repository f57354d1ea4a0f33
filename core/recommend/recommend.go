// Package recommend picks an adjustment strategy for a trip and
// estimates how long recovery takes under each one.
package recommend

import (
	"fmt"
	"math"

	"github.com/robdg22/jetshift/core/model"
)

// Strategy applies a deterministic decision table over the trip length,
// timezone offset and traveler ages. Same inputs always yield the same
// recommendation.
func Strategy(daysAtDestination, timezoneOffsetHours int, travelerAges []int) model.Strategy {
	absOffset := abs(timezoneOffsetHours)
	switch {
	case daysAtDestination <= 3:
		return model.NoStrategy()
	case daysAtDestination <= 6:
		if absOffset <= 5 {
			return model.PartialStrategy(0.5)
		}
		return model.PartialStrategy(0.6)
	case daysAtDestination <= 10:
		if anyYoungerThan(travelerAges, 8) {
			return model.PartialStrategy(0.7)
		}
		if absOffset <= 5 {
			return model.MinimizeTotalStrategy()
		}
		return model.PartialStrategy(0.7)
	default:
		return model.FullStrategy()
	}
}

// RecoveryDays estimates the days to full recovery after the return
// flight. A zero offset needs no recovery under any strategy.
func RecoveryDays(s model.Strategy, timezoneOffsetHours int) int {
	absOffset := abs(timezoneOffsetHours)
	if absOffset == 0 {
		return 0
	}
	switch s.Kind {
	case model.StrategyNone:
		return 0
	case model.StrategyPartial:
		unadjusted := float64(absOffset) * (1 - s.AdjustmentPercentage())
		return max(1, int(math.Ceil(unadjusted)))
	case model.StrategyMinimizeTotal:
		return max(1, absOffset/3)
	case model.StrategyFull:
		if timezoneOffsetHours > 0 {
			return absOffset
		}
		return max(1, int(math.Ceil(float64(absOffset)*0.7)))
	default:
		return 0
	}
}

// Comparison is one row of the strategy comparison table.
type Comparison struct {
	Strategy     model.Strategy `json:"strategy"`
	RecoveryDays int            `json:"recovery_days"`
	Explanation  string         `json:"explanation"`
	Recommended  bool           `json:"recommended"`
}

// Compare evaluates the four canonical strategies for a trip and marks
// the recommended one. The partial row reuses the recommended partial
// percentage when the recommendation itself is partial.
func Compare(daysAtDestination, timezoneOffsetHours int, travelerAges []int) []Comparison {
	recommended := Strategy(daysAtDestination, timezoneOffsetHours, travelerAges)

	partial := model.PartialStrategy(0.6)
	if recommended.Kind == model.StrategyPartial {
		partial = recommended
	}
	candidates := []model.Strategy{
		model.FullStrategy(),
		partial,
		model.MinimizeTotalStrategy(),
		model.NoStrategy(),
	}

	rows := make([]Comparison, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, Comparison{
			Strategy:     c,
			RecoveryDays: RecoveryDays(c, timezoneOffsetHours),
			Explanation:  explain(c, daysAtDestination, timezoneOffsetHours),
			Recommended:  c.Kind == recommended.Kind,
		})
	}
	return rows
}

func explain(s model.Strategy, days, offsetHours int) string {
	absOffset := abs(offsetHours)
	switch s.Kind {
	case model.StrategyFull:
		return fmt.Sprintf("Fully adjust to destination time over the %d-hour change. Best for stays over 10 days.", absOffset)
	case model.StrategyPartial:
		pct := int(s.AdjustmentPercentage() * 100)
		return fmt.Sprintf("Shift %d%% of the %d-hour change. Less disruption at home for the %d-day stay.", pct, absOffset, days)
	case model.StrategyMinimizeTotal:
		return "Adjust partway, then start shifting back two days before the return flight. Minimizes total disruption across the round trip."
	case model.StrategyNone:
		return "Stay on home time. Best for short stays where adjusting costs more than it saves."
	default:
		return ""
	}
}

func anyYoungerThan(ages []int, limit int) bool {
	for _, a := range ages {
		if a <= limit {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
