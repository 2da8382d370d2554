package scheduling

import (
	"math/rand"
	"sort"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

// Strategy names a deterministic (given input and seed) requirement
// ordering used by the assignment core.
type Strategy string

const (
	StrategyScarcityFirst Strategy = "scarcity-first"
	StrategyMinStaffFirst Strategy = "min-staff-first"
	StrategyLongestFirst  Strategy = "longest-first"
	StrategyChronological Strategy = "chronological"
	StrategyRandom        Strategy = "random"
)

// AllStrategies lists every named strategy, in the order the variant
// generator rotates through them.
var AllStrategies = []Strategy{
	StrategyScarcityFirst,
	StrategyMinStaffFirst,
	StrategyLongestFirst,
	StrategyChronological,
	StrategyRandom,
}

// orderRequirements returns a new slice with requirements ordered per
// strategy. counts is the scarcity map (§4.3); rng drives the random
// strategy only, and every other strategy is a deterministic sort that
// never reads it.
func orderRequirements(requirements []domain.ShiftRequirement, strategy Strategy, counts map[string]int, rng *rand.Rand) []domain.ShiftRequirement {
	out := make([]domain.ShiftRequirement, len(requirements))
	copy(out, requirements)

	switch strategy {
	case StrategyScarcityFirst:
		sort.SliceStable(out, func(i, j int) bool {
			ci, cj := counts[out[i].ID], counts[out[j].ID]
			if ci != cj {
				return ci < cj
			}
			di, dj := out[i].Duration(), out[j].Duration()
			if di != dj {
				return di > dj
			}
			if out[i].DayOfWeek != out[j].DayOfWeek {
				return out[i].DayOfWeek < out[j].DayOfWeek
			}
			return out[i].StartHour < out[j].StartHour
		})
	case StrategyMinStaffFirst:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].MinStaff != out[j].MinStaff {
				return out[i].MinStaff > out[j].MinStaff
			}
			if out[i].DayOfWeek != out[j].DayOfWeek {
				return out[i].DayOfWeek < out[j].DayOfWeek
			}
			return out[i].StartHour < out[j].StartHour
		})
	case StrategyLongestFirst:
		sort.SliceStable(out, func(i, j int) bool {
			di, dj := out[i].Duration(), out[j].Duration()
			if di != dj {
				return di > dj
			}
			if out[i].DayOfWeek != out[j].DayOfWeek {
				return out[i].DayOfWeek < out[j].DayOfWeek
			}
			return out[i].StartHour < out[j].StartHour
		})
	case StrategyChronological:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].DayOfWeek != out[j].DayOfWeek {
				return out[i].DayOfWeek < out[j].DayOfWeek
			}
			return out[i].StartHour < out[j].StartHour
		})
	case StrategyRandom:
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}

	return out
}
