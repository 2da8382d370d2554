package scheduling

import (
	"math/rand"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

func staffMap(staff []domain.Staff) map[string]domain.Staff {
	m := make(map[string]domain.Staff, len(staff))
	for _, s := range staff {
		m[s.ID] = s
	}
	return m
}

// runOnce drives one full pass of the pipeline — order, assign, swap,
// gap-fill, stats — for a single strategy and seed, and returns the
// resulting ScheduleResult.
func runOnce(problem domain.Problem, strategy Strategy, seed int64, idx *availabilityIndex, byID map[string]domain.Staff) domain.ScheduleResult {
	c := problem.Constraints
	rng := rand.New(rand.NewSource(seed))

	counts := scarcity(problem.Requirements, problem.Staff, idx, c)
	ordered := orderRequirements(problem.Requirements, strategy, counts, rng)

	state := newSolveState()
	warnings := assign(ordered, problem.Staff, problem.Availability, idx, c, seed, state)
	swapRepair(problem.Requirements, byID, idx, c, state)
	gapFill(problem.Requirements, problem.Staff, idx, c, seed, state)

	stats := computeStats(problem.Requirements, problem.Staff, idx, c, state)
	warnings = append(warnings, hourWarnings(problem.Staff, stats, c)...)

	schedule := domain.Schedule{
		ID:            newID(),
		WeekStartDate: problem.WeekStartDate,
		Shifts:        attachDates(state.shifts, problem.WeekStartDate),
		GeneratedAt:   time.Now().UTC(),
	}

	return domain.ScheduleResult{
		Schedule: schedule,
		Warnings: warnings,
		Stats:    stats,
	}
}

// attachDates derives each shift's calendar date from weekStart + dayOfWeek,
// per the data model (weekStart is assumed to fall on Sunday, dayOfWeek 0).
func attachDates(shifts []domain.ScheduledShift, weekStart time.Time) []domain.ScheduledShift {
	out := make([]domain.ScheduledShift, len(shifts))
	for i, sh := range shifts {
		out[i] = sh
		out[i].Date = weekStart.AddDate(0, 0, sh.DayOfWeek)
	}
	return out
}
