package scheduling

import (
	"testing"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleProblem() domain.Problem {
	weekStart := time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)
	return domain.Problem{
		WeekStartDate: weekStart,
		Staff: []domain.Staff{
			{ID: "alice", MaxHoursPerWeek: 40, MinHoursPerWeek: 0},
			{ID: "bob", MaxHoursPerWeek: 40, MinHoursPerWeek: 0},
		},
		Availability: []domain.AvailabilityWindow{
			{StaffID: "alice", DayOfWeek: 1, StartHour: 8, EndHour: 16},
			{StaffID: "bob", DayOfWeek: 1, StartHour: 8, EndHour: 16},
		},
		Requirements: []domain.ShiftRequirement{
			{ID: "req-mon-morning", DayOfWeek: 1, StartHour: 8, EndHour: 16, MinStaff: 1, MaxStaff: 1},
		},
		Constraints: domain.Constraints{},
	}
}

func TestSolve_FillsACoverableRequirement(t *testing.T) {
	problem := simpleProblem()

	result := Solve(problem, 1)

	require.Len(t, result.Schedule.Shifts, 1)
	assert.Equal(t, "req-mon-morning", result.Schedule.Shifts[0].RequirementID)
	assert.Equal(t, 1, result.Stats.FilledShifts)
	assert.Equal(t, 100.0, result.Stats.CoveragePercentage)
	assert.Empty(t, result.Stats.UncoveredGaps)
}

func TestSolve_IsDeterministicForAGivenSeed(t *testing.T) {
	problem := simpleProblem()
	problem.Staff = append(problem.Staff, domain.Staff{ID: "carol", MaxHoursPerWeek: 40})
	problem.Availability = append(problem.Availability,
		domain.AvailabilityWindow{StaffID: "carol", DayOfWeek: 1, StartHour: 8, EndHour: 16})

	first := Solve(problem, 42)
	second := Solve(problem, 42)

	assert.Equal(t, first.Schedule.Shifts[0].StaffID, second.Schedule.Shifts[0].StaffID)
	assert.Equal(t, first.Stats, second.Stats)
}

func TestSolve_UnstaffableRequirementProducesUncoveredGap(t *testing.T) {
	problem := domain.Problem{
		WeekStartDate: time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC),
		Staff:         []domain.Staff{{ID: "alice", MaxHoursPerWeek: 40}},
		Availability: []domain.AvailabilityWindow{
			{StaffID: "alice", DayOfWeek: 1, StartHour: 8, EndHour: 12},
		},
		Requirements: []domain.ShiftRequirement{
			{ID: "req-needs-two", DayOfWeek: 1, StartHour: 8, EndHour: 12, MinStaff: 2, MaxStaff: 2},
		},
	}

	result := Solve(problem, 7)

	assert.Less(t, result.Stats.FilledShifts, 2)
	assert.NotEmpty(t, result.Stats.UncoveredGaps)
}

func TestRegenerate_PreservesLockedShifts(t *testing.T) {
	problem := simpleProblem()

	existing := Solve(problem, 1)
	require.Len(t, existing.Schedule.Shifts, 1)
	lockedStaff := existing.Schedule.Shifts[0].StaffID
	existing.Schedule.Shifts[0].IsLocked = true

	regenerated := Regenerate(problem, existing, domain.Constraints{})

	require.Len(t, regenerated.Schedule.Shifts, 1)
	assert.Equal(t, lockedStaff, regenerated.Schedule.Shifts[0].StaffID)
	assert.True(t, regenerated.Schedule.Shifts[0].IsLocked)
}
