package scheduling

import (
	"testing"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveVariants_ReturnsRequestedCountAndDeduplicates(t *testing.T) {
	problem := simpleProblem()
	problem.Staff = append(problem.Staff, domain.Staff{ID: "carol", MaxHoursPerWeek: 40})
	problem.Availability = append(problem.Availability,
		domain.AvailabilityWindow{StaffID: "carol", DayOfWeek: 1, StartHour: 8, EndHour: 16})

	variantsResult := SolveVariants(problem, 12, 3, 99)

	require.NotEmpty(t, variantsResult.Variants)
	assert.Len(t, variantsResult.Variants, 3)
	assert.Equal(t, 0, variantsResult.BestIndex)

	seen := make(map[string]bool)
	for _, v := range variantsResult.Variants {
		sig := signature(v.Schedule.Shifts)
		assert.False(t, seen[sig], "variants must be unique by assignment signature")
		seen[sig] = true
	}
}

func TestSolveVariants_ZeroOrNegativeCandidatesTreatedAsOne(t *testing.T) {
	problem := simpleProblem()

	variantsResult := SolveVariants(problem, 0, 0, 5)

	require.Len(t, variantsResult.Variants, 1)

	variantsResult = SolveVariants(problem, -3, -1, 5)

	require.Len(t, variantsResult.Variants, 1)
}

func TestSubSeed_DiffersByRunIndex(t *testing.T) {
	a := subSeed(1, 0)
	b := subSeed(1, 1)
	assert.NotEqual(t, a, b)
}

func TestSignature_OrderIndependent(t *testing.T) {
	shiftsA := []domain.ScheduledShift{
		{RequirementID: "r1", StaffID: "alice"},
		{RequirementID: "r2", StaffID: "bob"},
	}
	shiftsB := []domain.ScheduledShift{
		{RequirementID: "r2", StaffID: "bob"},
		{RequirementID: "r1", StaffID: "alice"},
	}

	assert.Equal(t, signature(shiftsA), signature(shiftsB))
}
