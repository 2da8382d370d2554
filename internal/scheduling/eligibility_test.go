package scheduling

import (
	"testing"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsEligible_MissingQualification(t *testing.T) {
	staff := domain.Staff{ID: "s1", MaxHoursPerWeek: 40, Qualifications: []string{"cashier"}}
	req := domain.ShiftRequirement{ID: "r1", DayOfWeek: 1, StartHour: 9, EndHour: 17, RequiredQualifications: []string{"barista"}}
	idx := buildAvailabilityIndex(nil)
	state := newSolveState()

	assert.False(t, isEligible(staff, req, state, idx, domain.Constraints{}))
}

func TestIsEligible_FullShiftModeRequiresFullContainment(t *testing.T) {
	staff := domain.Staff{ID: "s1", MaxHoursPerWeek: 40}
	req := domain.ShiftRequirement{ID: "r1", DayOfWeek: 1, StartHour: 9, EndHour: 17}
	windows := []domain.AvailabilityWindow{{StaffID: "s1", DayOfWeek: 1, StartHour: 10, EndHour: 17}}
	idx := buildAvailabilityIndex(windows)
	state := newSolveState()

	assert.False(t, isEligible(staff, req, state, idx, domain.Constraints{}), "window doesn't fully cover the shift")
}

func TestIsEligible_SplitModeHonorsMinOverlap(t *testing.T) {
	staff := domain.Staff{ID: "s1", MaxHoursPerWeek: 40}
	req := domain.ShiftRequirement{ID: "r1", DayOfWeek: 1, StartHour: 9, EndHour: 17}
	windows := []domain.AvailabilityWindow{{StaffID: "s1", DayOfWeek: 1, StartHour: 15, EndHour: 17}}
	idx := buildAvailabilityIndex(windows)
	state := newSolveState()

	c := domain.Constraints{AllowSplitShifts: true, MinOverlapHours: 3}
	assert.False(t, isEligible(staff, req, state, idx, c), "only 2 hours overlap, below the 3 hour minimum")

	c.MinOverlapHours = 2
	assert.True(t, isEligible(staff, req, state, idx, c))
}

func TestIsEligible_RespectsMaxHoursCap(t *testing.T) {
	staff := domain.Staff{ID: "s1", MaxHoursPerWeek: 10}
	req := domain.ShiftRequirement{ID: "r1", DayOfWeek: 1, StartHour: 9, EndHour: 17}
	windows := []domain.AvailabilityWindow{{StaffID: "s1", DayOfWeek: 1, StartHour: 9, EndHour: 17}}
	idx := buildAvailabilityIndex(windows)
	state := newSolveState()
	state.hoursAssigned["s1"] = 5

	assert.False(t, isEligible(staff, req, state, idx, domain.Constraints{}), "5 already-assigned hours + 8 would exceed the 10 hour cap")
}

func TestIsEligible_GlobalCapOverridesStaffCapWhenTighter(t *testing.T) {
	staff := domain.Staff{ID: "s1", MaxHoursPerWeek: 40}
	req := domain.ShiftRequirement{ID: "r1", DayOfWeek: 1, StartHour: 9, EndHour: 17}
	windows := []domain.AvailabilityWindow{{StaffID: "s1", DayOfWeek: 1, StartHour: 9, EndHour: 17}}
	idx := buildAvailabilityIndex(windows)
	state := newSolveState()

	cap := 5
	c := domain.Constraints{MaxHoursPerStaff: &cap}
	assert.False(t, isEligible(staff, req, state, idx, c), "global cap of 5 is tighter than the staff's own 40")
}

func TestIsEligible_DayConflictBlocks(t *testing.T) {
	staff := domain.Staff{ID: "s1", MaxHoursPerWeek: 40}
	req := domain.ShiftRequirement{ID: "r1", DayOfWeek: 1, StartHour: 9, EndHour: 17}
	windows := []domain.AvailabilityWindow{{StaffID: "s1", DayOfWeek: 1, StartHour: 0, EndHour: 24}}
	idx := buildAvailabilityIndex(windows)
	state := newSolveState()
	state.windows["s1"] = []assignedWindow{{day: 1, start: 12, end: 14}}

	assert.False(t, isEligible(staff, req, state, idx, domain.Constraints{}), "9-17 overlaps the already-assigned 12-14 window")
}
