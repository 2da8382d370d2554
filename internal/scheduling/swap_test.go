package scheduling

import (
	"testing"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapRepair only ever finds an over-covered requirement to draw from when a
// caller seeds solveState directly (assign never fills past minStaff on its
// own), so trySwapOnce is exercised here by constructing that state by
// hand rather than by driving it through Solve.
func TestTrySwapOnce_MovesAssigneeFromOverCoveredToGap(t *testing.T) {
	over := domain.ShiftRequirement{ID: "over", DayOfWeek: 1, StartHour: 9, EndHour: 12, MinStaff: 1, MaxStaff: 2}
	gap := domain.ShiftRequirement{ID: "gap", DayOfWeek: 1, StartHour: 13, EndHour: 16, MinStaff: 1, MaxStaff: 1}

	alice := domain.Staff{ID: "alice", MaxHoursPerWeek: 40}
	bob := domain.Staff{ID: "bob", MaxHoursPerWeek: 40}
	staffByID := map[string]domain.Staff{"alice": alice, "bob": bob}

	windows := []domain.AvailabilityWindow{
		{StaffID: "alice", DayOfWeek: 1, StartHour: 9, EndHour: 16},
		{StaffID: "bob", DayOfWeek: 1, StartHour: 9, EndHour: 12},
	}
	idx := buildAvailabilityIndex(windows)

	state := newSolveState()
	state.insert(over, "alice", 3, 9, 12, "shift-alice")
	state.insert(over, "bob", 3, 9, 12, "shift-bob")

	require.Equal(t, 2, state.countForRequirement("over"))
	require.Equal(t, 0, state.countForRequirement("gap"))

	c := domain.Constraints{}
	moved := trySwapOnce(gap, []domain.ShiftRequirement{over}, staffByID, idx, c, state)

	require.True(t, moved, "bob is over-covering 'over' and has no availability for 'gap', so alice must be the one moved")
	assert.Equal(t, 1, state.countForRequirement("over"), "over-covered requirement settles back at its minStaff")
	assert.Equal(t, 1, state.countForRequirement("gap"))
	assert.True(t, state.isAssigned("gap", "alice"))
	assert.False(t, state.isAssigned("over", "alice"), "alice's old assignment to 'over' is gone, not duplicated")
	assert.True(t, state.isAssigned("over", "bob"), "bob, ineligible for the gap, is left untouched")
}

func TestTrySwapOnce_NoEligibleMoverReturnsFalse(t *testing.T) {
	over := domain.ShiftRequirement{ID: "over", DayOfWeek: 1, StartHour: 9, EndHour: 12, MinStaff: 1, MaxStaff: 2}
	gap := domain.ShiftRequirement{ID: "gap", DayOfWeek: 1, StartHour: 13, EndHour: 16, MinStaff: 1, MaxStaff: 1}

	bob := domain.Staff{ID: "bob", MaxHoursPerWeek: 40}
	carol := domain.Staff{ID: "carol", MaxHoursPerWeek: 40}
	staffByID := map[string]domain.Staff{"bob": bob, "carol": carol}

	// Neither assignee on 'over' has any availability during 'gap''s hours.
	windows := []domain.AvailabilityWindow{
		{StaffID: "bob", DayOfWeek: 1, StartHour: 9, EndHour: 12},
		{StaffID: "carol", DayOfWeek: 1, StartHour: 9, EndHour: 12},
	}
	idx := buildAvailabilityIndex(windows)

	state := newSolveState()
	state.insert(over, "bob", 3, 9, 12, "shift-bob")
	state.insert(over, "carol", 3, 9, 12, "shift-carol")

	moved := trySwapOnce(gap, []domain.ShiftRequirement{over}, staffByID, idx, domain.Constraints{}, state)

	assert.False(t, moved)
	assert.Equal(t, 2, state.countForRequirement("over"), "nothing moves when no assignee qualifies for the gap")
	assert.Equal(t, 0, state.countForRequirement("gap"))
}

func TestSwapRepair_DrivesGapsToMinStaffAcrossMultipleRequirements(t *testing.T) {
	// 'over' starts 3 deep against a minStaff of 1, so it can give up two
	// movers: one for each gap below.
	over := domain.ShiftRequirement{ID: "over", DayOfWeek: 1, StartHour: 9, EndHour: 12, MinStaff: 1, MaxStaff: 3}
	gapA := domain.ShiftRequirement{ID: "gapA", DayOfWeek: 1, StartHour: 13, EndHour: 16, MinStaff: 1, MaxStaff: 1}
	gapB := domain.ShiftRequirement{ID: "gapB", DayOfWeek: 1, StartHour: 17, EndHour: 20, MinStaff: 1, MaxStaff: 1}

	alice := domain.Staff{ID: "alice", MaxHoursPerWeek: 40}
	bob := domain.Staff{ID: "bob", MaxHoursPerWeek: 40}
	carol := domain.Staff{ID: "carol", MaxHoursPerWeek: 40}
	staffByID := map[string]domain.Staff{"alice": alice, "bob": bob, "carol": carol}

	windows := []domain.AvailabilityWindow{
		{StaffID: "alice", DayOfWeek: 1, StartHour: 9, EndHour: 16}, // can only cover gapA
		{StaffID: "bob", DayOfWeek: 1, StartHour: 9, EndHour: 20},   // can cover either gap
		{StaffID: "carol", DayOfWeek: 1, StartHour: 9, EndHour: 12}, // can cover neither gap
	}
	idx := buildAvailabilityIndex(windows)

	state := newSolveState()
	state.insert(over, "alice", 3, 9, 12, "shift-alice")
	state.insert(over, "bob", 3, 9, 12, "shift-bob")
	state.insert(over, "carol", 3, 9, 12, "shift-carol")

	requirements := []domain.ShiftRequirement{over, gapA, gapB}
	swapRepair(requirements, staffByID, idx, domain.Constraints{}, state)

	assert.Equal(t, 1, state.countForRequirement("over"), "carol, who fits neither gap, is the one left behind")
	assert.True(t, state.isAssigned("over", "carol"))
	assert.Equal(t, 1, state.countForRequirement("gapA"))
	assert.Equal(t, 1, state.countForRequirement("gapB"))
}
