package scheduling

import (
	"sort"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

// swapRepair moves assignees from over-covered requirements onto gapped ones
// (§4.6). It mutates state in place; staffByID must contain every staff
// referenced by a current assignment.
func swapRepair(requirements []domain.ShiftRequirement, staffByID map[string]domain.Staff, idx *availabilityIndex, c domain.Constraints, state *solveState) {
	var gaps, over []domain.ShiftRequirement
	for _, req := range requirements {
		n := state.countForRequirement(req.ID)
		switch {
		case n < req.MinStaff:
			gaps = append(gaps, req)
		case n > req.MinStaff:
			over = append(over, req)
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].DayOfWeek != gaps[j].DayOfWeek {
			return gaps[i].DayOfWeek < gaps[j].DayOfWeek
		}
		return gaps[i].StartHour < gaps[j].StartHour
	})

	for _, gap := range gaps {
		for state.countForRequirement(gap.ID) < gap.MinStaff {
			if !trySwapOnce(gap, over, staffByID, idx, c, state) {
				break
			}
		}
	}
}

// trySwapOnce scans current assignments on over-covered requirements for one
// staff member who can be relocated onto gap, performs the move, and
// reports whether a move happened.
func trySwapOnce(gap domain.ShiftRequirement, over []domain.ShiftRequirement, staffByID map[string]domain.Staff, idx *availabilityIndex, c domain.Constraints, state *solveState) bool {
	for _, o := range over {
		if state.countForRequirement(o.ID) <= o.MinStaff {
			continue
		}

		for _, shift := range currentShiftsFor(state, o.ID) {
			if shift.IsLocked {
				continue
			}
			staffID := shift.StaffID
			if state.isAssigned(gap.ID, staffID) {
				continue
			}
			staff, ok := staffByID[staffID]
			if !ok {
				continue
			}

			oWindows := idx.windows(staffID, o.DayOfWeek)
			oWorked := hoursWorked(oWindows, o.StartHour, o.EndHour, c.AllowSplitShifts)
			oWinStart, oWinEnd := o.StartHour, o.EndHour
			if c.AllowSplitShifts {
				if bs, be, ok := bestWindowInterval(oWindows, o.StartHour, o.EndHour); ok {
					oWinStart, oWinEnd = bs, be
				}
			}

			// Project: remove o's assignment, then test full eligibility
			// for gap against the projected state.
			state.remove(o, staffID, oWorked, oWinStart, oWinEnd)

			if !isEligible(staff, gap, state, idx, c) {
				// undo removal
				state.insert(o, staffID, oWorked, oWinStart, oWinEnd, shift.ID)
				continue
			}

			gWindows := idx.windows(staffID, gap.DayOfWeek)
			gWorked := hoursWorked(gWindows, gap.StartHour, gap.EndHour, c.AllowSplitShifts)
			gWinStart, gWinEnd := gap.StartHour, gap.EndHour
			if c.AllowSplitShifts {
				if bs, be, ok := bestWindowInterval(gWindows, gap.StartHour, gap.EndHour); ok {
					gWinStart, gWinEnd = bs, be
				}
			}
			state.insert(gap, staffID, gWorked, gWinStart, gWinEnd, shift.ID)
			return true
		}
	}
	return false
}

func currentShiftsFor(state *solveState, requirementID string) []domain.ScheduledShift {
	var out []domain.ScheduledShift
	for _, sh := range state.shifts {
		if sh.RequirementID == requirementID {
			out = append(out, sh)
		}
	}
	return out
}
