package scheduling

import "github.com/arnavshah/shift-scheduler-core/internal/domain"

// effectiveMaxHours returns the tighter of the staff's own cap and the
// constraints' global cap, when the latter is set.
func effectiveMaxHours(staff domain.Staff, c domain.Constraints) int {
	max := staff.MaxHoursPerWeek
	if c.MaxHoursPerStaff != nil && *c.MaxHoursPerStaff < max {
		max = *c.MaxHoursPerStaff
	}
	return max
}

// isEligible decides whether staff can legally cover req right now, against
// state. Assignment and swap re-check it at every insertion; gap-fill
// (fillOneGap) applies its own filter instead, re-checking qualification,
// day conflict and the max-hours gate but requiring only one hour of
// overlap with the gap in place of this function's window condition. No
// caller may assume a prior check still holds after the state has mutated.
func isEligible(staff domain.Staff, req domain.ShiftRequirement, state *solveState, idx *availabilityIndex, c domain.Constraints) bool {
	if !staff.HasQualifications(req.RequiredQualifications) {
		return false
	}

	windows := idx.windows(staff.ID, req.DayOfWeek)

	if c.AllowSplitShifts {
		minOverlap := c.MinOverlapHours
		if req.Duration() < minOverlap {
			minOverlap = req.Duration()
		}
		if maxOverlap(windows, req.StartHour, req.EndHour) < minOverlap {
			return false
		}
	} else {
		if !fullyContains(windows, req.StartHour, req.EndHour) {
			return false
		}
	}

	if state.hasDayConflict(staff.ID, req.DayOfWeek, req.StartHour, req.EndHour) {
		return false
	}

	worked := hoursWorked(windows, req.StartHour, req.EndHour, c.AllowSplitShifts)
	if state.hoursAssigned[staff.ID]+worked > effectiveMaxHours(staff, c) {
		return false
	}

	return true
}
