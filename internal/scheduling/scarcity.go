package scheduling

import "github.com/arnavshah/shift-scheduler-core/internal/domain"

// scarcity counts, for each requirement, the staff who satisfy qualification
// and availability against an empty state — i.e. ignoring current hours and
// existing assignments. Used by the scarcity-first orderer and as an
// informative precursor to the assignment core.
func scarcity(requirements []domain.ShiftRequirement, staff []domain.Staff, idx *availabilityIndex, c domain.Constraints) map[string]int {
	counts := make(map[string]int, len(requirements))
	for _, req := range requirements {
		n := 0
		for _, s := range staff {
			if legallyCapable(s, req, idx, c) {
				n++
			}
		}
		counts[req.ID] = n
	}
	return counts
}

// legallyCapable checks only conditions 1 and 2 of eligibility (§4.2):
// qualification superset and the availability-window condition. It ignores
// hours already assigned and existing day conflicts, which is what makes it
// suitable for a state-independent scarcity count.
func legallyCapable(staff domain.Staff, req domain.ShiftRequirement, idx *availabilityIndex, c domain.Constraints) bool {
	if !staff.HasQualifications(req.RequiredQualifications) {
		return false
	}

	windows := idx.windows(staff.ID, req.DayOfWeek)
	if c.AllowSplitShifts {
		minOverlap := c.MinOverlapHours
		if req.Duration() < minOverlap {
			minOverlap = req.Duration()
		}
		return maxOverlap(windows, req.StartHour, req.EndHour) >= minOverlap
	}
	return fullyContains(windows, req.StartHour, req.EndHour)
}
