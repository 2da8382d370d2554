package scheduling

import (
	"sort"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/google/uuid"
)

// maxGapFillIterations bounds the gap-fill loop as a safety net only: each
// iteration that makes progress adds at least one assignment, so the loop
// terminates on its own within Σ maxStaff iterations on correct input. The
// cap should never trigger on correct code.
const maxGapFillIterations = 20

// hourRange is a half-open [Start, End) hour interval.
type hourRange struct {
	Start, End int
}

// coveragePerHour returns, for each hour in [req.StartHour, req.EndHour), the
// number of currently-assigned staff whose best-overlap window covers it.
func coveragePerHour(req domain.ShiftRequirement, state *solveState, idx *availabilityIndex) []int {
	counts := make([]int, req.Duration())
	for _, sh := range state.shifts {
		if sh.RequirementID != req.ID {
			continue
		}
		windows := idx.windows(sh.StaffID, req.DayOfWeek)
		start, end, ok := bestWindowInterval(windows, req.StartHour, req.EndHour)
		if !ok {
			continue
		}
		for h := start; h < end; h++ {
			counts[h-req.StartHour]++
		}
	}
	return counts
}

// gapRanges derives the maximal contiguous hour ranges where coverage is
// below minStaff.
func gapRanges(req domain.ShiftRequirement, counts []int) []hourRange {
	var ranges []hourRange
	inGap := false
	start := 0
	for i, c := range counts {
		hour := req.StartHour + i
		if c < req.MinStaff {
			if !inGap {
				inGap = true
				start = hour
			}
		} else if inGap {
			ranges = append(ranges, hourRange{Start: start, End: hour})
			inGap = false
		}
	}
	if inGap {
		ranges = append(ranges, hourRange{Start: start, End: req.EndHour})
	}
	return ranges
}

// gapFill iterates hour-by-hour gaps and adds eligible coverers (§4.7) until
// no requirement admits further progress or the iteration cap is reached.
func gapFill(requirements []domain.ShiftRequirement, staff []domain.Staff, idx *availabilityIndex, c domain.Constraints, seed int64, state *solveState) {
	for iter := 0; iter < maxGapFillIterations; iter++ {
		progressed := false

		for _, req := range requirements {
			counts := coveragePerHour(req, state, idx)
			for _, gap := range gapRanges(req, counts) {
				if fillOneGap(req, gap, staff, idx, c, seed, state) {
					progressed = true
					// Recompute coverage before evaluating the next gap
					// range, since the insert may have changed it.
					counts = coveragePerHour(req, state, idx)
				}
			}
		}

		if !progressed {
			return
		}
	}
}

// fillOneGap picks the single best candidate for one gap range on req, if
// any exists, inserts them, and reports whether it made progress.
func fillOneGap(req domain.ShiftRequirement, gap hourRange, staff []domain.Staff, idx *availabilityIndex, c domain.Constraints, seed int64, state *solveState) bool {
	type candidate struct {
		staff       domain.Staff
		gapOverlap  int
		remaining   int
	}

	var candidates []candidate
	for _, s := range staff {
		if state.isAssigned(req.ID, s.ID) {
			continue
		}
		if !s.HasQualifications(req.RequiredQualifications) {
			continue
		}

		windows := idx.windows(s.ID, req.DayOfWeek)
		gapOverlap := windowOverlapWithRange(windows, gap.Start, gap.End)
		if gapOverlap < 1 {
			continue
		}
		if state.hasDayConflict(s.ID, req.DayOfWeek, req.StartHour, req.EndHour) {
			continue
		}

		worked := hoursWorked(windows, req.StartHour, req.EndHour, c.AllowSplitShifts)
		if state.hoursAssigned[s.ID]+worked > effectiveMaxHours(s, c) {
			continue
		}

		candidates = append(candidates, candidate{
			staff:      s,
			gapOverlap: gapOverlap,
			remaining:  effectiveMaxHours(s, c) - state.hoursAssigned[s.ID],
		})
	}

	if len(candidates) == 0 {
		return false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].gapOverlap != candidates[j].gapOverlap {
			return candidates[i].gapOverlap > candidates[j].gapOverlap
		}
		if candidates[i].remaining != candidates[j].remaining {
			return candidates[i].remaining > candidates[j].remaining
		}
		return jitter(seed, req.ID, candidates[i].staff.ID) < jitter(seed, req.ID, candidates[j].staff.ID)
	})

	chosen := candidates[0].staff
	windows := idx.windows(chosen.ID, req.DayOfWeek)
	worked := hoursWorked(windows, req.StartHour, req.EndHour, c.AllowSplitShifts)

	winStart, winEnd := req.StartHour, req.EndHour
	if c.AllowSplitShifts {
		if bs, be, ok := bestWindowInterval(windows, req.StartHour, req.EndHour); ok {
			winStart, winEnd = bs, be
		}
	}

	state.insert(req, chosen.ID, worked, winStart, winEnd, uuid.NewString())
	return true
}

// windowOverlapWithRange returns the maximum single-window overlap, in
// hours, between any window in windows and [rangeStart, rangeEnd).
func windowOverlapWithRange(windows []domain.AvailabilityWindow, rangeStart, rangeEnd int) int {
	best := 0
	for _, w := range windows {
		if h := intersect(rangeStart, rangeEnd, w.StartHour, w.EndHour); h > best {
			best = h
		}
	}
	return best
}
