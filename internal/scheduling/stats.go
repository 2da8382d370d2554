package scheduling

import (
	"sort"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

// computeStats derives the full §3 stats from the final assignment list and
// inputs. It is purely a function of state and the problem — no randomness,
// so two solves with identical assignments always produce identical stats.
func computeStats(requirements []domain.ShiftRequirement, staff []domain.Staff, idx *availabilityIndex, c domain.Constraints, state *solveState) domain.ScheduleStats {
	hoursPerStaff := make(map[string]int, len(staff))
	for _, s := range staff {
		hoursPerStaff[s.ID] = state.hoursAssigned[s.ID]
	}

	totalHours := 0
	for _, h := range hoursPerStaff {
		totalHours += h
	}

	requiredHours := 0
	coveredHours := 0
	filledShifts := 0
	var gaps []domain.UncoveredGap

	for _, req := range requirements {
		requiredHours += req.Duration() * req.MinStaff

		counts := coveragePerHour(req, state, idx)
		fullyCovered := true
		for _, cov := range counts {
			covered := cov
			if covered > req.MinStaff {
				covered = req.MinStaff
			}
			coveredHours += covered
			if cov < req.MinStaff {
				fullyCovered = false
			}
		}
		if fullyCovered {
			filledShifts++
		}

		for _, gr := range gapRanges(req, counts) {
			gaps = append(gaps, domain.UncoveredGap{
				RequirementID: req.ID,
				DayOfWeek:     req.DayOfWeek,
				StartHour:     gr.Start,
				EndHour:       gr.End,
				LocationID:    req.LocationID,
			})
		}
	}

	coveragePct := 100.0
	if requiredHours > 0 {
		coveragePct = 100.0 * float64(coveredHours) / float64(requiredHours)
	}

	return domain.ScheduleStats{
		TotalShifts:        len(requirements),
		FilledShifts:       filledShifts,
		HoursPerStaff:      hoursPerStaff,
		TotalHours:         totalHours,
		RequiredHours:      requiredHours,
		CoveredHours:       coveredHours,
		CoveragePercentage: coveragePct,
		UncoveredGaps:      mergeGaps(gaps),
	}
}

// mergeGaps merges contiguous uncovered ranges per (requirementId,
// dayOfWeek) so a user sees one gap, not many.
func mergeGaps(gaps []domain.UncoveredGap) []domain.UncoveredGap {
	if len(gaps) == 0 {
		return nil
	}

	sorted := make([]domain.UncoveredGap, len(gaps))
	copy(sorted, gaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].RequirementID != sorted[j].RequirementID {
			return sorted[i].RequirementID < sorted[j].RequirementID
		}
		if sorted[i].DayOfWeek != sorted[j].DayOfWeek {
			return sorted[i].DayOfWeek < sorted[j].DayOfWeek
		}
		return sorted[i].StartHour < sorted[j].StartHour
	})

	merged := []domain.UncoveredGap{sorted[0]}
	for _, g := range sorted[1:] {
		last := &merged[len(merged)-1]
		if g.RequirementID == last.RequirementID && g.DayOfWeek == last.DayOfWeek && g.StartHour == last.EndHour {
			last.EndHour = g.EndHour
			continue
		}
		merged = append(merged, g)
	}
	return merged
}

// hourWarnings emits overtime/undertime warnings by comparing per-staff
// totals against minHoursPerWeek/maxHoursPerWeek. Overtime should be
// unreachable on well-formed output given the hard max-hours gate enforced
// throughout assign/swap/gapFill; if it ever fires, that is a bug upstream,
// not a case this function tries to prevent.
func hourWarnings(staffList []domain.Staff, stats domain.ScheduleStats, c domain.Constraints) []domain.ScheduleWarning {
	var warnings []domain.ScheduleWarning
	for _, s := range staffList {
		hours := stats.HoursPerStaff[s.ID]

		max := effectiveMaxHours(s, c)
		if hours > max {
			warnings = append(warnings, domain.ScheduleWarning{
				Kind:    domain.WarningOvertime,
				Message: "staff exceeds their max hours",
				StaffID: s.ID,
			})
		}

		minDesired := s.MinHoursPerWeek
		if c.MinHoursPerStaff != nil && *c.MinHoursPerStaff > minDesired {
			minDesired = *c.MinHoursPerStaff
		}
		if minDesired > 0 && hours < minDesired {
			warnings = append(warnings, domain.ScheduleWarning{
				Kind:    domain.WarningUndertime,
				Message: "staff has fewer hours than their minimum",
				StaffID: s.ID,
			})
		}
	}
	return warnings
}
