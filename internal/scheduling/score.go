package scheduling

import "github.com/arnavshah/shift-scheduler-core/internal/domain"

// warningPenalty maps a warning kind to its score penalty (§4.10).
func warningPenalty(kind domain.WarningKind) float64 {
	switch kind {
	case domain.WarningUnfilled:
		return 200
	case domain.WarningOvertime:
		return 100
	case domain.WarningUndertime:
		return 50
	case domain.WarningQualificationMismatch:
		return 300
	case domain.WarningPreferenceIgnored:
		return 20
	default:
		return 30
	}
}

// balanceBonus awards 200 iff every staff member's assigned hours respect
// their own max and are either zero or at least their own min — i.e. no one
// is left half-scheduled between nothing and their floor.
func balanceBonus(staff []domain.Staff, hoursPerStaff map[string]int, c domain.Constraints) float64 {
	for _, s := range staff {
		hours := hoursPerStaff[s.ID]
		if hours > effectiveMaxHours(s, c) {
			return 0
		}
		if hours != 0 && hours < s.MinHoursPerWeek {
			return 0
		}
	}
	return 200
}

// score computes the scalar rank over a ScheduleResult (§4.10). Coverage
// dominates; stipulation violations are secondary, and overtime penalties
// in particular should be unreachable on well-formed output since the hard
// max-hours gate forbids ever earning one.
func score(staff []domain.Staff, result domain.ScheduleResult, c domain.Constraints) float64 {
	stats := result.Stats
	uncoveredHours := stats.RequiredHours - stats.CoveredHours
	if uncoveredHours < 0 {
		uncoveredHours = 0
	}

	filledRatio := 0.0
	if stats.TotalShifts > 0 {
		filledRatio = float64(stats.FilledShifts) / float64(stats.TotalShifts)
	} else {
		filledRatio = float64(stats.FilledShifts)
	}

	total := 1000*float64(stats.CoveredHours) +
		100*stats.CoveragePercentage +
		500*filledRatio +
		balanceBonus(staff, stats.HoursPerStaff, c) -
		5000*float64(uncoveredHours)

	for _, w := range result.Warnings {
		total -= warningPenalty(w.Kind)
	}

	return total
}
