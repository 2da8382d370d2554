package utils

import (
	"fmt"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

// ValidateRequirementTemplateShifts checks that every shift's hour interval
// is well-formed and that no two shifts applicable to the same day overlap.
func ValidateRequirementTemplateShifts(shifts []domain.RequirementTemplateShift) error {
	for i, shift := range shifts {
		if shift.EndHour <= shift.StartHour {
			return fmt.Errorf("shift %d: endHour must be greater than startHour", i)
		}
	}

	for i := 0; i < len(shifts); i++ {
		for j := i + 1; j < len(shifts); j++ {
			if !sharesADay(shifts[i].ApplicableDays, shifts[j].ApplicableDays) {
				continue
			}
			if shifts[i].StartHour < shifts[j].EndHour && shifts[j].StartHour < shifts[i].EndHour {
				return fmt.Errorf("shift %d and shift %d overlap on a shared day", i, j)
			}
		}
	}

	return nil
}

func sharesADay(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// ValidateSchedulePlanTime checks that a plan's submission and active
// windows are internally consistent and ordered.
func ValidateSchedulePlanTime(plan *domain.SchedulePlan) error {
	if plan.SubmissionStartTime.After(plan.SubmissionEndTime) {
		return fmt.Errorf("submission start time cannot be after submission end time")
	}

	if plan.ActiveStartTime.After(plan.ActiveEndTime) {
		return fmt.Errorf("active start time cannot be after active end time")
	}

	if plan.ActiveStartTime.Before(plan.SubmissionEndTime) {
		return fmt.Errorf("active start time cannot be before submission end time")
	}

	return nil
}

// ValidateAvailabilityWindows checks that every submitted window has a
// well-formed hour interval and a valid day of week.
func ValidateAvailabilityWindows(windows []domain.AvailabilityWindow) error {
	for i, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return fmt.Errorf("window %d: dayOfWeek must be between 0 and 6", i)
		}
		if w.StartHour < 0 || w.StartHour > 23 {
			return fmt.Errorf("window %d: startHour must be between 0 and 23", i)
		}
		if w.EndHour <= w.StartHour || w.EndHour > 24 {
			return fmt.Errorf("window %d: endHour must be greater than startHour and at most 24", i)
		}
	}
	return nil
}
