package utils

import (
	"testing"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequirementTemplateShifts_RejectsInvertedHours(t *testing.T) {
	shifts := []domain.RequirementTemplateShift{
		{StartHour: 12, EndHour: 9, ApplicableDays: []int{1}},
	}

	err := ValidateRequirementTemplateShifts(shifts)
	assert.ErrorContains(t, err, "endHour must be greater than startHour")
}

func TestValidateRequirementTemplateShifts_RejectsOverlapOnSharedDay(t *testing.T) {
	shifts := []domain.RequirementTemplateShift{
		{StartHour: 8, EndHour: 16, ApplicableDays: []int{1, 2}},
		{StartHour: 14, EndHour: 22, ApplicableDays: []int{2, 3}},
	}

	err := ValidateRequirementTemplateShifts(shifts)
	assert.ErrorContains(t, err, "overlap on a shared day")
}

func TestValidateRequirementTemplateShifts_AllowsOverlapOnDisjointDays(t *testing.T) {
	shifts := []domain.RequirementTemplateShift{
		{StartHour: 8, EndHour: 16, ApplicableDays: []int{1}},
		{StartHour: 14, EndHour: 22, ApplicableDays: []int{2}},
	}

	assert.NoError(t, ValidateRequirementTemplateShifts(shifts))
}

func TestValidateSchedulePlanTime(t *testing.T) {
	base := time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC)

	valid := &domain.SchedulePlan{
		SubmissionStartTime: base,
		SubmissionEndTime:   base.AddDate(0, 0, 7),
		ActiveStartTime:     base.AddDate(0, 0, 10),
		ActiveEndTime:       base.AddDate(0, 0, 17),
	}
	assert.NoError(t, ValidateSchedulePlanTime(valid))

	invertedSubmission := &domain.SchedulePlan{
		SubmissionStartTime: base.AddDate(0, 0, 7),
		SubmissionEndTime:   base,
		ActiveStartTime:     base.AddDate(0, 0, 10),
		ActiveEndTime:       base.AddDate(0, 0, 17),
	}
	assert.ErrorContains(t, ValidateSchedulePlanTime(invertedSubmission), "submission start time")

	invertedActive := &domain.SchedulePlan{
		SubmissionStartTime: base,
		SubmissionEndTime:   base.AddDate(0, 0, 7),
		ActiveStartTime:     base.AddDate(0, 0, 17),
		ActiveEndTime:       base.AddDate(0, 0, 10),
	}
	assert.ErrorContains(t, ValidateSchedulePlanTime(invertedActive), "active start time cannot be after active end time")

	activeBeforeSubmissionEnds := &domain.SchedulePlan{
		SubmissionStartTime: base,
		SubmissionEndTime:   base.AddDate(0, 0, 7),
		ActiveStartTime:     base.AddDate(0, 0, 3),
		ActiveEndTime:       base.AddDate(0, 0, 10),
	}
	assert.ErrorContains(t, ValidateSchedulePlanTime(activeBeforeSubmissionEnds), "active start time cannot be before submission end time")
}

func TestValidateAvailabilityWindows(t *testing.T) {
	assert.NoError(t, ValidateAvailabilityWindows([]domain.AvailabilityWindow{
		{DayOfWeek: 0, StartHour: 8, EndHour: 16},
	}))

	assert.ErrorContains(t, ValidateAvailabilityWindows([]domain.AvailabilityWindow{
		{DayOfWeek: 7, StartHour: 8, EndHour: 16},
	}), "dayOfWeek")

	assert.ErrorContains(t, ValidateAvailabilityWindows([]domain.AvailabilityWindow{
		{DayOfWeek: 1, StartHour: -1, EndHour: 16},
	}), "startHour")

	assert.ErrorContains(t, ValidateAvailabilityWindows([]domain.AvailabilityWindow{
		{DayOfWeek: 1, StartHour: 10, EndHour: 10},
	}), "endHour")
}
