package utils

import (
	"testing"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomOTP_IsSixDigits(t *testing.T) {
	otp := GenerateRandomOTP()
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateRandomPassword_HonorsLength(t *testing.T) {
	assert.Len(t, GenerateRandomPassword(12), 12)
	assert.Len(t, GenerateRandomPassword(0), 0)
}

func TestGenerateRandomID_HonorsLetterAndDigitCounts(t *testing.T) {
	id := GenerateRandomID(3, 4)
	assert.Len(t, id, 7)
	for i, r := range id {
		if i < 3 {
			assert.True(t, (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'), "expected a letter at position %d, got %q", i, r)
		} else {
			assert.True(t, r >= '0' && r <= '9', "expected a digit at position %d, got %q", i, r)
		}
	}
}

func TestGenerateRandomQualifications_NonEmptySubsetOfPool(t *testing.T) {
	quals := GenerateRandomQualifications()
	assert.NotEmpty(t, quals)
	assert.LessOrEqual(t, len(quals), len(qualificationPool))

	seen := make(map[string]bool)
	for _, q := range quals {
		assert.False(t, seen[q], "qualifications must not repeat")
		seen[q] = true
		assert.Contains(t, qualificationPool, q)
	}
}

func TestGenerateRandomApplicableDays_NonEmptySubsetOfWeek(t *testing.T) {
	days := GenerateRandomApplicableDays()
	assert.NotEmpty(t, days)
	seen := make(map[int]bool)
	for _, d := range days {
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 6)
		assert.False(t, seen[d])
		seen[d] = true
	}
}

func TestGenerateRandomStaff_ProducesAWellFormedStaffMember(t *testing.T) {
	staff := GenerateRandomStaff()
	assert.NotEmpty(t, staff.Name)
	assert.NotEmpty(t, staff.Color)
	assert.NotEmpty(t, staff.Qualifications)
	assert.LessOrEqual(t, staff.MinHoursPerWeek, staff.MaxHoursPerWeek)
	assert.Contains(t, staff.Email, "@example.com")
}

func TestGenerateRandomRequirementTemplate_InstantiatesCleanly(t *testing.T) {
	tmpl := GenerateRandomRequirementTemplate()
	assert.NotEmpty(t, tmpl.Shifts)

	n := 0
	requirements := tmpl.Instantiate(func() string {
		n++
		return "req-" + string(rune('a'+n))
	})
	for _, req := range requirements {
		assert.Less(t, req.StartHour, req.EndHour)
		assert.LessOrEqual(t, req.MinStaff, req.MaxStaff)
	}
}

func TestGenerateOpenForSubmissionSchedulePlan_IsCurrentlyAcceptingSubmissions(t *testing.T) {
	plan := &domain.SchedulePlan{}
	GenerateOpenForSubmissionSchedulePlan(plan)

	assert.True(t, plan.AcceptingSubmissions(time.Now()))
	assert.True(t, plan.SubmissionStartTime.Before(plan.SubmissionEndTime))
	assert.True(t, plan.ActiveStartTime.Before(plan.ActiveEndTime))
	assert.True(t, !plan.ActiveStartTime.Before(plan.SubmissionEndTime))
}

func TestGenerateNotStartedSchedulePlan_IsNotYetAcceptingSubmissions(t *testing.T) {
	plan := &domain.SchedulePlan{}
	GenerateNotStartedSchedulePlan(plan)

	assert.False(t, plan.AcceptingSubmissions(time.Now()))
}
