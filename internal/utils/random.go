package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var passwordAlphabet = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = passwordAlphabet[rand.Intn(len(passwordAlphabet))]
	}
	return string(password)
}

var digits = "0123456789"
var idLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func GenerateRandomID(letterLength, digitLength int) string {
	id := make([]rune, letterLength+digitLength)
	for i := range id {
		if i < letterLength {
			id[i] = idLetters[rand.Intn(len(idLetters))]
		} else {
			id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(id)
}

var firstNames = []string{
	"Olivia", "Liam", "Emma", "Noah", "Ava", "Ethan", "Sophia", "Mason",
	"Isabella", "Lucas", "Mia", "James", "Amelia", "Benjamin", "Harper",
	"Henry", "Evelyn", "Alexander", "Abigail", "Daniel",
}
var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

func GenerateRandomStaffName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

var colors = []string{"#ef4444", "#f97316", "#eab308", "#22c55e", "#06b6d4", "#3b82f6", "#8b5cf6", "#ec4899"}

func GenerateRandomColor() string {
	return colors[rand.Intn(len(colors))]
}

var qualificationPool = []string{"front-desk", "keyholder", "barista", "cashier", "stocker", "supervisor"}

// GenerateRandomQualifications returns a random non-empty subset of the
// qualification pool using a Fisher-Yates partial shuffle.
func GenerateRandomQualifications() []string {
	pool := append([]string{}, qualificationPool...)
	for i := len(pool) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	n := rand.Intn(len(pool)) + 1
	return pool[:n]
}

func GenerateRandomStaff() *domain.Staff {
	employmentType := domain.EmploymentFullTime
	if rand.Intn(2) == 0 {
		employmentType = domain.EmploymentPartTime
	}

	name := GenerateRandomStaffName()
	username := GenerateRandomID(3, 3)

	return &domain.Staff{
		Name:            name,
		Color:           GenerateRandomColor(),
		Qualifications:  GenerateRandomQualifications(),
		MaxHoursPerWeek: rand.Intn(20) + 20,
		MinHoursPerWeek: rand.Intn(10),
		EmploymentType:  employmentType,
		Email:           username + "@example.com",
	}
}

// GenerateRandomApplicableDays returns a random non-empty subset of the
// seven days of the week using a Fisher-Yates partial shuffle.
func GenerateRandomApplicableDays() []int {
	days := []int{0, 1, 2, 3, 4, 5, 6}
	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}
	n := rand.Intn(len(days)) + 1
	return days[:n]
}

func GenerateRandomRequirementTemplate() *domain.RequirementTemplate {
	tmpl := &domain.RequirementTemplate{
		Name:        "Coverage plan " + GenerateRandomID(3, 3),
		Description: "Generated template " + GenerateRandomID(10, 5),
	}

	shiftsNum := rand.Intn(4) + 2
	hoursPerShift := 24 / shiftsNum

	shifts := make([]domain.RequirementTemplateShift, shiftsNum)
	for i := range shifts {
		startHour := i * hoursPerShift
		endHour := startHour + hoursPerShift
		minStaff := rand.Intn(3) + 1

		shifts[i] = domain.RequirementTemplateShift{
			LocationID:             "location-" + GenerateRandomID(0, 1),
			StartHour:              startHour,
			EndHour:                endHour,
			RequiredQualifications: GenerateRandomQualifications(),
			MinStaff:               minStaff,
			MaxStaff:               minStaff + rand.Intn(3),
			ApplicableDays:         GenerateRandomApplicableDays(),
		}
	}
	tmpl.Shifts = shifts

	return tmpl
}

func GenerateNotStartedSchedulePlan(plan *domain.SchedulePlan) {
	plan.SubmissionStartTime = time.Now().Add(time.Hour * 24)
	plan.SubmissionEndTime = plan.SubmissionStartTime.Add(time.Hour * 24 * 7)
	plan.ActiveStartTime = plan.SubmissionEndTime.Add(time.Hour * 24 * 3)
	plan.ActiveEndTime = plan.ActiveStartTime.Add(time.Hour * 24 * 7)
}

func GenerateOpenForSubmissionSchedulePlan(plan *domain.SchedulePlan) {
	plan.SubmissionStartTime = time.Now().Add(-time.Hour * 24)
	plan.SubmissionEndTime = plan.SubmissionStartTime.Add(time.Hour * 24 * 7)
	plan.ActiveStartTime = plan.SubmissionEndTime.Add(time.Hour * 24 * 3)
	plan.ActiveEndTime = plan.ActiveStartTime.Add(time.Hour * 24 * 7)
}

func GenerateRandomSchedulePlan(requirementTemplateID string) *domain.SchedulePlan {
	plan := &domain.SchedulePlan{
		Name:                  "Week of " + GenerateRandomID(3, 3),
		Description:           "Generated plan " + GenerateRandomID(10, 5),
		WeekStartDate:         time.Now().Truncate(24 * time.Hour),
		RequirementTemplateID: requirementTemplateID,
		Constraints:           domain.DefaultConstraints(),
	}

	if rand.Intn(2) == 0 {
		GenerateNotStartedSchedulePlan(plan)
	} else {
		GenerateOpenForSubmissionSchedulePlan(plan)
	}

	return plan
}

// GenerateRandomAvailabilityWindows produces a handful of non-overlapping
// windows across a random subset of days, loosely mirroring a staff
// member's real-world weekly availability.
func GenerateRandomAvailabilityWindows() []domain.AvailabilityWindow {
	days := GenerateRandomApplicableDays()
	windows := make([]domain.AvailabilityWindow, 0, len(days))

	for _, day := range days {
		start := rand.Intn(16)
		length := rand.Intn(6) + 2
		end := start + length
		if end > 24 {
			end = 24
		}

		windows = append(windows, domain.AvailabilityWindow{
			DayOfWeek: day,
			StartHour: start,
			EndHour:   end,
		})
	}

	return windows
}
