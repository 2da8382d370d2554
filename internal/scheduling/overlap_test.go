package scheduling

import (
	"testing"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	assert.Equal(t, 2, intersect(9, 13, 11, 15))
	assert.Equal(t, 0, intersect(9, 11, 11, 13), "adjacent intervals share no interior")
	assert.Equal(t, 0, intersect(9, 11, 12, 13), "disjoint intervals overlap zero")
	assert.Equal(t, 4, intersect(8, 12, 0, 24))
}

func TestMaxOverlap(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		{StaffID: "s1", DayOfWeek: 1, StartHour: 8, EndHour: 12},
		{StaffID: "s1", DayOfWeek: 1, StartHour: 13, EndHour: 17},
	}

	// The shift spans the lunch gap; no single window covers more than 2
	// hours of it on either side.
	assert.Equal(t, 2, maxOverlap(windows, 10, 15))
	assert.Equal(t, 4, maxOverlap(windows, 8, 12))
	assert.Equal(t, 0, maxOverlap(windows, 18, 20))
}

func TestFullyContains(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		{StaffID: "s1", DayOfWeek: 1, StartHour: 8, EndHour: 17},
	}

	assert.True(t, fullyContains(windows, 9, 13))
	assert.False(t, fullyContains(windows, 7, 13), "shift starts before the window opens")
	assert.False(t, fullyContains(windows, 9, 18), "shift ends after the window closes")
}

func TestBestWindowInterval(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		{StaffID: "s1", DayOfWeek: 1, StartHour: 8, EndHour: 12},
		{StaffID: "s1", DayOfWeek: 1, StartHour: 13, EndHour: 17},
	}

	start, end, ok := bestWindowInterval(windows, 10, 15)
	assert.True(t, ok)
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)

	_, _, ok = bestWindowInterval(windows, 18, 20)
	assert.False(t, ok)
}

func TestHoursWorked(t *testing.T) {
	windows := []domain.AvailabilityWindow{
		{StaffID: "s1", DayOfWeek: 1, StartHour: 8, EndHour: 12},
	}

	assert.Equal(t, 6, hoursWorked(windows, 9, 15, false), "full-shift mode ignores windows entirely")
	assert.Equal(t, 3, hoursWorked(windows, 9, 15, true), "split mode caps at the best single overlap")
}
