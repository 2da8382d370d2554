package scheduling

import "github.com/arnavshah/shift-scheduler-core/internal/domain"

// windowsForDay returns the staff's availability windows on day, in the
// order they were supplied. Windows are never merged: overlap is computed
// per-window so a lunch-split staff member isn't treated as available across
// the gap.
func windowsForDay(windows []domain.AvailabilityWindow, staffID string, day int) []domain.AvailabilityWindow {
	var out []domain.AvailabilityWindow
	for _, w := range windows {
		if w.StaffID == staffID && w.DayOfWeek == day {
			out = append(out, w)
		}
	}
	return out
}

// intersect returns the overlap length, in hours, between [aStart, aEnd) and
// [bStart, bEnd).
func intersect(aStart, aEnd, bStart, bEnd int) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}

// maxOverlap returns the maximum overlap hours between [shiftStart,
// shiftEnd) and any single window in windows — never their union. A staff
// whose only availability on the day is split across a break cannot cover a
// shift that spans the break in split mode unless one of their windows
// alone covers enough of it.
func maxOverlap(windows []domain.AvailabilityWindow, shiftStart, shiftEnd int) int {
	best := 0
	for _, w := range windows {
		if h := intersect(shiftStart, shiftEnd, w.StartHour, w.EndHour); h > best {
			best = h
		}
	}
	return best
}

// bestWindowInterval returns the actual [start, end) interval of the single
// window achieving maxOverlap, clipped to the shift interval. Used to
// record what a staff "really" works for stats and display. ok is false
// when there is no overlap at all.
func bestWindowInterval(windows []domain.AvailabilityWindow, shiftStart, shiftEnd int) (start, end int, ok bool) {
	best := 0
	for _, w := range windows {
		h := intersect(shiftStart, shiftEnd, w.StartHour, w.EndHour)
		if h > best {
			best = h
			start = shiftStart
			if w.StartHour > start {
				start = w.StartHour
			}
			end = shiftEnd
			if w.EndHour < end {
				end = w.EndHour
			}
		}
	}
	if best == 0 {
		return 0, 0, false
	}
	return start, end, true
}

// fullyContains reports whether some window in windows contains
// [shiftStart, shiftEnd) in its entirety.
func fullyContains(windows []domain.AvailabilityWindow, shiftStart, shiftEnd int) bool {
	for _, w := range windows {
		if w.StartHour <= shiftStart && w.EndHour >= shiftEnd {
			return true
		}
	}
	return false
}

// hoursWorked is the requirement's full duration when allowSplit is false;
// otherwise the best single-window overlap hours on the requirement's day.
func hoursWorked(windows []domain.AvailabilityWindow, shiftStart, shiftEnd int, allowSplit bool) int {
	if !allowSplit {
		return shiftEnd - shiftStart
	}
	return maxOverlap(windows, shiftStart, shiftEnd)
}
