package scheduling

import "github.com/arnavshah/shift-scheduler-core/internal/domain"

// assignedWindow is the interval a staff actually works on a day because of
// one assignment — the requirement interval in full-shift mode, or the best
// overlapping window in split mode.
type assignedWindow struct {
	day   int
	start int
	end   int
}

// solveState is the mutable bookkeeping threaded through a single solve. It
// owns nothing the caller can observe concurrently; each solve (and, when
// parallelized, each variant) gets its own.
type solveState struct {
	hoursAssigned   map[string]int
	windows         map[string][]assignedWindow // staffID -> assigned windows
	shifts          []domain.ScheduledShift
	shiftByReqStaff map[string]int // "reqID|staffID" -> index into shifts, for O(1) uniqueness checks
}

func newSolveState() *solveState {
	return &solveState{
		hoursAssigned:   make(map[string]int),
		windows:         make(map[string][]assignedWindow),
		shiftByReqStaff: make(map[string]int),
	}
}

func pairKey(reqID, staffID string) string {
	return reqID + "|" + staffID
}

// hasDayConflict reports whether [start, end) on day overlaps any window
// already assigned to staffID.
func (s *solveState) hasDayConflict(staffID string, day, start, end int) bool {
	for _, w := range s.windows[staffID] {
		if w.day != day {
			continue
		}
		if intersect(start, end, w.start, w.end) > 0 {
			return true
		}
	}
	return false
}

// insert records a new assignment of staffID to req, charging workedHours
// against the staff's running total and reserving [winStart, winEnd) against
// future day-conflict checks.
func (s *solveState) insert(req domain.ShiftRequirement, staffID string, workedHours, winStart, winEnd int, shiftID string) {
	s.hoursAssigned[staffID] += workedHours
	s.windows[staffID] = append(s.windows[staffID], assignedWindow{day: req.DayOfWeek, start: winStart, end: winEnd})

	shift := domain.ScheduledShift{
		ID:            shiftID,
		StaffID:       staffID,
		RequirementID: req.ID,
		DayOfWeek:     req.DayOfWeek,
		StartHour:     req.StartHour,
		EndHour:       req.EndHour,
		LocationID:    req.LocationID,
		IsLocked:      false,
	}
	s.shiftByReqStaff[pairKey(req.ID, staffID)] = len(s.shifts)
	s.shifts = append(s.shifts, shift)
}

// remove undoes the bookkeeping for the assignment of staffID to
// requirement req that worked workedHours over [winStart, winEnd), and
// deletes the recorded shift. It is the exact inverse of insert.
func (s *solveState) remove(req domain.ShiftRequirement, staffID string, workedHours, winStart, winEnd int) {
	s.hoursAssigned[staffID] -= workedHours

	ws := s.windows[staffID]
	for i, w := range ws {
		if w.day == req.DayOfWeek && w.start == winStart && w.end == winEnd {
			s.windows[staffID] = append(ws[:i], ws[i+1:]...)
			break
		}
	}

	key := pairKey(req.ID, staffID)
	idx, ok := s.shiftByReqStaff[key]
	if !ok {
		return
	}
	s.shifts = append(s.shifts[:idx], s.shifts[idx+1:]...)
	delete(s.shiftByReqStaff, key)
	// every index after idx shifted down by one
	for k, v := range s.shiftByReqStaff {
		if v > idx {
			s.shiftByReqStaff[k] = v - 1
		}
	}
}

// isAssigned reports whether staffID is already assigned to requirementID.
func (s *solveState) isAssigned(requirementID, staffID string) bool {
	_, ok := s.shiftByReqStaff[pairKey(requirementID, staffID)]
	return ok
}

// countForRequirement returns how many staff are currently assigned to
// requirementID.
func (s *solveState) countForRequirement(requirementID string) int {
	n := 0
	for _, sh := range s.shifts {
		if sh.RequirementID == requirementID {
			n++
		}
	}
	return n
}
