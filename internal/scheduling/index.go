package scheduling

import "github.com/arnavshah/shift-scheduler-core/internal/domain"

// availabilityIndex pre-buckets windows by (staffID, day) so eligibility and
// scarcity checks don't rescan the full availability list per requirement.
type availabilityIndex struct {
	byStaffDay map[string]map[int][]domain.AvailabilityWindow
}

func buildAvailabilityIndex(windows []domain.AvailabilityWindow) *availabilityIndex {
	idx := &availabilityIndex{byStaffDay: make(map[string]map[int][]domain.AvailabilityWindow)}
	for _, w := range windows {
		byDay, ok := idx.byStaffDay[w.StaffID]
		if !ok {
			byDay = make(map[int][]domain.AvailabilityWindow)
			idx.byStaffDay[w.StaffID] = byDay
		}
		byDay[w.DayOfWeek] = append(byDay[w.DayOfWeek], w)
	}
	return idx
}

func (idx *availabilityIndex) windows(staffID string, day int) []domain.AvailabilityWindow {
	byDay, ok := idx.byStaffDay[staffID]
	if !ok {
		return nil
	}
	return byDay[day]
}
