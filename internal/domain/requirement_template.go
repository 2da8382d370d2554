package domain

import (
	"strconv"
	"time"
)

// RequirementTemplateShift is one reusable shift shape within a template:
// a day-of-week-agnostic hour interval, the qualifications it needs, and
// its headcount band. A SchedulePlan instantiates every shift of its
// template, for every day it names, into a concrete ShiftRequirement.
type RequirementTemplateShift struct {
	ID                     string   `json:"id"`
	LocationID             string   `json:"locationId"`
	StartHour              int      `json:"startHour"`
	EndHour                int      `json:"endHour"`
	RequiredQualifications []string `json:"requiredQualifications"`
	MinStaff               int      `json:"minStaff"`
	MaxStaff               int      `json:"maxStaff"`
	ApplicableDays         []int    `json:"applicableDays"`
}

// RequirementTemplate is a named, reusable list of shift shapes — the
// thing a scheduler builds once ("front desk coverage") and reuses across
// many weekly SchedulePlans.
type RequirementTemplate struct {
	ID          string                     `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Shifts      []RequirementTemplateShift `json:"shifts"`
	CreatedAt   time.Time                  `json:"createdAt"`
	Version     int32                      `json:"version"`
}

// Instantiate expands every shift of the template, for every day it
// applies to, into a concrete ShiftRequirement. A shift with an id (the
// repository assigns one on insert) yields the requirement id
// "<shiftID>:<day>", which is stable across reads so a later Regenerate can
// match stored shifts to their requirements; idFn supplies the id only for
// a shift without one, once per requirement generated from it.
func (t RequirementTemplate) Instantiate(idFn func() string) []ShiftRequirement {
	var out []ShiftRequirement
	for _, shift := range t.Shifts {
		for _, day := range shift.ApplicableDays {
			id := shift.ID + ":" + strconv.Itoa(day)
			if shift.ID == "" {
				id = idFn()
			}
			out = append(out, ShiftRequirement{
				ID:                     id,
				LocationID:             shift.LocationID,
				DayOfWeek:              day,
				StartHour:              shift.StartHour,
				EndHour:                shift.EndHour,
				RequiredQualifications: shift.RequiredQualifications,
				MinStaff:               shift.MinStaff,
				MaxStaff:               shift.MaxStaff,
			})
		}
	}
	return out
}
