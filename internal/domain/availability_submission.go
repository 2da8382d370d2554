package domain

import "time"

// AvailabilitySubmission is one staff member's declared availability
// windows for a SchedulePlan's week. Validated against the plan's
// submission window before being accepted, and folded into that week's
// Problem.Availability (tagged with StaffID) at generate time.
type AvailabilitySubmission struct {
	ID             string               `json:"id"`
	SchedulePlanID string               `json:"schedulePlanId"`
	StaffID        string               `json:"staffId"`
	Windows        []AvailabilityWindow `json:"windows"`
	CreatedAt      time.Time            `json:"createdAt"`
}
