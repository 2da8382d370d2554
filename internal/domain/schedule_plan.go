package domain

import "time"

// SchedulePlan is one week's solve: when staff may submit availability,
// when the resulting schedule takes effect, which RequirementTemplate to
// instantiate, and any Constraints overrides for that week.
type SchedulePlan struct {
	ID                     string      `json:"id"`
	Name                   string      `json:"name"`
	Description            string      `json:"description"`
	WeekStartDate          time.Time   `json:"weekStartDate"`
	SubmissionStartTime    time.Time   `json:"submissionStartTime"`
	SubmissionEndTime      time.Time   `json:"submissionEndTime"`
	ActiveStartTime        time.Time   `json:"activeStartTime"`
	ActiveEndTime          time.Time   `json:"activeEndTime"`
	RequirementTemplateID  string      `json:"requirementTemplateId"`
	Constraints            Constraints `json:"constraints"`
	CreatedAt              time.Time   `json:"createdAt"`
	Version                int32       `json:"version"`
}

// AcceptingSubmissions reports whether now falls within the plan's
// submission window.
func (p SchedulePlan) AcceptingSubmissions(now time.Time) bool {
	return !now.Before(p.SubmissionStartTime) && !now.After(p.SubmissionEndTime)
}
