package domain

import "time"

// Constraints configures the optional knobs the engine reads. Every field
// has a meaningful zero value except where noted. The engine reads a
// Constraints value as given and applies no defaults to it; callers that
// want the defaults table start from DefaultConstraints, so a Constraints
// literal built by a test is never silently mutated.
type Constraints struct {
	// MinHoursPerStaff is an advisory global lower bound used only to emit
	// undertime warnings.
	MinHoursPerStaff *int `json:"minHoursPerStaff,omitempty"`
	// MaxHoursPerStaff is a hard global upper bound, additional to each
	// staff's own MaxHoursPerWeek.
	MaxHoursPerStaff *int `json:"maxHoursPerStaff,omitempty"`
	// BalanceHours switches the ranking key in the assignment core to
	// prefer staff with fewer hours already assigned.
	BalanceHours bool `json:"balanceHours"`
	// RespectPreferences is reserved; this engine does not read
	// preferences beyond eligibility.
	RespectPreferences bool `json:"respectPreferences"`
	// LockedShiftIDs names assignments that Regenerate must preserve.
	LockedShiftIDs []string `json:"lockedShiftIds"`
	// AllowSplitShifts enables partial-window eligibility.
	AllowSplitShifts bool `json:"allowSplitShifts"`
	// MinOverlapHours is the minimum single-window overlap required in
	// split mode.
	MinOverlapHours int `json:"minOverlapHours"`
	// SolveSeconds is reserved for the external OR-solver collaborator;
	// ignored by this engine.
	SolveSeconds int `json:"solveSeconds"`
	// SolutionPoolSize is the default NumTopVariants for SolveVariants.
	SolutionPoolSize int `json:"solutionPoolSize"`
}

// DefaultConstraints mirrors the defaults table from the external interface:
// BalanceHours and RespectPreferences default true, MinOverlapHours 2,
// SolveSeconds 10, SolutionPoolSize 3.
func DefaultConstraints() Constraints {
	return Constraints{
		BalanceHours:       true,
		RespectPreferences: true,
		MinOverlapHours:    2,
		SolveSeconds:       10,
		SolutionPoolSize:   3,
	}
}

// Problem is the full input to a solve: the roster, their availability, the
// requirements to cover, pass-through reference data, and constraints.
// Inputs are immutable during a solve.
type Problem struct {
	Staff          []Staff              `json:"staff"`
	Availability   []AvailabilityWindow `json:"availability"`
	Requirements   []ShiftRequirement   `json:"requirements"`
	Locations      []Location           `json:"locations"`
	Qualifications []Qualification      `json:"qualifications"`
	WeekStartDate  time.Time            `json:"weekStartDate"`
	Constraints    Constraints          `json:"constraints"`
}
