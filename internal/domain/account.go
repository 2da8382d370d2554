package domain

import "time"

// Role is a StaffAccount's permission level.
type Role string

const (
	// RoleStaff can view their own roster entry and submit availability.
	RoleStaff Role = "staff"
	// RoleScheduler can manage requirement templates, schedule plans, and
	// trigger solves.
	RoleScheduler Role = "scheduler"
	// RoleAdmin can additionally manage staff accounts.
	RoleAdmin Role = "admin"
)

// StaffAccount is the login identity for a roster member. It is kept
// separate from domain.Staff (the engine's own pass-through type) because
// the engine never needs to know about passwords or sessions.
type StaffAccount struct {
	ID           string    `json:"id"`
	StaffID      string    `json:"staffId"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"version"`
}
