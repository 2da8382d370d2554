package seed

import (
	"log/slog"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/arnavshah/shift-scheduler-core/internal/repository"
	"github.com/arnavshah/shift-scheduler-core/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemoData builds one requirement template, one open-for-submission
// schedule plan, a roster of staff with login accounts, and an availability
// submission per staff member — enough for a fresh environment to exercise
// a full generate/regenerate cycle without any other setup.
func SeedDemoData(repo *repository.Repository, staffCount int, accountPassword string) {
	tmpl := utils.GenerateRandomRequirementTemplate()
	if err := repo.CreateRequirementTemplate(tmpl); err != nil {
		slog.Error("failed to insert demo requirement template", "error", err)
		return
	}

	plan := utils.GenerateRandomSchedulePlan(tmpl.ID)
	utils.GenerateOpenForSubmissionSchedulePlan(plan)
	if err := repo.CreateSchedulePlan(plan); err != nil {
		slog.Error("failed to insert demo schedule plan", "error", err)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(accountPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash demo staff password", "error", err)
		return
	}

	for i := 0; i < staffCount; i++ {
		staff := utils.GenerateRandomStaff()
		if err := repo.CreateStaff(staff); err != nil {
			slog.Error("failed to insert demo staff", "error", err)
			continue
		}

		account := &domain.StaffAccount{
			StaffID:      staff.ID,
			Username:     utils.GenerateRandomID(4, 4),
			PasswordHash: string(passwordHash),
			Email:        staff.Email,
			Role:         domain.RoleStaff,
			IsActive:     true,
		}
		if err := repo.CreateStaffAccount(account); err != nil {
			slog.Error("failed to insert demo staff account", "error", err)
			continue
		}

		submission := &domain.AvailabilitySubmission{
			SchedulePlanID: plan.ID,
			StaffID:        staff.ID,
			Windows:        utils.GenerateRandomAvailabilityWindows(),
		}
		if err := repo.InsertAvailabilitySubmission(submission); err != nil {
			slog.Error("failed to insert demo availability submission", "error", err)
			continue
		}
	}

	slog.Info("demo data seeded", "staffCount", staffCount, "schedulePlanId", plan.ID, "requirementTemplateId", tmpl.ID)
}
