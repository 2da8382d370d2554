package scheduling

import (
	"hash/fnv"
	"sort"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
	"github.com/google/uuid"
)

// totalAvailabilityHours sums the duration of every window a staff member
// holds, across all days — used as the default tie-break in the ranker: a
// staff with narrow availability is the only one who can cover scarce slots
// later, so abundant staff should be spent first.
func totalAvailabilityHours(windows []domain.AvailabilityWindow, staffID string) int {
	total := 0
	for _, w := range windows {
		if w.StaffID == staffID {
			total += w.Duration()
		}
	}
	return total
}

// jitter derives a small, reproducible pseudo-random tie-break value from
// the seed and the (requirement, staff) pair, so that otherwise-identical
// ranks don't depend on map iteration order while remaining deterministic
// for a given seed.
func jitter(seed int64, requirementID, staffID string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(requirementID))
	h.Write([]byte{'|'})
	h.Write([]byte(staffID))
	h.Write([]byte{'|'})
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(seed >> (8 * i))
	}
	h.Write(buf[:])
	return h.Sum32()
}

// rankCandidates orders eligible staff for requirement req per §4.5 step 2:
// greater remaining capacity first; ties broken by greater total weekly
// availability (or, under balanceHours, by fewer hours already assigned);
// final ties broken by a seed-derived jitter.
func rankCandidates(candidates []domain.Staff, req domain.ShiftRequirement, state *solveState, availability []domain.AvailabilityWindow, c domain.Constraints, seed int64) []domain.Staff {
	out := make([]domain.Staff, len(candidates))
	copy(out, candidates)

	remaining := func(s domain.Staff) int {
		return effectiveMaxHours(s, c) - state.hoursAssigned[s.ID]
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := remaining(out[i]), remaining(out[j])
		if ri != rj {
			return ri > rj
		}

		if c.BalanceHours {
			hi, hj := state.hoursAssigned[out[i].ID], state.hoursAssigned[out[j].ID]
			if hi != hj {
				return hi < hj
			}
		} else {
			ai, aj := totalAvailabilityHours(availability, out[i].ID), totalAvailabilityHours(availability, out[j].ID)
			if ai != aj {
				return ai > aj
			}
		}

		return jitter(seed, req.ID, out[i].ID) < jitter(seed, req.ID, out[j].ID)
	})

	return out
}

// assign runs the single-pass assignment core (§4.5) over requirements in
// the order given, filling each up to its minStaff headcount.
func assign(requirements []domain.ShiftRequirement, staff []domain.Staff, availability []domain.AvailabilityWindow, idx *availabilityIndex, c domain.Constraints, seed int64, state *solveState) []domain.ScheduleWarning {
	var warnings []domain.ScheduleWarning

	for _, req := range requirements {
		var eligible []domain.Staff
		for _, s := range staff {
			if isEligible(s, req, state, idx, c) {
				eligible = append(eligible, s)
			}
		}

		ranked := rankCandidates(eligible, req, state, availability, c, seed)

		// filled starts at whatever headcount the state already carries for
		// this requirement — nonzero when seeded with preserved/locked
		// assignments ahead of this pass (regenerate).
		filled := state.countForRequirement(req.ID)
		for _, s := range ranked {
			if filled >= req.MinStaff {
				break
			}
			// Defensive re-check: ranking does not mutate state, but a
			// future change to this loop might, so re-verify before insert.
			if !isEligible(s, req, state, idx, c) {
				continue
			}

			windows := idx.windows(s.ID, req.DayOfWeek)
			worked := hoursWorked(windows, req.StartHour, req.EndHour, c.AllowSplitShifts)

			winStart, winEnd := req.StartHour, req.EndHour
			if c.AllowSplitShifts {
				if bs, be, ok := bestWindowInterval(windows, req.StartHour, req.EndHour); ok {
					winStart, winEnd = bs, be
				}
			}

			state.insert(req, s.ID, worked, winStart, winEnd, uuid.NewString())
			filled++
		}

		if filled < req.MinStaff {
			warnings = append(warnings, domain.ScheduleWarning{
				Kind:          domain.WarningUnfilled,
				Message:       "requirement could not be filled to its minimum headcount",
				RequirementID: req.ID,
			})
		}
	}

	return warnings
}
