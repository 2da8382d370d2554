package scheduling

import (
	"hash/fnv"
	"sort"
	"strings"

	"github.com/arnavshah/shift-scheduler-core/internal/domain"
)

// subSeed derives a reproducible per-run seed from the top-level seed and a
// run index, so parallelizing the variant generator only requires handing
// each worker its own subSeed — no shared RNG state to split.
func subSeed(seed int64, runIndex int) int64 {
	h := fnv.New64a()
	var buf [12]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(seed >> (8 * i))
	}
	for i := 0; i < 4; i++ {
		buf[8+i] = byte(runIndex >> (8 * i))
	}
	h.Write(buf[:])
	return int64(h.Sum64())
}

// signature is the sorted multiset of requirementId:staffId pairs — used to
// de-duplicate variants. Two schedules with the same score but different
// staff on the same requirement are meaningfully different to the user, so
// de-duplication never uses scores.
func signature(shifts []domain.ScheduledShift) string {
	pairs := make([]string, len(shifts))
	for i, sh := range shifts {
		pairs[i] = sh.RequirementID + ":" + sh.StaffID
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// SolveVariants runs the pipeline many times with different orderings and
// seeds (§4.9), scores every candidate, de-duplicates by assignment
// signature, and returns the top numTopVariants unique candidates with
// bestIndex = 0. When fewer unique signatures exist, the list is padded
// with the highest-scored duplicates.
func SolveVariants(problem domain.Problem, numCandidates, numTopVariants int, seed int64) domain.VariantsResult {
	if numCandidates <= 0 {
		numCandidates = 1
	}
	if numTopVariants <= 0 {
		numTopVariants = problem.Constraints.SolutionPoolSize
	}
	if numTopVariants <= 0 {
		numTopVariants = 1
	}

	idx := buildAvailabilityIndex(problem.Availability)
	byID := staffMap(problem.Staff)

	perStrategy := (numCandidates + len(AllStrategies) - 1) / len(AllStrategies)

	type scored struct {
		result domain.ScheduleResult
		score  float64
	}

	var all []scored
	runIndex := 0

	for _, strat := range AllStrategies {
		for i := 0; i < perStrategy; i++ {
			result := runOnce(problem, strat, subSeed(seed, runIndex), idx, byID)
			all = append(all, scored{result: result, score: score(problem.Staff, result, problem.Constraints)})
			runIndex++
		}
	}

	for len(all) < numCandidates {
		result := runOnce(problem, StrategyRandom, subSeed(seed, runIndex), idx, byID)
		all = append(all, scored{result: result, score: score(problem.Staff, result, problem.Constraints)})
		runIndex++
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})

	seen := make(map[string]bool, len(all))
	var unique []scored
	var leftover []scored

	for _, s := range all {
		sig := signature(s.result.Schedule.Shifts)
		if seen[sig] {
			leftover = append(leftover, s)
			continue
		}
		seen[sig] = true
		unique = append(unique, s)
		if len(unique) >= numTopVariants {
			break
		}
	}

	for len(unique) < numTopVariants && len(leftover) > 0 {
		unique = append(unique, leftover[0])
		leftover = leftover[1:]
	}

	variants := make([]domain.ScheduleResult, len(unique))
	for i, s := range unique {
		variants[i] = s.result
	}

	return domain.VariantsResult{
		Variants:  variants,
		BestIndex: 0,
	}
}
