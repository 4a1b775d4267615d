// Package scoring computes how well a catalog item matches a preference
// profile. The score is a weighted average over the dimensions the profile
// actually expresses interest in, so a sparse profile is not penalized for
// the dimensions it left at low importance.
package scoring

import (
	"strings"

	"lapmatch/internal/domain/entity"
)

// Dimension weights. Budget always participates; the others only when the
// corresponding importance is at least interestThreshold.
const (
	budgetWeight      = 0.4
	performanceWeight = 0.3
	portabilityWeight = 0.2
	displayWeight     = 0.1

	interestThreshold = 5
	reasonThreshold   = 7

	highRefreshRateHz = 120
)

// Score computes the match score of laptop against profile, in the unit
// interval under normal inputs, together with the human-readable reasons.
//
// The performance sub-score is the unclamped sum of its RAM and processor
// contributions and can exceed 1.0; the resulting bias towards
// well-specified machines is deliberate and pinned by tests, so do not
// clamp it here without recalibrating.
func Score(laptop *entity.Laptop, profile *entity.PreferenceProfile) (float64, []string) {
	score := 0.0
	totalWeight := 0.0

	score += budgetScore(laptop.Price.Current, profile.Budget) * budgetWeight
	totalWeight += budgetWeight

	if profile.Performance.Importance >= interestThreshold {
		score += performanceScore(laptop.Specifications) * performanceWeight
		totalWeight += performanceWeight
	}

	if profile.Portability.Importance >= interestThreshold {
		score += portabilityScore(laptop.Specifications.Weight, profile.Portability.MaxWeight) * portabilityWeight
		totalWeight += portabilityWeight
	}

	if profile.Display.Importance >= interestThreshold {
		score += displayScore(laptop, profile.Display) * displayWeight
		totalWeight += displayWeight
	}

	return score / totalWeight, Reasons(laptop, profile)
}

// budgetScore grades the price against the budget band: inside is perfect,
// under budget slightly less (it may signal an under-specified machine),
// mildly over budget (up to 1.2x the ceiling) still acceptable.
func budgetScore(price float64, budget entity.BudgetPreference) float64 {
	switch {
	case price >= budget.Min && price <= budget.Max:
		return 1.0
	case price < budget.Min:
		return 0.8
	case price <= budget.Max*1.2:
		return 0.6
	default:
		return 0.3
	}
}

func performanceScore(specs entity.Specifications) float64 {
	score := ramTier(specs.RAM) + processorTier(specs.Processor)

	return score
}

func ramTier(ram int) float64 {
	switch {
	case ram >= 16:
		return 0.6
	case ram >= 8:
		return 0.4
	default:
		return 0.2
	}
}

func processorTier(processor string) float64 {
	switch {
	case strings.Contains(processor, "i7") || strings.Contains(processor, "Ryzen 7"):
		return 0.4
	case strings.Contains(processor, "i5") || strings.Contains(processor, "Ryzen 5"):
		return 0.3
	default:
		return 0.2
	}
}

func portabilityScore(weight, maxWeight float64) float64 {
	switch {
	case weight <= maxWeight:
		return 1.0
	case weight <= maxWeight*1.2:
		return 0.7
	case weight <= maxWeight*1.5:
		return 0.4
	default:
		return 0.1
	}
}

func displayScore(laptop *entity.Laptop, display entity.DisplayPreference) float64 {
	score := 0.5

	if display.Touchscreen && laptop.Features.Touchscreen {
		score += 0.3
	}

	// A zero refresh rate means the spec sheet omitted it, which never
	// satisfies the high-refresh wish.
	if display.HighRefreshRate && laptop.Specifications.RefreshRate >= highRefreshRateHz {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}

	return score
}

// Reasons produces the advisory match explanations. They are evaluated
// against fixed thresholds independently of the score computation and never
// feed back into it.
func Reasons(laptop *entity.Laptop, profile *entity.PreferenceProfile) []string {
	var reasons []string

	if laptop.Price.Current >= profile.Budget.Min && laptop.Price.Current <= profile.Budget.Max {
		reasons = append(reasons, "Fits your budget range")
	}

	if profile.Portability.Importance >= reasonThreshold && laptop.Specifications.Weight <= profile.Portability.MaxWeight {
		reasons = append(reasons, "Lightweight and portable")
	}

	if profile.Performance.Importance >= reasonThreshold && laptop.Specifications.RAM >= 16 {
		reasons = append(reasons, "High performance for demanding tasks")
	}

	if profile.Display.Touchscreen && laptop.Features.Touchscreen {
		reasons = append(reasons, "Includes touchscreen as preferred")
	}

	return reasons
}
