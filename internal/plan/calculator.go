package plan

import "math"

const kgPerLb = 0.45359237

// TargetCalories computes the daily calorie target for a profile.
//
// The weight is normalized to kilograms and fed into the Harris-Benedict
// equation. The "other" gender reuses the female coefficients; the formula
// only distinguishes male from not-male. No goal-based multiplier is applied;
// the target equals the rounded BMR.
func TargetCalories(p Profile) int {
	weightKg := p.Weight
	if p.WeightUnit == WeightUnitLbs {
		weightKg *= kgPerLb
	}

	var bmr float64
	if p.Gender == GenderMale {
		bmr = 88.362 + 13.397*weightKg + 4.799*float64(p.Height) - 5.677*float64(p.Age)
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*float64(p.Height) - 4.330*float64(p.Age)
	}

	return int(math.Round(bmr))
}
