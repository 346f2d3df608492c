package plan

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
)

// Medical conditions that restrict the selection to gentle exercise.
//
//nolint:gochecknoglobals // read-only rule data.
var restrictingDiseases = []Disease{DiseaseHeartDisease, DiseaseArthritis, DiseaseBackPain}

// selectExercises maps a profile to an ordered exercise list.
//
// The rules are evaluated in precedence order and the first match wins:
// a physical limitation overrides medical conditions, which override the
// fitness goal. The result is deterministic for a given profile.
func selectExercises(p Profile) []Exercise {
	var selected []Exercise
	switch {
	case p.Handicap != HandicapNone:
		selected = catalogCopy(lowImpactExercises)
		if p.Handicap == HandicapVisualImpairment {
			selected = slices.DeleteFunc(selected, func(e Exercise) bool {
				return e.Name == "Swimming"
			})
		}
	case p.HasDisease(restrictingDiseases...):
		selected = append(catalogCopy(lowImpactExercises), catalogCopy(flexibilityExercises)...)
	default:
		selected = exercisesForGoal(p.FitnessGoal)
	}

	multiplier := timeMultiplier(p.ExerciseTime)
	for i := range selected {
		selected[i].Duration = scaleDuration(selected[i].Duration, multiplier)
	}
	return selected
}

// exercisesForGoal returns the catalog composition for a fitness goal.
func exercisesForGoal(goal FitnessGoal) []Exercise {
	switch goal {
	case GoalWeightLoss:
		return append(catalogCopy(cardioExercises), catalogCopy(strengthExercises[:2])...)
	case GoalWeightGain, GoalMuscleBuilding:
		return append(catalogCopy(strengthExercises), catalogCopy(cardioExercises[:1])...)
	case GoalEndurance:
		return append(catalogCopy(cardioExercises), catalogCopy(lowImpactExercises[:1])...)
	case GoalFlexibility:
		return append(catalogCopy(flexibilityExercises), catalogCopy(lowImpactExercises)...)
	case GoalStrengthTraining:
		return append(catalogCopy(strengthExercises), catalogCopy(cardioExercises[:1])...)
	case GoalGeneralFitness, GoalBodyRecomposition:
		return append(catalogCopy(cardioExercises), catalogCopy(strengthExercises[:2])...)
	default:
		return append(catalogCopy(cardioExercises), catalogCopy(strengthExercises[:2])...)
	}
}

// timeMultiplier returns the duration multiplier for an exercise-time bucket.
func timeMultiplier(t ExerciseTime) float64 {
	switch t {
	case ExerciseTime15To30:
		return 0.5
	case ExerciseTime30To60:
		return 1
	case ExerciseTime1To2H:
		return 1.5
	case ExerciseTimeOver2H:
		return 2
	default:
		return 1
	}
}

var minuteDuration = regexp.MustCompile(`^(\d+) minutes?$`)

// scaleDuration multiplies a minute-denominated duration and re-serializes it
// rounded to the nearest whole minute. Other duration strings pass through
// unchanged.
func scaleDuration(duration string, multiplier float64) string {
	match := minuteDuration.FindStringSubmatch(duration)
	if match == nil {
		return duration
	}
	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		return duration
	}
	scaled := int(math.Round(float64(minutes) * multiplier))
	return fmt.Sprintf("%d minutes", scaled)
}
