package plan

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Calorie shares per meal. Breakfast gets 30% of the daily target, lunch and
// dinner 35% each.
//
//nolint:gochecknoglobals // read-only rule data.
var mealSlots = []struct {
	name  string
	time  string
	share float64
}{
	{name: "Breakfast", time: "8:00 AM", share: 0.30},
	{name: "Lunch", time: "1:00 PM", share: 0.35},
	{name: "Dinner", time: "7:00 PM", share: 0.35},
}

// Weekdays that receive scheduled exercises, two per day.
//
//nolint:gochecknoglobals // read-only rule data.
var scheduleDays = []string{"Monday", "Wednesday", "Friday", "Saturday"}

// ScheduleDays returns the training days in calendar order. WeeklySchedule is
// a map, so renderers need this to list days deterministically.
func ScheduleDays() []string {
	return slices.Clone(scheduleDays)
}

const (
	exercisesPerScheduledDay = 2
	progressionWeeks         = 8
)

// generatePlans produces both halves of a plan for a profile.
//
// The halves are independent, so they are built concurrently. Either failure
// fails the whole call; no partial plan is ever returned.
func generatePlans(ctx context.Context, p Profile, rng *rand.Rand) (DietPlan, ExercisePlan, error) {
	var (
		diet     DietPlan
		exercise ExercisePlan
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		diet, err = buildDietPlan(p, rng)
		return err
	})
	g.Go(func() error {
		var err error
		exercise, err = buildExercisePlan(p)
		return err
	})
	if err := g.Wait(); err != nil {
		return DietPlan{}, ExercisePlan{}, fmt.Errorf("generate plans: %w", err)
	}

	return diet, exercise, nil
}

// buildDietPlan splits the calorie target across the meal slots and fills
// each meal from the preference-filtered catalog.
func buildDietPlan(p Profile, rng *rand.Rand) (DietPlan, error) {
	catalog := foodsForPreference(p.DietPreference)
	if len(catalog) == 0 {
		return DietPlan{}, fmt.Errorf("no food catalog for diet preference %q", p.DietPreference)
	}

	target := TargetCalories(p)

	diet := DietPlan{
		Meals:         make([]Meal, 0, len(mealSlots)),
		TotalCalories: 0,
		MacroSplit:    Macros{Protein: 0, Carbs: 0, Fats: 0},
	}
	for _, slot := range mealSlots {
		budget := int(slot.share * float64(target))
		foods := fillMeal(budget, catalog, rng)

		for _, food := range foods {
			diet.TotalCalories += food.Calories
			diet.MacroSplit = diet.MacroSplit.add(food.Macros)
		}

		diet.Meals = append(diet.Meals, Meal{
			Name:  slot.name,
			Time:  slot.time,
			Foods: foods,
		})
	}

	return diet, nil
}

// buildExercisePlan selects exercises for the profile and derives the weekly
// schedule and progression hints from them.
func buildExercisePlan(p Profile) (ExercisePlan, error) {
	exercises := selectExercises(p)
	if len(exercises) == 0 {
		return ExercisePlan{}, fmt.Errorf("no exercises selected for goal %q", p.FitnessGoal)
	}

	names := make([]string, len(exercises))
	nextLevel := make([]string, len(exercises))
	for i, e := range exercises {
		names[i] = e.Name
		nextLevel[i] = "Advanced " + e.Name
	}

	// Round-robin slice windows over the exercise names, two per training day.
	schedule := make(map[string][]string, len(scheduleDays))
	for i, day := range scheduleDays {
		start := (i * exercisesPerScheduledDay) % len(names)
		end := min(start+exercisesPerScheduledDay, len(names))
		schedule[day] = slices.Clone(names[start:end])
	}

	return ExercisePlan{
		Exercises:      exercises,
		WeeklySchedule: schedule,
		RecommendedProgression: Progression{
			Weeks:           progressionWeeks,
			ProgressionType: progressionType(p.FitnessGoal),
			NextLevel:       nextLevel,
		},
	}, nil
}

// progressionType names how the plan should advance after its horizon.
func progressionType(goal FitnessGoal) string {
	if goal == GoalWeightLoss {
		return "Intensity"
	}
	return "Weight"
}
