package plan

import "math/rand"

const (
	// mealCalorieSlack is the leftover budget below which a meal is
	// considered full enough.
	mealCalorieSlack = 100
	// maxFoodsPerMeal caps how many foods a single meal may contain.
	maxFoodsPerMeal = 3
)

// fillMeal greedily picks foods from the catalog until the calorie budget is
// approximately met.
//
// Foods are drawn uniformly at random from the catalog entries that still fit
// the remaining budget, which is equivalent to drawing from the whole catalog
// and redrawing on overshoot. The loop stops once the remaining budget drops
// to mealCalorieSlack, the meal holds maxFoodsPerMeal foods, or nothing fits.
// The sum of the returned foods' calories never exceeds target; an empty
// result is valid.
func fillMeal(target int, catalog []FoodItem, rng *rand.Rand) []FoodItem {
	var foods []FoodItem
	remaining := target

	for remaining > mealCalorieSlack && len(foods) < maxFoodsPerMeal {
		fitting := fittingFoods(catalog, remaining)
		if len(fitting) == 0 {
			break
		}
		chosen := fitting[rng.Intn(len(fitting))]
		foods = append(foods, chosen)
		remaining -= chosen.Calories
	}

	return foods
}

// fittingFoods returns the catalog entries whose calories fit the budget.
func fittingFoods(catalog []FoodItem, budget int) []FoodItem {
	var fitting []FoodItem
	for _, food := range catalog {
		if food.Calories <= budget {
			fitting = append(fitting, food)
		}
	}
	return fitting
}
