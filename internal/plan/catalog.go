package plan

import "slices"

// Static exercise catalogs. The selector composes plans from copies of these
// slices; the catalogs themselves are never mutated.

//nolint:gochecknoglobals // read-only catalog data.
var cardioExercises = []Exercise{
	{
		Name:               "Running",
		Duration:           "30 minutes",
		Intensity:          "High",
		TargetMuscleGroups: []string{"Legs", "Core"},
		Technique:          "Start with a light jog, gradually increase pace",
	},
	{
		Name:               "HIIT Training",
		Duration:           "20 minutes",
		Intensity:          "High",
		TargetMuscleGroups: []string{"Full Body"},
		Technique:          "30 seconds high intensity, 30 seconds rest",
	},
	{
		Name:               "Jump Rope",
		Duration:           "15 minutes",
		Intensity:          "High",
		TargetMuscleGroups: []string{"Legs", "Shoulders"},
		Technique:          "Keep a steady rhythm",
	},
	{
		Name:               "Cycling",
		Duration:           "45 minutes",
		Intensity:          "Moderate",
		TargetMuscleGroups: []string{"Legs"},
		Technique:          "Keep consistent cadence",
	},
}

//nolint:gochecknoglobals // read-only catalog data.
var strengthExercises = []Exercise{
	{
		Name:               "Bench Press",
		Duration:           "15 minutes",
		Intensity:          "High",
		TargetMuscleGroups: []string{"Chest", "Triceps"},
		Sets:               4,
		Reps:               8,
		RestPeriod:         "90 seconds",
		Technique:          "Keep back **flat** on the bench",
	},
	{
		Name:               "Squats",
		Duration:           "20 minutes",
		Intensity:          "High",
		TargetMuscleGroups: []string{"Legs"},
		Sets:               4,
		Reps:               10,
		RestPeriod:         "90 seconds",
		Technique:          "Keep back straight, drive through the heels",
	},
	{
		Name:               "Deadlifts",
		Duration:           "20 minutes",
		Intensity:          "High",
		TargetMuscleGroups: []string{"Back", "Legs"},
		Sets:               4,
		Reps:               8,
		RestPeriod:         "2 minutes",
		Technique:          "Hinge at the hips, keep the bar close",
	},
	{
		Name:               "Shoulder Press",
		Duration:           "15 minutes",
		Intensity:          "Moderate",
		TargetMuscleGroups: []string{"Shoulders", "Triceps"},
		Sets:               3,
		Reps:               10,
		RestPeriod:         "60 seconds",
		Technique:          "Brace the core, avoid arching the lower back",
	},
}

//nolint:gochecknoglobals // read-only catalog data.
var lowImpactExercises = []Exercise{
	{
		Name:               "Walking",
		Duration:           "30 minutes",
		Intensity:          "Low",
		TargetMuscleGroups: []string{"Legs"},
		Technique:          "Maintain a steady pace",
	},
	{
		Name:               "Swimming",
		Duration:           "30 minutes",
		Intensity:          "Moderate",
		TargetMuscleGroups: []string{"Full Body"},
		Technique:          "Focus on breathing rhythm",
	},
	{
		Name:               "Elliptical Trainer",
		Duration:           "20 minutes",
		Intensity:          "Low",
		TargetMuscleGroups: []string{"Legs", "Core"},
		Technique:          "Keep an upright posture",
	},
	{
		Name:               "Water Aerobics",
		Duration:           "45 minutes",
		Intensity:          "Low",
		TargetMuscleGroups: []string{"Full Body"},
		Technique:          "Use the water resistance, no jerky movements",
	},
}

//nolint:gochecknoglobals // read-only catalog data.
var flexibilityExercises = []Exercise{
	{
		Name:               "Yoga",
		Duration:           "45 minutes",
		Intensity:          "Low",
		TargetMuscleGroups: []string{"Full Body"},
		Technique:          "Focus on breathing and form",
	},
	{
		Name:               "Stretching Routine",
		Duration:           "15 minutes",
		Intensity:          "Low",
		TargetMuscleGroups: []string{"Full Body"},
		Technique:          "Hold each stretch for 30 seconds, never bounce",
	},
	{
		Name:               "Pilates",
		Duration:           "30 minutes",
		Intensity:          "Moderate",
		TargetMuscleGroups: []string{"Core"},
		Technique:          "Slow controlled movements, engage the core",
	},
}

// catalogCopy deep-copies catalog entries so duration scaling never touches
// the static data.
func catalogCopy(catalog []Exercise) []Exercise {
	copied := make([]Exercise, len(catalog))
	for i, e := range catalog {
		copied[i] = e
		copied[i].TargetMuscleGroups = slices.Clone(e.TargetMuscleGroups)
	}
	return copied
}

// Static food catalogs. The diet-preference catalogs are layered:
// Vegetarian ⊂ Normal ⊂ Non-Vegetarian, while Vegan is the shared
// plant-based commons plus its own disjoint set.

//nolint:gochecknoglobals // read-only catalog data.
var commonFoods = []FoodItem{
	{Name: "Oatmeal with Fruits", Portion: "1 bowl", Calories: 350, Macros: Macros{Protein: 12, Carbs: 45, Fats: 9}},
	{Name: "Quinoa Buddha Bowl", Portion: "1 large bowl", Calories: 450, Macros: Macros{Protein: 20, Carbs: 55, Fats: 15}},
	{Name: "Lentil Soup", Portion: "300ml", Calories: 380, Macros: Macros{Protein: 18, Carbs: 45, Fats: 10}},
	{Name: "Mushroom Risotto", Portion: "300g", Calories: 380, Macros: Macros{Protein: 12, Carbs: 55, Fats: 10}},
	{Name: "Avocado Toast", Portion: "2 slices", Calories: 320, Macros: Macros{Protein: 9, Carbs: 35, Fats: 16}},
}

//nolint:gochecknoglobals // read-only catalog data.
var vegetarianFoods = []FoodItem{
	{Name: "Greek Yogurt Parfait", Portion: "300g", Calories: 300, Macros: Macros{Protein: 15, Carbs: 40, Fats: 8}},
	{Name: "Eggs and Toast", Portion: "2 eggs, 2 slices", Calories: 400, Macros: Macros{Protein: 20, Carbs: 35, Fats: 15}},
	{Name: "Smoothie Bowl", Portion: "1 bowl", Calories: 350, Macros: Macros{Protein: 12, Carbs: 50, Fats: 7}},
	{Name: "Paneer Wrap", Portion: "1 wrap", Calories: 420, Macros: Macros{Protein: 22, Carbs: 40, Fats: 18}},
}

//nolint:gochecknoglobals // read-only catalog data.
var meatFoods = []FoodItem{
	{Name: "Grilled Chicken Salad", Portion: "1 large bowl", Calories: 450, Macros: Macros{Protein: 35, Carbs: 25, Fats: 20}},
	{Name: "Turkey Sandwich", Portion: "1 sandwich", Calories: 400, Macros: Macros{Protein: 25, Carbs: 45, Fats: 12}},
	{Name: "Salmon with Rice", Portion: "200g salmon, 1 cup rice", Calories: 550, Macros: Macros{Protein: 40, Carbs: 45, Fats: 22}},
	{Name: "Lean Beef Stir Fry", Portion: "300g", Calories: 500, Macros: Macros{Protein: 35, Carbs: 40, Fats: 20}},
}

//nolint:gochecknoglobals // read-only catalog data.
var extraMeatFoods = []FoodItem{
	{Name: "Grilled Steak with Vegetables", Portion: "250g", Calories: 520, Macros: Macros{Protein: 42, Carbs: 20, Fats: 28}},
	{Name: "Pork Chops with Sweet Potato", Portion: "300g", Calories: 540, Macros: Macros{Protein: 38, Carbs: 35, Fats: 24}},
}

//nolint:gochecknoglobals // read-only catalog data.
var veganFoods = []FoodItem{
	{Name: "Chia Seed Pudding", Portion: "250g", Calories: 300, Macros: Macros{Protein: 12, Carbs: 40, Fats: 15}},
	{Name: "Tofu Scramble", Portion: "200g", Calories: 280, Macros: Macros{Protein: 15, Carbs: 20, Fats: 18}},
	{Name: "Chickpea Curry", Portion: "300g", Calories: 400, Macros: Macros{Protein: 15, Carbs: 50, Fats: 12}},
	{Name: "Tempeh Bowl", Portion: "350g", Calories: 450, Macros: Macros{Protein: 25, Carbs: 45, Fats: 20}},
	{Name: "Lentil Pasta", Portion: "250g", Calories: 420, Macros: Macros{Protein: 20, Carbs: 60, Fats: 8}},
	{Name: "Tofu Stir Fry", Portion: "300g", Calories: 400, Macros: Macros{Protein: 25, Carbs: 40, Fats: 18}},
	{Name: "Black Bean Burrito", Portion: "1 large", Calories: 500, Macros: Macros{Protein: 20, Carbs: 65, Fats: 15}},
}

// foodsForPreference returns the catalog the meal assembler draws from.
// The returned slice is freshly allocated; FoodItem values are plain data and
// safe to share.
func foodsForPreference(pref DietPreference) []FoodItem {
	var catalog []FoodItem
	switch pref {
	case DietVegan:
		catalog = append(catalog, commonFoods...)
		catalog = append(catalog, veganFoods...)
	case DietVegetarian:
		catalog = append(catalog, commonFoods...)
		catalog = append(catalog, vegetarianFoods...)
	case DietNormal:
		catalog = append(catalog, commonFoods...)
		catalog = append(catalog, vegetarianFoods...)
		catalog = append(catalog, meatFoods...)
	case DietNonVegetarian:
		catalog = append(catalog, commonFoods...)
		catalog = append(catalog, vegetarianFoods...)
		catalog = append(catalog, meatFoods...)
		catalog = append(catalog, extraMeatFoods...)
	}
	return catalog
}
