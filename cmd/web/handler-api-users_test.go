package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ohautala/fitplan/internal/e2etest"
	"github.com/ohautala/fitplan/internal/plan"
	"github.com/ohautala/fitplan/internal/testhelpers"
)

func validProfilePayload() map[string]any {
	return map[string]any{
		"age":            30,
		"weight":         70,
		"weightUnit":     "kg",
		"height":         175,
		"gender":         "male",
		"diseases":       []string{},
		"handicap":       "None",
		"profession":     "Student",
		"fitnessGoal":    "Weight Loss",
		"exerciseTime":   "30-60 minutes",
		"dietPreference": "Normal",
	}
}

func Test_application_apiUsers(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	var created plan.User
	status, err := client.DoJSON(ctx, http.MethodPost, "/api/users", validProfilePayload(), &created)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	t.Run("Create returns the record with generated plans", func(t *testing.T) {
		if status != http.StatusCreated {
			t.Errorf("Expected status 201, got %d", status)
		}
		if created.ID == 0 {
			t.Error("Expected a non-zero identity")
		}
		if created.DietPlan == nil {
			t.Fatal("Expected a diet plan on the created record")
		}
		if len(created.DietPlan.Meals) != 3 {
			t.Errorf("Expected 3 meals, got %d", len(created.DietPlan.Meals))
		}
		if created.ExercisePlan == nil {
			t.Fatal("Expected an exercise plan on the created record")
		}
		if len(created.ExercisePlan.Exercises) == 0 {
			t.Error("Expected at least one exercise")
		}
	})

	t.Run("Get round-trips the record", func(t *testing.T) {
		var fetched plan.User
		status, err = client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), nil, &fetched)
		if err != nil {
			t.Fatalf("Failed to get user: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("Expected status 200, got %d", status)
		}
		if fetched.ID != created.ID {
			t.Errorf("Expected identity %d, got %d", created.ID, fetched.ID)
		}
		if fetched.DietPlan == nil || fetched.DietPlan.TotalCalories != created.DietPlan.TotalCalories {
			t.Error("Expected the stored diet plan to match the created one")
		}
	})

	t.Run("Get unknown identity returns 404", func(t *testing.T) {
		var apiErr apiError
		status, err = client.DoJSON(ctx, http.MethodGet, "/api/users/4711", nil, &apiErr)
		if err != nil {
			t.Fatalf("Failed to get unknown user: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", status)
		}
		if apiErr.Message != "User not found" {
			t.Errorf("Expected 'User not found' message, got %q", apiErr.Message)
		}
	})

	t.Run("Invalid profile returns field errors", func(t *testing.T) {
		payload := validProfilePayload()
		payload["age"] = 7
		payload["fitnessGoal"] = "Levitation"

		var apiErr apiError
		status, err = client.DoJSON(ctx, http.MethodPost, "/api/users", payload, &apiErr)
		if err != nil {
			t.Fatalf("Failed to post invalid profile: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", status)
		}
		if len(apiErr.Errors) != 2 {
			t.Errorf("Expected 2 field errors, got %d: %v", len(apiErr.Errors), apiErr.Errors)
		}
	})

	t.Run("Attach plans replaces both plans", func(t *testing.T) {
		diet := plan.DietPlan{
			Meals: []plan.Meal{{Name: "Breakfast", Time: "8:00 AM", Foods: []plan.FoodItem{
				{Name: "Oatmeal", Portion: "1 cup", Calories: 300, Macros: plan.Macros{Protein: 10, Carbs: 50, Fats: 5}},
			}}},
			TotalCalories: 300,
			MacroSplit:    plan.Macros{Protein: 10, Carbs: 50, Fats: 5},
		}
		exercise := plan.ExercisePlan{
			Exercises:      []plan.Exercise{{Name: "Walking", Duration: "30 minutes", Intensity: "Low", TargetMuscleGroups: []string{"Legs"}}},
			WeeklySchedule: map[string][]string{"Monday": {"Walking"}},
			RecommendedProgression: plan.Progression{
				Weeks:           8,
				ProgressionType: "Intensity",
				NextLevel:       []string{"Advanced Walking"},
			},
		}

		var updated plan.User
		status, err = client.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d/plans", created.ID),
			attachPlansRequest{DietPlan: &diet, ExercisePlan: &exercise}, &updated)
		if err != nil {
			t.Fatalf("Failed to attach plans: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("Expected status 200, got %d", status)
		}
		if updated.DietPlan == nil || updated.DietPlan.TotalCalories != 300 {
			t.Error("Expected the attached diet plan to be stored")
		}
		if updated.ExercisePlan == nil || len(updated.ExercisePlan.Exercises) != 1 {
			t.Error("Expected the attached exercise plan to be stored")
		}
	})

	t.Run("Attach plans requires both halves", func(t *testing.T) {
		var apiErr apiError
		status, err = client.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d/plans", created.ID),
			map[string]any{"dietPlan": nil, "exercisePlan": nil}, &apiErr)
		if err != nil {
			t.Fatalf("Failed to put incomplete plans: %v", err)
		}
		if status != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", status)
		}
	})

	t.Run("Attach plans to unknown identity returns 404", func(t *testing.T) {
		diet := plan.DietPlan{}
		exercise := plan.ExercisePlan{}
		var apiErr apiError
		status, err = client.DoJSON(ctx, http.MethodPut, "/api/users/4711/plans",
			attachPlansRequest{DietPlan: &diet, ExercisePlan: &exercise}, &apiErr)
		if err != nil {
			t.Fatalf("Failed to put plans for unknown user: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", status)
		}
	})
}
