package main

import (
	"net/http"

	"github.com/ohautala/fitplan/internal/plan"
)

// sessionKeyPlanID remembers the most recently created record so that a
// returning visitor can jump straight back to their plan.
const sessionKeyPlanID = "planID"

type homeTemplateData struct {
	BaseTemplateData
	WeightUnits     []plan.WeightUnit
	Genders         []plan.Gender
	Diseases        []plan.Disease
	Handicaps       []plan.Handicap
	Professions     []plan.Profession
	FitnessGoals    []plan.FitnessGoal
	ExerciseTimes   []plan.ExerciseTime
	DietPreferences []plan.DietPreference
	// FieldErrors maps profile field names to validation messages when the
	// submitted form was rejected.
	FieldErrors map[string]string
	// Form holds the previously submitted values for redisplay.
	Form profileForm
	// PlanID points at the visitor's existing plan, zero when there is none.
	PlanID int
}

func (app *application) newHomeTemplateData(r *http.Request) homeTemplateData {
	return homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		WeightUnits:      plan.WeightUnits(),
		Genders:          plan.Genders(),
		Diseases:         plan.Diseases(),
		Handicaps:        plan.Handicaps(),
		Professions:      plan.Professions(),
		FitnessGoals:     plan.FitnessGoals(),
		ExerciseTimes:    plan.ExerciseTimes(),
		DietPreferences:  plan.DietPreferences(),
		FieldErrors:      nil,
		Form:             profileForm{},
		PlanID:           app.sessionManager.GetInt(r.Context(), sessionKeyPlanID),
	}
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "home", app.newHomeTemplateData(r))
}
