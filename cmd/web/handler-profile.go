package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ohautala/fitplan/internal/errors"
	"github.com/ohautala/fitplan/internal/plan"
)

// profileForm carries the raw form values so that a rejected submission can
// be redisplayed as the visitor typed it.
type profileForm struct {
	Age            string
	Weight         string
	WeightUnit     string
	Height         string
	Gender         string
	Diseases       []string
	Handicap       string
	Profession     string
	FitnessGoal    string
	ExerciseTime   string
	DietPreference string
}

func parseProfileForm(r *http.Request) (profileForm, plan.Profile) {
	form := profileForm{
		Age:            r.PostFormValue("age"),
		Weight:         r.PostFormValue("weight"),
		WeightUnit:     r.PostFormValue("weightUnit"),
		Height:         r.PostFormValue("height"),
		Gender:         r.PostFormValue("gender"),
		Diseases:       r.PostForm["diseases"],
		Handicap:       r.PostFormValue("handicap"),
		Profession:     r.PostFormValue("profession"),
		FitnessGoal:    r.PostFormValue("fitnessGoal"),
		ExerciseTime:   r.PostFormValue("exerciseTime"),
		DietPreference: r.PostFormValue("dietPreference"),
	}

	// Unparseable numbers become zero values and fall out of the valid
	// ranges, so validation reports them on the right field.
	age, _ := strconv.Atoi(form.Age)
	weight, _ := strconv.ParseFloat(form.Weight, 64)
	height, _ := strconv.Atoi(form.Height)

	diseases := make([]plan.Disease, 0, len(form.Diseases))
	for _, d := range form.Diseases {
		diseases = append(diseases, plan.Disease(d))
	}

	return form, plan.Profile{
		Age:            age,
		Weight:         weight,
		WeightUnit:     plan.WeightUnit(form.WeightUnit),
		Height:         height,
		Gender:         plan.Gender(form.Gender),
		Diseases:       diseases,
		Handicap:       plan.Handicap(form.Handicap),
		Profession:     plan.Profession(form.Profession),
		FitnessGoal:    plan.FitnessGoal(form.FitnessGoal),
		ExerciseTime:   plan.ExerciseTime(form.ExerciseTime),
		DietPreference: plan.DietPreference(form.DietPreference),
	}
}

func (app *application) profilePOST(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form, profile := parseProfileForm(r)

	user, err := app.planService.CreateWithPlans(r.Context(), profile)
	if err != nil {
		var validationErr *plan.ValidationError
		if errors.As(err, &validationErr) {
			data := app.newHomeTemplateData(r)
			data.Form = form
			data.FieldErrors = make(map[string]string, len(validationErr.Fields))
			for _, field := range validationErr.Fields {
				data.FieldErrors[field.Field] = field.Message
			}
			app.render(w, r, http.StatusUnprocessableEntity, "home", data)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), sessionKeyPlanID, user.ID)
	redirect(w, r, fmt.Sprintf("/plans/%d", user.ID))
}
