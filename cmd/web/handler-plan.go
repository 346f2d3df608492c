package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ohautala/fitplan/internal/errors"
	"github.com/ohautala/fitplan/internal/pdf"
	"github.com/ohautala/fitplan/internal/plan"
)

const percentMultiplier = 100

type planTemplateData struct {
	BaseTemplateData
	User plan.User
	// MealBars drives the CSS bar chart of calories per meal.
	MealBars []mealBar
	// ScheduleRows lists training days in calendar order, since ranging over
	// the WeeklySchedule map would render them alphabetically.
	ScheduleRows []scheduleRow
}

type scheduleRow struct {
	Day   string
	Names []string
}

// mealBar is a single bar in the calories-per-meal chart.
type mealBar struct {
	Name     string
	Calories int
	// Percent is the bar width relative to the largest meal (0-100).
	Percent int
}

func toMealBars(diet *plan.DietPlan) []mealBar {
	if diet == nil {
		return nil
	}

	maxCalories := 0
	calories := make([]int, len(diet.Meals))
	for i, meal := range diet.Meals {
		for _, food := range meal.Foods {
			calories[i] += food.Calories
		}
		if calories[i] > maxCalories {
			maxCalories = calories[i]
		}
	}

	bars := make([]mealBar, len(diet.Meals))
	for i, meal := range diet.Meals {
		percent := 0
		if maxCalories > 0 {
			percent = (calories[i] * percentMultiplier) / maxCalories
		}
		bars[i] = mealBar{
			Name:     meal.Name,
			Calories: calories[i],
			Percent:  percent,
		}
	}
	return bars
}

func toScheduleRows(exercise *plan.ExercisePlan) []scheduleRow {
	if exercise == nil {
		return nil
	}

	var rows []scheduleRow
	for _, day := range plan.ScheduleDays() {
		names, ok := exercise.WeeklySchedule[day]
		if !ok {
			continue
		}
		rows = append(rows, scheduleRow{Day: day, Names: names})
	}
	return rows
}

func (app *application) planGET(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseIDParam(w, r)
	if !ok {
		return
	}

	user, err := app.planService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	data := planTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		User:             user,
		MealBars:         toMealBars(user.DietPlan),
		ScheduleRows:     toScheduleRows(user.ExercisePlan),
	}
	app.render(w, r, http.StatusOK, "plan", data)
}

func (app *application) planRegeneratePOST(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseIDParam(w, r)
	if !ok {
		return
	}

	if _, err := app.planService.Regenerate(r.Context(), id); err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	redirect(w, r, fmt.Sprintf("/plans/%d", id))
}

func (app *application) planExportPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseIDParam(w, r)
	if !ok {
		return
	}

	user, err := app.planService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"fitness-plan-%d.pdf\"", id))
	if err = pdf.Export(w, user); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "pdf export failed", errors.SlogError(err))
	}
}
