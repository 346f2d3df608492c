package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ohautala/fitplan/internal/errors"
	"github.com/ohautala/fitplan/internal/plan"
)

type apiError struct {
	Message string           `json:"message"`
	Errors  []plan.FieldError `json:"errors,omitempty"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

// parseAPIIDParam is the JSON API twin of parseIDParam. Non-numeric
// identities report not found in the response body instead of an HTML page.
func (app *application) parseAPIIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		app.writeJSON(w, r, http.StatusNotFound, apiError{Message: "User not found"})
		return 0, false
	}
	return id, true
}

func (app *application) userCreatePOST(w http.ResponseWriter, r *http.Request) {
	var profile plan.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		app.writeJSON(w, r, http.StatusBadRequest, apiError{Message: "Invalid request body"})
		return
	}

	user, err := app.planService.CreateWithPlans(r.Context(), profile)
	if err != nil {
		var validationErr *plan.ValidationError
		if errors.As(err, &validationErr) {
			app.writeJSON(w, r, http.StatusBadRequest, apiError{
				Message: "Invalid user data",
				Errors:  validationErr.Fields,
			})
			return
		}
		app.writeJSON(w, r, http.StatusInternalServerError, apiError{Message: "Failed to create user"})
		app.logger.LogAttrs(r.Context(), slog.LevelError, "create user", errors.SlogError(err))
		return
	}

	app.writeJSON(w, r, http.StatusCreated, user)
}

func (app *application) userGET(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseAPIIDParam(w, r)
	if !ok {
		return
	}

	user, err := app.planService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.writeJSON(w, r, http.StatusNotFound, apiError{Message: "User not found"})
			return
		}
		app.writeJSON(w, r, http.StatusInternalServerError, apiError{Message: "Failed to get user"})
		app.logger.LogAttrs(r.Context(), slog.LevelError, "get user", errors.SlogError(err))
		return
	}

	app.writeJSON(w, r, http.StatusOK, user)
}

type attachPlansRequest struct {
	DietPlan     *plan.DietPlan     `json:"dietPlan"`
	ExercisePlan *plan.ExercisePlan `json:"exercisePlan"`
}

func (app *application) userPlansPUT(w http.ResponseWriter, r *http.Request) {
	id, ok := app.parseAPIIDParam(w, r)
	if !ok {
		return
	}

	var req attachPlansRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.writeJSON(w, r, http.StatusBadRequest, apiError{Message: "Invalid request body"})
		return
	}
	if req.DietPlan == nil || req.ExercisePlan == nil {
		app.writeJSON(w, r, http.StatusBadRequest, apiError{Message: "Both dietPlan and exercisePlan are required"})
		return
	}

	user, err := app.planService.AttachPlans(r.Context(), id, *req.DietPlan, *req.ExercisePlan)
	if err != nil {
		if errors.Is(err, plan.ErrNotFound) {
			app.writeJSON(w, r, http.StatusNotFound, apiError{Message: "User not found"})
			return
		}
		app.writeJSON(w, r, http.StatusInternalServerError, apiError{Message: "Failed to update user plans"})
		app.logger.LogAttrs(r.Context(), slog.LevelError, "update user plans", errors.SlogError(err))
		return
	}

	app.writeJSON(w, r, http.StatusOK, user)
}
