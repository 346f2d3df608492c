package plan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ohautala/fitplan/internal/errors"
	"github.com/ohautala/fitplan/internal/sqlite"
)

// ErrNotFound is returned when no record exists for the requested identity.
var ErrNotFound = errors.NewSentinel("record not found")

// repository persists user records in SQLite. Identities are assigned by the
// database and increase monotonically.
type repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newRepository(db *sqlite.Database, logger *slog.Logger) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new record for the profile with no plans attached.
func (r *repository) Create(ctx context.Context, p Profile) (User, error) {
	diseases, err := json.Marshal(p.Diseases)
	if err != nil {
		return User{}, fmt.Errorf("marshal diseases: %w", err)
	}

	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO users (
			age, weight, weight_unit, height, gender, diseases, handicap,
			profession, fitness_goal, exercise_time, diet_preference
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Age, p.Weight, string(p.WeightUnit), p.Height, string(p.Gender),
		string(diseases), string(p.Handicap), string(p.Profession),
		string(p.FitnessGoal), string(p.ExerciseTime), string(p.DietPreference))
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("last insert id: %w", err)
	}

	return User{
		ID:           int(id),
		Profile:      p,
		DietPlan:     nil,
		ExercisePlan: nil,
	}, nil
}

// Get retrieves a record by identity. Returns ErrNotFound when absent.
func (r *repository) Get(ctx context.Context, id int) (User, error) {
	var (
		user         User
		diseases     string
		dietPlan     sql.NullString
		exercisePlan sql.NullString
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, age, weight, weight_unit, height, gender, diseases, handicap,
		       profession, fitness_goal, exercise_time, diet_preference,
		       diet_plan, exercise_plan
		FROM users
		WHERE id = ?`, id).Scan(
		&user.ID, &user.Age, &user.Weight, &user.WeightUnit, &user.Height,
		&user.Gender, &diseases, &user.Handicap, &user.Profession,
		&user.FitnessGoal, &user.ExerciseTime, &user.DietPreference,
		&dietPlan, &exercisePlan)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return User{}, fmt.Errorf("query user %d: %w", id, err)
	}

	if err = json.Unmarshal([]byte(diseases), &user.Diseases); err != nil {
		return User{}, fmt.Errorf("unmarshal diseases: %w", err)
	}
	if user.DietPlan, err = unmarshalPlanColumn[DietPlan](dietPlan); err != nil {
		return User{}, fmt.Errorf("unmarshal diet plan: %w", err)
	}
	if user.ExercisePlan, err = unmarshalPlanColumn[ExercisePlan](exercisePlan); err != nil {
		return User{}, fmt.Errorf("unmarshal exercise plan: %w", err)
	}

	return user, nil
}

// AttachPlans stores both plans on an existing record in a single statement.
// The pair is all-or-nothing; a record never holds only one half.
func (r *repository) AttachPlans(ctx context.Context, id int, diet DietPlan, exercise ExercisePlan) (User, error) {
	dietJSON, err := json.Marshal(diet)
	if err != nil {
		return User{}, fmt.Errorf("marshal diet plan: %w", err)
	}
	exerciseJSON, err := json.Marshal(exercise)
	if err != nil {
		return User{}, fmt.Errorf("marshal exercise plan: %w", err)
	}

	result, err := r.db.ReadWrite.ExecContext(ctx, `
		UPDATE users
		SET diet_plan = ?, exercise_plan = ?
		WHERE id = ?`,
		string(dietJSON), string(exerciseJSON), id)
	if err != nil {
		return User{}, fmt.Errorf("update user plans: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return User{}, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return User{}, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}

	return r.Get(ctx, id)
}

// unmarshalPlanColumn decodes a nullable JSON plan column into a pointer,
// nil when the column is NULL.
func unmarshalPlanColumn[T any](column sql.NullString) (*T, error) {
	if !column.Valid {
		return nil, nil //nolint:nilnil // nil pointer means no plan attached yet.
	}
	var value T
	if err := json.Unmarshal([]byte(column.String), &value); err != nil {
		return nil, fmt.Errorf("unmarshal column: %w", err)
	}
	return &value, nil
}
