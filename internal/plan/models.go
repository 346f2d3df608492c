// Package plan implements profile intake and the diet and exercise plan
// generation engine together with its SQLite-backed store.
package plan

import (
	"fmt"
	"strings"
)

// Gender selects the BMR formula branch.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists every valid gender label in form display order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// WeightUnit is the unit the profile weight was entered in.
type WeightUnit string

const (
	WeightUnitKg  WeightUnit = "kg"
	WeightUnitLbs WeightUnit = "lbs"
)

// WeightUnits lists every valid weight unit in form display order.
func WeightUnits() []WeightUnit {
	return []WeightUnit{WeightUnitKg, WeightUnitLbs}
}

func (u WeightUnit) Valid() bool {
	switch u {
	case WeightUnitKg, WeightUnitLbs:
		return true
	}
	return false
}

// Disease is a medical condition from the intake form's closed list.
type Disease string

const (
	DiseaseNone         Disease = "None"
	DiseaseDiabetes     Disease = "Diabetes"
	DiseaseHeartDisease Disease = "Heart Disease"
	DiseaseHypertension Disease = "Hypertension"
	DiseaseArthritis    Disease = "Arthritis"
	DiseaseAsthma       Disease = "Asthma"
	DiseaseBackPain     Disease = "Back Pain"
	DiseaseOther        Disease = "Other"
)

// Diseases lists every valid disease label in form display order.
func Diseases() []Disease {
	return []Disease{
		DiseaseNone, DiseaseDiabetes, DiseaseHeartDisease, DiseaseHypertension,
		DiseaseArthritis, DiseaseAsthma, DiseaseBackPain, DiseaseOther,
	}
}

func (d Disease) Valid() bool {
	for _, known := range Diseases() {
		if d == known {
			return true
		}
	}
	return false
}

// Handicap is the physical-limitation category of a profile.
type Handicap string

const (
	HandicapNone                Handicap = "None"
	HandicapMobilityImpairment  Handicap = "Mobility Impairment"
	HandicapVisualImpairment    Handicap = "Visual Impairment"
	HandicapHearingImpairment   Handicap = "Hearing Impairment"
	HandicapCognitiveImpairment Handicap = "Cognitive Impairment"
	HandicapOther               Handicap = "Other"
)

// Handicaps lists every valid handicap label in form display order.
func Handicaps() []Handicap {
	return []Handicap{
		HandicapNone, HandicapMobilityImpairment, HandicapVisualImpairment,
		HandicapHearingImpairment, HandicapCognitiveImpairment, HandicapOther,
	}
}

func (h Handicap) Valid() bool {
	for _, known := range Handicaps() {
		if h == known {
			return true
		}
	}
	return false
}

// Profession describes what the person does for a living. It is collected on
// the form and stored with the record but does not influence plan generation.
type Profession string

const (
	ProfessionStudent            Profession = "Student"
	ProfessionOfficeWorker       Profession = "Office Worker"
	ProfessionTeacher            Profession = "Teacher"
	ProfessionHealthcareWorker   Profession = "Healthcare Worker"
	ProfessionConstructionWorker Profession = "Construction Worker"
	ProfessionITProfessional     Profession = "IT Professional"
	ProfessionSales              Profession = "Sales"
	ProfessionServiceIndustry    Profession = "Service Industry"
	ProfessionRetired            Profession = "Retired"
	ProfessionHomemaker          Profession = "Homemaker"
	ProfessionOther              Profession = "Other"
)

// Professions lists every valid profession label in form display order.
func Professions() []Profession {
	return []Profession{
		ProfessionStudent, ProfessionOfficeWorker, ProfessionTeacher,
		ProfessionHealthcareWorker, ProfessionConstructionWorker,
		ProfessionITProfessional, ProfessionSales, ProfessionServiceIndustry,
		ProfessionRetired, ProfessionHomemaker, ProfessionOther,
	}
}

func (p Profession) Valid() bool {
	for _, known := range Professions() {
		if p == known {
			return true
		}
	}
	return false
}

// FitnessGoal drives exercise selection.
type FitnessGoal string

const (
	GoalWeightLoss        FitnessGoal = "Weight Loss"
	GoalWeightGain        FitnessGoal = "Weight Gain"
	GoalMuscleBuilding    FitnessGoal = "Muscle Building"
	GoalEndurance         FitnessGoal = "Endurance"
	GoalGeneralFitness    FitnessGoal = "General Fitness"
	GoalFlexibility       FitnessGoal = "Flexibility"
	GoalStrengthTraining  FitnessGoal = "Strength Training"
	GoalBodyRecomposition FitnessGoal = "Body Recomposition"
)

// FitnessGoals lists every valid goal label in form display order.
func FitnessGoals() []FitnessGoal {
	return []FitnessGoal{
		GoalWeightLoss, GoalWeightGain, GoalMuscleBuilding, GoalEndurance,
		GoalGeneralFitness, GoalFlexibility, GoalStrengthTraining,
		GoalBodyRecomposition,
	}
}

func (g FitnessGoal) Valid() bool {
	for _, known := range FitnessGoals() {
		if g == known {
			return true
		}
	}
	return false
}

// ExerciseTime is the daily time bucket the person can spend exercising.
type ExerciseTime string

const (
	ExerciseTime15To30 ExerciseTime = "15-30 minutes"
	ExerciseTime30To60 ExerciseTime = "30-60 minutes"
	ExerciseTime1To2H  ExerciseTime = "1-2 hours"
	ExerciseTimeOver2H ExerciseTime = "More than 2 hours"
)

// ExerciseTimes lists every valid time bucket in form display order.
func ExerciseTimes() []ExerciseTime {
	return []ExerciseTime{
		ExerciseTime15To30, ExerciseTime30To60, ExerciseTime1To2H, ExerciseTimeOver2H,
	}
}

func (t ExerciseTime) Valid() bool {
	for _, known := range ExerciseTimes() {
		if t == known {
			return true
		}
	}
	return false
}

// DietPreference selects the food catalog used for meal assembly.
type DietPreference string

const (
	DietNormal        DietPreference = "Normal"
	DietVegetarian    DietPreference = "Vegetarian"
	DietVegan         DietPreference = "Vegan"
	DietNonVegetarian DietPreference = "Non-Vegetarian"
)

// DietPreferences lists every valid diet preference in form display order.
func DietPreferences() []DietPreference {
	return []DietPreference{DietNormal, DietVegetarian, DietVegan, DietNonVegetarian}
}

func (d DietPreference) Valid() bool {
	for _, known := range DietPreferences() {
		if d == known {
			return true
		}
	}
	return false
}

// Profile is the validated input describing a person. It is immutable from
// the engine's point of view.
type Profile struct {
	Age            int            `json:"age"`
	Weight         float64        `json:"weight"`
	WeightUnit     WeightUnit     `json:"weightUnit"`
	Height         int            `json:"height"`
	Gender         Gender         `json:"gender"`
	Diseases       []Disease      `json:"diseases"`
	Handicap       Handicap       `json:"handicap"`
	Profession     Profession     `json:"profession"`
	FitnessGoal    FitnessGoal    `json:"fitnessGoal"`
	ExerciseTime   ExerciseTime   `json:"exerciseTime"`
	DietPreference DietPreference `json:"dietPreference"`
}

// Validation bounds for the numeric profile fields.
const (
	MinAge    = 13
	MaxAge    = 100
	MinWeight = 20
	MaxWeight = 500
	MinHeight = 100
	MaxHeight = 250
)

// FieldError describes a single invalid profile field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every profile field that failed validation.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

// Validate checks every field against its closed set or documented range.
// It returns a *ValidationError listing all violations, or nil.
func (p Profile) Validate() error {
	var fields []FieldError
	invalid := func(field, format string, args ...any) {
		fields = append(fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if p.Age < MinAge || p.Age > MaxAge {
		invalid("age", "must be between %d and %d years", MinAge, MaxAge)
	}
	if p.Weight < MinWeight || p.Weight > MaxWeight {
		invalid("weight", "must be between %d and %d", MinWeight, MaxWeight)
	}
	if !p.WeightUnit.Valid() {
		invalid("weightUnit", "must be kg or lbs")
	}
	if p.Height < MinHeight || p.Height > MaxHeight {
		invalid("height", "must be between %dcm and %dcm", MinHeight, MaxHeight)
	}
	if !p.Gender.Valid() {
		invalid("gender", "must be male, female, or other")
	}
	for _, d := range p.Diseases {
		if !d.Valid() {
			invalid("diseases", "unknown condition %q", string(d))
		}
	}
	if !p.Handicap.Valid() {
		invalid("handicap", "unknown physical limitation %q", string(p.Handicap))
	}
	if !p.Profession.Valid() {
		invalid("profession", "unknown profession %q", string(p.Profession))
	}
	if !p.FitnessGoal.Valid() {
		invalid("fitnessGoal", "unknown fitness goal %q", string(p.FitnessGoal))
	}
	if !p.ExerciseTime.Valid() {
		invalid("exerciseTime", "unknown exercise time range %q", string(p.ExerciseTime))
	}
	if !p.DietPreference.Valid() {
		invalid("dietPreference", "unknown diet preference %q", string(p.DietPreference))
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// HasDisease reports whether the profile lists any of the given conditions.
func (p Profile) HasDisease(conditions ...Disease) bool {
	for _, have := range p.Diseases {
		for _, cond := range conditions {
			if have == cond {
				return true
			}
		}
	}
	return false
}

// Macros is a macronutrient breakdown in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

func (m Macros) add(other Macros) Macros {
	return Macros{
		Protein: m.Protein + other.Protein,
		Carbs:   m.Carbs + other.Carbs,
		Fats:    m.Fats + other.Fats,
	}
}

// FoodItem is a catalog entry. Catalog items are static and never mutated.
type FoodItem struct {
	Name     string `json:"name"`
	Portion  string `json:"portion"`
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
}

// Exercise is a catalog entry. Sets, Reps, RestPeriod, and Technique are
// optional and omitted from JSON when unset.
type Exercise struct {
	Name               string   `json:"name"`
	Duration           string   `json:"duration"`
	Intensity          string   `json:"intensity"`
	TargetMuscleGroups []string `json:"targetMuscleGroups"`
	Sets               int      `json:"sets,omitempty"`
	Reps               int      `json:"reps,omitempty"`
	RestPeriod         string   `json:"restPeriod,omitempty"`
	Technique          string   `json:"technique,omitempty"`
}

// Meal is one serving slot with the foods chosen for it.
type Meal struct {
	Name  string     `json:"name"`
	Time  string     `json:"time"`
	Foods []FoodItem `json:"foods"`
}

// DietPlan is the diet half of a generated plan. TotalCalories and MacroSplit
// always equal the exact sums over the contained foods.
type DietPlan struct {
	Meals         []Meal `json:"meals"`
	TotalCalories int    `json:"totalCalories"`
	MacroSplit    Macros `json:"macroSplit"`
}

// Progression describes how to advance the exercise plan after its horizon.
type Progression struct {
	Weeks           int      `json:"weeks"`
	ProgressionType string   `json:"progressionType"`
	NextLevel       []string `json:"nextLevel"`
}

// ExercisePlan is the exercise half of a generated plan. WeeklySchedule maps
// weekday names to exercise names; the names are display hints referencing
// Exercises, not foreign keys.
type ExercisePlan struct {
	Exercises              []Exercise          `json:"exercises"`
	WeeklySchedule         map[string][]string `json:"weeklySchedule"`
	RecommendedProgression Progression         `json:"recommendedProgression"`
}

// User is the persisted record: a profile with an assigned identity and,
// once generation has run, the attached plans.
type User struct {
	ID int `json:"id"`
	Profile
	DietPlan     *DietPlan     `json:"dietPlan,omitempty"`
	ExercisePlan *ExercisePlan `json:"exercisePlan,omitempty"`
}
