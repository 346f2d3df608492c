package plan

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func selectorProfile() Profile {
	return Profile{
		Age:            30,
		Weight:         70,
		WeightUnit:     WeightUnitKg,
		Height:         175,
		Gender:         GenderMale,
		Diseases:       nil,
		Handicap:       HandicapNone,
		Profession:     ProfessionOfficeWorker,
		FitnessGoal:    GoalWeightLoss,
		ExerciseTime:   ExerciseTime30To60,
		DietPreference: DietNormal,
	}
}

func exerciseNames(exercises []Exercise) []string {
	names := make([]string, len(exercises))
	for i, e := range exercises {
		names[i] = e.Name
	}
	return names
}

func TestSelectExercisesHandicapOverridesEverything(t *testing.T) {
	p := selectorProfile()
	p.Handicap = HandicapMobilityImpairment
	p.Diseases = []Disease{DiseaseHeartDisease}
	p.FitnessGoal = GoalStrengthTraining

	got := exerciseNames(selectExercises(p))
	want := exerciseNames(lowImpactExercises)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selectExercises() mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectExercisesVisualImpairmentExcludesSwimming(t *testing.T) {
	p := selectorProfile()
	p.Handicap = HandicapVisualImpairment

	got := selectExercises(p)
	if slices.Contains(exerciseNames(got), "Swimming") {
		t.Error("expected no Swimming for a visually impaired profile")
	}
	if len(got) != len(lowImpactExercises)-1 {
		t.Errorf("expected %d exercises, got %d", len(lowImpactExercises)-1, len(got))
	}
}

func TestSelectExercisesRestrictingDiseases(t *testing.T) {
	for _, disease := range []Disease{DiseaseHeartDisease, DiseaseArthritis, DiseaseBackPain} {
		t.Run(string(disease), func(t *testing.T) {
			p := selectorProfile()
			p.Diseases = []Disease{DiseaseDiabetes, disease}

			got := exerciseNames(selectExercises(p))
			want := append(exerciseNames(lowImpactExercises), exerciseNames(flexibilityExercises)...)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("selectExercises() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectExercisesNonRestrictingDiseaseFallsThroughToGoal(t *testing.T) {
	p := selectorProfile()
	p.Diseases = []Disease{DiseaseAsthma}
	p.FitnessGoal = GoalWeightLoss

	got := exerciseNames(selectExercises(p))
	want := append(exerciseNames(cardioExercises), exerciseNames(strengthExercises[:2])...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selectExercises() mismatch (-want +got):\n%s", diff)
	}
}

func TestExercisesForGoal(t *testing.T) {
	cardio := exerciseNames(cardioExercises)
	strength := exerciseNames(strengthExercises)
	lowImpact := exerciseNames(lowImpactExercises)
	flexibility := exerciseNames(flexibilityExercises)

	tests := []struct {
		goal FitnessGoal
		want []string
	}{
		{goal: GoalWeightLoss, want: append(slices.Clone(cardio), strength[:2]...)},
		{goal: GoalWeightGain, want: append(slices.Clone(strength), cardio[:1]...)},
		{goal: GoalMuscleBuilding, want: append(slices.Clone(strength), cardio[:1]...)},
		{goal: GoalEndurance, want: append(slices.Clone(cardio), lowImpact[:1]...)},
		{goal: GoalFlexibility, want: append(slices.Clone(flexibility), lowImpact...)},
		{goal: GoalStrengthTraining, want: append(slices.Clone(strength), cardio[:1]...)},
		{goal: GoalGeneralFitness, want: append(slices.Clone(cardio), strength[:2]...)},
		{goal: GoalBodyRecomposition, want: append(slices.Clone(cardio), strength[:2]...)},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			got := exerciseNames(exercisesForGoal(tt.goal))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("exercisesForGoal(%q) mismatch (-want +got):\n%s", tt.goal, diff)
			}
		})
	}
}

func TestScaleDuration(t *testing.T) {
	tests := []struct {
		duration   string
		multiplier float64
		want       string
	}{
		{duration: "20 minutes", multiplier: 1.5, want: "30 minutes"},
		{duration: "20 minutes", multiplier: 2, want: "40 minutes"},
		{duration: "30 minutes", multiplier: 0.5, want: "15 minutes"},
		{duration: "45 minutes", multiplier: 0.5, want: "23 minutes"}, // rounds to nearest
		{duration: "30 minutes", multiplier: 1, want: "30 minutes"},
		{duration: "3 sets of 10", multiplier: 2, want: "3 sets of 10"}, // passthrough
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			if got := scaleDuration(tt.duration, tt.multiplier); got != tt.want {
				t.Errorf("scaleDuration(%q, %v) = %q, want %q", tt.duration, tt.multiplier, got, tt.want)
			}
		})
	}
}

func TestSelectExercisesScalesByTimeBucket(t *testing.T) {
	tests := []struct {
		bucket ExerciseTime
		want   string // scaled duration of Running (base 30 minutes)
	}{
		{bucket: ExerciseTime15To30, want: "15 minutes"},
		{bucket: ExerciseTime30To60, want: "30 minutes"},
		{bucket: ExerciseTime1To2H, want: "45 minutes"},
		{bucket: ExerciseTimeOver2H, want: "60 minutes"},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			p := selectorProfile()
			p.ExerciseTime = tt.bucket

			got := selectExercises(p)
			if got[0].Name != "Running" {
				t.Fatalf("expected Running first for Weight Loss, got %q", got[0].Name)
			}
			if got[0].Duration != tt.want {
				t.Errorf("scaled duration = %q, want %q", got[0].Duration, tt.want)
			}
		})
	}
}

func TestSelectExercisesDoesNotMutateCatalogs(t *testing.T) {
	p := selectorProfile()
	p.ExerciseTime = ExerciseTimeOver2H

	_ = selectExercises(p)

	if got, want := cardioExercises[0].Duration, "30 minutes"; got != want {
		t.Errorf("catalog duration mutated: got %q, want %q", got, want)
	}
}
