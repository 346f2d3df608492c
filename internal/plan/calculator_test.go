package plan_test

import (
	"math"
	"testing"

	"github.com/ohautala/fitplan/internal/plan"
)

func validProfile() plan.Profile {
	return plan.Profile{
		Age:            30,
		Weight:         70,
		WeightUnit:     plan.WeightUnitKg,
		Height:         175,
		Gender:         plan.GenderMale,
		Diseases:       nil,
		Handicap:       plan.HandicapNone,
		Profession:     plan.ProfessionITProfessional,
		FitnessGoal:    plan.GoalWeightLoss,
		ExerciseTime:   plan.ExerciseTime30To60,
		DietPreference: plan.DietVegan,
	}
}

func TestTargetCalories(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*plan.Profile)
		wantBMR float64
	}{
		{
			name:    "male baseline",
			mutate:  func(_ *plan.Profile) {},
			wantBMR: 88.362 + 13.397*70 + 4.799*175 - 5.677*30,
		},
		{
			name: "female",
			mutate: func(p *plan.Profile) {
				p.Gender = plan.GenderFemale
			},
			wantBMR: 447.593 + 9.247*70 + 3.098*175 - 4.330*30,
		},
		{
			name: "other uses the female coefficients",
			mutate: func(p *plan.Profile) {
				p.Gender = plan.GenderOther
			},
			wantBMR: 447.593 + 9.247*70 + 3.098*175 - 4.330*30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			want := int(math.Round(tt.wantBMR))
			if got := plan.TargetCalories(p); got != want {
				t.Errorf("TargetCalories() = %d, want %d", got, want)
			}
		})
	}
}

func TestTargetCaloriesIsPure(t *testing.T) {
	p := validProfile()
	first := plan.TargetCalories(p)
	for range 10 {
		if got := plan.TargetCalories(p); got != first {
			t.Fatalf("TargetCalories() = %d on repeat call, want %d", got, first)
		}
	}
}

func TestTargetCaloriesNormalizesPounds(t *testing.T) {
	inKg := validProfile()
	inKg.Weight = 150 * 0.45359237
	inKg.WeightUnit = plan.WeightUnitKg

	inLbs := validProfile()
	inLbs.Weight = 150
	inLbs.WeightUnit = plan.WeightUnitLbs

	if got, want := plan.TargetCalories(inLbs), plan.TargetCalories(inKg); got != want {
		t.Errorf("TargetCalories(150 lbs) = %d, TargetCalories(%.4f kg) = %d; want equal",
			got, inKg.Weight, want)
	}
}
