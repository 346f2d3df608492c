// Package pdf renders a generated plan as a downloadable PDF document.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/ohautala/fitplan/internal/plan"
)

const (
	marginLeft = 20.0
	lineHeight = 7.0
	pageBottom = 270.0
)

type document struct {
	pdf *fpdf.Fpdf
	y   float64
}

// Export writes the record's plans to w as a two-part PDF document. The
// first part summarises the profile and the diet plan, the second the
// exercise plan. Records without attached plans render the summary only.
func Export(w io.Writer, user plan.User) error {
	doc := &document{pdf: fpdf.New("P", "mm", "A4", "")}
	doc.pdf.SetTitle("Fitness Plan", false)
	doc.pdf.AddPage()

	doc.title("Your Fitness Plan")
	doc.profileSummary(user.Profile)

	if user.DietPlan != nil {
		doc.dietPlan(*user.DietPlan)
	}
	if user.ExercisePlan != nil {
		doc.pdf.AddPage()
		doc.y = 0
		doc.title("Exercise Plan")
		doc.exercisePlan(*user.ExercisePlan)
	}

	if err := doc.pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (d *document) title(text string) {
	d.pdf.SetFont("Helvetica", "B", 20)
	d.y += 20
	d.pdf.Text(marginLeft, d.y, text)
	d.y += 5
}

func (d *document) heading(text string) {
	d.advance(12)
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.Text(marginLeft, d.y, text)
}

func (d *document) line(indent float64, text string) {
	d.advance(lineHeight)
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.Text(marginLeft+indent, d.y, text)
}

// advance moves the cursor down, breaking to a new page when the cursor
// would run past the bottom margin.
func (d *document) advance(by float64) {
	d.y += by
	if d.y > pageBottom {
		d.pdf.AddPage()
		d.y = 20
	}
}

func (d *document) profileSummary(p plan.Profile) {
	d.heading("Profile")
	d.line(0, fmt.Sprintf("Age: %d", p.Age))
	d.line(0, fmt.Sprintf("Weight: %.1f %s", p.Weight, p.WeightUnit))
	d.line(0, fmt.Sprintf("Height: %d cm", p.Height))
	d.line(0, fmt.Sprintf("Gender: %s", p.Gender))
	d.line(0, fmt.Sprintf("Profession: %s", p.Profession))
	d.line(0, fmt.Sprintf("Goal: %s", p.FitnessGoal))
	d.line(0, fmt.Sprintf("Diet preference: %s", p.DietPreference))
}

func (d *document) dietPlan(diet plan.DietPlan) {
	d.heading("Diet Plan")
	d.line(0, fmt.Sprintf("Daily target: %d kcal", diet.TotalCalories))
	d.line(0, fmt.Sprintf("Macros: %dg protein, %dg carbs, %dg fats",
		diet.MacroSplit.Protein, diet.MacroSplit.Carbs, diet.MacroSplit.Fats))

	for _, meal := range diet.Meals {
		d.advance(3)
		d.line(0, fmt.Sprintf("%s (%s)", meal.Name, meal.Time))
		for _, food := range meal.Foods {
			d.line(6, fmt.Sprintf("%s, %s, %d kcal", food.Name, food.Portion, food.Calories))
		}
		if len(meal.Foods) == 0 {
			d.line(6, "No items assigned")
		}
	}
}

func (d *document) exercisePlan(exercise plan.ExercisePlan) {
	d.heading("Exercises")
	for _, ex := range exercise.Exercises {
		detail := fmt.Sprintf("%s: %s, %s intensity", ex.Name, ex.Duration, ex.Intensity)
		if ex.Sets > 0 {
			detail += fmt.Sprintf(", %d sets of %d reps", ex.Sets, ex.Reps)
		}
		d.line(0, detail)
		d.line(6, "Targets: "+strings.Join(ex.TargetMuscleGroups, ", "))
	}

	d.heading("Weekly Schedule")
	for _, day := range plan.ScheduleDays() {
		names, ok := exercise.WeeklySchedule[day]
		if !ok {
			continue
		}
		d.line(0, fmt.Sprintf("%s: %s", day, strings.Join(names, ", ")))
	}

	progression := exercise.RecommendedProgression
	d.heading("Progression")
	d.line(0, fmt.Sprintf("After %d weeks, increase %s.",
		progression.Weeks, strings.ToLower(progression.ProgressionType)))
	if len(progression.NextLevel) > 0 {
		d.line(0, "Next level: "+strings.Join(progression.NextLevel, ", "))
	}
}
