package e2etest

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestFieldNameForLabel(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
<form action="/profiles">
    <label for="age">Age</label>
    <input type="number" id="age" name="age">
    <label for="fitnessGoal">Fitness Goal</label>
    <select id="fitnessGoal" name="fitnessGoal"></select>
    <fieldset>
        <legend>Existing Diseases</legend>
        <label><input type="checkbox" name="diseases" value="Diabetes"> Diabetes</label>
    </fieldset>
</form>`))
	if err != nil {
		t.Fatal(err)
	}
	form, err := FindForm(doc, "/profiles")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		label string
		want  string
	}{
		{label: "Age", want: "age"},
		// Multi-word labels need a quoted :contains argument to match.
		{label: "Fitness Goal", want: "fitnessGoal"},
		{label: "Existing Diseases", want: "diseases"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := fieldNameForLabel(form, tt.label)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("fieldNameForLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}

	if _, err := fieldNameForLabel(form, "No Such Label"); err == nil {
		t.Error("expected error for unknown label")
	}
}
