package e2etest

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// FindForm finds a form in the doc identified with action formActionURLPath
// and returns the form selection.
func FindForm(doc *goquery.Document, formActionURLPath string) (*goquery.Selection, error) {
	form := doc.Find(fmt.Sprintf("form[action='%s']", formActionURLPath))
	if form.Length() == 0 {
		return nil, fmt.Errorf("form not found: %s", formActionURLPath)
	}
	return form, nil
}

// fieldNameForLabel resolves the name attribute of the form control associated
// with a label. Inputs, selects, and checkbox groups wrapped in a fieldset
// legend are all supported.
func fieldNameForLabel(form *goquery.Selection, labelText string) (string, error) {
	label := form.Find(fmt.Sprintf("label:contains('%s')", labelText))
	if label.Length() == 0 {
		legend := form.Find(fmt.Sprintf("legend:contains('%s')", labelText))
		if legend.Length() == 0 {
			return "", fmt.Errorf("label not found: %s", labelText)
		}
		input := legend.Parent().Find("input")
		if name, exists := input.Attr("name"); exists {
			return name, nil
		}
		return "", fmt.Errorf("no named input under legend: %s", labelText)
	}

	var control *goquery.Selection
	if id, exists := label.Attr("for"); exists {
		control = form.Find(fmt.Sprintf("input#%s,select#%s,textarea#%s", id, id, id))
	} else {
		control = label.Find("input,select")
	}
	if control.Length() == 0 {
		return "", fmt.Errorf("control not found for label: %s", labelText)
	}

	name, exists := control.Attr("name")
	if !exists {
		return "", fmt.Errorf("control has no name attribute (label: %s)", labelText)
	}
	return name, nil
}
