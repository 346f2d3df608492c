package main

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ohautala/fitplan/internal/e2etest"
	"github.com/ohautala/fitplan/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "FITPLAN_SQLITE_URL":
		return ":memory:", true
	case "FITPLAN_ADDR":
		return "localhost:0", true
	case "FITPLAN_SECURE_COOKIES":
		// The test server speaks plain HTTP so Secure cookies would never
		// make it back to the server.
		return "false", true
	default:
		return "", false
	}
}

func Test_application_home(t *testing.T) {
	var (
		ctx = t.Context()
		doc *goquery.Document
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	if doc, err = client.GetDoc(ctx, "/"); err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	t.Run("Profile form is present", func(t *testing.T) {
		if doc.Find("form[action='/profiles']").Length() != 1 {
			t.Error("Expected exactly one profile form")
		}
		checkButtonPresence(t, doc, "Generate plan", 1)
	})

	t.Run("Selects cover the closed option lists", func(t *testing.T) {
		selects := map[string]int{
			"select#gender":         3,
			"select#weightUnit":     2,
			"select#handicap":       6,
			"select#profession":     11,
			"select#fitnessGoal":    8,
			"select#exerciseTime":   4,
			"select#dietPreference": 4,
		}
		for selector, wantOptions := range selects {
			got := doc.Find(selector + " option").Length()
			if got != wantOptions {
				t.Errorf("Expected %d options in %s, found %d", wantOptions, selector, got)
			}
		}
	})

	t.Run("Disease checkboxes are present", func(t *testing.T) {
		count := doc.Find("input[type='checkbox'][name='diseases']").Length()
		if count != 8 {
			t.Errorf("Expected 8 disease checkboxes, found %d", count)
		}
	})
}

func checkButtonPresence(t *testing.T, doc *goquery.Document, buttonText string, expectedCount int) {
	t.Helper()
	count := doc.Find("button:contains('" + buttonText + "')").Length()
	if count != expectedCount {
		t.Errorf("Expected %d '%s' button(s), but found %d", expectedCount, buttonText, count)
	}
}
