package envstruct_test

import (
	"errors"
	"testing"

	"github.com/ohautala/fitplan/internal/envstruct"
)

func lookupFromMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr    string `env:"TEST_ADDR" envDefault:"localhost:0"`
		DBURL   string `env:"TEST_DB_URL"`
		Workers int    `env:"TEST_WORKERS" envDefault:"4"`
		Debug   bool   `env:"TEST_DEBUG" envDefault:"false"`
	}

	var cfg config
	err := envstruct.Populate(&cfg, lookupFromMap(map[string]string{
		"TEST_DB_URL":  ":memory:",
		"TEST_WORKERS": "8",
		"TEST_DEBUG":   "true",
	}))
	if err != nil {
		t.Fatalf("Populate returned unexpected error: %v", err)
	}

	if got, want := cfg.Addr, "localhost:0"; got != want {
		t.Errorf("Addr = %q, want default %q", got, want)
	}
	if got, want := cfg.DBURL, ":memory:"; got != want {
		t.Errorf("DBURL = %q, want %q", got, want)
	}
	if got, want := cfg.Workers, 8; got != want {
		t.Errorf("Workers = %d, want %d", got, want)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestPopulateMissingRequired(t *testing.T) {
	type config struct {
		Required string `env:"TEST_REQUIRED"`
	}

	var cfg config
	err := envstruct.Populate(&cfg, lookupFromMap(nil))
	if !errors.Is(err, envstruct.ErrEnvNotSet) {
		t.Errorf("expected ErrEnvNotSet, got %v", err)
	}
}

func TestPopulateInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad int", env: map[string]string{"TEST_NUM": "not-a-number", "TEST_FLAG": "true"}},
		{name: "bad bool", env: map[string]string{"TEST_NUM": "1", "TEST_FLAG": "maybe"}},
	}

	type config struct {
		Num  int  `env:"TEST_NUM"`
		Flag bool `env:"TEST_FLAG"`
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config
			if err := envstruct.Populate(&cfg, lookupFromMap(tt.env)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestPopulateRejectsNonStruct(t *testing.T) {
	var s string
	if err := envstruct.Populate(&s, lookupFromMap(nil)); err == nil {
		t.Error("expected error for non-struct pointer")
	}
	if err := envstruct.Populate(s, lookupFromMap(nil)); err == nil {
		t.Error("expected error for non-pointer")
	}
}
