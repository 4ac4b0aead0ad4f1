package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	if err := v.RegisterValidation("day_key", validateDayKey); err != nil {
		t.Fatalf("failed to register day_key: %v", err)
	}
	if err := v.RegisterValidation("history_range", validateHistoryRange); err != nil {
		t.Fatalf("failed to register history_range: %v", err)
	}
	return v
}

func TestDayKey(t *testing.T) {
	v := newValidate(t)

	valid := []string{"2024-03-01", "1999-12-31", "2024-02-29"}
	for _, s := range valid {
		if err := v.Var(s, "day_key"); err != nil {
			t.Errorf("expected %q to be a valid day key: %v", s, err)
		}
	}

	invalid := []string{"", "2024-3-1", "03-01-2024", "2024-13-01", "2023-02-29", "2024-03-01T00:00:00Z", "yesterday"}
	for _, s := range invalid {
		if err := v.Var(s, "day_key"); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestHistoryRange(t *testing.T) {
	v := newValidate(t)

	for _, s := range []string{"all", "week", "month"} {
		if err := v.Var(s, "history_range"); err != nil {
			t.Errorf("expected %q to be a valid range: %v", s, err)
		}
	}

	for _, s := range []string{"", "year", "Week", "7d"} {
		if err := v.Var(s, "history_range"); err == nil {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
