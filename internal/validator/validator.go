// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"stridelog/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("day_key", validateDayKey)
		_ = v.RegisterValidation("history_range", validateHistoryRange)
	}
}

// validateDayKey accepts calendar-day keys in YYYY-MM-DD form. Parsing with
// the key layout rejects both malformed strings and impossible dates.
func validateDayKey(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != len(models.DayKeyLayout) {
		return false
	}
	_, err := time.Parse(models.DayKeyLayout, s)
	return err == nil
}

func validateHistoryRange(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "week", "month":
		return true
	}
	return false
}
