package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FightBet_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("side", validateSide)
	_ = v.RegisterValidation("fightstatus", validateFightStatus)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "side":
			errs[field] = domain.ErrMsgInvalidSide
		case "fightstatus":
			errs[field] = "Invalid fight status"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validationKind picks the error kind for a failed request. Side and amount failures
// keep their domain kinds so callers see the same taxonomy as service rejections.
func validationKind(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return KindValidation
	}
	for _, e := range validationErrors {
		switch strings.ToLower(e.Field()) {
		case "side":
			return domain.KindInvalidSide
		case "amount":
			return domain.KindInvalidAmount
		}
	}
	return KindValidation
}

// validateSide allows the empty string so optional fields rely on the required tag
func validateSide(fl validator.FieldLevel) bool {
	side := fl.Field().String()
	if side == "" {
		return true
	}
	return domain.Side(side).IsValid()
}

func validateFightStatus(fl validator.FieldLevel) bool {
	switch domain.FightStatus(fl.Field().String()) {
	case domain.FightStatusBettingOpen, domain.FightStatusInProgress,
		domain.FightStatusCompleted, domain.FightStatusFailed:
		return true
	}
	return false
}
