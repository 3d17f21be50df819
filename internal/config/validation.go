package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField performs validations spanning multiple fields
func validateCrossField(cfg *Config) error {
	// A fold needs at least one validation record beyond its training
	// prefix, so absurdly high fold counts are caught here rather than at
	// pipeline runtime with a confusing data error.
	if cfg.Training.Folds > 100 {
		return fmt.Errorf("training.folds %d is unreasonably high", cfg.Training.Folds)
	}
	if cfg.Engine.MinimumEdgePercent > 100 {
		return fmt.Errorf("engine.minimum_edge_percent %v exceeds 100", cfg.Engine.MinimumEdgePercent)
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return fmt.Errorf("config validation failed on field '%s' (rule '%s'), %d issue(s) total",
		first.Namespace(), first.Tag(), len(errs))
}
