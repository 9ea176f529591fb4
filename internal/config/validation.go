// Package config provides configuration management for the Gridiron Edge application.
package config

import (
	"fmt"
	"strings"

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

// validateCrossField applies validations spanning multiple fields
func validateCrossField(cfg *Config) error {
	for _, season := range cfg.Backtest.Seasons {
		if season < 1900 || season > 2100 {
			return fmt.Errorf("backtest season %d is out of range", season)
		}
	}
	if cfg.Roster.Enabled && cfg.Roster.URL == "" {
		return fmt.Errorf("roster analytics enabled but no URL configured")
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation '%s'",
			fieldError.Namespace(), fieldError.Tag(),
		))
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(messages, "; "))
}
