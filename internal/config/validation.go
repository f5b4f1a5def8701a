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

	// Register custom validation functions
	v.RegisterValidation("environment", validateEnvironment)
	v.RegisterValidation("loglevel", validateLogLevel)
	v.RegisterStructValidation(validateBounds, Bounds{})

	return &CustomValidator{validator: v}
}

// Validate validates the application configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// ValidatePicks validates a resolved engine configuration
func ValidatePicks(pc *PicksConfig) error {
	cv := NewValidator()
	return cv.ValidatePicks(pc)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	if err := cv.validateStruct(cfg); err != nil {
		return err
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// ValidatePicks validates engine constants, including min <= max for every bound
func (cv *CustomValidator) ValidatePicks(pc *PicksConfig) error {
	if err := cv.validateStruct(pc); err != nil {
		return err
	}

	total := pc.StatWeights.GF + pc.StatWeights.GA + pc.StatWeights.PP + pc.StatWeights.PK
	if total <= 0 {
		return fmt.Errorf("statWeights must not all be zero")
	}
	return nil
}

func (cv *CustomValidator) validateStruct(s interface{}) error {
	err := cv.validator.Struct(s)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateBounds rejects inverted ranges; min == max is allowed and scales to 0.5
func validateBounds(sl validator.StructLevel) {
	b := sl.Current().Interface().(Bounds)
	if b.Min > b.Max {
		sl.ReportError(b.Max, "Max", "Max", "bounds", "")
	}
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if cfg.IsProduction() && cfg.App.LogLevel == "debug" {
		return fmt.Errorf("production environment should not log at debug level")
	}

	if cfg.Server.ReadTimeoutSeconds > cfg.Server.WriteTimeoutSeconds {
		return fmt.Errorf("read_timeout_seconds cannot exceed write_timeout_seconds")
	}

	if cfg.Picks != nil {
		if _, err := cfg.PicksConfig(); err != nil {
			return err
		}
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.Namespace()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated, got '%v'\n", field, tag, value)
		case "bounds":
			errMsg += fmt.Sprintf("- Field '%s' must not be below its paired min, got '%v'\n", field, value)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
