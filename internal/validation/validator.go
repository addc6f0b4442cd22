package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"finsight/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("bank", validateBank)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("statement_file", validateStatementFile)
	_ = v.RegisterValidation("date", validateDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct and returns a formatted error
// listing every failing field.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "bank":
		return fmt.Sprintf("%s must be one of sbi, hdfc, axis", fe.Field())
	case "category":
		return fmt.Sprintf("%s is not a valid spending category", fe.Field())
	case "statement_file":
		return fmt.Sprintf("%s must be a .csv, .pdf or .txt file", fe.Field())
	case "date":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// Custom validation functions

// validateBank validates that the value names a supported bank dialect
func validateBank(fl validator.FieldLevel) bool {
	return models.IsValidBank(models.NormalizeBank(fl.Field().String()))
}

// validateCategory validates that the value is in the closed category set
func validateCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(models.Category(strings.ToLower(fl.Field().String())))
}

// validateStatementFile validates the statement filename extension
func validateStatementFile(fl validator.FieldLevel) bool {
	switch strings.ToLower(filepath.Ext(fl.Field().String())) {
	case ".csv", ".pdf", ".txt":
		return true
	default:
		return false
	}
}

// validateDate validates the canonical YYYY-MM-DD date form
func validateDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}
