package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hearthvale/forgecore/internal/domain"
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

	// Register custom validations for catalog enums
	_ = v.RegisterValidation("rarity", validateRarity)
	_ = v.RegisterValidation("materialtype", validateMaterialType)

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

// FormatValidationError formats validation errors into a user-friendly map.
// This prevents leaking internal struct names and provides cleaner messages.
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
		case "rarity":
			errs[field] = "Invalid rarity"
		case "materialtype":
			errs[field] = "Invalid material type"
		case "uuid":
			errs[field] = "Must be a valid UUID"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be %s or more", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateRarity(fl validator.FieldLevel) bool {
	rarity := fl.Field().String()
	// Empty passes; pair with 'required' when the field is mandatory
	if rarity == "" {
		return true
	}
	return domain.Rarity(strings.ToUpper(rarity)).Valid()
}

// ValidMaterialTypes defines the accepted material type tags
var ValidMaterialTypes = map[domain.MaterialType]bool{
	domain.MaterialTypeOre:     true,
	domain.MaterialTypeMetal:   true,
	domain.MaterialTypeHerb:    true,
	domain.MaterialTypeWood:    true,
	domain.MaterialTypeCloth:   true,
	domain.MaterialTypeLeather: true,
	domain.MaterialTypeGem:     true,
	domain.MaterialTypeMagical: true,
	domain.MaterialTypeFood:    true,
	domain.MaterialTypeCrafted: true,
}

func validateMaterialType(fl validator.FieldLevel) bool {
	materialType := fl.Field().String()
	if materialType == "" {
		return true
	}
	return ValidMaterialTypes[domain.MaterialType(strings.ToUpper(materialType))]
}
