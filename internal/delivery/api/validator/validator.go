// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator. Failures come back as a
// domain ValidationError keyed by JSON field name.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports JSON tag names instead of Go field names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate runs the struct tags on i.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(domainerrors.FieldErrors, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}

	return domainerrors.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Ce champ est obligatoire."
	case "email":
		return "Saisissez une adresse email valide."
	case "min":
		if fe.Kind() == reflect.String {
			return "Ce champ doit contenir au moins " + fe.Param() + " caractères."
		}

		return "Assurez-vous que cette valeur est supérieure ou égale à " + fe.Param() + "."
	case "max":
		if fe.Kind() == reflect.String {
			return "Ce champ ne doit pas dépasser " + fe.Param() + " caractères."
		}

		return "Assurez-vous que cette valeur est inférieure ou égale à " + fe.Param() + "."
	case "gt":
		return "Assurez-vous que cette valeur est supérieure à " + fe.Param() + "."
	case "gte":
		return "Assurez-vous que cette valeur est supérieure ou égale à " + fe.Param() + "."
	case "oneof":
		return "Choisissez une valeur parmi : " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
	case "uuid", "uuid4":
		return "Identifiant invalide."
	case "latitude", "longitude":
		return "Coordonnée GPS invalide."
	default:
		return "Valeur invalide."
	}
}
