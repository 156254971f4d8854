package validator

import (
	"testing"

	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderForm struct {
	Email    string   `json:"email" validate:"required,email"`
	Quantity int      `json:"quantite" validate:"gte=1"`
	Method   string   `json:"methode" validate:"omitempty,oneof=mobile_money carte especes"`
	Lat      *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	err := v.Validate(&orderForm{Email: "awa@example.com", Quantity: 2, Method: "carte"})

	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()
	lat := 120.0

	err := v.Validate(&orderForm{Email: "not-an-email", Quantity: 0, Method: "cheque", Lat: &lat})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.FieldErrors{
		"email":    "Saisissez une adresse email valide.",
		"quantite": "Assurez-vous que cette valeur est supérieure ou égale à 1.",
		"methode":  "Choisissez une valeur parmi : mobile_money, carte, especes.",
		"latitude": "Coordonnée GPS invalide.",
	}, validationErr.Fields())
}

func TestValidate_Required(t *testing.T) {
	v := New()

	err := v.Validate(&orderForm{Quantity: 1})

	validationErr, ok := errors.AsType[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, "Ce champ est obligatoire.", validationErr.Fields()["email"])
}

func TestValidate_NonStructIsNotAFieldError(t *testing.T) {
	v := New()

	err := v.Validate(42)

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
