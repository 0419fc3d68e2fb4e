package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidatePasswordStrength("Str0ng#pass"))
	assert.Error(t, v.ValidatePasswordStrength("short1!"))
	assert.Error(t, v.ValidatePasswordStrength("nouppercase1!"))
	assert.Error(t, v.ValidatePasswordStrength("NOLOWERCASE1!"))
	assert.Error(t, v.ValidatePasswordStrength("NoNumbers!!"))
	assert.Error(t, v.ValidatePasswordStrength("NoSymbols123"))
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateEmail("ann@example.com"))
	assert.Error(t, v.ValidateEmail("not-an-email"))
}

func TestRemarkKindTag(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerAll(v))

	for _, ok := range []string{"like", "likes", "dislike", "all"} {
		assert.NoError(t, v.Var(ok, "remarkkind"), ok)
	}
	assert.Error(t, v.Var("love", "remarkkind"))
}

func TestRegisterValidations_ReportsFailure(t *testing.T) {
	err := registerValidations(validator.New(), map[string]validator.Func{"": remarkKindFL})
	assert.Error(t, err)
}

func TestRegisterCustomValidators(t *testing.T) {
	require.NoError(t, RegisterCustomValidators())
}
