package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Level string `koanf:"level" validate:"oneof=low high"`
	Inner struct {
		Count int `koanf:"count" validate:"gte=1"`
	} `koanf:"inner"`
}

func TestStruct(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	s := sample{Level: "mid"}
	err = v.Struct(s)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "name is a required field")
	assert.Contains(t, err.Error(), "level must be one of [low high]")
	assert.Contains(t, err.Error(), "count must be 1 or greater")

	s = sample{Name: "n", Level: "low"}
	s.Inner.Count = 1
	assert.NoError(t, v.Struct(s))
}

func TestVar(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	err = v.Var("deck name", "", "required")
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "deck name is a required field")

	assert.NoError(t, v.Var("deck name", "Spanish", "required,max=100"))
}

func TestRegisterMessage(t *testing.T) {
	v, err := New()
	require.NoError(t, err)
	require.NoError(t, v.Validate.RegisterValidation("even", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%2 == 0
	}))
	require.NoError(t, v.RegisterMessage("even", "{0} must be even"))

	type numbers struct {
		N int `json:"n" validate:"even"`
	}
	err = v.Struct(numbers{N: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n must be even")
}
