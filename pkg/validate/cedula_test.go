package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 12345678903 carries a correct Luhn verification digit.
const validCedula = "12345678903"

func TestIsCedula(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "Valid cedula", input: validCedula, want: true},
		{name: "Too short", input: "1234567", want: false},
		{name: "Too long", input: validCedula + "0", want: false},
		{name: "Non-digits", input: "0011234567a", want: false},
		{name: "Bad check digit", input: "12345678904", want: false},
		{name: "Empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCedula(tt.input))
		})
	}
}

func TestStruct(t *testing.T) {
	type req struct {
		Cedula string `validate:"required,cedula"`
		Name   string `validate:"required"`
	}

	assert.NoError(t, Struct(req{Cedula: validCedula, Name: "Ana"}))
	assert.Error(t, Struct(req{Cedula: "123", Name: "Ana"}))
	assert.Error(t, Struct(req{Cedula: validCedula}))
}
