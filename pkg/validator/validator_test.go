package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("maria.quispe@example.com"))
	assert.True(t, ValidateEmail("jose+trabajo@conpro.pe"))
	assert.False(t, ValidateEmail("sin-arroba.example.com"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail("maria@"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+51987654321"))
	assert.True(t, ValidatePhone("987 654 321"))
	assert.True(t, ValidatePhone("(01) 987-654-321"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("abcdefghij"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("abc123"))
	assert.True(t, ValidatePassword("P@ssw0rd!"))
	assert.False(t, ValidatePassword("ab1"))
	assert.False(t, ValidatePassword(""))
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"987654321", "+51987654321"},
		{"+51987654321", "+51987654321"},
		{"51987654321", "+51987654321"},
		{"987 654 321", "+51987654321"},
		{"(987) 654-321", "+51987654321"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPhone(tt.in))
	}
}

func TestFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"maría", "María"},
		{"JOSE LUIS", "Jose Luis"},
		{"ana-sofia", "Ana-Sofia"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatName(tt.in))
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", SanitizeString("<script>alert(1)</script>"))
	assert.Equal(t, "texto normal", SanitizeString("texto normal"))
}
