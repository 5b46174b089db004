package credential

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@sub.example.org", true},
		{"a@b", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a b@c.com", false},
		{"a@@b.com", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), tt.email)
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Jo"))
	assert.True(t, IsValidName("  Jo  "))
	assert.True(t, IsValidName("Żó"))
	assert.False(t, IsValidName("J"))
	assert.False(t, IsValidName("  "))
	assert.False(t, IsValidName(" J "))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("secret"))
	assert.True(t, IsValidPassword("a much longer passphrase"))
	assert.False(t, IsValidPassword("12345"))
	assert.False(t, IsValidPassword(""))
}

func TestNewValidator_Tags(t *testing.T) {
	type form struct {
		Email     string `validate:"account_email"`
		FirstName string `validate:"person_name"`
		Password  string `validate:"account_password"`
	}
	v := NewValidator()

	require.NoError(t, v.Struct(form{Email: "a@b.com", FirstName: "Jo", Password: "secret"}))

	err := v.Struct(form{Email: "a@b", FirstName: "J", Password: "123"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 3)
	assert.Equal(t, TagEmail, verrs[0].Tag())
	assert.Equal(t, TagName, verrs[1].Tag())
	assert.Equal(t, TagPassword, verrs[2].Tag())
}
