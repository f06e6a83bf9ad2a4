package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	assert.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.True(t, VerifyPassword("Sup3rSecret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("Sup3rSecret", "not-a-hash"))
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("Passw0rd"))

	cases := []struct {
		password string
		want     string
	}{
		{"Ab1", "at least 8 characters"},
		{"passw0rd", "uppercase"},
		{"PASSW0RD", "lowercase"},
		{"Password", "number"},
	}
	for _, tc := range cases {
		err := ValidatePasswordStrength(tc.password)
		if assert.Error(t, err, tc.password) {
			assert.Contains(t, err.Error(), tc.want)
		}
	}
}
