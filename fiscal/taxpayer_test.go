package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRNC(t *testing.T) {
	assert.True(t, ValidateRNC("131888444").IsValid)
	assert.True(t, ValidateRNC("1-31-88844-4").IsValid) // separators stripped

	res := ValidateRNC("13188844") // 8 digits
	assert.False(t, res.IsValid)
	assert.Equal(t, "El RNC debe tener 9 dígitos", res.Error)

	assert.False(t, ValidateRNC("").IsValid)
	assert.False(t, ValidateRNC("00112345678").IsValid) // cédula length is not an RNC
}

func TestValidateCedula(t *testing.T) {
	assert.True(t, ValidateCedula("00112345678").IsValid)
	assert.True(t, ValidateCedula("001-1234567-8").IsValid)

	// Hyphens present but misplaced.
	res := ValidateCedula("0011234567-8")
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Error, "XXX-XXXXXXX-X")

	res = ValidateCedula("0011234567") // 10 digits
	assert.False(t, res.IsValid)
	assert.Equal(t, "La cédula debe tener 11 dígitos", res.Error)
}

func TestValidateTaxpayerIDDispatch(t *testing.T) {
	assert.True(t, ValidateTaxpayerID("131888444").IsValid)
	assert.True(t, ValidateTaxpayerID("001-1234567-8").IsValid)

	res := ValidateTaxpayerID("12345")
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Error, "9 dígitos")
	assert.Contains(t, res.Error, "11 dígitos")

	assert.False(t, ValidateTaxpayerID("").IsValid)
}

func TestTaxpayerValidatorsNeverPanic(t *testing.T) {
	inputs := []string{"", "\x00", "----", "abc", "999999999999999999999999"}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			ValidateRNC(in)
			ValidateCedula(in)
			ValidateTaxpayerID(in)
		})
	}
}
