package fiscal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNCFValid(t *testing.T) {
	res := ValidateNCF("B0100000123")

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateNCFElectronicSeries(t *testing.T) {
	res := ValidateNCF("E310000000017")

	assert.True(t, res.Valid)
}

func TestValidateNCFWithSeparators(t *testing.T) {
	// Separators are stripped before the structural checks run.
	res := ValidateNCF("B01-0000-0123")

	assert.True(t, res.Valid)
}

func TestValidateNCFEmpty(t *testing.T) {
	res := ValidateNCF("")

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"NCF requerido"}, res.Errors)
}

func TestValidateNCFTooShort(t *testing.T) {
	res := ValidateNCF("B010000012") // 10 chars

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "demasiado corto")
}

func TestValidateNCFBadPrefix(t *testing.T) {
	res := ValidateNCF("X0100000123")

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "debe iniciar con B o E")
}

func TestValidateNCFLowercasePrefixRejected(t *testing.T) {
	// The series letter is case-sensitive on the declaration side.
	res := ValidateNCF("b0100000123")

	assert.False(t, res.Valid)
}

func TestValidateNCFRulesAccumulate(t *testing.T) {
	// Short, wrong prefix and non-numeric sequence all at once.
	res := ValidateNCF("XAB0000Z")

	assert.False(t, res.Valid)
	assert.GreaterOrEqual(t, len(res.Errors), 3)
}

func TestValidateNCFNonNumericSequence(t *testing.T) {
	res := ValidateNCF("B01ABCD1234X")

	assert.False(t, res.Valid)
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "secuencia") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateNCFNeverLeaksFullIdentifier(t *testing.T) {
	ncf := "X9900000777"
	res := ValidateNCF(ncf)

	assert.False(t, res.Valid)
	for _, e := range res.Errors {
		assert.NotContains(t, e, ncf)
		assert.Contains(t, e, MaskIdentifier(ncf))
	}
}

func TestMaskIdentifier(t *testing.T) {
	assert.Equal(t, "B0***0123", MaskIdentifier("B0100000123"))
	assert.Equal(t, "***", MaskIdentifier("B0123"))
	assert.Equal(t, "***", MaskIdentifier(""))
	// Masking works on the stripped value.
	assert.Equal(t, "B0***0123", MaskIdentifier("B01-0000-0123"))
}

func TestStripIdentifierIdempotent(t *testing.T) {
	for _, in := range []string{"B01-0000-0123", "  E31 000 0017 ", "###", "B0100000123"} {
		once := stripIdentifier(in)
		assert.Equal(t, once, stripIdentifier(once))
	}
}

func TestValidateNCFDeterministic(t *testing.T) {
	for _, in := range []string{"", "B0100000123", "X99\x0012ç3", strings.Repeat("B", 5000)} {
		assert.Equal(t, ValidateNCF(in), ValidateNCF(in))
	}
}

func TestValidateNCFHostileInputDoesNotPanic(t *testing.T) {
	inputs := []string{
		"\x00\x01\x02",
		strings.Repeat("É|", 10000),
		"B01\n\r\t00000123",
		"|||||||||||",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ValidateNCF(in) })
	}
}
