package fiscal

import (
	"regexp"
	"strings"
)

var (
	reNonDigit      = regexp.MustCompile(`\D+`)
	reCedulaHyphens = regexp.MustCompile(`^\d{3}-\d{7}-\d$`)
)

// stripDigits keeps only the digits of a taxpayer identifier.
func stripDigits(s string) string {
	return reNonDigit.ReplaceAllString(s, "")
}

// ValidateRNC checks an organizational RNC: exactly 9 digits after
// stripping separators.
func ValidateRNC(value string) FieldCheck {
	if len(stripDigits(value)) != 9 {
		return FieldCheck{Error: "El RNC debe tener 9 dígitos"}
	}
	return FieldCheck{IsValid: true}
}

// ValidateCedula checks an individual cédula: exactly 11 digits. A
// hyphenated value must use the official XXX-XXXXXXX-X grouping; any other
// hyphen placement is rejected.
func ValidateCedula(value string) FieldCheck {
	trimmed := strings.TrimSpace(value)
	if strings.Contains(trimmed, "-") && !reCedulaHyphens.MatchString(trimmed) {
		return FieldCheck{Error: "Formato de cédula inválido, use XXX-XXXXXXX-X"}
	}
	if len(stripDigits(value)) != 11 {
		return FieldCheck{Error: "La cédula debe tener 11 dígitos"}
	}
	return FieldCheck{IsValid: true}
}

// ValidateTaxpayerID accepts either identifier kind, dispatching on digit
// count: 9 digits validates as RNC, 11 as cédula.
func ValidateTaxpayerID(value string) FieldCheck {
	switch len(stripDigits(value)) {
	case 9:
		return ValidateRNC(value)
	case 11:
		return ValidateCedula(value)
	default:
		return FieldCheck{Error: "Debe indicar un RNC (9 dígitos) o una cédula (11 dígitos)"}
	}
}
