package fiscal

import "regexp"

var (
	reNonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)
	reTypeCode = regexp.MustCompile(`^\d{2}$`)
	reSequence = regexp.MustCompile(`^\d+$`)
)

// stripIdentifier removes every character that is not a letter or digit.
// Idempotent: stripping an already-stripped value is a no-op.
func stripIdentifier(s string) string {
	return reNonAlnum.ReplaceAllString(s, "")
}

// MaskIdentifier redacts a fiscal identifier for use in error messages and
// logs: first two characters + "***" + last four of the stripped value.
// Identifiers shorter than six characters are fully masked.
func MaskIdentifier(id string) string {
	s := stripIdentifier(id)
	if len(s) < 6 {
		return "***"
	}
	return s[:2] + "***" + s[len(s)-4:]
}

// ValidateNCF checks the structural shape of an NCF: one series letter
// (B = papel, E = electrónico), a two-digit comprobante type code and a
// numeric sequence, at least 11 characters in total after stripping
// separators. Rules are evaluated independently, so one malformed value
// can produce several errors. Messages never contain the full identifier,
// only its masked form.
func ValidateNCF(ncf string) ValidationResult {
	if ncf == "" {
		return ValidationResult{Errors: []string{"NCF requerido"}}
	}

	s := stripIdentifier(ncf)
	masked := MaskIdentifier(ncf)
	errs := make([]string, 0)

	if len(s) < 11 {
		errs = append(errs, "NCF demasiado corto: "+masked)
	}
	if len(s) == 0 || (s[0] != 'B' && s[0] != 'E') {
		errs = append(errs, "NCF debe iniciar con B o E: "+masked)
	}

	typeCode := ""
	if len(s) >= 3 {
		typeCode = s[1:3]
	} else if len(s) > 1 {
		typeCode = s[1:]
	}
	if !reTypeCode.MatchString(typeCode) {
		errs = append(errs, "tipo de comprobante inválido en NCF: "+masked)
	}

	sequence := ""
	if len(s) > 3 {
		sequence = s[3:]
	}
	if !reSequence.MatchString(sequence) {
		errs = append(errs, "secuencia del NCF debe ser numérica: "+masked)
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
