package fiscal

import (
	"fmt"
	"strings"
)

// Column layout of a 606 data row (compras y gastos). At least 10
// pipe-delimited fields; validated here are the expense category, the NCF
// and the document date.
const (
	minCols606     = 10
	col606Category = 2
	col606NCF      = 3
	col606Date     = 5
)

// Casillas 01–11 del clasificador de gastos del formato 606.
var expenseCategories = []string{
	"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11",
}

func validExpenseCategory(code string) bool {
	for _, c := range expenseCategories {
		if code == c {
			return true
		}
	}
	return false
}

// Validate606 validates a 606 purchases/expenses declaration file. Same
// line handling as Validate607. The 606 header does not validate the
// issuer RNC; the 607 header does. That asymmetry comes straight from the
// DGII submission portal's observed behavior and is kept on purpose (see
// TestValidate606HeaderSkipsIssuerCheck).
func Validate606(content string) ValidationResult {
	lines := reportLines(content)
	if len(lines) == 0 {
		return ValidationResult{Errors: []string{"Archivo vacío"}}
	}

	errs := make([]string, 0)

	header := strings.Split(lines[0], "|")
	if len(header) < 4 {
		errs = append(errs, "Encabezado 606: debe tener el formato 606|RNC|período|cantidad")
	}
	if header[0] != Format606 {
		errs = append(errs, "Encabezado 606: debe iniciar con 606")
	}
	if len(header) > 2 && present(header[2]) && !rePeriod.MatchString(strings.TrimSpace(header[2])) {
		errs = append(errs, "Encabezado 606: el período debe ser AAAAMM")
	}

	for idx, line := range lines[1:] {
		n := idx + 2
		fields := strings.Split(line, "|")

		if len(fields) < minCols606 {
			errs = append(errs, fmt.Sprintf("Línea %d: columnas insuficientes (mínimo %d)", n, minCols606))
		}
		// Guard thresholds mirror the DGII portal: each field is only
		// checked once the row reaches one column past it.
		if len(fields) >= col606Category+2 {
			cat := strings.TrimSpace(fields[col606Category])
			if !validExpenseCategory(cat) {
				errs = append(errs, fmt.Sprintf("Línea %d: categoría de gasto inválida: %s", n, cat))
			}
		}
		if len(fields) >= col606NCF+2 {
			if res := ValidateNCF(strings.TrimSpace(fields[col606NCF])); !res.Valid {
				errs = append(errs, fmt.Sprintf("Línea %d: %s", n, strings.Join(res.Errors, "; ")))
			}
		}
		if len(fields) >= col606Date+2 && present(fields[col606Date]) &&
			!reDateYMD8.MatchString(strings.TrimSpace(fields[col606Date])) {
			errs = append(errs, fmt.Sprintf("Línea %d: la fecha debe ser AAAAMMDD", n))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
