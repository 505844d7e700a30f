package fiscal

import (
	"fmt"
	"regexp"
	"strings"
)

// Column layout of a 607 data row (ventas). 19 pipe-delimited fields; the
// ones validated here are the document date and the three amounts.
const (
	cols607          = 19
	col607Date       = 5
	col607Amount     = 7
	col607ITBIS      = 8
	col607Total      = 15
)

var (
	rePeriod    = regexp.MustCompile(`^\d{6}$`)
	reDateYMD8  = regexp.MustCompile(`^\d{8}$`)
	reIssuerRNC = regexp.MustCompile(`^\d{9,11}$`)
)

// Validate607 validates a 607 sales declaration file against the DGII
// layout: header `607|RNC|período|cantidad` followed by 19-column data
// rows. Line numbers in messages are 1-based counting the header as
// line 1. All checks accumulate; nothing short-circuits past the
// empty-file guard.
func Validate607(content string) ValidationResult {
	lines := reportLines(content)
	if len(lines) == 0 {
		return ValidationResult{Errors: []string{"Archivo vacío"}}
	}

	errs := make([]string, 0)

	header := strings.Split(lines[0], "|")
	if len(header) < 4 {
		errs = append(errs, "Encabezado 607: debe tener el formato 607|RNC|período|cantidad")
	}
	if header[0] != Format607 {
		errs = append(errs, "Encabezado 607: debe iniciar con 607")
	}
	if len(header) > 1 && present(header[1]) && !reIssuerRNC.MatchString(stripDigits(header[1])) {
		errs = append(errs, "Encabezado 607: RNC del emisor inválido")
	}
	if len(header) > 2 && present(header[2]) && !rePeriod.MatchString(strings.TrimSpace(header[2])) {
		errs = append(errs, "Encabezado 607: el período debe ser AAAAMM")
	}

	for idx, line := range lines[1:] {
		n := idx + 2
		fields := strings.Split(line, "|")

		if len(fields) != cols607 {
			errs = append(errs, fmt.Sprintf("Línea %d: se esperaban %d columnas, se encontraron %d", n, cols607, len(fields)))
		}
		if len(fields) > col607Date && present(fields[col607Date]) &&
			!reDateYMD8.MatchString(strings.TrimSpace(fields[col607Date])) {
			errs = append(errs, fmt.Sprintf("Línea %d: la fecha del comprobante debe ser AAAAMMDD", n))
		}
		if len(fields) > col607Amount && present(fields[col607Amount]) && !isNumeric(fields[col607Amount]) {
			errs = append(errs, fmt.Sprintf("Línea %d: el monto facturado debe ser numérico", n))
		}
		if len(fields) > col607ITBIS && present(fields[col607ITBIS]) && !isNumeric(fields[col607ITBIS]) {
			errs = append(errs, fmt.Sprintf("Línea %d: el ITBIS facturado debe ser numérico", n))
		}
		if len(fields) > col607Total && present(fields[col607Total]) && !isNumeric(fields[col607Total]) {
			errs = append(errs, fmt.Sprintf("Línea %d: el monto total debe ser numérico", n))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
