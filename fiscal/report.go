// Package fiscal implements validation and parsing of Dominican (DGII)
// fiscal documents: NCF comprobante numbers, RNC/cédula taxpayer IDs, the
// pipe-delimited 606/607 declaration formats and heuristic extraction of
// fiscal fields from receipt OCR text.
//
// Every function is pure: no package state, no I/O, safe for concurrent
// use. Validators never panic on malformed input; problems are reported
// as result values with Spanish, user-facing messages.
package fiscal

import (
	"fmt"
	"strconv"
	"strings"
)

// Declaration formats accepted by ValidateReport.
const (
	Format606 = "606" // compras y gastos
	Format607 = "607" // ventas e ingresos
)

// ValidationResult accumulates every rule violation found in the input.
// Errors keeps line order, then field order within a line.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// FieldCheck is the single-message shape used for inline taxpayer-ID
// validation. It is intentionally distinct from ValidationResult: file
// validation accumulates many errors, a field check reports one.
type FieldCheck struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// ValidateReport routes content to the validator matching the declared
// format code. Unknown codes are reported as an invalid result, not an
// error.
func ValidateReport(format, content string) ValidationResult {
	switch format {
	case Format606:
		return Validate606(content)
	case Format607:
		return Validate607(content)
	default:
		return ValidationResult{
			Errors: []string{fmt.Sprintf("Formato de reporte no soportado: %s", format)},
		}
	}
}

// reportLines splits declaration content into lines, dropping blank ones.
// Line 0 is the header; the returned slice preserves file order.
func reportLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// isNumeric reports whether a declaration field parses as an amount.
func isNumeric(field string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	return err == nil
}

// present reports whether an optional field carries a value.
func present(field string) bool {
	return strings.TrimSpace(field) != ""
}
