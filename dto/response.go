package dto

import "github.com/facturard/dgii-fiscal-service/fiscal"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ReportValidationResponse is the verdict for one uploaded declaration
// file. Errors keeps file order; an invalid file is still a successful
// response.
type ReportValidationResponse struct {
	Format    string   `json:"format"`
	Valid     bool     `json:"valid"`
	Errors    []string `json:"errors"`
	LineCount int      `json:"line_count"`
}

// ReceiptParseResponse carries the extraction result plus its provenance.
// Confidence is the average Tesseract word confidence and is only set for
// OCR-sourced results; zero means unknown.
type ReceiptParseResponse struct {
	Receipt    fiscal.ParsedReceipt `json:"receipt"`
	Useful     bool                 `json:"useful"`
	Source     string               `json:"source"`
	RawText    string               `json:"raw_text,omitempty"`
	Confidence float64              `json:"confidence,omitempty"`
}

// TaxpayerValidationResponse mirrors fiscal.FieldCheck for the inline
// field-validation endpoint.
type TaxpayerValidationResponse struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}
