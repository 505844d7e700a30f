package dto

// Taxpayer identifier kinds accepted by the validation endpoint.
const (
	TaxpayerTypeRNC    = "rnc"
	TaxpayerTypeCedula = "cedula"
	TaxpayerTypeAny    = "any"
)

// Provenance of a parsed receipt's fields.
const (
	SourceQR   = "qr"   // decoded from the e-CF QR code
	SourcePDF  = "pdf"  // text layer of a digital PDF
	SourceOCR  = "ocr"  // Tesseract over the receipt image
	SourceText = "text" // caller supplied pre-extracted text
)
