package dto

// TaxpayerValidateRequest asks for an inline RNC/cédula check.
type TaxpayerValidateRequest struct {
	Value string `json:"value" binding:"required"`
	Type  string `json:"type"`
}

// NCFValidateRequest asks for a structural NCF check. The value is not
// marked required: an empty NCF is a validation verdict ("NCF requerido"),
// not a malformed request.
type NCFValidateRequest struct {
	NCF string `json:"ncf"`
}
