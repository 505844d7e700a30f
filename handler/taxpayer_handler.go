package handler

import (
	"log"
	"net/http"

	"github.com/facturard/dgii-fiscal-service/dto"
	"github.com/facturard/dgii-fiscal-service/fiscal"
	"github.com/gin-gonic/gin"
)

// TaxpayerHandler handles inline RNC/cédula and NCF validation. These
// endpoints wrap the pure validators for form-field checks; they hold no
// state of their own.
type TaxpayerHandler struct{}

func NewTaxpayerHandler() *TaxpayerHandler {
	return &TaxpayerHandler{}
}

// ValidateTaxpayer handles POST /taxpayers/validate
func (h *TaxpayerHandler) ValidateTaxpayer(c *gin.Context) {
	var req dto.TaxpayerValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "El campo value es requerido", err)
		return
	}

	var check fiscal.FieldCheck
	switch req.Type {
	case dto.TaxpayerTypeRNC:
		check = fiscal.ValidateRNC(req.Value)
	case dto.TaxpayerTypeCedula:
		check = fiscal.ValidateCedula(req.Value)
	case dto.TaxpayerTypeAny, "":
		check = fiscal.ValidateTaxpayerID(req.Value)
	default:
		h.sendError(c, http.StatusBadRequest, "Tipo debe ser rnc, cedula o any", nil)
		return
	}

	c.JSON(http.StatusOK, dto.TaxpayerValidationResponse{
		IsValid: check.IsValid,
		Error:   check.Error,
	})
}

// ValidateNCF handles POST /ncf/validate
func (h *TaxpayerHandler) ValidateNCF(c *gin.Context) {
	var req dto.NCFValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Cuerpo JSON inválido", err)
		return
	}

	c.JSON(http.StatusOK, fiscal.ValidateNCF(req.NCF))
}

// sendError sends a structured error response
func (h *TaxpayerHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "TAXPAYER_VALIDATION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
