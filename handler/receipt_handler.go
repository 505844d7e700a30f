package handler

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/facturard/dgii-fiscal-service/dto"
	"github.com/facturard/dgii-fiscal-service/service"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles receipt field-extraction requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// ParseReceipt handles POST /receipts/parse. Accepts either a multipart
// "file" (PDF, PNG, JPEG) that goes through the QR/PDF/OCR pipeline, or a
// "text" form field holding already-extracted OCR text.
func (h *ReceiptHandler) ParseReceipt(c *gin.Context) {
	log.Println("Received receipt parse request")

	if text := c.PostForm("text"); strings.TrimSpace(text) != "" {
		c.JSON(http.StatusOK, h.receiptService.ParseText(text))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Debe enviar un archivo o el campo text", err)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = inferMimeType(fileHeader.Filename)
	}
	if !isValidMimeType(mimeType) {
		h.sendError(c, http.StatusBadRequest, "Tipo de archivo inválido. Soportados: PDF, PNG, JPEG", nil)
		return
	}

	reader, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "No se pudo abrir el archivo", err)
		return
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "No se pudo leer el archivo", err)
		return
	}

	password := c.PostForm("password")

	result, err := h.receiptService.ParseFromFile(fileData, mimeType, password)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "No se pudieron extraer los datos del recibo", err)
		return
	}

	log.Printf("Receipt parsed (source=%s, useful=%v)", result.Source, result.Useful)
	c.JSON(http.StatusOK, result)
}

// sendError sends a structured error response
func (h *ReceiptHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "RECEIPT_PARSE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

// isValidMimeType checks if the MIME type is supported
func isValidMimeType(mimeType string) bool {
	validTypes := []string{
		"application/pdf",
		"image/png",
		"image/jpeg",
		"image/jpg",
	}

	mimeType = strings.ToLower(mimeType)
	for _, valid := range validTypes {
		if strings.Contains(mimeType, valid) {
			return true
		}
	}
	return false
}

// inferMimeType infers MIME type from file extension
func inferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".pdf") {
		return "application/pdf"
	} else if strings.HasSuffix(lower, ".png") {
		return "image/png"
	} else if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return "image/jpeg"
	}
	return ""
}
