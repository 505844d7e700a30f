package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/facturard/dgii-fiscal-service/dto"
	"github.com/facturard/dgii-fiscal-service/fiscal"
	"github.com/facturard/dgii-fiscal-service/service"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles 606/607 declaration validation requests
type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ValidateReport handles POST /reports/:format/validate. The declaration
// can arrive as a multipart "file" or as the raw request body. A file
// that fails validation is a 200 with valid=false; only a rejected upload
// (wrong format code, oversize, non-text) is an error status.
func (h *ReportHandler) ValidateReport(c *gin.Context) {
	format := c.Param("format")
	if format != fiscal.Format606 && format != fiscal.Format607 {
		h.sendError(c, http.StatusNotFound, "Formato debe ser 606 o 607", nil)
		return
	}

	content, err := readReportContent(c)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No se pudo leer el archivo del reporte", err)
		return
	}

	log.Printf("Validating %s report, %d bytes", format, len(content))

	resp, err := h.reportService.ValidateContent(format, content)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Archivo de reporte rechazado", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// readReportContent prefers a multipart "file" part, falling back to the
// raw body so CLI callers can pipe the declaration directly.
func readReportContent(c *gin.Context) ([]byte, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}

// sendError sends a structured error response
func (h *ReportHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "REPORT_VALIDATION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
