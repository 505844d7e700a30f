package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/facturard/dgii-fiscal-service/client"
	"github.com/facturard/dgii-fiscal-service/dto"
	"github.com/facturard/dgii-fiscal-service/fiscal"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/shopspring/decimal"
)

// A text layer shorter than this means the PDF is a scan, not a digital
// invoice, and the pages need OCR.
const minPDFTextLen = 40

// Below this average word confidence the OCR text is too noisy to pre-fill
// a form with, whatever the heuristics pulled out of it.
const minOCRConfidence = 40.0

// ReceiptService turns an uploaded receipt (image or PDF) into a
// ParsedReceipt. Extraction tiers, most reliable first: the e-CF QR code,
// the PDF text layer, Tesseract OCR over the page image.
type ReceiptService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
}

func NewReceiptService(tesseractClient *client.TesseractClient, pdfProcessor PDFProcessor) *ReceiptService {
	return &ReceiptService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
	}
}

// ParseText runs the heuristic parser over text the caller already
// extracted (browser-side OCR, pasted receipt, tests).
func (s *ReceiptService) ParseText(rawText string) *dto.ReceiptParseResponse {
	parsed := fiscal.ParseReceiptText(rawText)
	return &dto.ReceiptParseResponse{
		Receipt: parsed,
		Useful:  parsed.IsUseful(),
		Source:  dto.SourceText,
		RawText: rawText,
	}
}

// ParseFromFile extracts receipt fields from an uploaded PDF, PNG or JPEG.
func (s *ReceiptService) ParseFromFile(fileData []byte, mimeType, password string) (*dto.ReceiptParseResponse, error) {
	if strings.Contains(mimeType, "pdf") {
		return s.parsePDF(fileData, password)
	}

	img, err := decodeImage(fileData, mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if qr := s.parseFromQR(img); qr != nil {
		log.Println("Receipt fields taken from e-CF QR code")
		return qr, nil
	}

	text, confidence, err := s.ocrImage(img)
	if err != nil {
		return nil, fmt.Errorf("OCR extraction failed: %w", err)
	}

	return ocrResponse(text, confidence), nil
}

func (s *ReceiptService) parsePDF(fileData []byte, password string) (*dto.ReceiptParseResponse, error) {
	// Digital invoices carry a text layer; that beats OCR every time.
	text, err := s.pdfProcessor.ExtractText(fileData)
	if err == nil && len(strings.TrimSpace(text)) >= minPDFTextLen {
		parsed := fiscal.ParseReceiptText(text)
		return &dto.ReceiptParseResponse{
			Receipt: parsed,
			Useful:  parsed.IsUseful(),
			Source:  dto.SourcePDF,
			RawText: text,
		}, nil
	}
	if err != nil {
		log.Printf("PDF text extraction failed: %v. Treating as scanned document...", err)
	}

	images, err := s.pdfProcessor.ExtractImages(fileData, password)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images from PDF: %w", err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("no pages found in PDF")
	}

	for i, img := range images {
		if qr := s.parseFromQR(img); qr != nil {
			log.Printf("Receipt fields taken from e-CF QR code on page %d", i+1)
			return qr, nil
		}
	}

	var combined strings.Builder
	var confidenceSum float64
	var pagesRead int
	for i, img := range images {
		pageText, pageConf, err := s.ocrImage(img)
		if err != nil {
			log.Printf("OCR failed for page %d: %v", i+1, err)
			continue
		}
		combined.WriteString("\n")
		combined.WriteString(pageText)
		confidenceSum += pageConf
		pagesRead++
	}

	confidence := 0.0
	if pagesRead > 0 {
		confidence = confidenceSum / float64(pagesRead)
	}
	return ocrResponse(combined.String(), confidence), nil
}

// ocrResponse builds the verdict for OCR-sourced text. A confident but
// useless extraction and a useful-looking one read at low confidence both
// come back useful=false; zero confidence means Tesseract reported no word
// boxes, which is treated as unknown rather than bad.
func ocrResponse(text string, confidence float64) *dto.ReceiptParseResponse {
	parsed := fiscal.ParseReceiptText(text)
	return &dto.ReceiptParseResponse{
		Receipt:    parsed,
		Useful:     parsed.IsUseful() && usableConfidence(confidence),
		Source:     dto.SourceOCR,
		RawText:    text,
		Confidence: confidence,
	}
}

func usableConfidence(confidence float64) bool {
	return confidence == 0 || confidence >= minOCRConfidence
}

// parseFromQR attempts the e-CF fast path. Returns nil when the image has
// no readable DGII QR code.
func (s *ReceiptService) parseFromQR(img image.Image) *dto.ReceiptParseResponse {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return nil
	}

	receipt, ok := receiptFromQRText(result.GetText())
	if !ok {
		return nil
	}

	return &dto.ReceiptParseResponse{
		Receipt: receipt,
		Useful:  receipt.IsUseful(),
		Source:  dto.SourceQR,
	}
}

// receiptFromQRText reads the DGII e-CF verification URL embedded in the
// QR code. Its query string carries the issuer RNC, the e-NCF, the total
// and the issue date; the business name is not in the QR, so the supplier
// stays flagged for review.
func receiptFromQRText(qrText string) (fiscal.ParsedReceipt, bool) {
	u, err := url.Parse(strings.TrimSpace(qrText))
	if err != nil || !strings.Contains(strings.ToLower(u.Host), "dgii") {
		return fiscal.ParsedReceipt{}, false
	}

	q := u.Query()
	ncf := q.Get("ENCF")
	if ncf == "" {
		ncf = q.Get("NCF")
	}
	rnc := q.Get("RncEmisor")
	if ncf == "" && rnc == "" {
		return fiscal.ParsedReceipt{}, false
	}

	amount := decimal.Zero
	if v, err := decimal.NewFromString(q.Get("MontoTotal")); err == nil {
		amount = v
	}

	date := time.Now().Format("2006-01-02")
	if t, err := time.Parse("02-01-2006", q.Get("FechaEmision")); err == nil {
		date = t.Format("2006-01-02")
	}

	return fiscal.ParsedReceipt{
		SupplierName: fiscal.SupplierFallback,
		SupplierRNC:  rnc,
		NCF:          strings.ToUpper(ncf),
		Amount:       amount,
		ITBIS:        decimal.Zero,
		Category:     fiscal.DefaultExpenseCategory,
		Date:         date,
	}, true
}

// ocrImage round-trips the decoded page through a temp PNG because
// Tesseract reads from disk. Returns the text and the average word
// confidence for that page.
func (s *ReceiptService) ocrImage(img image.Image) (string, float64, error) {
	tempFile, err := os.CreateTemp("", "receipt-ocr-*.png")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if err := png.Encode(tempFile, img); err != nil {
		tempFile.Close()
		return "", 0, fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	tempFile.Close()

	return s.tesseractClient.ExtractTextAndQuality(tempFile.Name())
}

// decodeImage decodes an image from bytes based on MIME type
func decodeImage(data []byte, mimeType string) (image.Image, error) {
	reader := bytes.NewReader(data)

	if strings.Contains(mimeType, "png") {
		return png.Decode(reader)
	} else if strings.Contains(mimeType, "jpeg") || strings.Contains(mimeType, "jpg") {
		return jpeg.Decode(reader)
	}

	// Try to decode anyway
	img, _, err := image.Decode(reader)
	return img, err
}
