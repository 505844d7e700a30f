package service

import (
	"testing"

	"github.com/facturard/dgii-fiscal-service/dto"
	"github.com/stretchr/testify/assert"
)

func TestParseTextEchoesRawText(t *testing.T) {
	svc := NewReceiptService(nil, nil)
	text := "Supermercados Bravo\nRNC: 101657890\nTOTAL RD$ 3500.50"

	resp := svc.ParseText(text)

	assert.Equal(t, dto.SourceText, resp.Source)
	assert.Equal(t, text, resp.RawText)
	assert.True(t, resp.Useful)
	assert.Equal(t, "101657890", resp.Receipt.SupplierRNC)
}

func TestOCRResponseCarriesConfidence(t *testing.T) {
	resp := ocrResponse("RNC: 101657890\nTOTAL 350.00", 87.5)

	assert.Equal(t, dto.SourceOCR, resp.Source)
	assert.Equal(t, 87.5, resp.Confidence)
	assert.True(t, resp.Useful)
	assert.Equal(t, "RNC: 101657890\nTOTAL 350.00", resp.RawText)
}

func TestOCRResponseLowConfidenceIsNotUseful(t *testing.T) {
	// Fields were extracted, but the read is too noisy to trust.
	resp := ocrResponse("RNC: 101657890\nTOTAL 350.00", 12.0)

	assert.False(t, resp.Useful)
	assert.Equal(t, 12.0, resp.Confidence)
	// The extraction itself is still returned for manual review.
	assert.Equal(t, "101657890", resp.Receipt.SupplierRNC)
}

func TestOCRResponseUnknownConfidenceIsUsable(t *testing.T) {
	// Zero means Tesseract reported no word boxes, not a bad read.
	resp := ocrResponse("RNC: 101657890", 0)

	assert.True(t, resp.Useful)
}

func TestOCRResponseUselessExtractionStaysUseless(t *testing.T) {
	// High confidence cannot rescue text the heuristics found nothing in.
	resp := ocrResponse("", 95.0)

	assert.False(t, resp.Useful)
}

func TestUsableConfidenceThreshold(t *testing.T) {
	assert.True(t, usableConfidence(0))
	assert.True(t, usableConfidence(minOCRConfidence))
	assert.True(t, usableConfidence(99.9))
	assert.False(t, usableConfidence(minOCRConfidence-0.1))
}
