package service

import (
	"strings"
	"testing"

	"github.com/facturard/dgii-fiscal-service/fiscal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContentPassesThroughVerdict(t *testing.T) {
	svc := NewReportService(1024)

	resp, err := svc.ValidateContent(fiscal.Format607, []byte("607|131888444|202601|0"))

	require.NoError(t, err)
	assert.Equal(t, fiscal.Format607, resp.Format)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 0, resp.LineCount)
}

func TestValidateContentInvalidFileIsNotAnError(t *testing.T) {
	svc := NewReportService(1024)

	resp, err := svc.ValidateContent(fiscal.Format606, []byte(""))

	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Equal(t, []string{"Archivo vacío"}, resp.Errors)
}

func TestValidateContentRejectsOversizeUpload(t *testing.T) {
	svc := NewReportService(8)

	_, err := svc.ValidateContent(fiscal.Format606, []byte("606|131888444|202601|0"))

	assert.Error(t, err)
}

func TestValidateContentRejectsBinaryUpload(t *testing.T) {
	svc := NewReportService(1024)

	_, err := svc.ValidateContent(fiscal.Format606, []byte{0xff, 0xfe, 0x00, 0x80})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestValidateContentCountsDataLines(t *testing.T) {
	svc := NewReportService(1 << 20)
	content := "606|131888444|202601|2\n" +
		strings.Repeat("x|", 9) + "x\n" +
		strings.Repeat("x|", 9) + "x"

	resp, err := svc.ValidateContent(fiscal.Format606, []byte(content))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.LineCount)
}
