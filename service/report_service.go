package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/facturard/dgii-fiscal-service/dto"
	"github.com/facturard/dgii-fiscal-service/fiscal"
)

// ReportService validates uploaded 606/607 declaration files. Upload
// guards (size, encoding) are request failures; format violations inside
// the file are a validation verdict, never an error.
type ReportService struct {
	maxFileSize int64
}

func NewReportService(maxFileSize int64) *ReportService {
	return &ReportService{maxFileSize: maxFileSize}
}

// ValidateContent runs the declaration validator matching format over the
// uploaded bytes.
func (s *ReportService) ValidateContent(format string, content []byte) (*dto.ReportValidationResponse, error) {
	if int64(len(content)) > s.maxFileSize {
		return nil, fmt.Errorf("file exceeds the %d byte limit", s.maxFileSize)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("file is not valid UTF-8 text")
	}

	text := string(content)
	result := fiscal.ValidateReport(format, text)

	return &dto.ReportValidationResponse{
		Format:    format,
		Valid:     result.Valid,
		Errors:    result.Errors,
		LineCount: countDataLines(text),
	}, nil
}

// countDataLines counts non-blank lines after the header.
func countDataLines(content string) int {
	count := 0
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	if count > 0 {
		count-- // header
	}
	return count
}
