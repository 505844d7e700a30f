package fiscal

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// \b keeps TOTAL from matching inside SUBTOTAL.
	reLabeledTotal = regexp.MustCompile(`(?i)\b(?:GRAND\s+TOTAL|TOTAL\s*RD\$|R\.?D\.?\$|TOTAL|MONTO)\s*[:=]?\s*(?:RD\$|\$)?\s*([0-9][0-9.,]*)`)
	reLabeledTax   = regexp.MustCompile(`(?i)\b(?:ITBIS|IMPUESTO|TAX)\s*[:=]?\s*(?:RD\$|\$)?\s*([0-9][0-9.,]*)`)
	reRateTax      = regexp.MustCompile(`(?i)18\s*%\s*[:=]?\s*([0-9][0-9.,]*)`)
	reNumberToken  = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)

	reRNC9     = regexp.MustCompile(`\b\d{9}\b`)
	reCedula11 = regexp.MustCompile(`\b\d{11}\b`)

	reNCFStrict = regexp.MustCompile(`(?i)\b([BE])\s*(01|02|14|15|31|32|44)\s*(\d{8,11})\b`)
	reNCFLoose  = regexp.MustCompile(`(?i)\b([BE])\s*(\d{10,12})\b`)

	reDateDMY = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
	reDateYMD = regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`)

	reNumericLine = regexp.MustCompile(`^[0-9\s.,:$%RD/-]+$`)
	reNameLine    = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ .\-]+$`)
)

// DefaultExpenseCategory is preselected for parsed receipts until the
// user confirms the purchase type (09 = costo de venta).
const DefaultExpenseCategory = "09"

// SupplierFallback marks receipts whose vendor name could not be read and
// needs manual review.
const SupplierFallback = "Suplidor (revisar)"

// ParsedReceipt is the best-effort structured extraction of a receipt's
// fiscal fields. Fields the heuristics could not find hold their defaults;
// nothing here is guaranteed correct. Date is YYYY-MM-DD.
type ParsedReceipt struct {
	SupplierName string          `json:"supplierName"`
	SupplierRNC  string          `json:"supplierRnc"`
	NCF          string          `json:"ncf"`
	Amount       decimal.Decimal `json:"amount"`
	ITBIS        decimal.Decimal `json:"itbis"`
	Category     string          `json:"category"`
	Date         string          `json:"date"`
}

// ParseReceiptText extracts fiscal fields from raw receipt OCR text. Each
// extractor runs independently with its own fallback tiers; one miss never
// blocks the others, and the result is always fully populated.
func ParseReceiptText(rawText string) ParsedReceipt {
	return ParsedReceipt{
		SupplierName: extractSupplierName(rawText),
		SupplierRNC:  extractSupplierRNC(rawText),
		NCF:          extractNCF(rawText),
		Amount:       extractAmount(rawText),
		ITBIS:        extractITBIS(rawText),
		Category:     DefaultExpenseCategory,
		Date:         extractDate(rawText),
	}
}

// IsUseful reports whether extraction found enough to pre-fill a form.
// Callers fall back to manual entry when it returns false.
func (r ParsedReceipt) IsUseful() bool {
	return r.Amount.IsPositive() ||
		r.SupplierRNC != "" ||
		r.NCF != "" ||
		r.SupplierName != SupplierFallback
}

// ---------------- amounts ----------------

var (
	minPlausibleAmount = decimal.NewFromInt(1)
	maxPlausibleAmount = decimal.NewFromInt(100_000_000)
)

// extractAmount looks for a labeled total first; failing that it scans all
// numeric tokens from the bottom of the receipt up and takes the first
// plausible one (totals print near the end).
func extractAmount(text string) decimal.Decimal {
	if m := reLabeledTotal.FindStringSubmatch(text); len(m) > 1 {
		if v, ok := parseMoney(m[1]); ok && v.IsPositive() {
			return v
		}
	}

	tokens := reNumberToken.FindAllString(text, -1)
	for i := len(tokens) - 1; i >= 0; i-- {
		v, ok := parseMoney(tokens[i])
		if !ok {
			continue
		}
		if v.GreaterThanOrEqual(minPlausibleAmount) && v.LessThan(maxPlausibleAmount) {
			return v
		}
	}

	return decimal.Zero
}

// extractITBIS looks for a tax label; failing that, a number next to the
// standard 18% rate marker.
func extractITBIS(text string) decimal.Decimal {
	if m := reLabeledTax.FindStringSubmatch(text); len(m) > 1 {
		if v, ok := parseMoney(m[1]); ok {
			return v
		}
	}
	if m := reRateTax.FindStringSubmatch(text); len(m) > 1 {
		if v, ok := parseMoney(m[1]); ok {
			return v
		}
	}
	return decimal.Zero
}

// parseMoney normalizes an OCR numeric token (thousands separators,
// stray trailing period) into a decimal.
func parseMoney(token string) (decimal.Decimal, bool) {
	token = strings.ReplaceAll(strings.TrimSpace(token), ",", "")
	token = strings.TrimSuffix(token, ".")
	if token == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// ---------------- identifiers ----------------

// extractSupplierRNC prefers a standalone 9-digit run (business RNC) over
// an 11-digit one (cédula): when both could match, the shorter business
// identifier is the more common case on receipts.
func extractSupplierRNC(text string) string {
	if m := reRNC9.FindString(text); m != "" {
		return m
	}
	return reCedula11.FindString(text)
}

// extractNCF tries the strict NCF pattern (known comprobante type codes,
// interior whitespace tolerated) before a loose letter+digits fallback.
func extractNCF(text string) string {
	if m := reNCFStrict.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1] + m[2] + m[3])
	}
	if m := reNCFLoose.FindStringSubmatch(text); m != nil {
		return strings.ToUpper(m[1] + m[2])
	}
	return ""
}

// ---------------- date ----------------

// extractDate normalizes the first date found to YYYY-MM-DD. Dominican
// receipts print DD/MM/YYYY, so that is tried before YYYY-MM-DD; two-digit
// years are read as 20YY. Defaults to today.
func extractDate(text string) string {
	if m := reDateDMY.FindStringSubmatch(text); m != nil {
		day, month, year := m[1], m[2], m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		if len(year) == 4 {
			return year + "-" + pad2(month) + "-" + pad2(day)
		}
	}
	if m := reDateYMD.FindStringSubmatch(text); m != nil {
		return m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3])
	}
	return time.Now().Format("2006-01-02")
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// ---------------- supplier name ----------------

// extractSupplierName scans receipt lines top-down for a likely business
// name. Scanning stops at the first line mentioning RNC or NCF: the name
// prints above the fiscal identifier block. Pure-numeric and
// total/tax/date lines are skipped; a clean letters-only line wins,
// otherwise the first short non-numeric line, otherwise the review
// sentinel.
func extractSupplierName(text string) string {
	fallback := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		if strings.Contains(upper, "RNC") || strings.Contains(upper, "NCF") {
			break
		}
		if reNumericLine.MatchString(line) {
			continue
		}
		if strings.HasPrefix(upper, "TOTAL") ||
			strings.HasPrefix(upper, "ITBIS") ||
			strings.HasPrefix(upper, "FECHA") {
			continue
		}

		if len(line) <= 60 && reNameLine.MatchString(line) {
			return line
		}
		if fallback == "" && len(line) >= 2 && len(line) <= 60 {
			fallback = line
		}
	}

	if fallback != "" {
		return fallback
	}
	return SupplierFallback
}
