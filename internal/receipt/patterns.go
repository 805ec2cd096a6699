package receipt

import "regexp"

const currencySymbols = `[$€£¥₹₩₪]`

var (
	// noiseRe matches receipt boilerplate: totals, taxes, payment lines,
	// headers and contact details. Go's \b is ASCII only, so the Greek
	// terms are matched without word boundaries.
	noiseRe = regexp.MustCompile(`(?i)` +
		`\b(?:sub\s*-?\s*total|total|tax(?:es)?|vat|gst|hst|pst|mwst|iva|tva|` +
		`discount|service\s*charge|service|gratuity|tip|tips|` +
		`balance(?:\s*due)?|amount\s*due|change|cash|card|credit|debit|` +
		`visa|mastercard|master\s*card|amex|american\s*express|maestro|discover|paypal|` +
		`payment|paid|tender(?:ed)?|thank(?:s|\s*you)?|order|table|receipt|invoice|` +
		`tel|phone|fax|e-?mail|cashier|server|guest)\b` +
		`|www\.|https?://|\.com\b` +
		`|σύνολο|συνολο|φπα|φ\.π\.α|μετρητά|ευχαριστούμε`)

	// priceOnlyRe matches a line that is nothing but a price.
	priceOnlyRe = regexp.MustCompile(`^` + currencySymbols + `?\s*\d{1,4}[.,]\d{2}$`)

	// trailingPriceRe captures the numeral of a price at the end of a line.
	trailingPriceRe = regexp.MustCompile(currencySymbols + `?\s*(\d{1,4}[.,]\d{2})\s*$`)

	// leadingPriceRe captures the numeral of a price at the start of a line.
	leadingPriceRe = regexp.MustCompile(`^` + currencySymbols + `?\s*(\d{1,4}[.,]\d{2})`)

	quantityPrefixRe = regexp.MustCompile(`^\d+\s*[xX×.\-]\s*`)
	bulletRe         = regexp.MustCompile(`[•·●▪■◦*]+`)
	leadingDashRe    = regexp.MustCompile(`^[-–—]+\s*`)

	timeRe       = regexp.MustCompile(`^\d{1,2}:\d{2}(?::\d{2})?$`)
	datePrefixRe = regexp.MustCompile(`(?i)^date\s*:`)

	// letterRe covers Latin, Latin-1, Latin Extended and Greek/Coptic letters.
	letterRe = regexp.MustCompile(`[A-Za-z\x{00C0}-\x{024F}\x{0370}-\x{03FF}]`)
)

func isNoise(line string) bool {
	return noiseRe.MatchString(line)
}
