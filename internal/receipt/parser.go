// Package receipt turns OCR text lines into candidate bill items.
//
// Two heuristics run in a fixed order. The inline strategy reads lines that
// end in a price ("Burger 8.50"). Only when it finds nothing does the split
// strategy run, for printers that put names and prices on separate lines;
// it pairs the two columns by position, which is a best-effort guess.
// Results always go through user review, so the parser favours recall.
package receipt

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lucsky/cuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fairs/internal/models"
)

// Strategy names the heuristic that produced a result.
type Strategy string

const (
	StrategyNone   Strategy = "none"
	StrategyInline Strategy = "inline"
	StrategySplit  Strategy = "split"
)

var maxPrice = decimal.NewFromInt(999)

// Result is the outcome of one parse.
type Result struct {
	Items    []models.ScannedItem
	Strategy Strategy
}

// ParseLines returns the candidate items for a receipt, or an empty slice.
func ParseLines(lines []string) []models.ScannedItem {
	return Parse(lines).Items
}

// Parse runs the inline strategy and falls back to the split strategy.
func Parse(lines []string) Result {
	cleaned := preprocess(lines)

	if items := parseInline(cleaned); len(items) > 0 {
		return Result{Items: items, Strategy: StrategyInline}
	}
	if items := parseSplit(cleaned); len(items) > 0 {
		return Result{Items: items, Strategy: StrategySplit}
	}
	return Result{Items: []models.ScannedItem{}, Strategy: StrategyNone}
}

func preprocess(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < 2 {
			continue
		}
		out = append(out, line)
	}
	return out
}

func parseInline(lines []string) []models.ScannedItem {
	var items []models.ScannedItem
	for _, line := range lines {
		if isNoise(line) || priceOnlyRe.MatchString(line) {
			continue
		}
		m := trailingPriceRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		price, ok := parsePrice(line[m[2]:m[3]])
		if !ok || !price.IsPositive() {
			continue
		}
		name := cleanName(line[:m[0]])
		if utf8.RuneCountInString(name) < 2 {
			continue
		}
		items = append(items, newScanned(name, price))
	}
	return items
}

func parseSplit(lines []string) []models.ScannedItem {
	var names []string
	var prices []decimal.Decimal
	for _, line := range lines {
		if isNoise(line) || timeRe.MatchString(line) || datePrefixRe.MatchString(line) {
			continue
		}
		if m := leadingPriceRe.FindStringSubmatch(line); m != nil {
			if price, ok := parsePrice(m[1]); ok {
				prices = append(prices, price)
				continue
			}
		}
		if letterRe.MatchString(line) {
			names = append(names, line)
		}
	}

	prices = dropLargest(prices, len(prices)-len(names))

	n := min(len(names), len(prices))
	items := make([]models.ScannedItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, newScanned(names[i], prices[i]))
	}
	return items
}

// dropLargest removes the k largest prices, keeping the order of the rest.
// Extra prices on a split-column receipt are usually totals and tax lines,
// which tend to be the largest values.
func dropLargest(prices []decimal.Decimal, k int) []decimal.Decimal {
	if k <= 0 {
		return prices
	}
	idx := make([]int, len(prices))
	for i := range idx {
		idx[i] = i
	}
	// Largest first; among equal prices the earliest goes first.
	sort.SliceStable(idx, func(a, b int) bool {
		return prices[idx[a]].GreaterThan(prices[idx[b]])
	})
	drop := make(map[int]bool, k)
	for _, i := range idx[:k] {
		drop[i] = true
	}
	kept := make([]decimal.Decimal, 0, len(prices)-k)
	for i, p := range prices {
		if !drop[i] {
			kept = append(kept, p)
		}
	}
	return kept
}

// parsePrice reads a matched numeral, accepting a comma decimal separator,
// and applies the sanity bound.
func parsePrice(numeral string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.Replace(numeral, ",", ".", 1))
	if err != nil || d.GreaterThan(maxPrice) {
		return decimal.Zero, false
	}
	return d, true
}

func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	name = quantityPrefixRe.ReplaceAllString(name, "")
	name = bulletRe.ReplaceAllString(name, "")
	name = leadingDashRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

func newScanned(name string, price decimal.Decimal) models.ScannedItem {
	return models.ScannedItem{
		ID:       cuid.New(),
		Name:     name,
		Price:    price.StringFixed(2),
		Selected: true,
	}
}
