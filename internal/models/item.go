package models

import "github.com/shopspring/decimal"

// Item represents a single line item on a bill.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// Name is the display name of the item (e.g., "Pizza", "Beer").
	Name string

	// Price is the unit price of the item.
	Price decimal.Decimal

	// Multiplier is the quantity ordered. Zero or negative values count as 1.
	Multiplier int
}

// Quantity returns the effective multiplier.
func (i Item) Quantity() int {
	if i.Multiplier <= 0 {
		return 1
	}
	return i.Multiplier
}

// LineCost is price times quantity, unrounded.
func (i Item) LineCost() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity())))
}

// ScannedItem is a candidate line produced by the receipt parser.
// It is never persisted; accepted candidates become Items with fresh IDs.
type ScannedItem struct {
	// ID is only unique within one scan.
	ID string

	Name string

	// Price is formatted with exactly two fraction digits, e.g. "8.50".
	Price string

	// Selected defaults to true; the user deselects false positives.
	Selected bool
}
