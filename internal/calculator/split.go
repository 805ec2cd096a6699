// Package calculator is the allocation engine: pure functions that turn a
// group's items, tip and per-person selections into amounts owed.
//
// Every function here is total. Unparseable tip text counts as zero, a
// selection that names a deleted item contributes nothing, and a share whose
// denominator would be zero contributes nothing. Amounts are returned
// unrounded; round only for display.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/money"
)

// Subtotal is the sum of price × quantity over all items.
func Subtotal(items []models.Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineCost())
	}
	return sum
}

// TipAmount computes the tip for a subtotal.
// Percent mode takes tip.Value percent of the subtotal; any other mode uses
// tip.Value as an absolute amount. Negative values are passed through.
func TipAmount(subtotal decimal.Decimal, tip models.TipSpec) decimal.Decimal {
	value, err := money.ParseAmount(tip.Value)
	if err != nil {
		return decimal.Zero
	}
	if tip.Mode == models.TipModePercent {
		return money.Percent(subtotal, value)
	}
	return value
}

// Total is subtotal plus tip.
func Total(items []models.Item, tip models.TipSpec) decimal.Decimal {
	subtotal := Subtotal(items)
	return subtotal.Add(TipAmount(subtotal, tip))
}

// PersonAmount is what one person owes.
//
// Each selected item's line cost is divided evenly among the people who
// selected that item; a "tip" selection takes an even share of the tip among
// the people who selected the tip. Shares are computed per item, not as a
// fraction of the total.
func PersonAmount(person models.Person, items []models.Item, people []models.Person, tip models.TipSpec) decimal.Decimal {
	return newAllocator(items, people, tip).personAmount(person)
}

// TotalAssigned sums PersonAmount over all people.
func TotalAssigned(people []models.Person, items []models.Item, tip models.TipSpec) decimal.Decimal {
	a := newAllocator(items, people, tip)
	sum := decimal.Zero
	for _, p := range people {
		sum = sum.Add(a.personAmount(p))
	}
	return sum
}

// IsBalanced reports whether the assigned amounts cover the total to within
// one minor unit.
func IsBalanced(total, totalAssigned decimal.Decimal) bool {
	return total.Sub(totalAssigned).Abs().LessThan(money.Epsilon)
}

// EqualSplitPerPerson divides total by a headcount. ok is false when n is
// not positive.
func EqualSplitPerPerson(total decimal.Decimal, n int) (share decimal.Decimal, ok bool) {
	if n <= 0 {
		return decimal.Zero, false
	}
	return total.Div(decimal.NewFromInt(int64(n))), true
}

// allocator caches the lookups shared by every person of one group snapshot.
type allocator struct {
	items     map[string]models.Item
	sharers   map[string]int
	tipAmount decimal.Decimal
}

func newAllocator(items []models.Item, people []models.Person, tip models.TipSpec) *allocator {
	a := &allocator{
		items:     make(map[string]models.Item, len(items)),
		sharers:   make(map[string]int),
		tipAmount: TipAmount(Subtotal(items), tip),
	}
	for _, item := range items {
		if _, dup := a.items[item.ID]; !dup {
			a.items[item.ID] = item
		}
	}
	for _, p := range people {
		seen := make(map[string]bool, len(p.SelectedItems))
		for _, ref := range p.SelectedItems {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			a.sharers[ref]++
		}
	}
	return a
}

func (a *allocator) personAmount(person models.Person) decimal.Decimal {
	amount := decimal.Zero
	seen := make(map[string]bool, len(person.SelectedItems))
	for _, ref := range person.SelectedItems {
		n := a.sharers[ref]
		if n == 0 || seen[ref] {
			continue
		}
		seen[ref] = true
		divisor := decimal.NewFromInt(int64(n))

		if ref == models.TipRef {
			amount = amount.Add(a.tipAmount.Div(divisor))
			continue
		}
		item, ok := a.items[ref]
		if !ok {
			continue
		}
		amount = amount.Add(item.LineCost().Div(divisor))
	}
	return amount
}
