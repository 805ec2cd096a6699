package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/money"
)

// Allocation is the full breakdown of a group's bill.
type Allocation struct {
	Subtotal  decimal.Decimal
	TipAmount decimal.Decimal
	Total     decimal.Decimal

	// PerPerson maps person ID to the amount owed under separate split.
	PerPerson     map[string]decimal.Decimal
	TotalAssigned decimal.Decimal

	// Balanced is true when the per-person amounts cover the total, and for a
	// group that has no people yet.
	Balanced bool

	// TipUnassigned is set when there is a positive tip nobody selected.
	TipUnassigned bool

	// EqualShare is total / headcount for a group in equal split mode.
	// HasEqualShare is false when the headcount is unset.
	EqualShare    decimal.Decimal
	HasEqualShare bool
}

// ComputeAllocation runs the whole engine over one group snapshot.
// The group is not modified; calling it twice yields equal results.
func ComputeAllocation(g models.Group) Allocation {
	subtotal := Subtotal(g.Items)
	tip := TipAmount(subtotal, g.Tip)
	total := subtotal.Add(tip)

	a := newAllocator(g.Items, g.People, g.Tip)
	perPerson := make(map[string]decimal.Decimal, len(g.People))
	assigned := decimal.Zero
	for _, p := range g.People {
		amount := a.personAmount(p)
		perPerson[p.ID] = amount
		assigned = assigned.Add(amount)
	}

	alloc := Allocation{
		Subtotal:      subtotal,
		TipAmount:     tip,
		Total:         total,
		PerPerson:     perPerson,
		TotalAssigned: assigned,
		Balanced:      len(g.People) == 0 || IsBalanced(total, assigned),
		TipUnassigned: !TipAssignment(g).Assigned,
	}
	if g.SplitMode == models.SplitModeEqual {
		alloc.EqualShare, alloc.HasEqualShare = EqualSplitPerPerson(total, g.Headcount)
	}
	return alloc
}

// GroupTotal is the grand total shown in group listings.
func GroupTotal(g models.Group) decimal.Decimal {
	return Total(g.Items, g.Tip)
}

// TipStatus describes who shares the tip.
type TipStatus struct {
	// Required is true when the tip value is positive.
	Required bool
	// Count is the number of people sharing the tip.
	Count int
	// Assigned is false only when a required tip has no sharers.
	Assigned bool
}

// TipAssignment reports whether a positive tip has been given to anyone.
func TipAssignment(g models.Group) TipStatus {
	value, err := money.ParseAmount(g.Tip.Value)
	if err != nil || !value.IsPositive() {
		return TipStatus{Assigned: true}
	}
	count := 0
	for _, p := range g.People {
		if p.Selects(models.TipRef) {
			count++
		}
	}
	return TipStatus{Required: true, Count: count, Assigned: count > 0}
}

// SelectedItemNames lists the display names of a person's selections in
// selection order. The tip shows as "Tip"; stale item IDs are skipped.
func SelectedItemNames(person models.Person, items []models.Item) []string {
	byID := make(map[string]string, len(items))
	for _, item := range items {
		byID[item.ID] = item.Name
	}
	names := make([]string, 0, len(person.SelectedItems))
	for _, ref := range person.SelectedItems {
		if ref == models.TipRef {
			names = append(names, "Tip")
			continue
		}
		if name, ok := byID[ref]; ok {
			names = append(names, name)
		}
	}
	return names
}
