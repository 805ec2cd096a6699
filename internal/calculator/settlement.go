package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/fairs/internal/models"
)

// PersonBalance is one person's line in a settlement summary.
type PersonBalance struct {
	PersonID string
	Name     string
	Amount   decimal.Decimal
	IsPaid   bool
}

// Settlement tallies who has paid their share.
type Settlement struct {
	People []PersonBalance

	// Paid is the sum of amounts of people marked paid.
	Paid decimal.Decimal
	// Outstanding is the sum of amounts of people not yet paid.
	Outstanding decimal.Decimal
	// Unpaid counts people not yet marked paid.
	Unpaid int
}

// SettlementSummary computes separate-split amounts and splits them by the
// paid flag. In equal split mode with a headcount, every person's amount is
// the equal share instead.
func SettlementSummary(g models.Group) Settlement {
	alloc := ComputeAllocation(g)

	s := Settlement{
		People:      make([]PersonBalance, 0, len(g.People)),
		Paid:        decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, p := range g.People {
		amount := alloc.PerPerson[p.ID]
		if alloc.HasEqualShare {
			amount = alloc.EqualShare
		}
		s.People = append(s.People, PersonBalance{
			PersonID: p.ID,
			Name:     p.Name,
			Amount:   amount,
			IsPaid:   p.IsPaid,
		})
		if p.IsPaid {
			s.Paid = s.Paid.Add(amount)
		} else {
			s.Outstanding = s.Outstanding.Add(amount)
			s.Unpaid++
		}
	}
	return s
}
