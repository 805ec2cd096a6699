package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fairs/internal/models"
)

func TestComputeAllocation(t *testing.T) {
	g := dinner()

	alloc := ComputeAllocation(g)

	assertAmount(t, "20.00", alloc.Subtotal)
	assertAmount(t, "2.00", alloc.TipAmount)
	assertAmount(t, "22.00", alloc.Total)
	assertAmount(t, "22.00", alloc.TotalAssigned)
	require.Len(t, alloc.PerPerson, 2)
	assertAmount(t, "10.00", alloc.PerPerson["a"])
	assertAmount(t, "12.00", alloc.PerPerson["b"])
	assert.True(t, alloc.Balanced)
	assert.False(t, alloc.TipUnassigned)
	assert.False(t, alloc.HasEqualShare, "separate mode has no equal share")
}

func TestComputeAllocation_Idempotent(t *testing.T) {
	g := dinner()
	before := g.Clone()

	first := ComputeAllocation(g)
	second := ComputeAllocation(g)

	assert.Equal(t, first, second)
	assert.Equal(t, before, g, "group must not be mutated")
}

func TestComputeAllocation_Unbalanced(t *testing.T) {
	g := dinner()
	g.People[1].SelectedItems = []string{"i2"} // nobody takes the tip

	alloc := ComputeAllocation(g)

	assertAmount(t, "20.00", alloc.TotalAssigned)
	assert.False(t, alloc.Balanced)
	assert.True(t, alloc.TipUnassigned)
}

func TestComputeAllocation_NoPeopleIsBalanced(t *testing.T) {
	g := dinner()
	g.People = nil

	alloc := ComputeAllocation(g)

	assert.Empty(t, alloc.PerPerson)
	assert.True(t, alloc.Balanced)
}

func TestComputeAllocation_EqualShare(t *testing.T) {
	g := dinner()
	g.SplitMode = models.SplitModeEqual
	g.Headcount = 4

	alloc := ComputeAllocation(g)
	require.True(t, alloc.HasEqualShare)
	assertAmount(t, "5.50", alloc.EqualShare)

	g.Headcount = 0
	alloc = ComputeAllocation(g)
	assert.False(t, alloc.HasEqualShare)
}

func TestTipAssignment(t *testing.T) {
	tests := []struct {
		name   string
		tip    models.TipSpec
		people []models.Person
		want   TipStatus
	}{
		{
			name: "no tip",
			tip:  models.TipSpec{Value: ""},
			want: TipStatus{Assigned: true},
		},
		{
			name: "zero tip",
			tip:  models.TipSpec{Value: "0"},
			want: TipStatus{Assigned: true},
		},
		{
			name:   "positive tip nobody selected",
			tip:    models.TipSpec{Value: "5"},
			people: []models.Person{{ID: "a"}},
			want:   TipStatus{Required: true, Count: 0, Assigned: false},
		},
		{
			name: "positive tip shared by two",
			tip:  models.TipSpec{Value: "10", Mode: models.TipModePercent},
			people: []models.Person{
				{ID: "a", SelectedItems: []string{models.TipRef}},
				{ID: "b", SelectedItems: []string{models.TipRef}},
				{ID: "c"},
			},
			want: TipStatus{Required: true, Count: 2, Assigned: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TipAssignment(models.Group{Tip: tt.tip, People: tt.people})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectedItemNames(t *testing.T) {
	g := dinner()
	p := models.Person{SelectedItems: []string{"i2", "gone", models.TipRef, "i1"}}

	assert.Equal(t, []string{"Beer", "Tip", "Pasta"}, SelectedItemNames(p, g.Items))
}

func TestSettlementSummary(t *testing.T) {
	g := dinner()
	g.People[1].IsPaid = true

	s := SettlementSummary(g)

	require.Len(t, s.People, 2)
	assert.Equal(t, "Alice", s.People[0].Name)
	assertAmount(t, "10.00", s.People[0].Amount)
	assert.False(t, s.People[0].IsPaid)
	assertAmount(t, "12.00", s.Paid)
	assertAmount(t, "10.00", s.Outstanding)
	assert.Equal(t, 1, s.Unpaid)
}

func TestSettlementSummary_EqualMode(t *testing.T) {
	g := dinner()
	g.SplitMode = models.SplitModeEqual
	g.Headcount = 2

	s := SettlementSummary(g)

	for _, p := range s.People {
		assertAmount(t, "11.00", p.Amount)
	}
	assertAmount(t, "22.00", s.Outstanding)
	assert.Equal(t, 2, s.Unpaid)
}

func TestGroupTotal(t *testing.T) {
	assertAmount(t, "22.00", GroupTotal(dinner()))
	assertAmount(t, "0.00", GroupTotal(models.Group{}))
}
