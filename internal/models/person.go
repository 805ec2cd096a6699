package models

// TipRef is the reserved selection value meaning "this person shares the tip".
const TipRef = "tip"

// Person is a participant in a group.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string

	// Name is the display name.
	Name string

	// SelectedItems holds item IDs and possibly TipRef.
	SelectedItems []string

	// IsPaid records that the person settled up. It has no effect on amounts.
	IsPaid bool
}

// Selects reports whether ref is among the person's selections.
func (p Person) Selects(ref string) bool {
	for _, r := range p.SelectedItems {
		if r == ref {
			return true
		}
	}
	return false
}

func (p *Person) toggle(ref string) bool {
	for i, r := range p.SelectedItems {
		if r == ref {
			p.SelectedItems = append(p.SelectedItems[:i:i], p.SelectedItems[i+1:]...)
			return false
		}
	}
	p.SelectedItems = append(p.SelectedItems, ref)
	return true
}

func (p *Person) drop(ref string) {
	kept := p.SelectedItems[:0:0]
	for _, r := range p.SelectedItems {
		if r != ref {
			kept = append(kept, r)
		}
	}
	p.SelectedItems = kept
}
