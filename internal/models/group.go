package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fairs/internal/money"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrPersonNotFound    = errors.New("person not found")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidMultiplier = errors.New("multiplier must be at least 1")
	ErrInvalidTipMode    = errors.New("tip mode must be money or percent")
	ErrInvalidSplitMode  = errors.New("split mode must be equal or separate")
	ErrInvalidHeadcount  = errors.New("headcount must not be negative")
)

// TipMode says how TipSpec.Value is interpreted.
type TipMode string

const (
	TipModeMoney   TipMode = "money"
	TipModePercent TipMode = "percent"
)

// ParseTipMode validates a tip mode string.
func ParseTipMode(s string) (TipMode, error) {
	switch TipMode(s) {
	case TipModeMoney, TipModePercent:
		return TipMode(s), nil
	case "":
		return TipModeMoney, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTipMode, s)
}

// SplitMode selects how the group total is shared.
type SplitMode string

const (
	// SplitModeEqual divides the total by a headcount.
	SplitModeEqual SplitMode = "equal"
	// SplitModeSeparate allocates per item assignment.
	SplitModeSeparate SplitMode = "separate"
)

// ParseSplitMode validates a split mode string.
func ParseSplitMode(s string) (SplitMode, error) {
	switch SplitMode(s) {
	case SplitModeEqual, SplitModeSeparate:
		return SplitMode(s), nil
	case "":
		return SplitModeEqual, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSplitMode, s)
}

// DefaultEmoji is the icon id used when a group is created without one.
const DefaultEmoji = "beer"

// TipSpec is the tip configuration of a group.
type TipSpec struct {
	// Value is the text the user typed. Empty or unparseable means no tip.
	Value string

	Mode TipMode
}

// Group represents one bill-splitting session.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Friday dinner").
	Name string

	// Emoji is the icon id shown next to the group.
	Emoji string

	// Date is a display string in D/M/YYYY form.
	Date string

	Items  []Item
	People []Person
	Tip    TipSpec

	SplitMode SplitMode

	// Headcount is the divisor for SplitModeEqual. Zero means not set.
	Headcount int

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// NewGroup creates an empty group dated now.
func NewGroup(name, emoji string, now time.Time) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if emoji == "" {
		emoji = DefaultEmoji
	}
	return &Group{
		ID:        uuid.New().String(),
		Name:      name,
		Emoji:     emoji,
		Date:      FormatDate(now),
		Tip:       TipSpec{Mode: TipModeMoney},
		SplitMode: SplitModeEqual,
		CreatedAt: now.Unix(),
	}, nil
}

// FormatDate renders t as D/M/YYYY.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// Rename changes the display name and, when emoji is set, the icon.
func (g *Group) Rename(name, emoji string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	g.Name = name
	if emoji != "" {
		g.Emoji = emoji
	}
	return nil
}

// Item returns the item with the given ID.
func (g *Group) Item(id string) (*Item, bool) {
	for i := range g.Items {
		if g.Items[i].ID == id {
			return &g.Items[i], true
		}
	}
	return nil, false
}

// Person returns the person with the given ID.
func (g *Group) Person(id string) (*Person, bool) {
	for i := range g.People {
		if g.People[i].ID == id {
			return &g.People[i], true
		}
	}
	return nil, false
}

// AddItem appends a new item with quantity 1.
func (g *Group) AddItem(name string, price decimal.Decimal) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrEmptyName
	}
	item := Item{
		ID:         uuid.New().String(),
		Name:       name,
		Price:      price,
		Multiplier: 1,
	}
	g.Items = append(g.Items, item)
	return item, nil
}

// UpdateItem edits name and price, keeping the multiplier.
func (g *Group) UpdateItem(id, name string, price decimal.Decimal) error {
	item, ok := g.Item(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	item.Name = name
	item.Price = price
	return nil
}

// AddScannedItems turns the selected receipt candidates into items with
// fresh IDs. Nothing is added if any selected candidate is invalid.
func (g *Group) AddScannedItems(scanned []ScannedItem) ([]Item, error) {
	var added []Item
	for _, s := range scanned {
		if !s.Selected {
			continue
		}
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		price, err := money.ParsePrice(s.Price)
		if err != nil {
			return nil, fmt.Errorf("scanned item %q: %w", name, err)
		}
		added = append(added, Item{
			ID:         uuid.New().String(),
			Name:       name,
			Price:      price.Round(2),
			Multiplier: 1,
		})
	}
	g.Items = append(g.Items, added...)
	return added, nil
}

// SetItemMultiplier changes an item's quantity.
func (g *Group) SetItemMultiplier(id string, n int) error {
	if n < 1 {
		return ErrInvalidMultiplier
	}
	item, ok := g.Item(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	item.Multiplier = n
	return nil
}

// DeleteItem removes an item and drops its ID from every person's selections.
func (g *Group) DeleteItem(id string) error {
	for i := range g.Items {
		if g.Items[i].ID != id {
			continue
		}
		g.Items = append(g.Items[:i:i], g.Items[i+1:]...)
		for j := range g.People {
			g.People[j].drop(id)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// AddPerson appends a new participant with no selections.
func (g *Group) AddPerson(name string) (Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Person{}, ErrEmptyName
	}
	p := Person{
		ID:            uuid.New().String(),
		Name:          name,
		SelectedItems: []string{},
	}
	g.People = append(g.People, p)
	return p, nil
}

// RenamePerson changes a participant's name.
func (g *Group) RenamePerson(id, name string) error {
	p, ok := g.Person(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// DeletePerson removes a participant.
func (g *Group) DeletePerson(id string) error {
	for i := range g.People {
		if g.People[i].ID == id {
			g.People = append(g.People[:i:i], g.People[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPersonNotFound, id)
}

// ToggleSelection adds ref to or removes it from a person's selections and
// reports whether it is selected afterwards. ref is an item ID or TipRef.
func (g *Group) ToggleSelection(personID, ref string) (bool, error) {
	p, ok := g.Person(personID)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrPersonNotFound, personID)
	}
	if ref != TipRef && !p.Selects(ref) {
		// Unselecting a stale reference is allowed; selecting one is not.
		if _, ok := g.Item(ref); !ok {
			return false, fmt.Errorf("%w: %s", ErrItemNotFound, ref)
		}
	}
	return p.toggle(ref), nil
}

// TogglePaid flips the paid flag and returns the new value.
func (g *Group) TogglePaid(personID string) (bool, error) {
	p, ok := g.Person(personID)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrPersonNotFound, personID)
	}
	p.IsPaid = !p.IsPaid
	return p.IsPaid, nil
}

// SetTip replaces the tip after validating the text. Surrounding
// whitespace is trimmed.
func (g *Group) SetTip(value string, mode TipMode) error {
	if mode != TipModeMoney && mode != TipModePercent {
		return fmt.Errorf("%w: %q", ErrInvalidTipMode, mode)
	}
	value = strings.TrimSpace(value)
	if err := money.ValidateTip(value); err != nil {
		return err
	}
	g.Tip = TipSpec{Value: value, Mode: mode}
	return nil
}

// SetSplitMode switches the split mode. A negative headcount is rejected;
// zero clears it.
func (g *Group) SetSplitMode(mode SplitMode, headcount int) error {
	if mode != SplitModeEqual && mode != SplitModeSeparate {
		return fmt.Errorf("%w: %q", ErrInvalidSplitMode, mode)
	}
	if headcount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHeadcount, headcount)
	}
	g.SplitMode = mode
	g.Headcount = headcount
	return nil
}

// Clone returns a deep copy, suitable as an immutable snapshot.
func (g *Group) Clone() Group {
	c := *g
	if g.Items != nil {
		c.Items = make([]Item, len(g.Items))
		copy(c.Items, g.Items)
	}
	if g.People != nil {
		c.People = make([]Person, len(g.People))
		for i, p := range g.People {
			if p.SelectedItems != nil {
				p.SelectedItems = append(make([]string, 0, len(p.SelectedItems)), p.SelectedItems...)
			}
			c.People[i] = p
		}
	}
	return c
}
