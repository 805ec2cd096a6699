package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/fairs/internal/calculator"
	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/money"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/pkg/api"
)

var (
	errGroupIDRequired = errors.New("group_id required")
	errDuplicateItemID = errors.New("duplicate item id")
)

// toConnectError maps domain and storage errors onto Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrPersonNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, models.ErrEmptyName),
		errors.Is(err, models.ErrInvalidMultiplier),
		errors.Is(err, models.ErrInvalidTipMode),
		errors.Is(err, models.ErrInvalidSplitMode),
		errors.Is(err, models.ErrInvalidHeadcount),
		errors.Is(err, errGroupIDRequired),
		errors.Is(err, errDuplicateItemID),
		errors.Is(err, errUnknownCurrency),
		errors.Is(err, errUnknownTheme):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// editGroup runs fn against the stored group atomically and returns the
// saved group with its fresh allocation.
func editGroup(ctx context.Context, store storage.Store, op, groupID string, fn func(*models.Group) error) (*connect.Response[api.GroupUpdate], error) {
	if groupID == "" {
		return nil, toConnectError(errGroupIDRequired)
	}

	group, err := store.EditGroup(ctx, groupID, fn)
	if err != nil {
		slog.Error(op+" failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info(op+" successful", "group_id", groupID)
	return connect.NewResponse(groupUpdate(group)), nil
}

func groupUpdate(group *models.Group) *api.GroupUpdate {
	return &api.GroupUpdate{
		Group:      toAPIGroup(group),
		Allocation: toAPIAllocation(calculator.ComputeAllocation(*group)),
	}
}

func toAPIGroup(group *models.Group) *api.Group {
	items := make([]*api.Item, len(group.Items))
	for i, item := range group.Items {
		items[i] = &api.Item{
			Id:         item.ID,
			Name:       item.Name,
			Price:      money.Format(item.Price),
			Multiplier: int32(item.Quantity()),
		}
	}

	people := make([]*api.Person, len(group.People))
	for i, p := range group.People {
		selected := p.SelectedItems
		if selected == nil {
			selected = []string{}
		}
		people[i] = &api.Person{
			Id:            p.ID,
			Name:          p.Name,
			SelectedItems: selected,
			IsPaid:        p.IsPaid,
		}
	}

	return &api.Group{
		Id:        group.ID,
		Name:      group.Name,
		Emoji:     group.Emoji,
		Date:      group.Date,
		Items:     items,
		People:    people,
		TipValue:  group.Tip.Value,
		TipMode:   string(group.Tip.Mode),
		SplitMode: string(group.SplitMode),
		Headcount: int32(group.Headcount),
		CreatedAt: group.CreatedAt,
	}
}

// GroupFromAPI converts a wire group, e.g. one read from an export file, into
// a model. Prices must parse; modes fall back to their defaults when empty.
// Items without an ID get a fresh one; repeated or reserved IDs are rejected.
func GroupFromAPI(in *api.Group) (*models.Group, error) {
	if in == nil {
		return nil, errors.New("group is empty")
	}
	tipMode, err := models.ParseTipMode(in.TipMode)
	if err != nil {
		return nil, err
	}
	splitMode, err := models.ParseSplitMode(in.SplitMode)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		ID:        in.Id,
		Name:      in.Name,
		Emoji:     in.Emoji,
		Date:      in.Date,
		Tip:       models.TipSpec{Value: in.TipValue, Mode: tipMode},
		SplitMode: splitMode,
		Headcount: int(in.Headcount),
		CreatedAt: in.CreatedAt,
	}
	seen := make(map[string]bool, len(in.Items))
	for _, item := range in.Items {
		if item == nil {
			continue
		}
		price, err := money.ParsePrice(item.Price)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item.Name, err)
		}
		id := item.Id
		if id == "" {
			id = uuid.New().String()
		}
		if seen[id] || id == models.TipRef {
			return nil, fmt.Errorf("item %q: %w %q", item.Name, errDuplicateItemID, id)
		}
		seen[id] = true
		group.Items = append(group.Items, models.Item{
			ID:         id,
			Name:       item.Name,
			Price:      price,
			Multiplier: int(item.Multiplier),
		})
	}
	for _, p := range in.People {
		if p == nil {
			continue
		}
		group.People = append(group.People, models.Person{
			ID:            p.Id,
			Name:          p.Name,
			SelectedItems: p.SelectedItems,
			IsPaid:        p.IsPaid,
		})
	}
	return group, nil
}

// ToAPIGroup is the exported form of the wire conversion used by the CLI.
func ToAPIGroup(group *models.Group) *api.Group {
	return toAPIGroup(group)
}

func toAPIAllocation(a calculator.Allocation) *api.Allocation {
	perPerson := make(map[string]string, len(a.PerPerson))
	for id, amount := range a.PerPerson {
		perPerson[id] = money.Format(amount)
	}

	out := &api.Allocation{
		Subtotal:      money.Format(a.Subtotal),
		TipAmount:     money.Format(a.TipAmount),
		Total:         money.Format(a.Total),
		PerPerson:     perPerson,
		TotalAssigned: money.Format(a.TotalAssigned),
		Balanced:      a.Balanced,
		TipUnassigned: a.TipUnassigned,
	}
	if a.HasEqualShare {
		out.EqualShare = money.Format(a.EqualShare)
	}
	return out
}

func toAPIScanned(items []models.ScannedItem) []*api.ScannedItem {
	out := make([]*api.ScannedItem, len(items))
	for i, item := range items {
		out[i] = &api.ScannedItem{
			Id:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Selected: item.Selected,
		}
	}
	return out
}

func fromAPIScanned(items []*api.ScannedItem) []models.ScannedItem {
	out := make([]models.ScannedItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, models.ScannedItem{
			ID:       item.Id,
			Name:     item.Name,
			Price:    item.Price,
			Selected: item.Selected,
		})
	}
	return out
}

func toAPICurrency(c money.Currency) *api.Currency {
	return &api.Currency{Code: c.Code, Symbol: c.Symbol, Name: c.Name}
}
