package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/internal/calculator"
	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/money"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/pkg/api"
)

// SplitService implements the Connect SplitService: editing a group's items
// and people, and reading its allocation.
type SplitService struct {
	store storage.Store
}

// NewSplitService creates a new SplitService with the given storage backend.
func NewSplitService(store storage.Store) *SplitService {
	return &SplitService{store: store}
}

// AddItem appends an item with quantity 1.
func (s *SplitService) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("AddItem request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.Name,
		"price", req.Msg.Price,
	)

	return editGroup(ctx, s.store, "AddItem", req.Msg.GroupId, func(g *models.Group) error {
		price, err := money.ParsePrice(req.Msg.Price)
		if err != nil {
			return err
		}
		_, err = g.AddItem(req.Msg.Name, price)
		return err
	})
}

// UpdateItem edits an item's name and price.
func (s *SplitService) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("UpdateItem request received",
		"group_id", req.Msg.GroupId,
		"item_id", req.Msg.ItemId,
	)

	return editGroup(ctx, s.store, "UpdateItem", req.Msg.GroupId, func(g *models.Group) error {
		price, err := money.ParsePrice(req.Msg.Price)
		if err != nil {
			return err
		}
		return g.UpdateItem(req.Msg.ItemId, req.Msg.Name, price)
	})
}

// SetItemMultiplier changes an item's quantity.
func (s *SplitService) SetItemMultiplier(ctx context.Context, req *connect.Request[api.SetItemMultiplierRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("SetItemMultiplier request received",
		"group_id", req.Msg.GroupId,
		"item_id", req.Msg.ItemId,
		"multiplier", req.Msg.Multiplier,
	)

	return editGroup(ctx, s.store, "SetItemMultiplier", req.Msg.GroupId, func(g *models.Group) error {
		return g.SetItemMultiplier(req.Msg.ItemId, int(req.Msg.Multiplier))
	})
}

// DeleteItem removes an item and every selection of it.
func (s *SplitService) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("DeleteItem request received",
		"group_id", req.Msg.GroupId,
		"item_id", req.Msg.ItemId,
	)

	return editGroup(ctx, s.store, "DeleteItem", req.Msg.GroupId, func(g *models.Group) error {
		return g.DeleteItem(req.Msg.ItemId)
	})
}

// AddPerson appends a participant.
func (s *SplitService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("AddPerson request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.Name,
	)

	return editGroup(ctx, s.store, "AddPerson", req.Msg.GroupId, func(g *models.Group) error {
		_, err := g.AddPerson(req.Msg.Name)
		return err
	})
}

// UpdatePerson renames a participant.
func (s *SplitService) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("UpdatePerson request received",
		"group_id", req.Msg.GroupId,
		"person_id", req.Msg.PersonId,
	)

	return editGroup(ctx, s.store, "UpdatePerson", req.Msg.GroupId, func(g *models.Group) error {
		return g.RenamePerson(req.Msg.PersonId, req.Msg.Name)
	})
}

// DeletePerson removes a participant.
func (s *SplitService) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("DeletePerson request received",
		"group_id", req.Msg.GroupId,
		"person_id", req.Msg.PersonId,
	)

	return editGroup(ctx, s.store, "DeletePerson", req.Msg.GroupId, func(g *models.Group) error {
		return g.DeletePerson(req.Msg.PersonId)
	})
}

// ToggleItemForPerson selects or unselects an item, or the tip, for a person.
func (s *SplitService) ToggleItemForPerson(ctx context.Context, req *connect.Request[api.ToggleItemForPersonRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("ToggleItemForPerson request received",
		"group_id", req.Msg.GroupId,
		"person_id", req.Msg.PersonId,
		"item_id", req.Msg.ItemId,
	)

	return editGroup(ctx, s.store, "ToggleItemForPerson", req.Msg.GroupId, func(g *models.Group) error {
		selected, err := g.ToggleSelection(req.Msg.PersonId, req.Msg.ItemId)
		if err != nil {
			return err
		}
		slog.Debug("Selection toggled", "person_id", req.Msg.PersonId, "item_id", req.Msg.ItemId, "selected", selected)
		return nil
	})
}

// TogglePersonPaid flips a participant's paid flag.
func (s *SplitService) TogglePersonPaid(ctx context.Context, req *connect.Request[api.TogglePersonPaidRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("TogglePersonPaid request received",
		"group_id", req.Msg.GroupId,
		"person_id", req.Msg.PersonId,
	)

	return editGroup(ctx, s.store, "TogglePersonPaid", req.Msg.GroupId, func(g *models.Group) error {
		_, err := g.TogglePaid(req.Msg.PersonId)
		return err
	})
}

// ComputeAllocation returns the allocation of the stored group.
func (s *SplitService) ComputeAllocation(ctx context.Context, req *connect.Request[api.ComputeAllocationRequest]) (*connect.Response[api.Allocation], error) {
	slog.Info("ComputeAllocation request received", "group_id", req.Msg.GroupId)

	group, err := s.getGroup(ctx, "ComputeAllocation", req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	alloc := calculator.ComputeAllocation(*group)
	slog.Debug("Allocation computed",
		"group_id", group.ID,
		"total", alloc.Total,
		"total_assigned", alloc.TotalAssigned,
		"balanced", alloc.Balanced,
	)

	return connect.NewResponse(toAPIAllocation(alloc)), nil
}

// GetSettlement returns who owes what and how much is still outstanding.
func (s *SplitService) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.Settlement], error) {
	slog.Info("GetSettlement request received", "group_id", req.Msg.GroupId)

	group, err := s.getGroup(ctx, "GetSettlement", req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	currency, err := currentCurrency(ctx, s.store)
	if err != nil {
		slog.Error("GetSettlement failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	summary := calculator.SettlementSummary(*group)
	people := make([]*api.PersonBalance, len(summary.People))
	for i, b := range summary.People {
		items := []string{}
		if p, ok := group.Person(b.PersonID); ok {
			items = append(items, calculator.SelectedItemNames(*p, group.Items)...)
		}
		people[i] = &api.PersonBalance{
			PersonId: b.PersonID,
			Name:     b.Name,
			Amount:   money.Format(b.Amount),
			IsPaid:   b.IsPaid,
			Items:    items,
		}
	}

	return connect.NewResponse(&api.Settlement{
		People:      people,
		Paid:        money.Format(summary.Paid),
		Outstanding: money.Format(summary.Outstanding),
		Unpaid:      int32(summary.Unpaid),
		Display:     money.FormatWithSymbol(currency.Symbol, summary.Outstanding),
	}), nil
}

func (s *SplitService) getGroup(ctx context.Context, op, groupID string) (*models.Group, error) {
	if groupID == "" {
		return nil, toConnectError(errGroupIDRequired)
	}
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error(op+" failed", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}
	return group, nil
}
