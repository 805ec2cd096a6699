package service

import (
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/money"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/pkg/api"
)

func TestGroupFromAPI(t *testing.T) {
	in := &api.Group{
		Id:       "g1",
		Name:     "Picnic",
		TipValue: "5",
		Items: []*api.Item{
			{Id: "i1", Name: "Bread", Price: "2.40", Multiplier: 2},
			nil,
		},
		People: []*api.Person{
			{Id: "p1", Name: "Ana", SelectedItems: []string{"i1", "tip"}},
		},
	}

	g, err := GroupFromAPI(in)
	require.NoError(t, err)
	assert.Equal(t, models.TipModeMoney, g.Tip.Mode)
	assert.Equal(t, models.SplitModeEqual, g.SplitMode)
	require.Len(t, g.Items, 1)
	assert.True(t, decimal.RequireFromString("2.40").Equal(g.Items[0].Price))
	assert.Equal(t, 2, g.Items[0].Multiplier)

	back := ToAPIGroup(g)
	assert.Equal(t, "2.40", back.Items[0].Price)
	assert.Equal(t, []string{"i1", "tip"}, back.People[0].SelectedItems)

	_, err = GroupFromAPI(&api.Group{Items: []*api.Item{{Name: "x", Price: "free"}}})
	assert.ErrorIs(t, err, money.ErrInvalidAmount)

	_, err = GroupFromAPI(&api.Group{SplitMode: "thirds"})
	assert.ErrorIs(t, err, models.ErrInvalidSplitMode)

	_, err = GroupFromAPI(nil)
	assert.Error(t, err)
}

func TestGroupFromAPI_ItemIDs(t *testing.T) {
	g, err := GroupFromAPI(&api.Group{Items: []*api.Item{
		{Name: "Bread", Price: "2.00"},
		{Name: "Wine", Price: "9.00"},
	}})
	require.NoError(t, err)
	require.Len(t, g.Items, 2)
	assert.NotEmpty(t, g.Items[0].ID)
	assert.NotEmpty(t, g.Items[1].ID)
	assert.NotEqual(t, g.Items[0].ID, g.Items[1].ID)

	_, err = GroupFromAPI(&api.Group{
		Items: []*api.Item{
			{Id: "i1", Name: "Bread", Price: "2.00"},
			{Id: "i1", Name: "Wine", Price: "9.00"},
		},
		People: []*api.Person{{Id: "p1", Name: "Ana", SelectedItems: []string{"i1"}}},
	})
	assert.ErrorIs(t, err, errDuplicateItemID)
	assert.Equal(t, connect.CodeInvalidArgument, toConnectError(err).Code())

	_, err = GroupFromAPI(&api.Group{Items: []*api.Item{{Id: models.TipRef, Name: "Tip", Price: "1.00"}}})
	assert.ErrorIs(t, err, errDuplicateItemID)
}

func TestToConnectError(t *testing.T) {
	tests := []struct {
		err  error
		want connect.Code
	}{
		{storage.ErrNotFound, connect.CodeNotFound},
		{models.ErrItemNotFound, connect.CodeNotFound},
		{models.ErrPersonNotFound, connect.CodeNotFound},
		{money.ErrInvalidAmount, connect.CodeInvalidArgument},
		{models.ErrEmptyName, connect.CodeInvalidArgument},
		{models.ErrInvalidHeadcount, connect.CodeInvalidArgument},
		{errGroupIDRequired, connect.CodeInvalidArgument},
		{errDuplicateItemID, connect.CodeInvalidArgument},
		{errors.New("disk full"), connect.CodeInternal},
	}
	for _, tt := range tests {
		if got := toConnectError(tt.err).Code(); got != tt.want {
			t.Errorf("toConnectError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
