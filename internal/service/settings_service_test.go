package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/fairs/internal/storage/sqlite"
	"github.com/mmynk/fairs/pkg/api"
)

func TestSettings(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	resp, err := c.settings.GetSettings(ctx, connect.NewRequest(&api.GetSettingsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "EUR", resp.Msg.Currency.Code)
	assert.Equal(t, "€", resp.Msg.Currency.Symbol)
	assert.Equal(t, "light", resp.Msg.Theme)

	resp, err = c.settings.SetCurrency(ctx, connect.NewRequest(&api.SetCurrencyRequest{Code: "gbp"}))
	require.NoError(t, err)
	assert.Equal(t, "GBP", resp.Msg.Currency.Code)
	assert.Equal(t, "£", resp.Msg.Currency.Symbol)

	resp, err = c.settings.SetTheme(ctx, connect.NewRequest(&api.SetThemeRequest{Theme: "Dark"}))
	require.NoError(t, err)
	assert.Equal(t, "dark", resp.Msg.Theme)
	assert.Equal(t, "GBP", resp.Msg.Currency.Code)

	_, err = c.settings.SetCurrency(ctx, connect.NewRequest(&api.SetCurrencyRequest{Code: "XYZ"}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = c.settings.SetTheme(ctx, connect.NewRequest(&api.SetThemeRequest{Theme: "sepia"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestListCurrencies(t *testing.T) {
	c := setupTestServer(t)

	resp, err := c.settings.ListCurrencies(context.Background(), connect.NewRequest(&api.ListCurrenciesRequest{}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Currencies, 20)
	assert.Equal(t, "USD", resp.Msg.Currencies[0].Code)
}

func TestEnsureDefaults(t *testing.T) {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	svc := NewSettingsService(store)

	require.NoError(t, svc.EnsureDefaults(ctx, ""))
	require.NoError(t, svc.EnsureDefaults(ctx, "usd"))
	require.NoError(t, svc.EnsureDefaults(ctx, "JPY"), "existing value is kept")
	assert.Error(t, svc.EnsureDefaults(ctx, "ABC"))

	resp, err := svc.GetSettings(ctx, connect.NewRequest(&api.GetSettingsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Msg.Currency.Code)
}
