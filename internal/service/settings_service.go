package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/internal/money"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/pkg/api"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var (
	errUnknownCurrency = errors.New("unknown currency")
	errUnknownTheme    = errors.New("theme must be light or dark")
)

// SettingsService implements the Connect SettingsService for app-wide
// preferences.
type SettingsService struct {
	store storage.Store
}

// NewSettingsService creates a new SettingsService with the given storage backend.
func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// EnsureDefaults stores the given currency unless one is already set.
// An empty code leaves the built-in default in place.
func (s *SettingsService) EnsureDefaults(ctx context.Context, currencyCode string) error {
	if currencyCode == "" {
		return nil
	}
	c, ok := money.LookupCurrency(strings.ToUpper(currencyCode))
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCurrency, currencyCode)
	}
	_, set, err := s.store.GetSetting(ctx, storage.SettingCurrency)
	if err != nil {
		return err
	}
	if set {
		return nil
	}
	return s.store.SetSetting(ctx, storage.SettingCurrency, c.Code)
}

// GetSettings returns the current currency and theme.
func (s *SettingsService) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.Settings], error) {
	slog.Info("GetSettings request received")

	settings, err := s.load(ctx)
	if err != nil {
		slog.Error("GetSettings failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(settings), nil
}

// SetCurrency changes the display currency. Stored amounts are unaffected.
func (s *SettingsService) SetCurrency(ctx context.Context, req *connect.Request[api.SetCurrencyRequest]) (*connect.Response[api.Settings], error) {
	slog.Info("SetCurrency request received", "code", req.Msg.Code)

	c, ok := money.LookupCurrency(strings.ToUpper(strings.TrimSpace(req.Msg.Code)))
	if !ok {
		return nil, toConnectError(fmt.Errorf("%w: %q", errUnknownCurrency, req.Msg.Code))
	}
	if err := s.store.SetSetting(ctx, storage.SettingCurrency, c.Code); err != nil {
		slog.Error("SetCurrency failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Currency updated", "code", c.Code)
	return s.GetSettings(ctx, connect.NewRequest(&api.GetSettingsRequest{}))
}

// SetTheme stores the light or dark theme preference.
func (s *SettingsService) SetTheme(ctx context.Context, req *connect.Request[api.SetThemeRequest]) (*connect.Response[api.Settings], error) {
	slog.Info("SetTheme request received", "theme", req.Msg.Theme)

	theme := strings.ToLower(strings.TrimSpace(req.Msg.Theme))
	if theme != ThemeLight && theme != ThemeDark {
		return nil, toConnectError(fmt.Errorf("%w: %q", errUnknownTheme, req.Msg.Theme))
	}
	if err := s.store.SetSetting(ctx, storage.SettingTheme, theme); err != nil {
		slog.Error("SetTheme failed", "error", err)
		return nil, toConnectError(err)
	}

	return s.GetSettings(ctx, connect.NewRequest(&api.GetSettingsRequest{}))
}

// ListCurrencies returns the supported currencies in display order.
func (s *SettingsService) ListCurrencies(ctx context.Context, req *connect.Request[api.ListCurrenciesRequest]) (*connect.Response[api.ListCurrenciesResponse], error) {
	currencies := make([]*api.Currency, len(money.Currencies))
	for i, c := range money.Currencies {
		currencies[i] = toAPICurrency(c)
	}
	return connect.NewResponse(&api.ListCurrenciesResponse{Currencies: currencies}), nil
}

func (s *SettingsService) load(ctx context.Context) (*api.Settings, error) {
	currency, err := currentCurrency(ctx, s.store)
	if err != nil {
		return nil, err
	}
	theme, ok, err := s.store.GetSetting(ctx, storage.SettingTheme)
	if err != nil {
		return nil, err
	}
	if !ok {
		theme = ThemeLight
	}
	return &api.Settings{
		Currency: toAPICurrency(currency),
		Theme:    theme,
	}, nil
}

// currentCurrency reads the stored currency, falling back to the default.
func currentCurrency(ctx context.Context, store storage.Store) (money.Currency, error) {
	code, ok, err := store.GetSetting(ctx, storage.SettingCurrency)
	if err != nil {
		return money.Currency{}, err
	}
	if !ok {
		code = money.DefaultCurrencyCode
	}
	return money.CurrencyFor(code), nil
}
