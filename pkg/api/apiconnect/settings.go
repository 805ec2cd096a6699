package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/pkg/api"
)

const (
	// SettingsServiceName is the fully-qualified name of the SettingsService.
	SettingsServiceName = "fairs.v1.SettingsService"

	// Procedure paths, one per RPC.
	SettingsServiceGetSettingsProcedure    = "/fairs.v1.SettingsService/GetSettings"
	SettingsServiceSetCurrencyProcedure    = "/fairs.v1.SettingsService/SetCurrency"
	SettingsServiceSetThemeProcedure       = "/fairs.v1.SettingsService/SetTheme"
	SettingsServiceListCurrenciesProcedure = "/fairs.v1.SettingsService/ListCurrencies"
)

// SettingsServiceHandler is implemented by the server side of fairs.v1.SettingsService.
type SettingsServiceHandler interface {
	GetSettings(context.Context, *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.Settings], error)
	SetCurrency(context.Context, *connect.Request[api.SetCurrencyRequest]) (*connect.Response[api.Settings], error)
	SetTheme(context.Context, *connect.Request[api.SetThemeRequest]) (*connect.Response[api.Settings], error)
	ListCurrencies(context.Context, *connect.Request[api.ListCurrenciesRequest]) (*connect.Response[api.ListCurrenciesResponse], error)
}

// NewSettingsServiceHandler builds an HTTP handler for every SettingsService RPC and
// returns it with the path prefix to mount it on.
func NewSettingsServiceHandler(svc SettingsServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.WithJSON()}, opts...)
	routes := map[string]http.Handler{
		SettingsServiceGetSettingsProcedure:    connect.NewUnaryHandler(SettingsServiceGetSettingsProcedure, svc.GetSettings, opts...),
		SettingsServiceSetCurrencyProcedure:    connect.NewUnaryHandler(SettingsServiceSetCurrencyProcedure, svc.SetCurrency, opts...),
		SettingsServiceSetThemeProcedure:       connect.NewUnaryHandler(SettingsServiceSetThemeProcedure, svc.SetTheme, opts...),
		SettingsServiceListCurrenciesProcedure: connect.NewUnaryHandler(SettingsServiceListCurrenciesProcedure, svc.ListCurrencies, opts...),
	}
	return "/" + SettingsServiceName + "/", router(routes)
}

// SettingsServiceClient is a client for fairs.v1.SettingsService.
type SettingsServiceClient interface {
	SettingsServiceHandler
}

type settingsServiceClient struct {
	getSettings    *connect.Client[api.GetSettingsRequest, api.Settings]
	setCurrency    *connect.Client[api.SetCurrencyRequest, api.Settings]
	setTheme       *connect.Client[api.SetThemeRequest, api.Settings]
	listCurrencies *connect.Client[api.ListCurrenciesRequest, api.ListCurrenciesResponse]
}

// NewSettingsServiceClient returns a client for the SettingsService served at baseURL,
// e.g. http://127.0.0.1:8080.
func NewSettingsServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettingsServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.WithJSON()}, opts...)
	return &settingsServiceClient{
		getSettings:    connect.NewClient[api.GetSettingsRequest, api.Settings](httpClient, baseURL+SettingsServiceGetSettingsProcedure, opts...),
		setCurrency:    connect.NewClient[api.SetCurrencyRequest, api.Settings](httpClient, baseURL+SettingsServiceSetCurrencyProcedure, opts...),
		setTheme:       connect.NewClient[api.SetThemeRequest, api.Settings](httpClient, baseURL+SettingsServiceSetThemeProcedure, opts...),
		listCurrencies: connect.NewClient[api.ListCurrenciesRequest, api.ListCurrenciesResponse](httpClient, baseURL+SettingsServiceListCurrenciesProcedure, opts...),
	}
}

// GetSettings calls fairs.v1.SettingsService.GetSettings.
func (c *settingsServiceClient) GetSettings(ctx context.Context, req *connect.Request[api.GetSettingsRequest]) (*connect.Response[api.Settings], error) {
	return c.getSettings.CallUnary(ctx, req)
}

// SetCurrency calls fairs.v1.SettingsService.SetCurrency.
func (c *settingsServiceClient) SetCurrency(ctx context.Context, req *connect.Request[api.SetCurrencyRequest]) (*connect.Response[api.Settings], error) {
	return c.setCurrency.CallUnary(ctx, req)
}

// SetTheme calls fairs.v1.SettingsService.SetTheme.
func (c *settingsServiceClient) SetTheme(ctx context.Context, req *connect.Request[api.SetThemeRequest]) (*connect.Response[api.Settings], error) {
	return c.setTheme.CallUnary(ctx, req)
}

// ListCurrencies calls fairs.v1.SettingsService.ListCurrencies.
func (c *settingsServiceClient) ListCurrencies(ctx context.Context, req *connect.Request[api.ListCurrenciesRequest]) (*connect.Response[api.ListCurrenciesResponse], error) {
	return c.listCurrencies.CallUnary(ctx, req)
}
