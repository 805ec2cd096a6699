package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/pkg/api"
)

const (
	// ReceiptServiceName is the fully-qualified name of the ReceiptService.
	ReceiptServiceName = "fairs.v1.ReceiptService"

	// Procedure paths, one per RPC.
	ReceiptServiceParseReceiptLinesProcedure  = "/fairs.v1.ReceiptService/ParseReceiptLines"
	ReceiptServiceAcceptScannedItemsProcedure = "/fairs.v1.ReceiptService/AcceptScannedItems"
)

// ReceiptServiceHandler is implemented by the server side of fairs.v1.ReceiptService.
type ReceiptServiceHandler interface {
	ParseReceiptLines(context.Context, *connect.Request[api.ParseReceiptLinesRequest]) (*connect.Response[api.ParseReceiptLinesResponse], error)
	AcceptScannedItems(context.Context, *connect.Request[api.AcceptScannedItemsRequest]) (*connect.Response[api.GroupUpdate], error)
}

// NewReceiptServiceHandler builds an HTTP handler for every ReceiptService RPC and
// returns it with the path prefix to mount it on.
func NewReceiptServiceHandler(svc ReceiptServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.WithJSON()}, opts...)
	routes := map[string]http.Handler{
		ReceiptServiceParseReceiptLinesProcedure:  connect.NewUnaryHandler(ReceiptServiceParseReceiptLinesProcedure, svc.ParseReceiptLines, opts...),
		ReceiptServiceAcceptScannedItemsProcedure: connect.NewUnaryHandler(ReceiptServiceAcceptScannedItemsProcedure, svc.AcceptScannedItems, opts...),
	}
	return "/" + ReceiptServiceName + "/", router(routes)
}

// ReceiptServiceClient is a client for fairs.v1.ReceiptService.
type ReceiptServiceClient interface {
	ReceiptServiceHandler
}

type receiptServiceClient struct {
	parseReceiptLines  *connect.Client[api.ParseReceiptLinesRequest, api.ParseReceiptLinesResponse]
	acceptScannedItems *connect.Client[api.AcceptScannedItemsRequest, api.GroupUpdate]
}

// NewReceiptServiceClient returns a client for the ReceiptService served at baseURL,
// e.g. http://127.0.0.1:8080.
func NewReceiptServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReceiptServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.WithJSON()}, opts...)
	return &receiptServiceClient{
		parseReceiptLines:  connect.NewClient[api.ParseReceiptLinesRequest, api.ParseReceiptLinesResponse](httpClient, baseURL+ReceiptServiceParseReceiptLinesProcedure, opts...),
		acceptScannedItems: connect.NewClient[api.AcceptScannedItemsRequest, api.GroupUpdate](httpClient, baseURL+ReceiptServiceAcceptScannedItemsProcedure, opts...),
	}
}

// ParseReceiptLines calls fairs.v1.ReceiptService.ParseReceiptLines.
func (c *receiptServiceClient) ParseReceiptLines(ctx context.Context, req *connect.Request[api.ParseReceiptLinesRequest]) (*connect.Response[api.ParseReceiptLinesResponse], error) {
	return c.parseReceiptLines.CallUnary(ctx, req)
}

// AcceptScannedItems calls fairs.v1.ReceiptService.AcceptScannedItems.
func (c *receiptServiceClient) AcceptScannedItems(ctx context.Context, req *connect.Request[api.AcceptScannedItemsRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.acceptScannedItems.CallUnary(ctx, req)
}
