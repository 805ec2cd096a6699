package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/pkg/api"
)

const (
	// SplitServiceName is the fully-qualified name of the SplitService.
	SplitServiceName = "fairs.v1.SplitService"

	// Procedure paths, one per RPC.
	SplitServiceAddItemProcedure             = "/fairs.v1.SplitService/AddItem"
	SplitServiceUpdateItemProcedure          = "/fairs.v1.SplitService/UpdateItem"
	SplitServiceSetItemMultiplierProcedure   = "/fairs.v1.SplitService/SetItemMultiplier"
	SplitServiceDeleteItemProcedure          = "/fairs.v1.SplitService/DeleteItem"
	SplitServiceAddPersonProcedure           = "/fairs.v1.SplitService/AddPerson"
	SplitServiceUpdatePersonProcedure        = "/fairs.v1.SplitService/UpdatePerson"
	SplitServiceDeletePersonProcedure        = "/fairs.v1.SplitService/DeletePerson"
	SplitServiceToggleItemForPersonProcedure = "/fairs.v1.SplitService/ToggleItemForPerson"
	SplitServiceTogglePersonPaidProcedure    = "/fairs.v1.SplitService/TogglePersonPaid"
	SplitServiceComputeAllocationProcedure   = "/fairs.v1.SplitService/ComputeAllocation"
	SplitServiceGetSettlementProcedure       = "/fairs.v1.SplitService/GetSettlement"
)

// SplitServiceHandler is implemented by the server side of fairs.v1.SplitService.
type SplitServiceHandler interface {
	AddItem(context.Context, *connect.Request[api.AddItemRequest]) (*connect.Response[api.GroupUpdate], error)
	UpdateItem(context.Context, *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.GroupUpdate], error)
	SetItemMultiplier(context.Context, *connect.Request[api.SetItemMultiplierRequest]) (*connect.Response[api.GroupUpdate], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.GroupUpdate], error)
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.GroupUpdate], error)
	UpdatePerson(context.Context, *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.GroupUpdate], error)
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.GroupUpdate], error)
	ToggleItemForPerson(context.Context, *connect.Request[api.ToggleItemForPersonRequest]) (*connect.Response[api.GroupUpdate], error)
	TogglePersonPaid(context.Context, *connect.Request[api.TogglePersonPaidRequest]) (*connect.Response[api.GroupUpdate], error)
	ComputeAllocation(context.Context, *connect.Request[api.ComputeAllocationRequest]) (*connect.Response[api.Allocation], error)
	GetSettlement(context.Context, *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.Settlement], error)
}

// NewSplitServiceHandler builds an HTTP handler for every SplitService RPC and
// returns it with the path prefix to mount it on.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.WithJSON()}, opts...)
	routes := map[string]http.Handler{
		SplitServiceAddItemProcedure:             connect.NewUnaryHandler(SplitServiceAddItemProcedure, svc.AddItem, opts...),
		SplitServiceUpdateItemProcedure:          connect.NewUnaryHandler(SplitServiceUpdateItemProcedure, svc.UpdateItem, opts...),
		SplitServiceSetItemMultiplierProcedure:   connect.NewUnaryHandler(SplitServiceSetItemMultiplierProcedure, svc.SetItemMultiplier, opts...),
		SplitServiceDeleteItemProcedure:          connect.NewUnaryHandler(SplitServiceDeleteItemProcedure, svc.DeleteItem, opts...),
		SplitServiceAddPersonProcedure:           connect.NewUnaryHandler(SplitServiceAddPersonProcedure, svc.AddPerson, opts...),
		SplitServiceUpdatePersonProcedure:        connect.NewUnaryHandler(SplitServiceUpdatePersonProcedure, svc.UpdatePerson, opts...),
		SplitServiceDeletePersonProcedure:        connect.NewUnaryHandler(SplitServiceDeletePersonProcedure, svc.DeletePerson, opts...),
		SplitServiceToggleItemForPersonProcedure: connect.NewUnaryHandler(SplitServiceToggleItemForPersonProcedure, svc.ToggleItemForPerson, opts...),
		SplitServiceTogglePersonPaidProcedure:    connect.NewUnaryHandler(SplitServiceTogglePersonPaidProcedure, svc.TogglePersonPaid, opts...),
		SplitServiceComputeAllocationProcedure:   connect.NewUnaryHandler(SplitServiceComputeAllocationProcedure, svc.ComputeAllocation, opts...),
		SplitServiceGetSettlementProcedure:       connect.NewUnaryHandler(SplitServiceGetSettlementProcedure, svc.GetSettlement, opts...),
	}
	return "/" + SplitServiceName + "/", router(routes)
}

// SplitServiceClient is a client for fairs.v1.SplitService.
type SplitServiceClient interface {
	SplitServiceHandler
}

type splitServiceClient struct {
	addItem             *connect.Client[api.AddItemRequest, api.GroupUpdate]
	updateItem          *connect.Client[api.UpdateItemRequest, api.GroupUpdate]
	setItemMultiplier   *connect.Client[api.SetItemMultiplierRequest, api.GroupUpdate]
	deleteItem          *connect.Client[api.DeleteItemRequest, api.GroupUpdate]
	addPerson           *connect.Client[api.AddPersonRequest, api.GroupUpdate]
	updatePerson        *connect.Client[api.UpdatePersonRequest, api.GroupUpdate]
	deletePerson        *connect.Client[api.DeletePersonRequest, api.GroupUpdate]
	toggleItemForPerson *connect.Client[api.ToggleItemForPersonRequest, api.GroupUpdate]
	togglePersonPaid    *connect.Client[api.TogglePersonPaidRequest, api.GroupUpdate]
	computeAllocation   *connect.Client[api.ComputeAllocationRequest, api.Allocation]
	getSettlement       *connect.Client[api.GetSettlementRequest, api.Settlement]
}

// NewSplitServiceClient returns a client for the SplitService served at baseURL,
// e.g. http://127.0.0.1:8080.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.WithJSON()}, opts...)
	return &splitServiceClient{
		addItem:             connect.NewClient[api.AddItemRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceAddItemProcedure, opts...),
		updateItem:          connect.NewClient[api.UpdateItemRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceUpdateItemProcedure, opts...),
		setItemMultiplier:   connect.NewClient[api.SetItemMultiplierRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceSetItemMultiplierProcedure, opts...),
		deleteItem:          connect.NewClient[api.DeleteItemRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceDeleteItemProcedure, opts...),
		addPerson:           connect.NewClient[api.AddPersonRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceAddPersonProcedure, opts...),
		updatePerson:        connect.NewClient[api.UpdatePersonRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceUpdatePersonProcedure, opts...),
		deletePerson:        connect.NewClient[api.DeletePersonRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceDeletePersonProcedure, opts...),
		toggleItemForPerson: connect.NewClient[api.ToggleItemForPersonRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceToggleItemForPersonProcedure, opts...),
		togglePersonPaid:    connect.NewClient[api.TogglePersonPaidRequest, api.GroupUpdate](httpClient, baseURL+SplitServiceTogglePersonPaidProcedure, opts...),
		computeAllocation:   connect.NewClient[api.ComputeAllocationRequest, api.Allocation](httpClient, baseURL+SplitServiceComputeAllocationProcedure, opts...),
		getSettlement:       connect.NewClient[api.GetSettlementRequest, api.Settlement](httpClient, baseURL+SplitServiceGetSettlementProcedure, opts...),
	}
}

// AddItem calls fairs.v1.SplitService.AddItem.
func (c *splitServiceClient) AddItem(ctx context.Context, req *connect.Request[api.AddItemRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.addItem.CallUnary(ctx, req)
}

// UpdateItem calls fairs.v1.SplitService.UpdateItem.
func (c *splitServiceClient) UpdateItem(ctx context.Context, req *connect.Request[api.UpdateItemRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.updateItem.CallUnary(ctx, req)
}

// SetItemMultiplier calls fairs.v1.SplitService.SetItemMultiplier.
func (c *splitServiceClient) SetItemMultiplier(ctx context.Context, req *connect.Request[api.SetItemMultiplierRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.setItemMultiplier.CallUnary(ctx, req)
}

// DeleteItem calls fairs.v1.SplitService.DeleteItem.
func (c *splitServiceClient) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

// AddPerson calls fairs.v1.SplitService.AddPerson.
func (c *splitServiceClient) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.addPerson.CallUnary(ctx, req)
}

// UpdatePerson calls fairs.v1.SplitService.UpdatePerson.
func (c *splitServiceClient) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.updatePerson.CallUnary(ctx, req)
}

// DeletePerson calls fairs.v1.SplitService.DeletePerson.
func (c *splitServiceClient) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

// ToggleItemForPerson calls fairs.v1.SplitService.ToggleItemForPerson.
func (c *splitServiceClient) ToggleItemForPerson(ctx context.Context, req *connect.Request[api.ToggleItemForPersonRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.toggleItemForPerson.CallUnary(ctx, req)
}

// TogglePersonPaid calls fairs.v1.SplitService.TogglePersonPaid.
func (c *splitServiceClient) TogglePersonPaid(ctx context.Context, req *connect.Request[api.TogglePersonPaidRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.togglePersonPaid.CallUnary(ctx, req)
}

// ComputeAllocation calls fairs.v1.SplitService.ComputeAllocation.
func (c *splitServiceClient) ComputeAllocation(ctx context.Context, req *connect.Request[api.ComputeAllocationRequest]) (*connect.Response[api.Allocation], error) {
	return c.computeAllocation.CallUnary(ctx, req)
}

// GetSettlement calls fairs.v1.SplitService.GetSettlement.
func (c *splitServiceClient) GetSettlement(ctx context.Context, req *connect.Request[api.GetSettlementRequest]) (*connect.Response[api.Settlement], error) {
	return c.getSettlement.CallUnary(ctx, req)
}
