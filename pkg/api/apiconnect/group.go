// Package apiconnect wires the Fairs services to Connect handlers and
// clients using the JSON codec from package api.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/pkg/api"
)

const (
	// GroupServiceName is the fully-qualified name of the GroupService.
	GroupServiceName = "fairs.v1.GroupService"

	// Procedure paths, one per RPC.
	GroupServiceCreateGroupProcedure  = "/fairs.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure     = "/fairs.v1.GroupService/GetGroup"
	GroupServiceListGroupsProcedure   = "/fairs.v1.GroupService/ListGroups"
	GroupServiceUpdateGroupProcedure  = "/fairs.v1.GroupService/UpdateGroup"
	GroupServiceDeleteGroupProcedure  = "/fairs.v1.GroupService/DeleteGroup"
	GroupServiceSetTipProcedure       = "/fairs.v1.GroupService/SetTip"
	GroupServiceSetSplitModeProcedure = "/fairs.v1.GroupService/SetSplitMode"
)

// GroupServiceHandler is implemented by the server side of fairs.v1.GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error)
	SetTip(context.Context, *connect.Request[api.SetTipRequest]) (*connect.Response[api.GroupUpdate], error)
	SetSplitMode(context.Context, *connect.Request[api.SetSplitModeRequest]) (*connect.Response[api.GroupUpdate], error)
}

// NewGroupServiceHandler builds an HTTP handler for every GroupService RPC and
// returns it with the path prefix to mount it on.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{api.WithJSON()}, opts...)
	routes := map[string]http.Handler{
		GroupServiceCreateGroupProcedure:  connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		GroupServiceGetGroupProcedure:     connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...),
		GroupServiceListGroupsProcedure:   connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...),
		GroupServiceUpdateGroupProcedure:  connect.NewUnaryHandler(GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts...),
		GroupServiceDeleteGroupProcedure:  connect.NewUnaryHandler(GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opts...),
		GroupServiceSetTipProcedure:       connect.NewUnaryHandler(GroupServiceSetTipProcedure, svc.SetTip, opts...),
		GroupServiceSetSplitModeProcedure: connect.NewUnaryHandler(GroupServiceSetSplitModeProcedure, svc.SetSplitMode, opts...),
	}
	return "/" + GroupServiceName + "/", router(routes)
}

// GroupServiceClient is a client for fairs.v1.GroupService.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error)
	SetTip(context.Context, *connect.Request[api.SetTipRequest]) (*connect.Response[api.GroupUpdate], error)
	SetSplitMode(context.Context, *connect.Request[api.SetSplitModeRequest]) (*connect.Response[api.GroupUpdate], error)
}

type groupServiceClient struct {
	createGroup  *connect.Client[api.CreateGroupRequest, api.CreateGroupResponse]
	getGroup     *connect.Client[api.GetGroupRequest, api.GetGroupResponse]
	listGroups   *connect.Client[api.ListGroupsRequest, api.ListGroupsResponse]
	updateGroup  *connect.Client[api.UpdateGroupRequest, api.UpdateGroupResponse]
	deleteGroup  *connect.Client[api.DeleteGroupRequest, api.DeleteGroupResponse]
	setTip       *connect.Client[api.SetTipRequest, api.GroupUpdate]
	setSplitMode *connect.Client[api.SetSplitModeRequest, api.GroupUpdate]
}

// NewGroupServiceClient returns a client for the GroupService served at baseURL,
// e.g. http://127.0.0.1:8080.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{api.WithJSON()}, opts...)
	return &groupServiceClient{
		createGroup:  connect.NewClient[api.CreateGroupRequest, api.CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		getGroup:     connect.NewClient[api.GetGroupRequest, api.GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listGroups:   connect.NewClient[api.ListGroupsRequest, api.ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		updateGroup:  connect.NewClient[api.UpdateGroupRequest, api.UpdateGroupResponse](httpClient, baseURL+GroupServiceUpdateGroupProcedure, opts...),
		deleteGroup:  connect.NewClient[api.DeleteGroupRequest, api.DeleteGroupResponse](httpClient, baseURL+GroupServiceDeleteGroupProcedure, opts...),
		setTip:       connect.NewClient[api.SetTipRequest, api.GroupUpdate](httpClient, baseURL+GroupServiceSetTipProcedure, opts...),
		setSplitMode: connect.NewClient[api.SetSplitModeRequest, api.GroupUpdate](httpClient, baseURL+GroupServiceSetSplitModeProcedure, opts...),
	}
}

// CreateGroup calls fairs.v1.GroupService.CreateGroup.
func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

// GetGroup calls fairs.v1.GroupService.GetGroup.
func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

// ListGroups calls fairs.v1.GroupService.ListGroups.
func (c *groupServiceClient) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

// UpdateGroup calls fairs.v1.GroupService.UpdateGroup.
func (c *groupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

// DeleteGroup calls fairs.v1.GroupService.DeleteGroup.
func (c *groupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

// SetTip calls fairs.v1.GroupService.SetTip.
func (c *groupServiceClient) SetTip(ctx context.Context, req *connect.Request[api.SetTipRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.setTip.CallUnary(ctx, req)
}

// SetSplitMode calls fairs.v1.GroupService.SetSplitMode.
func (c *groupServiceClient) SetSplitMode(ctx context.Context, req *connect.Request[api.SetSplitModeRequest]) (*connect.Response[api.GroupUpdate], error) {
	return c.setSplitMode.CallUnary(ctx, req)
}

// router dispatches on the exact procedure path.
func router(routes map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}
