package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/internal/calculator"
	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/money"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/pkg/api"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	store storage.Store
	now   func() time.Time
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store, now: time.Now}
}

// CreateGroup creates a new, empty group dated today.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"emoji", req.Msg.Emoji,
	)

	group, err := models.NewGroup(req.Msg.Name, req.Msg.Emoji, s.now())
	if err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&api.CreateGroupResponse{
		Group: toAPIGroup(group),
	}), nil
}

// GetGroup retrieves a group by ID together with its allocation.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupId)

	if req.Msg.GroupId == "" {
		return nil, toConnectError(errGroupIDRequired)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)

	update := groupUpdate(group)
	return connect.NewResponse(&api.GetGroupResponse{
		Group:      update.Group,
		Allocation: update.Allocation,
	}), nil
}

// ListGroups returns every group with its computed total.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	summaries := make([]*api.GroupSummary, len(groups))
	for i, group := range groups {
		summaries[i] = &api.GroupSummary{
			Id:          group.ID,
			Name:        group.Name,
			Emoji:       group.Emoji,
			Date:        group.Date,
			Total:       money.Format(calculator.GroupTotal(*group)),
			ItemCount:   int32(len(group.Items)),
			PeopleCount: int32(len(group.People)),
		}
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{
		Groups: summaries,
	}), nil
}

// UpdateGroup renames a group and optionally changes its icon and date.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	slog.Info("UpdateGroup request received",
		"group_id", req.Msg.GroupId,
		"name", req.Msg.Name,
	)

	resp, err := editGroup(ctx, s.store, "UpdateGroup", req.Msg.GroupId, func(g *models.Group) error {
		if err := g.Rename(req.Msg.Name, req.Msg.Emoji); err != nil {
			return err
		}
		if date := strings.TrimSpace(req.Msg.Date); date != "" {
			g.Date = date
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.UpdateGroupResponse{
		Group: resp.Msg.Group,
	}), nil
}

// DeleteGroup removes a group by ID.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupId)

	if req.Msg.GroupId == "" {
		return nil, toConnectError(errGroupIDRequired)
	}

	if err := s.store.DeleteGroup(ctx, req.Msg.GroupId); err != nil {
		slog.Error("DeleteGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupId)

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// SetTip stores the tip text and mode. Empty text clears the tip.
func (s *GroupService) SetTip(ctx context.Context, req *connect.Request[api.SetTipRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("SetTip request received",
		"group_id", req.Msg.GroupId,
		"value", req.Msg.Value,
		"mode", req.Msg.Mode,
	)

	return editGroup(ctx, s.store, "SetTip", req.Msg.GroupId, func(g *models.Group) error {
		mode, err := models.ParseTipMode(req.Msg.Mode)
		if err != nil {
			return err
		}
		return g.SetTip(req.Msg.Value, mode)
	})
}

// SetSplitMode switches between equal and separate split.
func (s *GroupService) SetSplitMode(ctx context.Context, req *connect.Request[api.SetSplitModeRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("SetSplitMode request received",
		"group_id", req.Msg.GroupId,
		"mode", req.Msg.Mode,
		"headcount", req.Msg.Headcount,
	)

	return editGroup(ctx, s.store, "SetSplitMode", req.Msg.GroupId, func(g *models.Group) error {
		mode, err := models.ParseSplitMode(req.Msg.Mode)
		if err != nil {
			return err
		}
		return g.SetSplitMode(mode, int(req.Msg.Headcount))
	})
}
