package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/internal/metrics"
	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/receipt"
	"github.com/mmynk/fairs/internal/storage"
	"github.com/mmynk/fairs/pkg/api"
)

// ReceiptService implements the Connect ReceiptService. OCR itself runs on
// the client; this service turns recognized lines into candidate items and
// adds the reviewed candidates to a group.
type ReceiptService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewReceiptService creates a ReceiptService. m may be nil.
func NewReceiptService(store storage.Store, m *metrics.Metrics) *ReceiptService {
	return &ReceiptService{store: store, metrics: m}
}

// ParseReceiptLines extracts candidate items from OCR text lines.
func (s *ReceiptService) ParseReceiptLines(ctx context.Context, req *connect.Request[api.ParseReceiptLinesRequest]) (*connect.Response[api.ParseReceiptLinesResponse], error) {
	slog.Info("ParseReceiptLines request received", "lines", len(req.Msg.Lines))

	result := receipt.Parse(req.Msg.Lines)
	s.metrics.ObserveParse(string(result.Strategy), len(result.Items))

	slog.Info("ParseReceiptLines successful",
		"strategy", result.Strategy,
		"count", len(result.Items),
	)

	return connect.NewResponse(&api.ParseReceiptLinesResponse{
		Items:    toAPIScanned(result.Items),
		Strategy: string(result.Strategy),
	}), nil
}

// AcceptScannedItems adds the selected candidates to a group as new items.
// Unselected candidates are ignored.
func (s *ReceiptService) AcceptScannedItems(ctx context.Context, req *connect.Request[api.AcceptScannedItemsRequest]) (*connect.Response[api.GroupUpdate], error) {
	slog.Info("AcceptScannedItems request received",
		"group_id", req.Msg.GroupId,
		"candidates", len(req.Msg.Items),
	)

	return editGroup(ctx, s.store, "AcceptScannedItems", req.Msg.GroupId, func(g *models.Group) error {
		added, err := g.AddScannedItems(fromAPIScanned(req.Msg.Items))
		if err != nil {
			return err
		}
		slog.Debug("Scanned items accepted", "group_id", g.ID, "count", len(added))
		return nil
	})
}
