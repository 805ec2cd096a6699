package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/fairs/internal/metrics"
	"github.com/mmynk/fairs/internal/middleware"
	"github.com/mmynk/fairs/internal/storage/sqlite"
	"github.com/mmynk/fairs/pkg/api"
	"github.com/mmynk/fairs/pkg/api/apiconnect"
)

type testClients struct {
	groups   apiconnect.GroupServiceClient
	split    apiconnect.SplitServiceClient
	receipt  apiconnect.ReceiptServiceClient
	settings apiconnect.SettingsServiceClient
	metrics  *metrics.Metrics
}

// setupTestServer serves every service over httptest, backed by a temp-file
// SQLite store.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	m := metrics.New()
	interceptors := connect.WithInterceptors(middleware.MetricsInterceptor(m), middleware.LoggingInterceptor())

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewGroupServiceHandler(NewGroupService(store), interceptors))
	mux.Handle(apiconnect.NewSplitServiceHandler(NewSplitService(store), interceptors))
	mux.Handle(apiconnect.NewReceiptServiceHandler(NewReceiptService(store, m), interceptors))
	mux.Handle(apiconnect.NewSettingsServiceHandler(NewSettingsService(store), interceptors))

	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})

	return &testClients{
		groups:   apiconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		split:    apiconnect.NewSplitServiceClient(http.DefaultClient, server.URL),
		receipt:  apiconnect.NewReceiptServiceClient(http.DefaultClient, server.URL),
		settings: apiconnect.NewSettingsServiceClient(http.DefaultClient, server.URL),
		metrics:  m,
	}
}

func (c *testClients) createGroup(t *testing.T, name string) *api.Group {
	t.Helper()
	resp, err := c.groups.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func (c *testClients) addItem(t *testing.T, groupID, name, price string) *api.GroupUpdate {
	t.Helper()
	resp, err := c.split.AddItem(context.Background(), connect.NewRequest(&api.AddItemRequest{
		GroupId: groupID, Name: name, Price: price,
	}))
	if err != nil {
		t.Fatalf("AddItem(%s) failed: %v", name, err)
	}
	return resp.Msg
}

func (c *testClients) addPerson(t *testing.T, groupID, name string) *api.GroupUpdate {
	t.Helper()
	resp, err := c.split.AddPerson(context.Background(), connect.NewRequest(&api.AddPersonRequest{
		GroupId: groupID, Name: name,
	}))
	if err != nil {
		t.Fatalf("AddPerson(%s) failed: %v", name, err)
	}
	return resp.Msg
}

func (c *testClients) toggle(t *testing.T, groupID, personID, itemID string) *api.GroupUpdate {
	t.Helper()
	resp, err := c.split.ToggleItemForPerson(context.Background(), connect.NewRequest(&api.ToggleItemForPersonRequest{
		GroupId: groupID, PersonId: personID, ItemId: itemID,
	}))
	if err != nil {
		t.Fatalf("ToggleItemForPerson failed: %v", err)
	}
	return resp.Msg
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}
