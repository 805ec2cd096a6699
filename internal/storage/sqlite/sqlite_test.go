package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleGroup(t *testing.T) *models.Group {
	t.Helper()
	g, err := models.NewGroup("Trip to Naxos", "plane", time.Date(2026, time.June, 2, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewGroup failed: %v", err)
	}
	gyros, _ := g.AddItem("Gyros", decimal.RequireFromString("4.50"))
	wine, _ := g.AddItem("Wine", decimal.RequireFromString("18.00"))
	if err := g.SetItemMultiplier(gyros.ID, 3); err != nil {
		t.Fatalf("SetItemMultiplier failed: %v", err)
	}
	alice, _ := g.AddPerson("Alice")
	bob, _ := g.AddPerson("Bob")
	g.ToggleSelection(alice.ID, gyros.ID)
	g.ToggleSelection(alice.ID, models.TipRef)
	g.ToggleSelection(bob.ID, wine.ID)
	g.ToggleSelection(bob.ID, gyros.ID)
	g.TogglePaid(bob.ID)
	g.Tip = models.TipSpec{Value: "10", Mode: models.TipModePercent}
	return g
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup then GetGroup round-trips everything", func(t *testing.T) {
		original := sampleGroup(t)
		if err := store.CreateGroup(ctx, original); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		got, err := store.GetGroup(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}

		if got.Name != original.Name || got.Emoji != "plane" || got.Date != "2/6/2026" {
			t.Errorf("group header mismatch: %+v", got)
		}
		if got.Tip != original.Tip {
			t.Errorf("Tip mismatch: got %+v, want %+v", got.Tip, original.Tip)
		}
		if len(got.Items) != 2 {
			t.Fatalf("Items count mismatch: got %d, want 2", len(got.Items))
		}
		if got.Items[0].Name != "Gyros" || got.Items[0].Multiplier != 3 {
			t.Errorf("first item mismatch: %+v", got.Items[0])
		}
		if !got.Items[1].Price.Equal(decimal.RequireFromString("18")) {
			t.Errorf("Wine price mismatch: got %s", got.Items[1].Price)
		}
		if len(got.People) != 2 {
			t.Fatalf("People count mismatch: got %d, want 2", len(got.People))
		}
		for i, p := range got.People {
			want := original.People[i]
			if p.ID != want.ID || p.Name != want.Name || p.IsPaid != want.IsPaid {
				t.Errorf("person %d mismatch: got %+v, want %+v", i, p, want)
			}
			if len(p.SelectedItems) != len(want.SelectedItems) {
				t.Fatalf("person %d selections mismatch: got %v, want %v", i, p.SelectedItems, want.SelectedItems)
			}
			for j := range p.SelectedItems {
				if p.SelectedItems[j] != want.SelectedItems[j] {
					t.Errorf("person %d selection order mismatch: got %v, want %v", i, p.SelectedItems, want.SelectedItems)
				}
			}
		}
	})

	t.Run("CreateGroup fills ID, CreatedAt and Date", func(t *testing.T) {
		g := &models.Group{Name: "Bare"}
		if err := store.CreateGroup(ctx, g); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if g.ID == "" || g.CreatedAt == 0 || g.Date == "" {
			t.Errorf("expected generated fields, got %+v", g)
		}

		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.Emoji != models.DefaultEmoji {
			t.Errorf("expected default emoji, got %q", got.Emoji)
		}
	})

	t.Run("UpdateGroup replaces children", func(t *testing.T) {
		g := sampleGroup(t)
		if err := store.CreateGroup(ctx, g); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		if err := g.DeleteItem(g.Items[0].ID); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		if err := g.DeletePerson(g.People[0].ID); err != nil {
			t.Fatalf("DeletePerson failed: %v", err)
		}
		g.SetSplitMode(models.SplitModeSeparate, 0)
		if err := store.UpdateGroup(ctx, g); err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}

		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(got.Items) != 1 || got.Items[0].Name != "Wine" {
			t.Errorf("expected only Wine, got %+v", got.Items)
		}
		if len(got.People) != 1 || got.People[0].Name != "Bob" {
			t.Fatalf("expected only Bob, got %+v", got.People)
		}
		if len(got.People[0].SelectedItems) != 1 {
			t.Errorf("expected cascaded selections, got %v", got.People[0].SelectedItems)
		}
		if got.SplitMode != models.SplitModeSeparate {
			t.Errorf("SplitMode mismatch: %s", got.SplitMode)
		}
	})

	t.Run("UpdateGroup on missing group", func(t *testing.T) {
		err := store.UpdateGroup(ctx, &models.Group{ID: "missing", Name: "x"})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("GetGroup returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteGroup cascades", func(t *testing.T) {
		g := sampleGroup(t)
		if err := store.CreateGroup(ctx, g); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if err := store.DeleteGroup(ctx, g.ID); err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}
		if _, err := store.GetGroup(ctx, g.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected deleted group to be gone, got %v", err)
		}

		var orphans int
		store.db.QueryRow("SELECT COUNT(*) FROM selections WHERE group_id = ?", g.ID).Scan(&orphans)
		if orphans != 0 {
			t.Errorf("expected no orphan selections, got %d", orphans)
		}

		if err := store.DeleteGroup(ctx, g.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestListGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i, name := range []string{"First", "Second", "Third"} {
		g := &models.Group{Name: name, CreatedAt: int64(1000 + i)}
		if err := store.CreateGroup(ctx, g); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
	}

	groups, err := store.ListGroups(ctx)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if groups[i].Name != want {
			t.Errorf("group %d: got %s, want %s", i, groups[i].Name, want)
		}
	}
}

func TestSettings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.GetSetting(ctx, storage.SettingCurrency); err != nil || ok {
		t.Fatalf("expected unset setting, got ok=%v err=%v", ok, err)
	}

	for _, v := range []string{"USD", "GBP"} {
		if err := store.SetSetting(ctx, storage.SettingCurrency, v); err != nil {
			t.Fatalf("SetSetting failed: %v", err)
		}
	}

	got, ok, err := store.GetSetting(ctx, storage.SettingCurrency)
	if err != nil || !ok || got != "GBP" {
		t.Errorf("GetSetting = %q, %v, %v; want GBP", got, ok, err)
	}
}

func TestNew_InMemory(t *testing.T) {
	store, err := New(":memory:")
	if err != nil {
		t.Fatalf("New(:memory:) failed: %v", err)
	}
	defer store.Close()

	if err := store.CreateGroup(context.Background(), sampleGroup(t)); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
}

func TestEditGroup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	g := sampleGroup(t)
	if err := store.CreateGroup(ctx, g); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	t.Run("applies and persists the change", func(t *testing.T) {
		edited, err := store.EditGroup(ctx, g.ID, func(group *models.Group) error {
			_, err := group.AddPerson("Carol")
			return err
		})
		if err != nil {
			t.Fatalf("EditGroup failed: %v", err)
		}
		if len(edited.People) != 3 {
			t.Errorf("expected 3 people in result, got %d", len(edited.People))
		}

		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(got.People) != 3 || got.People[2].Name != "Carol" {
			t.Errorf("expected Carol to be stored, got %+v", got.People)
		}
	})

	t.Run("error from fn rolls back", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := store.EditGroup(ctx, g.ID, func(group *models.Group) error {
			group.Name = "Renamed"
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}

		got, err := store.GetGroup(ctx, g.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.Name != "Trip to Naxos" {
			t.Errorf("expected name unchanged, got %q", got.Name)
		}
	})

	t.Run("missing group", func(t *testing.T) {
		called := false
		_, err := store.EditGroup(ctx, "nope", func(*models.Group) error {
			called = true
			return nil
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if called {
			t.Error("fn must not run for a missing group")
		}
	})
}
