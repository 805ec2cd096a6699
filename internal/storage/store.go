// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/fairs/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Setting keys.
const (
	SettingCurrency = "currency"
	SettingTheme    = "theme"
)

// Store defines the interface for group and preference storage.
// A group is always read and written as a whole: the service layer loads a
// snapshot, mutates it through the models package and saves it back.
type Store interface {
	// CreateGroup persists a new group.
	// The group.ID and CreatedAt fields are populated if empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its items, people and selections.
	// Returns an error wrapping ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups returns every group, oldest first.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// UpdateGroup replaces a stored group, including its items and people.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// EditGroup atomically loads a group, applies fn and saves the result.
	// If fn returns an error nothing is saved and that error is returned.
	EditGroup(ctx context.Context, groupID string, fn func(*models.Group) error) (*models.Group, error)

	// DeleteGroup removes a group and everything it owns.
	DeleteGroup(ctx context.Context, groupID string) error

	// GetSetting returns a preference value; ok is false if unset.
	GetSetting(ctx context.Context, key string) (value string, ok bool, err error)

	// SetSetting stores a preference value.
	SetSetting(ctx context.Context, key, value string) error

	// Close releases any resources held by the store.
	Close() error
}
