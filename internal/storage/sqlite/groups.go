package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fairs/internal/models"
	"github.com/mmynk/fairs/internal/storage"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const selectGroup = `SELECT id, name, emoji, date, tip_value, tip_mode, split_mode, headcount, created_at FROM groups`

// CreateGroup persists a new group with its items and people.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	if group.Date == "" {
		group.Date = models.FormatDate(time.Unix(group.CreatedAt, 0))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO groups (id, name, emoji, date, tip_value, tip_mode, split_mode, headcount, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		group.ID, group.Name, emojiOrDefault(group.Emoji), group.Date,
		group.Tip.Value, string(group.Tip.Mode), string(group.SplitMode), group.Headcount, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	if err := insertChildren(ctx, tx, group); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateGroup rewrites the group row and replaces all of its children.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := writeGroup(ctx, tx, group); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// EditGroup loads a group, applies fn and writes the result back inside one
// transaction. Nothing is written if fn returns an error.
func (s *SQLiteStore) EditGroup(ctx context.Context, groupID string, fn func(*models.Group) error) (*models.Group, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	group, err := getGroup(ctx, tx, groupID)
	if err != nil {
		return nil, err
	}
	if err := fn(group); err != nil {
		return nil, err
	}
	group.ID = groupID
	if err := writeGroup(ctx, tx, group); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return group, nil
}

func writeGroup(ctx context.Context, tx execer, group *models.Group) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE groups SET name = ?, emoji = ?, date = ?, tip_value = ?, tip_mode = ?, split_mode = ?, headcount = ?
		 WHERE id = ?`,
		group.Name, emojiOrDefault(group.Emoji), group.Date,
		group.Tip.Value, string(group.Tip.Mode), string(group.SplitMode), group.Headcount,
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("group %s: %w", group.ID, storage.ErrNotFound)
	}

	// selections cascade from people
	for _, q := range []string{
		"DELETE FROM people WHERE group_id = ?",
		"DELETE FROM items WHERE group_id = ?",
	} {
		if _, err := tx.ExecContext(ctx, q, group.ID); err != nil {
			return fmt.Errorf("failed to clear group children: %w", err)
		}
	}

	return insertChildren(ctx, tx, group)
}

// DeleteGroup removes a group; items, people and selections cascade.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	return nil
}

// GetGroup retrieves a group by ID, including items, people and selections.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return getGroup(ctx, s.db, groupID)
}

func getGroup(ctx context.Context, q querier, groupID string) (*models.Group, error) {
	group, err := scanGroup(q.QueryRowContext(ctx, selectGroup+" WHERE id = ?", groupID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if err := loadChildren(ctx, q, group); err != nil {
		return nil, err
	}
	return group, nil
}

// ListGroups returns all groups with their children, oldest first.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx, selectGroup+" ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	rows.Close()

	for _, group := range groups {
		if err := loadChildren(ctx, s.db, group); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (*models.Group, error) {
	var (
		group     models.Group
		tipMode   string
		splitMode string
	)
	err := row.Scan(&group.ID, &group.Name, &group.Emoji, &group.Date,
		&group.Tip.Value, &tipMode, &splitMode, &group.Headcount, &group.CreatedAt)
	if err != nil {
		return nil, err
	}
	group.Tip.Mode = models.TipMode(tipMode)
	group.SplitMode = models.SplitMode(splitMode)
	return &group, nil
}

func loadChildren(ctx context.Context, q querier, group *models.Group) error {
	itemRows, err := q.QueryContext(ctx,
		"SELECT id, name, price, multiplier FROM items WHERE group_id = ? ORDER BY position",
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var (
			item  models.Item
			price string
		)
		if err := itemRows.Scan(&item.ID, &item.Name, &price, &item.Multiplier); err != nil {
			return fmt.Errorf("failed to scan item: %w", err)
		}
		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return fmt.Errorf("item %s has invalid price %q: %w", item.ID, price, err)
		}
		group.Items = append(group.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate items: %w", err)
	}

	selections, err := loadSelections(ctx, q, group.ID)
	if err != nil {
		return err
	}

	peopleRows, err := q.QueryContext(ctx,
		"SELECT id, name, is_paid FROM people WHERE group_id = ? ORDER BY position",
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get people: %w", err)
	}
	defer peopleRows.Close()

	for peopleRows.Next() {
		var p models.Person
		if err := peopleRows.Scan(&p.ID, &p.Name, &p.IsPaid); err != nil {
			return fmt.Errorf("failed to scan person: %w", err)
		}
		p.SelectedItems = selections[p.ID]
		if p.SelectedItems == nil {
			p.SelectedItems = []string{}
		}
		group.People = append(group.People, p)
	}
	if err := peopleRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate people: %w", err)
	}
	return nil
}

func loadSelections(ctx context.Context, q querier, groupID string) (map[string][]string, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT person_id, ref FROM selections WHERE group_id = ? ORDER BY person_id, position",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get selections: %w", err)
	}
	defer rows.Close()

	selections := make(map[string][]string)
	for rows.Next() {
		var personID, ref string
		if err := rows.Scan(&personID, &ref); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		selections[personID] = append(selections[personID], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate selections: %w", err)
	}
	return selections, nil
}

func insertChildren(ctx context.Context, tx execer, group *models.Group) error {
	for i := range group.Items {
		item := &group.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO items (group_id, id, position, name, price, multiplier) VALUES (?, ?, ?, ?, ?, ?)",
			group.ID, item.ID, i, item.Name, item.Price.String(), item.Quantity(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}
	}

	for i := range group.People {
		p := &group.People[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO people (group_id, id, position, name, is_paid) VALUES (?, ?, ?, ?, ?)",
			group.ID, p.ID, i, p.Name, p.IsPaid,
		)
		if err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}

		seen := make(map[string]bool, len(p.SelectedItems))
		for j, ref := range p.SelectedItems {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			_, err := tx.ExecContext(ctx,
				"INSERT INTO selections (group_id, person_id, position, ref) VALUES (?, ?, ?, ?)",
				group.ID, p.ID, j, ref,
			)
			if err != nil {
				return fmt.Errorf("failed to insert selection: %w", err)
			}
		}
	}
	return nil
}

func emojiOrDefault(emoji string) string {
	if emoji == "" {
		return models.DefaultEmoji
	}
	return emoji
}
