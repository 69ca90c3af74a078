package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jredh-dev/whereisit/pkg/models"
)

// validID reports whether id is a structurally valid identifier.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

const itemColumns = `id, post_type, title, description, category, location, thumbnail, date, contact_name, email, status, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(
		&item.ID, &item.PostType, &item.Title, &item.Description,
		&item.Category, &item.Location, &item.Thumbnail, &item.Date,
		&item.ContactName, &item.Email, &item.Status,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return item, err
}

// CreateItem persists a new item and returns its assigned id.
// Status defaults to open when the input leaves it unset.
func (db *DB) CreateItem(in *models.ItemInput) (string, error) {
	status := in.Status
	if status == "" {
		status = models.ItemStatusOpen
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	const q = `INSERT INTO items (id, post_type, title, description, category, location, thumbnail, date, contact_name, email, status, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.conn.Exec(q,
		id, in.PostType, in.Title, in.Description, in.Category,
		in.Location, in.Thumbnail, in.Date, in.ContactName, in.Email,
		status, now, now,
	)
	if err != nil {
		return "", fmt.Errorf("insert item: %w", err)
	}
	return id, nil
}

// GetItem returns an item by id. ErrInvalidID for malformed ids,
// ErrNotFound when no item matches.
func (db *DB) GetItem(id string) (*models.Item, error) {
	if !validID(id) {
		return nil, ErrInvalidID
	}
	q := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	return scanItem(db.conn.QueryRow(q, id))
}

// ListItems returns items according to the query plan, materialized in
// one pass. The zero plan yields all items in insertion order.
func (db *DB) ListItems(lq ListQuery) ([]models.Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items`
	if lq.DateDesc {
		q += ` ORDER BY date DESC`
	} else {
		q += ` ORDER BY rowid`
	}
	var args []any
	if lq.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, lq.Limit)
	}

	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.PostType, &item.Title, &item.Description,
			&item.Category, &item.Location, &item.Thumbnail, &item.Date,
			&item.ContactName, &item.Email, &item.Status,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem replaces all mutable fields of an item and returns the
// modified count. A well-formed id with no matching item yields 0, not
// an error.
func (db *DB) UpdateItem(id string, in *models.ItemInput) (int64, error) {
	if !validID(id) {
		return 0, ErrInvalidID
	}

	const q = `UPDATE items SET post_type = ?, title = ?, description = ?, category = ?,
	           location = ?, thumbnail = ?, date = ?, contact_name = ?, email = ?, updated_at = ?
	           WHERE id = ?`
	res, err := db.conn.Exec(q,
		in.PostType, in.Title, in.Description, in.Category,
		in.Location, in.Thumbnail, in.Date, in.ContactName, in.Email,
		time.Now().UTC(), id,
	)
	if err != nil {
		return 0, fmt.Errorf("update item: %w", err)
	}
	return res.RowsAffected()
}

// PatchItemStatus sets the status of an item. ErrNotFound when no item
// matches. The patch is unconditional: it does not consult recoveries.
func (db *DB) PatchItemStatus(id string, status models.ItemStatus) (int64, error) {
	if !validID(id) {
		return 0, ErrInvalidID
	}

	const q = `UPDATE items SET status = ?, updated_at = ? WHERE id = ?`
	res, err := db.conn.Exec(q, status, time.Now().UTC(), id)
	if err != nil {
		return 0, fmt.Errorf("patch item status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

// DeleteItem removes an item. Deletion is physical; there is no
// soft-delete.
func (db *DB) DeleteItem(id string) error {
	if !validID(id) {
		return ErrInvalidID
	}

	res, err := db.conn.Exec(`DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
