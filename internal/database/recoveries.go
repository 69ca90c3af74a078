package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jredh-dev/whereisit/pkg/models"
)

const recoveryColumns = `id, original_item_id, recovered_by_name, recovered_by_email, recovered_location, recovered_date, created_at`

func scanRecovery(row interface{ Scan(...any) error }) (*models.Recovery, error) {
	rec := &models.Recovery{}
	err := row.Scan(
		&rec.ID, &rec.OriginalItemID,
		&rec.RecoveredBy.Name, &rec.RecoveredBy.Email,
		&rec.RecoveredLocation, &rec.RecoveredDate, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return rec, err
}

// CreateRecovery persists a recovery claim and returns its assigned id.
// At most one claim may exist per original item: a duplicate yields
// ErrAlreadyRecovered and nothing is inserted. The pre-check catches the
// common case; the UNIQUE index on original_item_id closes the window
// against a concurrent claim for the same item.
//
// Creating a claim does not change the referenced item's status; that
// happens only through an explicit status patch.
func (db *DB) CreateRecovery(in *models.RecoveryInput) (string, error) {
	if !validID(in.OriginalItemID) {
		return "", ErrInvalidID
	}

	var existing string
	err := db.conn.QueryRow(
		`SELECT id FROM recoveries WHERE original_item_id = ?`, in.OriginalItemID,
	).Scan(&existing)
	if err == nil {
		return "", ErrAlreadyRecovered
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("check existing recovery: %w", err)
	}

	id := uuid.New().String()
	const q = `INSERT INTO recoveries (id, original_item_id, recovered_by_name, recovered_by_email, recovered_location, recovered_date, created_at)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = db.conn.Exec(q,
		id, in.OriginalItemID, in.RecoveredBy.Name, in.RecoveredBy.Email,
		in.RecoveredLocation, in.RecoveredDate, time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrAlreadyRecovered
		}
		return "", fmt.Errorf("insert recovery: %w", err)
	}
	return id, nil
}

// ListRecoveriesByEmail returns all recovery claims whose claimant email
// matches, in store order.
func (db *DB) ListRecoveriesByEmail(email string) ([]models.Recovery, error) {
	q := `SELECT ` + recoveryColumns + ` FROM recoveries WHERE recovered_by_email = ? ORDER BY rowid`
	rows, err := db.conn.Query(q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recoveries []models.Recovery
	for rows.Next() {
		var rec models.Recovery
		if err := rows.Scan(
			&rec.ID, &rec.OriginalItemID,
			&rec.RecoveredBy.Name, &rec.RecoveredBy.Email,
			&rec.RecoveredLocation, &rec.RecoveredDate, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		recoveries = append(recoveries, rec)
	}
	return recoveries, rows.Err()
}

// GetRecoveryByItem returns the recovery claim for an item, if any.
func (db *DB) GetRecoveryByItem(originalItemID string) (*models.Recovery, error) {
	if !validID(originalItemID) {
		return nil, ErrInvalidID
	}
	q := `SELECT ` + recoveryColumns + ` FROM recoveries WHERE original_item_id = ?`
	return scanRecovery(db.conn.QueryRow(q, originalItemID))
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
