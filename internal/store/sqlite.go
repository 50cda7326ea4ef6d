package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/study-dashboard/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// ReplaceAssignments swaps the cached collection inside one transaction.
// The position column preserves the upstream's order across restarts.
func (s *SQLiteStore) ReplaceAssignments(
	ctx context.Context,
	assignments []model.Assignment,
) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM assignments"); err != nil {
		return fmt.Errorf("clearing cached assignments: %w", err)
	}

	const query = `
		INSERT INTO assignments (
			uid, title, description, category, type,
			status, priority, days_until_due, due_date, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing insert statement: %w", err)
	}
	defer stmt.Close()

	for i, a := range assignments {
		var due sql.NullInt64
		if d, ok := a.Due(); ok {
			due = sql.NullInt64{Int64: int64(d), Valid: true}
		}

		_, err = stmt.ExecContext(ctx,
			a.UID, a.Title, a.Description, a.Category, a.Type,
			a.Status, a.Priority, due, a.DueDate, i,
		)
		if err != nil {
			return fmt.Errorf("caching assignment %s: %w", a.UID, err)
		}
	}

	return tx.Commit()
}

// GetAssignments retrieves the cached collection in its upstream order.
func (s *SQLiteStore) GetAssignments(
	ctx context.Context,
) ([]model.Assignment, error) {
	rows, err := s.db.QueryxContext(ctx,
		`SELECT uid, title, description, category, type,
		        status, priority, days_until_due, due_date
		 FROM assignments ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying cached assignments: %w", err)
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// SetAssignmentStatus patches the status of one cached record.
func (s *SQLiteStore) SetAssignmentStatus(
	ctx context.Context,
	uid, status string,
) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE assignments SET status = ? WHERE uid = ?", status, uid,
	)
	if err != nil {
		return fmt.Errorf("updating cached status for %s: %w", uid, err)
	}
	return nil
}

// AddFeedback records a feedback message. Missing ids and timestamps are
// filled in here.
func (s *SQLiteStore) AddFeedback(
	ctx context.Context,
	fb model.Feedback,
) error {
	if fb.ID == "" {
		fb.ID = uuid.New().String()
	}
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO feedback (id, kind, message, created_at) VALUES (?, ?, ?, ?)",
		fb.ID, fb.Kind, fb.Message, fb.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording feedback: %w", err)
	}

	return nil
}

// RecentFeedback retrieves the most recent feedback messages, newest first.
func (s *SQLiteStore) RecentFeedback(
	ctx context.Context,
	limit int,
) ([]model.Feedback, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, kind, message, created_at FROM feedback ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	var entries []model.Feedback
	for rows.Next() {
		var fb model.Feedback
		var createdAt time.Time
		if err := rows.Scan(&fb.ID, &fb.Kind, &fb.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning feedback row: %w", err)
		}
		fb.CreatedAt = createdAt
		entries = append(entries, fb)
	}

	return entries, rows.Err()
}

// scanAssignment scans an assignment row from a sqlx.Rows result set.
func scanAssignment(rows *sqlx.Rows) (model.Assignment, error) {
	var (
		a   model.Assignment
		due sql.NullInt64
	)

	err := rows.Scan(
		&a.UID, &a.Title, &a.Description, &a.Category, &a.Type,
		&a.Status, &a.Priority, &due, &a.DueDate,
	)
	if err != nil {
		return model.Assignment{}, fmt.Errorf("scanning assignment row: %w", err)
	}

	if due.Valid {
		d := int(due.Int64)
		a.DaysUntilDue = &d
	}

	return a, nil
}
