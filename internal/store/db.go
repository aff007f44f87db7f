package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-well-viewer/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a build id is unknown
var ErrNotFound = errors.New("build not found")

// ErrDisabled is returned when the history was not initialized
var ErrDisabled = errors.New("build history disabled")

var db *sql.DB

// InitDB opens the build history database and creates its table.
// Only build metadata is stored; uploaded rows never reach the database.
func InitDB(dbPath string) error {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	// sqlite allows a single writer; one connection also keeps ":memory:" databases shared
	conn.SetMaxOpenConns(1)

	buildTable := `
	CREATE TABLE IF NOT EXISTS builds (
		id TEXT PRIMARY KEY,
		filename TEXT,
		status TEXT,
		records INTEGER,
		wells INTEGER,
		lithologies INTEGER,
		error_message TEXT,
		created_at DATETIME
	);
	`
	if _, err := conn.Exec(buildTable); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create builds table: %w", err)
	}

	db = conn
	return nil
}

// Enabled reports whether InitDB succeeded
func Enabled() bool {
	return db != nil
}

// Close closes the database
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

// SaveBuild stores one build record
func SaveBuild(b model.BuildRecord) error {
	if db == nil {
		return ErrDisabled
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(`INSERT INTO builds (id, filename, status, records, wells, lithologies, error_message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Filename, b.Status, b.Records, b.Wells, b.Lithologies, b.Error, b.CreatedAt)
	return err
}

// ListBuilds returns the most recent builds, newest first
func ListBuilds(limit int) ([]model.BuildRecord, error) {
	if db == nil {
		return nil, ErrDisabled
	}

	rows, err := db.Query(`SELECT id, filename, status, records, wells, lithologies, error_message, created_at
		FROM builds ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	builds := []model.BuildRecord{}
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// GetBuild fetches one build by id
func GetBuild(id string) (model.BuildRecord, error) {
	if db == nil {
		return model.BuildRecord{}, ErrDisabled
	}

	row := db.QueryRow(`SELECT id, filename, status, records, wells, lithologies, error_message, created_at
		FROM builds WHERE id = ?`, id)
	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.BuildRecord{}, ErrNotFound
	}
	return b, err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBuild(s scanner) (model.BuildRecord, error) {
	var b model.BuildRecord
	err := s.Scan(&b.ID, &b.Filename, &b.Status, &b.Records, &b.Wells, &b.Lithologies, &b.Error, &b.CreatedAt)
	return b, err
}
