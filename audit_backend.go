// audit_backend.go: Storage backends for the audit trail
//
// The audit logger persists events through a pluggable backend: a
// unified SQLite database shared by all Hestia processes on the host, or
// a plain JSONL file for deployments that ship logs to an aggregator.
// Backend selection degrades gracefully, SQLite first, JSONL fallback,
// so audit setup never prevents library use.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hestia

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3" // SQLite driver registration
)

// auditBackend abstracts the audit storage mechanism so the logger can
// switch between JSONL files and SQLite without changing its public API.
type auditBackend interface {
	// Write persists a batch of audit events to the backend.
	// Implementations must handle concurrent writes safely.
	Write(events []AuditEvent) error

	// Flush ensures all pending writes are committed to storage.
	Flush() error

	// Close releases all resources. After Close the backend must not be
	// used again.
	Close() error
}

// createAuditBackend selects the backend for the given configuration:
// an explicit .jsonl output file forces JSONL, everything else tries the
// unified SQLite database first and falls back to JSONL.
func createAuditBackend(config AuditConfig) (auditBackend, error) {
	if config.OutputFile != "" && filepath.Ext(config.OutputFile) == ".jsonl" {
		return newJSONLBackend(config)
	}

	backend, err := newSQLiteBackend(config)
	if err == nil {
		return backend, nil
	}

	jsonlBackend, jsonlErr := newJSONLBackend(config)
	if jsonlErr != nil {
		return nil, fmt.Errorf("all audit backends failed - SQLite: %w, JSONL: %v", err, jsonlErr)
	}
	return jsonlBackend, nil
}

// getUnifiedAuditPath returns the standard path for the unified SQLite
// audit database, shared by every Hestia process on the host.
func getUnifiedAuditPath() string {
	return filepath.Join(os.TempDir(), "hestia", "system-audit.db")
}

// SQLite backend

type sqliteAuditBackend struct {
	db         *sql.DB
	dbPath     string
	insertStmt *sql.Stmt
	mu         sync.Mutex
	closed     bool
}

// newSQLiteBackend opens the audit database, creates the schema if
// needed, and prepares the insert statement for batch writes.
func newSQLiteBackend(config AuditConfig) (*sqliteAuditBackend, error) {
	dbPath := getUnifiedAuditPath()
	if config.OutputFile != "" && filepath.Ext(config.OutputFile) == ".db" {
		// Respect an explicit database path (tests, custom setups).
		dbPath = config.OutputFile
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create audit database directory: %w", err)
	}

	// WAL keeps writers from blocking readers; NORMAL sync is enough for
	// audit logs where losing the last second on a crash is acceptable.
	db, err := sql.Open("sqlite3",
		fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping audit database: %w", err)
	}

	backend := &sqliteAuditBackend{db: db, dbPath: dbPath}
	if err := backend.initializeSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize audit database schema: %w", err)
	}
	if err := backend.prepareStatements(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to prepare audit database statements: %w", err)
	}

	return backend, nil
}

func (s *sqliteAuditBackend) initializeSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS audit_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		level TEXT NOT NULL,
		event TEXT NOT NULL,
		component TEXT NOT NULL,
		process_id INTEGER NOT NULL,
		process_name TEXT NOT NULL,
		context TEXT,
		checksum TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_events_timestamp ON audit_events(timestamp);
	CREATE INDEX IF NOT EXISTS idx_audit_events_event ON audit_events(event);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create audit_events table: %w", err)
	}
	return nil
}

func (s *sqliteAuditBackend) prepareStatements() error {
	stmt, err := s.db.Prepare(`
	INSERT INTO audit_events (
		timestamp, level, event, component, process_id, process_name, context, checksum
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	s.insertStmt = stmt
	return nil
}

// Write persists a batch of events inside a single transaction.
func (s *sqliteAuditBackend) Write(events []AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("audit backend is closed")
	}
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin audit transaction: %w", err)
	}

	stmt := tx.Stmt(s.insertStmt)
	for _, event := range events {
		contextJSON := ""
		if event.Context != nil {
			data, err := json.Marshal(event.Context)
			if err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("failed to encode audit context: %w", err)
			}
			contextJSON = string(data)
		}

		if _, err := stmt.Exec(
			event.Timestamp, event.Level.String(), event.Event, event.Component,
			event.ProcessID, event.ProcessName, contextJSON, event.Checksum,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert audit event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit audit events: %w", err)
	}
	return nil
}

// Flush checkpoints the WAL so committed events reach the main database
// file.
func (s *sqliteAuditBackend) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	_, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return err
}

func (s *sqliteAuditBackend) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.insertStmt != nil {
		_ = s.insertStmt.Close()
	}
	return s.db.Close()
}

// JSONL backend

type jsonlAuditBackend struct {
	file *os.File
	path string
	mu   sync.Mutex
}

// newJSONLBackend opens the output file in append mode. Events written
// by different processes interleave at line granularity, which is safe
// for O_APPEND writes of this size.
func newJSONLBackend(config AuditConfig) (*jsonlAuditBackend, error) {
	path := config.OutputFile
	if path == "" {
		path = filepath.Join(os.TempDir(), "hestia", "audit.jsonl")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log file: %w", err)
	}
	return &jsonlAuditBackend{file: file, path: path}, nil
}

func (j *jsonlAuditBackend) Write(events []AuditEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to encode audit event: %w", err)
		}
		if _, err := j.file.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write audit event: %w", err)
		}
	}
	return nil
}

func (j *jsonlAuditBackend) Flush() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Sync()
}

func (j *jsonlAuditBackend) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}
