package store

import (
	"database/sql"
	"fmt"
	"time"
)

// ImportLog 一次导入的记录
type ImportLog struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	ImportedRows int       `json:"importedRows"`
	DroppedRows  int       `json:"droppedRows"`
	DurationMs   int64     `json:"durationMs"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AddImportLog 记录一次导入
func (s *Store) AddImportLog(log ImportLog) error {
	_, err := s.db.Exec(`
		INSERT INTO import_logs (filename, imported_rows, dropped_rows, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, log.Filename, log.ImportedRows, log.DroppedRows, log.DurationMs, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert import log: %w", err)
	}
	return nil
}

// LastImportTime 最近一次导入时间，没有导入记录时返回零值
func (s *Store) LastImportTime() (time.Time, error) {
	var createdAt string
	err := s.db.QueryRow("SELECT created_at FROM import_logs ORDER BY id DESC LIMIT 1").Scan(&createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to query import logs: %w", err)
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}
