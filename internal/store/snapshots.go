package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"timelens/internal/model"
)

// SaveSnapshot 持久化一份快照，返回生成的快照 ID
func (s *Store) SaveSnapshot(snap model.Snapshot) (string, error) {
	id := uuid.NewString()
	createdAt := time.Now().UTC()

	snap.ID = id
	snap.CreatedAt = createdAt

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (id, title, description, entry_count, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, snap.Title, snap.Description, len(snap.TimeEntries), string(data), createdAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return id, nil
}

// ErrSnapshotNotFound 快照不存在
var ErrSnapshotNotFound = fmt.Errorf("snapshot not found")

// GetSnapshot 按 ID 读取完整快照
func (s *Store) GetSnapshot(id string) (*model.Snapshot, error) {
	var data, createdAt string
	err := s.db.QueryRow("SELECT data, created_at FROM snapshots WHERE id = ?", id).Scan(&data, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	snap.ID = id
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		snap.CreatedAt = t
	}

	return &snap, nil
}

// ListSnapshots 按创建时间倒序返回快照元信息
func (s *Store) ListSnapshots() ([]model.SnapshotMeta, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, entry_count, created_at
		FROM snapshots ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var items []model.SnapshotMeta
	for rows.Next() {
		var m model.SnapshotMeta
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.EntryCount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			m.CreatedAt = t
		}
		items = append(items, m)
	}

	return items, rows.Err()
}

// DeleteSnapshot 删除快照
func (s *Store) DeleteSnapshot(id string) error {
	res, err := s.db.Exec("DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}
