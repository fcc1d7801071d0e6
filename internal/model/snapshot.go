package model

import "time"

// Snapshot 应用状态快照：条目 + 设置 + 当前过滤条件的序列化包，
// 持久化后通过 /?snapshot=<id> 链接分享
type Snapshot struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`

	TimeEntries []TimeEntry `json:"timeEntries"`

	DefaultHourlyRate       float64 `json:"defaultHourlyRate"`
	DefaultRoundingInterval int     `json:"defaultRoundingInterval"`

	CurrentFilters *FilterOptions `json:"currentFilters,omitempty"`
	ActiveView     string         `json:"activeView,omitempty"` // dashboard/analytics/invoice
}

// SnapshotMeta 快照列表项（不含条目数据）
type SnapshotMeta struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EntryCount  int       `json:"entryCount"`
	CreatedAt   time.Time `json:"createdAt"`
}
