package store

import (
	"fmt"
	"time"

	"timelens/internal/model"
)

// 日期入库格式；无效日期（零值）存空串
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ReplaceEntries 用新条目集完整替换当前工作集（事务内先清空后插入）。
// 不支持两份数据集合并：新导入总是整体覆盖
func (s *Store) ReplaceEntries(entries []model.TimeEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO entries (
			entry_id, project, client, description, task,
			user_name, group_name, email, tags, billable,
			start_date, start_time, end_date, end_time,
			time_hours, time_decimal, billable_rate, billable_amount, amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.Exec(
			e.ID, e.Project, e.Client, e.Description, e.Task,
			e.User, e.Group, e.Email, e.Tags, boolToInt(e.Billable),
			formatDate(e.StartDate), e.StartTime, formatDate(e.EndDate), e.EndTime,
			e.TimeHours, e.TimeDecimal, e.BillableRate, e.BillableAmount, e.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// EntryQueryOptions 条目查询选项
type EntryQueryOptions struct {
	Client  *string
	Project *string
	Limit   int
	Offset  int
}

// ListEntries 按导入顺序返回条目
func (s *Store) ListEntries(opts EntryQueryOptions) ([]model.TimeEntry, error) {
	query := `
		SELECT entry_id, project, client, description, task,
		       user_name, group_name, email, tags, billable,
		       start_date, start_time, end_date, end_time,
		       time_hours, time_decimal, billable_rate, billable_amount, amount
		FROM entries WHERE 1=1`
	args := []interface{}{}

	if opts.Client != nil {
		query += " AND client = ?"
		args = append(args, *opts.Client)
	}
	if opts.Project != nil {
		query += " AND project = ?"
		args = append(args, *opts.Project)
	}

	query += " ORDER BY seq"

	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []model.TimeEntry
	for rows.Next() {
		var e model.TimeEntry
		var billable int
		var startDate, endDate string
		err := rows.Scan(
			&e.ID, &e.Project, &e.Client, &e.Description, &e.Task,
			&e.User, &e.Group, &e.Email, &e.Tags, &billable,
			&startDate, &e.StartTime, &endDate, &e.EndTime,
			&e.TimeHours, &e.TimeDecimal, &e.BillableRate, &e.BillableAmount, &e.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Billable = billable != 0
		e.StartDate = parseDate(startDate)
		e.EndDate = parseDate(endDate)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CountEntries 当前工作集条目数
func (s *Store) CountEntries() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
