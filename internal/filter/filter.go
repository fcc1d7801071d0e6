package filter

import (
	"strings"
	"time"

	"timelens/internal/model"
)

// Apply 返回满足全部有效过滤条件的条目子序列。
//
// 纯函数：不修改输入，返回新切片；各条件之间为 AND 关系，
// 缺省条件恒真；输出保持输入的相对顺序
func Apply(entries []model.TimeEntry, opts model.FilterOptions) []model.TimeEntry {
	if opts.IsEmpty() {
		out := make([]model.TimeEntry, len(entries))
		copy(out, entries)
		return out
	}

	out := make([]model.TimeEntry, 0, len(entries))
	for _, e := range entries {
		if Matches(e, opts) {
			out = append(out, e)
		}
	}
	return out
}

// Matches 判断单条是否满足全部过滤条件
func Matches(e model.TimeEntry, opts model.FilterOptions) bool {
	if opts.SearchTerm != "" && !matchesSearch(e, opts.SearchTerm) {
		return false
	}
	if len(opts.Projects) > 0 && !containsString(opts.Projects, e.Project) {
		return false
	}
	if len(opts.Clients) > 0 && !containsString(opts.Clients, e.Client) {
		return false
	}
	if opts.DateRange != nil && !matchesDateRange(e.StartDate, opts.DateRange) {
		return false
	}
	return true
}

// matchesSearch 搜索词与候选字段都转小写后做子串匹配，命中任一字段即可
func matchesSearch(e model.TimeEntry, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{e.Project, e.Client, e.Description, e.User} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesDateRange 按天粒度比较开始日期。
// 两端各自独立生效，缺失的一端无约束；无效日期（零值）永不匹配
func matchesDateRange(startDate time.Time, r *model.DateRange) bool {
	if r.Start == nil && r.End == nil {
		return true
	}
	if startDate.IsZero() {
		return false
	}
	day := dayStart(startDate)
	if r.Start != nil && day.Before(dayStart(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(dayEnd(*r.End)) {
		return false
	}
	return true
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
