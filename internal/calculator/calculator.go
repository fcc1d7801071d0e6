package calculator

import "timelens/internal/model"

// Summarize 单遍扫描聚合工时集合。
// 总和为普通双精度浮点累加；去重计数按字符串精确相等（区分大小写）
func Summarize(entries []model.TimeEntry) model.Summary {
	summary := model.Summary{
		TotalEntries:     len(entries),
		ProjectBreakdown: make(map[string]model.BreakdownItem),
		ClientBreakdown:  make(map[string]model.BreakdownItem),
	}

	projects := make(map[string]struct{})
	clients := make(map[string]struct{})

	for _, e := range entries {
		summary.TotalHours += e.TimeDecimal
		summary.TotalAmount += e.Amount
		if e.Billable {
			summary.BillableHours += e.TimeDecimal
		}

		projects[e.Project] = struct{}{}
		clients[e.Client] = struct{}{}

		p := summary.ProjectBreakdown[e.Project]
		p.Hours += e.TimeDecimal
		p.Amount += e.Amount
		p.EntryCount++
		summary.ProjectBreakdown[e.Project] = p

		c := summary.ClientBreakdown[e.Client]
		c.Hours += e.TimeDecimal
		c.Amount += e.Amount
		c.EntryCount++
		summary.ClientBreakdown[e.Client] = c
	}

	summary.UniqueProjects = len(projects)
	summary.UniqueClients = len(clients)
	if summary.TotalHours > 0 {
		summary.AvgHourlyRate = summary.TotalAmount / summary.TotalHours
	}

	return summary
}

// UniqueProjects 返回出现过的项目名（按首次出现顺序）
func UniqueProjects(entries []model.TimeEntry) []string {
	return uniqueValues(entries, func(e model.TimeEntry) string { return e.Project })
}

// UniqueClients 返回出现过的客户名（按首次出现顺序）
func UniqueClients(entries []model.TimeEntry) []string {
	return uniqueValues(entries, func(e model.TimeEntry) string { return e.Client })
}

func uniqueValues(entries []model.TimeEntry, key func(model.TimeEntry) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range entries {
		k := key(e)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
