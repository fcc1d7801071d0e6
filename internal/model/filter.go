package model

import "time"

// FilterOptions 过滤条件，所有字段可选，缺省字段不构成约束
type FilterOptions struct {
	// SearchTerm 忽略大小写的子串搜索，命中 project/client/description/user 任一字段即匹配
	SearchTerm string `json:"searchTerm,omitempty"`
	// Projects 项目名白名单，OR 语义
	Projects []string `json:"projects,omitempty"`
	// Clients 客户名白名单，OR 语义
	Clients []string `json:"clients,omitempty"`
	// DateRange 开始日期所在区间，按天粒度比较
	DateRange *DateRange `json:"dateRange,omitempty"`
}

// DateRange 日期区间，两端各自独立生效：
// 缺失的一端视为该方向无约束（与 URL 参数只带 startDate 或只带 endDate 一致）
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// IsEmpty 判断过滤条件是否为空（空条件对任何条目恒真）
func (f FilterOptions) IsEmpty() bool {
	return f.SearchTerm == "" &&
		len(f.Projects) == 0 &&
		len(f.Clients) == 0 &&
		(f.DateRange == nil || (f.DateRange.Start == nil && f.DateRange.End == nil))
}
