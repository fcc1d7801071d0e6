package model

// BreakdownItem 按项目/客户聚合的一项
type BreakdownItem struct {
	Hours      float64 `json:"hours"`
	Amount     float64 `json:"amount"`
	EntryCount int     `json:"entryCount"`
}

// Summary 工时集合的汇总统计
type Summary struct {
	TotalEntries   int     `json:"totalEntries"`
	TotalHours     float64 `json:"totalHours"`     // TimeDecimal 之和
	TotalAmount    float64 `json:"totalAmount"`    // Amount 之和
	BillableHours  float64 `json:"billableHours"`  // Billable 条目的 TimeDecimal 之和
	UniqueProjects int     `json:"uniqueProjects"` // 项目名去重计数（区分大小写）
	UniqueClients  int     `json:"uniqueClients"`
	AvgHourlyRate  float64 `json:"avgHourlyRate"` // TotalAmount/TotalHours，无工时时为 0

	ProjectBreakdown map[string]BreakdownItem `json:"projectBreakdown"`
	ClientBreakdown  map[string]BreakdownItem `json:"clientBreakdown"`
}
