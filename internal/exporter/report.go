package exporter

import (
	"encoding/json"
	"io"
	"time"

	"timelens/internal/calculator"
	"timelens/internal/model"
)

// SummaryReport 汇总报告：关键指标 + 项目/客户分解
type SummaryReport struct {
	ExportDate       time.Time                      `json:"exportDate"`
	TotalEntries     int                            `json:"totalEntries"`
	TotalHours       float64                        `json:"totalHours"`
	TotalAmount      float64                        `json:"totalAmount"`
	BillableHours    float64                        `json:"billableHours"`
	Projects         []string                       `json:"projects"`
	Clients          []string                       `json:"clients"`
	ProjectBreakdown map[string]model.BreakdownItem `json:"projectBreakdown"`
	ClientBreakdown  map[string]model.BreakdownItem `json:"clientBreakdown"`
}

// BuildSummaryReport 生成汇总报告
func BuildSummaryReport(entries []model.TimeEntry) SummaryReport {
	summary := calculator.Summarize(entries)
	return SummaryReport{
		ExportDate:       time.Now(),
		TotalEntries:     summary.TotalEntries,
		TotalHours:       summary.TotalHours,
		TotalAmount:      summary.TotalAmount,
		BillableHours:    summary.BillableHours,
		Projects:         calculator.UniqueProjects(entries),
		Clients:          calculator.UniqueClients(entries),
		ProjectBreakdown: summary.ProjectBreakdown,
		ClientBreakdown:  summary.ClientBreakdown,
	}
}

// WriteJSON 把条目写成缩进 JSON（扁平导出记录形态）
func WriteJSON(w io.Writer, entries []model.TimeEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToExportRecords(entries))
}

// WriteSummaryReport 把汇总报告写成缩进 JSON
func WriteSummaryReport(w io.Writer, entries []model.TimeEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildSummaryReport(entries))
}
