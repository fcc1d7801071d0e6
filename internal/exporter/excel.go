package exporter

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"timelens/internal/calculator"
	"timelens/internal/model"
)

const (
	sheetEntries = "Entries"
	sheetSummary = "Summary"
)

// BuildWorkbook 生成 Excel 工作簿：Entries 明细表 + Summary 汇总表
func BuildWorkbook(entries []model.TimeEntry) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetEntries); err != nil {
		return nil, fmt.Errorf("重命名工作表失败: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("创建汇总表失败: %w", err)
	}

	if err := fillEntriesSheet(f, entries); err != nil {
		return nil, err
	}
	if err := fillSummarySheet(f, entries); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func fillEntriesSheet(f *excelize.File, entries []model.TimeEntry) error {
	headers := []interface{}{
		"Project", "Client", "Description", "Billable",
		"Start Date", "Start Time", "End Date", "End Time",
		"Duration (h)", "Duration (decimal)", "Amount (USD)", "Tags",
	}
	if err := f.SetSheetRow(sheetEntries, "A1", &headers); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}

	for i, e := range entries {
		billable := "No"
		if e.Billable {
			billable = "Yes"
		}
		row := []interface{}{
			e.Project, e.Client, e.Description, billable,
			formatDate(e.StartDate), e.StartTime, formatDate(e.EndDate), e.EndTime,
			e.TimeHours, e.TimeDecimal, e.Amount, e.Tags,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetEntries, cell, &row); err != nil {
			return fmt.Errorf("写入第 %d 行失败: %w", i+2, err)
		}
	}

	return nil
}

func fillSummarySheet(f *excelize.File, entries []model.TimeEntry) error {
	summary := calculator.Summarize(entries)

	rows := [][]interface{}{
		{"Total Entries", summary.TotalEntries},
		{"Total Hours", summary.TotalHours},
		{"Total Amount (USD)", summary.TotalAmount},
		{"Billable Hours", summary.BillableHours},
		{"Projects", summary.UniqueProjects},
		{"Clients", summary.UniqueClients},
		{"Avg Hourly Rate (USD)", summary.AvgHourlyRate},
		{},
		{"Project", "Hours", "Amount (USD)", "Entries"},
	}

	for _, name := range sortedKeys(summary.ProjectBreakdown) {
		item := summary.ProjectBreakdown[name]
		rows = append(rows, []interface{}{name, item.Hours, item.Amount, item.EntryCount})
	}

	rows = append(rows, []interface{}{}, []interface{}{"Client", "Hours", "Amount (USD)", "Entries"})
	for _, name := range sortedKeys(summary.ClientBreakdown) {
		item := summary.ClientBreakdown[name]
		rows = append(rows, []interface{}{name, item.Hours, item.Amount, item.EntryCount})
	}

	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &rows[i]); err != nil {
			return fmt.Errorf("写入汇总第 %d 行失败: %w", i+1, err)
		}
	}

	return nil
}

func sortedKeys(m map[string]model.BreakdownItem) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
