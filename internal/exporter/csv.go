package exporter

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"timelens/internal/model"
)

// CSVHeaders 导出表头，与导入解析器兼容（导出再导入可还原工作集）
var CSVHeaders = []string{
	"Project", "Client", "Description", "Task", "User", "Group", "Email", "Tags",
	"Billable", "Start Date", "Start Time", "End Date", "End Time",
	"Duration (h)", "Duration (decimal)",
	"Billable Rate (USD)", "Billable Amount (USD)", "Amount (USD)",
}

// WriteCSV 把条目写成 CSV
func WriteCSV(w io.Writer, entries []model.TimeEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeaders); err != nil {
		return err
	}

	for _, e := range entries {
		billable := "No"
		if e.Billable {
			billable = "Yes"
		}
		record := []string{
			e.Project, e.Client, e.Description, e.Task, e.User, e.Group, e.Email, e.Tags,
			billable, formatDate(e.StartDate), e.StartTime, formatDate(e.EndDate), e.EndTime,
			e.TimeHours, formatFloat(e.TimeDecimal),
			formatFloat(e.BillableRate), formatFloat(e.BillableAmount), formatFloat(e.Amount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ToExportRecords 把条目转成扁平导出记录（JSON/外部序列化用）
func ToExportRecords(entries []model.TimeEntry) []model.ExportRecord {
	records := make([]model.ExportRecord, len(entries))
	for i, e := range entries {
		records[i] = model.ExportRecord{
			Project:     e.Project,
			Client:      e.Client,
			Description: e.Description,
			TimeHours:   e.TimeHours,
			TimeDecimal: e.TimeDecimal,
			Amount:      e.Amount,
			Date:        formatDate(e.StartDate),
			Tags:        e.Tags,
		}
	}
	return records
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
