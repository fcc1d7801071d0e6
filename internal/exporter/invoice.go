package exporter

import (
	"fmt"
	"strings"

	"timelens/internal/model"
)

// RenderInvoiceText 生成纯文本账单（下载文件内容）。
// 版面与排版细节由前端/PDF 协作方负责，这里只提供文本形态
func RenderInvoiceText(inv model.InvoiceData) string {
	var b strings.Builder

	b.WriteString("INVOICE\n\n")
	fmt.Fprintf(&b, "Invoice #: %s\n", inv.Number)
	fmt.Fprintf(&b, "Date: %s\n", inv.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Client: %s\n\n", inv.Client)
	b.WriteString("---\n")

	for _, g := range inv.Groups {
		fmt.Fprintf(&b, "\nProject: %s\n", g.Project)
		fmt.Fprintf(&b, "Hours: %.2f\n", g.TotalHours)
		fmt.Fprintf(&b, "Rate: $%.2f/hour\n", inv.HourlyRate)
		fmt.Fprintf(&b, "Amount: $%.2f\n", g.TotalAmount)
	}

	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "Total Hours: %.2f\n", inv.TotalHours)
	fmt.Fprintf(&b, "Total Amount: $%.2f\n", inv.TotalAmount)

	return b.String()
}
