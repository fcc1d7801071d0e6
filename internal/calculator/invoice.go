package calculator

import (
	"time"

	"timelens/internal/model"
)

// GroupForInvoice 把条目按项目分组成账单分组，调用方应已过滤到单一客户。
// 分组保持项目首次出现顺序；每组金额用账单时薪重算，
// 忽略条目上已存储的 Amount（开票时薪是权威值）
func GroupForInvoice(entries []model.TimeEntry, hourlyRate float64) []model.InvoiceGroup {
	index := make(map[string]int)
	var groups []model.InvoiceGroup

	for _, e := range entries {
		i, ok := index[e.Project]
		if !ok {
			i = len(groups)
			index[e.Project] = i
			groups = append(groups, model.InvoiceGroup{Project: e.Project})
		}
		groups[i].Entries = append(groups[i].Entries, e)
		groups[i].TotalHours += e.TimeDecimal
		groups[i].TotalAmount += e.TimeDecimal * hourlyRate
	}

	return groups
}

// BuildInvoice 组装一个客户的完整账单数据
func BuildInvoice(client string, entries []model.TimeEntry, hourlyRate float64, number string) model.InvoiceData {
	groups := GroupForInvoice(entries, hourlyRate)

	inv := model.InvoiceData{
		Client:     client,
		Number:     number,
		Date:       time.Now(),
		HourlyRate: hourlyRate,
		Groups:     groups,
	}
	for _, g := range groups {
		inv.TotalHours += g.TotalHours
		inv.TotalAmount += g.TotalAmount
	}
	return inv
}
