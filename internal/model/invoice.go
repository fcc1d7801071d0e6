package model

import "time"

// InvoiceGroup 账单中同一项目的条目分组
//
// TotalAmount = TotalHours * 账单时薪，账单时薪外部传入，
// 覆盖条目上已存储的 Amount（开票时薪是权威值，可以与导入时薪不同）
type InvoiceGroup struct {
	Project     string      `json:"project"`
	Entries     []TimeEntry `json:"entries"`
	TotalHours  float64     `json:"totalHours"`
	TotalAmount float64     `json:"totalAmount"`
}

// InvoiceData 一个客户的账单数据
type InvoiceData struct {
	Client      string         `json:"client"`
	Number      string         `json:"number"`
	Date        time.Time      `json:"date"`
	HourlyRate  float64        `json:"hourlyRate"`
	Groups      []InvoiceGroup `json:"groups"` // 按项目首次出现顺序
	TotalHours  float64        `json:"totalHours"`
	TotalAmount float64        `json:"totalAmount"`
}
