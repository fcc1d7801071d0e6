package model

import "time"

// TimeEntry 一条工时记录，数据模型的原子单元
//
// StartDate/EndDate 为零值 time.Time 时表示源数据中的日期无法解析，
// 所有日期比较都必须先判 IsZero，无效日期永远不参与匹配。
type TimeEntry struct {
	// ID 由 项目名-开始日期毫秒时间戳-开始时间原文 拼接而成，
	// 同一文件重复导入时保持稳定；项目+时间完全相同的两行会产生
	// 相同 ID，基于 ID 的键值查找按后写覆盖处理
	ID          string `json:"id"`
	Project     string `json:"project"`
	Client      string `json:"client"`
	Description string `json:"description"`
	Task        string `json:"task"`
	User        string `json:"user"`
	Group       string `json:"group"`
	Email       string `json:"email"`
	Tags        string `json:"tags"`

	// Billable 仅当源字段忽略大小写等于 "yes" 时为 true
	Billable bool `json:"billable"`

	StartDate time.Time `json:"startDate"`
	StartTime string    `json:"startTime"` // 展示用时刻原文，不参与计算
	EndDate   time.Time `json:"endDate"`
	EndTime   string    `json:"endTime"`

	TimeHours   string  `json:"timeHours"`   // "H:MM:SS" 展示用时长
	TimeDecimal float64 `json:"timeDecimal"` // 小数小时，所有计算的唯一时长来源

	// BillableRate/BillableAmount 从源文件透传，不参与金额计算
	BillableRate   float64 `json:"billableRate"`
	BillableAmount float64 `json:"billableAmount"`

	// Amount = TimeDecimal * 时薪，时薪在导入/重算时外部传入，不随条目存储
	Amount float64 `json:"amount"`
}

// ImportConfig 导入配置
type ImportConfig struct {
	HourlyRate       float64 `json:"hourlyRate"`       // 时薪，须为正数
	RoundingInterval int     `json:"roundingInterval"` // 取整粒度（分钟）：15/30/60
}

// ValidRoundingInterval 判断取整粒度是否合法
func ValidRoundingInterval(minutes int) bool {
	return minutes == 15 || minutes == 30 || minutes == 60
}

// ExportRecord 导出用扁平记录，可直接交给 CSV/JSON 序列化器
type ExportRecord struct {
	Project     string  `json:"project"`
	Client      string  `json:"client"`
	Description string  `json:"description"`
	TimeHours   string  `json:"timeHours"`
	TimeDecimal float64 `json:"timeDecimal"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // 开始日期，ISO 格式，无效日期为空串
	Tags        string  `json:"tags"`
}
