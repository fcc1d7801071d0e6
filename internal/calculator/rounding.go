package calculator

import (
	"math"

	"timelens/internal/model"
)

// RoundTime 把小数小时向上取整到粒度的整数倍。
//
// 粒度换算为小数小时（interval/60）后做天花板取整：1 分钟也会进位到
// 一个完整粒度。向上取整是计费口径，不是四舍五入，必须严格保持。
// 粒度非法时原样返回
func RoundTime(hours float64, intervalMinutes int) float64 {
	if !model.ValidRoundingInterval(intervalMinutes) {
		return hours
	}
	if hours <= 0 {
		return 0
	}
	interval := float64(intervalMinutes) / 60
	return math.Ceil(hours/interval) * interval
}

// ApplyRounding 返回新切片：每条的 TimeDecimal 按粒度向上取整，
// Amount 按取整后的时长乘时薪重算。不修改输入
func ApplyRounding(entries []model.TimeEntry, intervalMinutes int, hourlyRate float64) []model.TimeEntry {
	out := make([]model.TimeEntry, len(entries))
	for i, e := range entries {
		e.TimeDecimal = RoundTime(e.TimeDecimal, intervalMinutes)
		e.Amount = e.TimeDecimal * hourlyRate
		out[i] = e
	}
	return out
}

// RecalculateAmounts 返回新切片：只重算 Amount = TimeDecimal * 时薪，
// 时长不动。与取整相互独立，先取整再改时薪重算是正常工作流
func RecalculateAmounts(entries []model.TimeEntry, hourlyRate float64) []model.TimeEntry {
	out := make([]model.TimeEntry, len(entries))
	for i, e := range entries {
		e.Amount = e.TimeDecimal * hourlyRate
		out[i] = e
	}
	return out
}

// RoundingPreview 取整前后的总时长对比，用于前端预览
type RoundingPreview struct {
	OriginalHours float64 `json:"originalHours"`
	RoundedHours  float64 `json:"roundedHours"`
	Difference    float64 `json:"difference"`
}

// PreviewRounding 计算取整前后的总时长差异，不修改任何数据
func PreviewRounding(entries []model.TimeEntry, intervalMinutes int) RoundingPreview {
	var original, rounded float64
	for _, e := range entries {
		original += e.TimeDecimal
		rounded += RoundTime(e.TimeDecimal, intervalMinutes)
	}
	return RoundingPreview{
		OriginalHours: original,
		RoundedHours:  rounded,
		Difference:    rounded - original,
	}
}
