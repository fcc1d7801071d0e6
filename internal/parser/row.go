package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"timelens/internal/model"
)

// 日期解析按顺序尝试的格式
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
}

// ParseDate 解析源文件中的日期字符串。
// 无法解析时返回零值 time.Time，不报错；下游比较必须先判 IsZero
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// EntryID 生成条目 ID：项目名-开始日期毫秒时间戳-开始时间原文。
// 同一文件重复导入产生稳定 ID；项目+时间完全相同的行会碰撞（后写覆盖）
func EntryID(project string, startDate time.Time, startTime string) string {
	return fmt.Sprintf("%s-%d-%s", project, startDate.UnixMilli(), startTime)
}

// ParseRow 把一行原始记录（规范化列名 -> 值）转成 TimeEntry。
// 缺失的可选字段取空串/零值/false，任何情况下不报错，无副作用
func ParseRow(row map[string]string) model.TimeEntry {
	startDate := ParseDate(row[ColStartDate])
	startTime := row[ColStartTime]

	return model.TimeEntry{
		ID:          EntryID(row[ColProject], startDate, startTime),
		Project:     row[ColProject],
		Client:      row[ColClient],
		Description: row[ColDescription],
		Task:        row[ColTask],
		User:        row[ColUser],
		Group:       row[ColGroup],
		Email:       row[ColEmail],
		Tags:        row[ColTags],
		// 只有忽略大小写等于 "yes" 才计为可计费，"true"/"1" 一律为 false
		Billable:       strings.EqualFold(strings.TrimSpace(row[ColBillable]), "yes"),
		StartDate:      startDate,
		StartTime:      startTime,
		EndDate:        ParseDate(row[ColEndDate]),
		EndTime:        row[ColEndTime],
		TimeHours:      defaultString(row[ColDurationHours], "0:00:00"),
		TimeDecimal:    parseFloat(row[ColDurationDecimal]),
		BillableRate:   parseFloat(row[ColBillableRate]),
		BillableAmount: parseFloat(row[ColBillableAmount]),
		Amount:         0, // 金额在数据集解析阶段按时薪计算
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
