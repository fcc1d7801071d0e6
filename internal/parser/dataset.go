package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"timelens/internal/calculator"
	"timelens/internal/model"
)

// ParseDataset 解析整份 CSV 文本为工时条目。
//
// 流程：表头校验（一次性，缺列返回 MissingColumnsError）→ 逐行解析，
// 小数时长缺失或 ≤0 的行静默丢弃 → 对保留行应用取整策略并按时薪计算金额。
// 没有任何行存活时返回 EmptyDatasetError。输出顺序与输入行顺序一致。
func ParseDataset(rawText string, cfg model.ImportConfig) ([]model.TimeEntry, error) {
	reader := csv.NewReader(strings.NewReader(rawText))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		return nil, &MalformedFileError{Reason: "无法读取表头"}
	}

	index := buildColumnIndex(headers)
	if missing := missingRequired(index); len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	var entries []model.TimeEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// 行级畸形不中止整个导入
			continue
		}

		row := make(map[string]string, len(index))
		for col, i := range index {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}

		// 小数时长是有效性的唯一判据
		if parseFloat(row[ColDurationDecimal]) <= 0 {
			continue
		}

		entry := ParseRow(row)
		entry.TimeDecimal = calculator.RoundTime(entry.TimeDecimal, cfg.RoundingInterval)
		entry.Amount = entry.TimeDecimal * cfg.HourlyRate
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, &EmptyDatasetError{}
	}

	return entries, nil
}
