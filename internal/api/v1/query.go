package v1

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"timelens/internal/model"
)

// parseFilterQuery 从 URL 查询参数构建过滤条件。
// 参数名与分享链接保持一致：search / projects / clients / startDate / endDate
func parseFilterQuery(c *gin.Context) model.FilterOptions {
	opts := model.FilterOptions{
		SearchTerm: strings.TrimSpace(c.Query("search")),
		Projects:   splitCommaList(c.Query("projects")),
		Clients:    splitCommaList(c.Query("clients")),
	}

	start := parseDateParam(c.Query("startDate"))
	end := parseDateParam(c.Query("endDate"))
	if start != nil || end != nil {
		opts.DateRange = &model.DateRange{Start: start, End: end}
	}

	return opts
}

func splitCommaList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseDateParam 解析 ISO 日期参数，接受 2006-01-02 与 RFC3339
func parseDateParam(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

func parseIntWithDefault(raw string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}

func parseFloatWithDefault(raw string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return def
	}
	return v
}
