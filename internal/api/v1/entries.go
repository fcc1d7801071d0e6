package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timelens/internal/calculator"
	"timelens/internal/filter"
	"timelens/internal/model"
	"timelens/internal/store"
)

type listEntriesResponse struct {
	Items    []model.TimeEntry `json:"items"`
	Total    int               `json:"total"` // 过滤后的总数（分页前）
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Summary  model.Summary     `json:"summary"` // 过滤后集合的汇总
}

// ListEntries 查询工时条目（内存过滤 + 分页）
// GET /api/entries?search=&projects=&clients=&startDate=&endDate=&page=&pageSize=
func (h *Handler) ListEntries(c *gin.Context) {
	entries, err := h.store.ListEntries(store.EntryQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filtered := filter.Apply(entries, parseFilterQuery(c))

	page := parseIntWithDefault(c.Query("page"), 1)
	pageSize := parseIntWithDefault(c.Query("pageSize"), 200)
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 200
	}
	if pageSize > 2000 {
		pageSize = 2000
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, listEntriesResponse{
		Items:    filtered[start:end],
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Summary:  calculator.Summarize(filtered),
	})
}

// GetSummary 获取过滤后集合的汇总统计
// GET /api/summary?search=&projects=&clients=&startDate=&endDate=
func (h *Handler) GetSummary(c *gin.Context) {
	entries, err := h.store.ListEntries(store.EntryQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filtered := filter.Apply(entries, parseFilterQuery(c))
	c.JSON(http.StatusOK, calculator.Summarize(filtered))
}
