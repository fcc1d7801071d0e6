package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timelens/internal/calculator"
	"timelens/internal/model"
	"timelens/internal/store"
)

type roundingRequest struct {
	IntervalMinutes int      `json:"intervalMinutes"`
	HourlyRate      *float64 `json:"hourlyRate,omitempty"` // 缺省取当前设置
}

// PreviewRounding 取整前后总时长对比，不修改数据
// POST /api/rounding/preview
func (h *Handler) PreviewRounding(c *gin.Context) {
	var req roundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if !model.ValidRoundingInterval(req.IntervalMinutes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "取整粒度必须是 15/30/60 分钟"})
		return
	}

	entries, err := h.store.ListEntries(store.EntryQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, calculator.PreviewRounding(entries, req.IntervalMinutes))
}

// ApplyRounding 对工作集应用取整并按时薪重算金额
// POST /api/rounding/apply
func (h *Handler) ApplyRounding(c *gin.Context) {
	var req roundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if !model.ValidRoundingInterval(req.IntervalMinutes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "取整粒度必须是 15/30/60 分钟"})
		return
	}

	rate, err := h.resolveRate(req.HourlyRate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.store.ListEntries(store.EntryQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated := calculator.ApplyRounding(entries, req.IntervalMinutes, rate)
	if err := h.store.ReplaceEntries(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	_ = h.store.SetSettingInt(store.SettingRoundingInterval, req.IntervalMinutes)

	c.JSON(http.StatusOK, gin.H{
		"updated": len(updated),
		"summary": calculator.Summarize(updated),
	})
}

type recalculateRequest struct {
	HourlyRate float64 `json:"hourlyRate"`
}

// RecalculateAmounts 只按新时薪重算金额，时长不动
// POST /api/amounts/recalculate
func (h *Handler) RecalculateAmounts(c *gin.Context) {
	var req recalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.HourlyRate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "时薪必须为正数"})
		return
	}

	entries, err := h.store.ListEntries(store.EntryQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated := calculator.RecalculateAmounts(entries, req.HourlyRate)
	if err := h.store.ReplaceEntries(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	_ = h.store.SetSettingFloat(store.SettingHourlyRate, req.HourlyRate)

	c.JSON(http.StatusOK, gin.H{
		"updated": len(updated),
		"summary": calculator.Summarize(updated),
	})
}

// resolveRate 请求里带时薪用请求的，否则取当前设置
func (h *Handler) resolveRate(override *float64) (float64, error) {
	if override != nil && *override > 0 {
		return *override, nil
	}
	rate, _, err := h.store.GetBillingSettings()
	if err != nil {
		return 0, err
	}
	return rate, nil
}
