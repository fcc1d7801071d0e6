package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timelens/internal/model"
)

// SettingsResponse 设置响应
type SettingsResponse struct {
	HourlyRate       float64 `json:"hourlyRate"`
	RoundingInterval int     `json:"roundingInterval"`
}

// GetSettings 获取当前设置
// GET /api/settings
func (h *Handler) GetSettings(c *gin.Context) {
	rate, interval, err := h.store.GetBillingSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, SettingsResponse{HourlyRate: rate, RoundingInterval: interval})
}

type updateSettingsRequest struct {
	HourlyRate       *float64 `json:"hourlyRate,omitempty"`
	RoundingInterval *int     `json:"roundingInterval,omitempty"`
}

// UpdateSettings 更新设置（部分更新）
// PATCH /api/settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	rate, interval, err := h.store.GetBillingSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "时薪必须为正数"})
			return
		}
		rate = *req.HourlyRate
	}
	if req.RoundingInterval != nil {
		if !model.ValidRoundingInterval(*req.RoundingInterval) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "取整粒度必须是 15/30/60 分钟"})
			return
		}
		interval = *req.RoundingInterval
	}

	if err := h.store.SetBillingSettings(rate, interval); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{HourlyRate: rate, RoundingInterval: interval})
}
