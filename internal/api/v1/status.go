package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Initialized      bool    `json:"initialized"`      // 是否已有导入数据
	TotalEntries     int     `json:"totalEntries"`     // 工作集条目数
	HourlyRate       float64 `json:"hourlyRate"`       // 当前时薪
	RoundingInterval int     `json:"roundingInterval"` // 当前取整粒度（分钟）
	LastImportTime   string  `json:"lastImportTime"`   // 最后导入时间，RFC3339，无导入为空
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	count, err := h.store.CountEntries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rate, interval, err := h.store.GetBillingSettings()
	if err != nil {
		rate, interval = 0, 0
	}

	lastImport := ""
	if t, err := h.store.LastImportTime(); err == nil && !t.IsZero() {
		lastImport = t.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:      count > 0,
		TotalEntries:     count,
		HourlyRate:       rate,
		RoundingInterval: interval,
		LastImportTime:   lastImport,
	})
}
