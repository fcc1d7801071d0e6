package v1

import (
	"github.com/gin-gonic/gin"

	"timelens/internal/store"
)

// Handler V1 API 处理器
type Handler struct {
	store     *store.Store
	downloads *exportDownloadStore
}

// NewHandler 创建 V1 API 处理器
func NewHandler(store *store.Store) *Handler {
	return &Handler{
		store:     store,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 V1 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 数据导入
	router.POST("/import", h.Import)
	router.POST("/import/url", h.ImportFromURL)

	// 条目查询与汇总
	router.GET("/entries", h.ListEntries)
	router.GET("/summary", h.GetSummary)

	// 取整与金额重算
	router.POST("/rounding/preview", h.PreviewRounding)
	router.POST("/rounding/apply", h.ApplyRounding)
	router.POST("/amounts/recalculate", h.RecalculateAmounts)

	// 账单
	router.GET("/invoice", h.GetInvoice)
	router.GET("/invoice/download", h.DownloadInvoice)

	// 数据导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)

	// 快照分享
	router.POST("/snapshots", h.CreateSnapshot)
	router.GET("/snapshots", h.ListSnapshots)
	router.GET("/snapshots/:id", h.GetSnapshot)
	router.DELETE("/snapshots/:id", h.DeleteSnapshot)

	// 设置
	router.GET("/settings", h.GetSettings)
	router.PATCH("/settings", h.UpdateSettings)
}
