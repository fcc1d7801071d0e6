package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"timelens/internal/model"
	"timelens/internal/store"
)

// CreateSnapshot 保存当前状态快照，返回分享链接
// POST /api/snapshots
func (h *Handler) CreateSnapshot(c *gin.Context) {
	var snap model.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	// 未携带条目时以当前工作集 + 当前设置兜底
	if len(snap.TimeEntries) == 0 {
		entries, err := h.store.ListEntries(store.EntryQueryOptions{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		snap.TimeEntries = entries
	}
	if snap.DefaultHourlyRate <= 0 || !model.ValidRoundingInterval(snap.DefaultRoundingInterval) {
		rate, interval, err := h.store.GetBillingSettings()
		if err == nil {
			if snap.DefaultHourlyRate <= 0 {
				snap.DefaultHourlyRate = rate
			}
			if !model.ValidRoundingInterval(snap.DefaultRoundingInterval) {
				snap.DefaultRoundingInterval = interval
			}
		}
	}
	if snap.Title == "" {
		snap.Title = fmt.Sprintf("Snapshot %s", time.Now().Format("2006-01-02"))
	}

	id, err := h.store.SaveSnapshot(snap)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       id,
		"shareUrl": "/?snapshot=" + id,
	})
}

// ListSnapshots 快照列表（元信息）
// GET /api/snapshots
func (h *Handler) ListSnapshots(c *gin.Context) {
	items, err := h.store.ListSnapshots()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []model.SnapshotMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetSnapshot 读取完整快照
// GET /api/snapshots/:id
func (h *Handler) GetSnapshot(c *gin.Context) {
	snap, err := h.store.GetSnapshot(c.Param("id"))
	if err != nil {
		if err == store.ErrSnapshotNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "快照不存在，链接可能已失效"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// DeleteSnapshot 删除快照
// DELETE /api/snapshots/:id
func (h *Handler) DeleteSnapshot(c *gin.Context) {
	if err := h.store.DeleteSnapshot(c.Param("id")); err != nil {
		if err == store.ErrSnapshotNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "快照不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
