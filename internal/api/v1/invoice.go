package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"timelens/internal/calculator"
	"timelens/internal/exporter"
	"timelens/internal/model"
	"timelens/internal/store"
)

// buildInvoice 查询客户条目并组装账单；rate 缺省取当前设置
func (h *Handler) buildInvoice(c *gin.Context) (*model.InvoiceData, bool) {
	client := strings.TrimSpace(c.Query("client"))
	if client == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 client 参数"})
		return nil, false
	}

	rate := parseFloatWithDefault(c.Query("rate"), 0)
	if rate <= 0 {
		settingRate, _, err := h.store.GetBillingSettings()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return nil, false
		}
		rate = settingRate
	}

	number := strings.TrimSpace(c.Query("number"))
	if number == "" {
		number = "INV-001"
	}

	entries, err := h.store.ListEntries(store.EntryQueryOptions{Client: &client})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	if len(entries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "该客户没有工时记录"})
		return nil, false
	}

	inv := calculator.BuildInvoice(client, entries, rate, number)
	return &inv, true
}

// GetInvoice 获取客户账单数据
// GET /api/invoice?client=&rate=&number=
func (h *Handler) GetInvoice(c *gin.Context) {
	inv, ok := h.buildInvoice(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, inv)
}

// DownloadInvoice 下载文本账单
// GET /api/invoice/download?client=&rate=&number=
func (h *Handler) DownloadInvoice(c *gin.Context) {
	inv, ok := h.buildInvoice(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("invoice-%s-%s.txt", inv.Number, inv.Client)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(exporter.RenderInvoiceText(*inv)))
}
