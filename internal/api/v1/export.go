package v1

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"timelens/internal/exporter"
	"timelens/internal/filter"
	"timelens/internal/model"
	"timelens/internal/store"
)

// ExportRequest 导出请求
type ExportRequest struct {
	Format  string               `json:"format"` // csv/json/summary/xlsx
	Filters *exportFilterPayload `json:"filters,omitempty"`
}

// exportFilterPayload 与查询参数同构的过滤条件（POST body 形态）
type exportFilterPayload struct {
	Search    string   `json:"search,omitempty"`
	Projects  []string `json:"projects,omitempty"`
	Clients   []string `json:"clients,omitempty"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
}

func (p *exportFilterPayload) toOptions() model.FilterOptions {
	opts := model.FilterOptions{
		SearchTerm: p.Search,
		Projects:   p.Projects,
		Clients:    p.Clients,
	}
	start := parseDateParam(p.StartDate)
	end := parseDateParam(p.EndDate)
	if start != nil || end != nil {
		opts.DateRange = &model.DateRange{Start: start, End: end}
	}
	return opts
}

const downloadTTL = 10 * time.Minute

// Export 生成导出文件并返回下载令牌
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	entries, err := h.store.ListEntries(store.EntryQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Filters != nil {
		entries = filter.Apply(entries, req.Filters.toOptions())
	}

	date := time.Now().Format("2006-01-02")
	var filename, mimeType string

	switch req.Format {
	case "csv":
		filename = fmt.Sprintf("timesheet-export-%s.csv", date)
		mimeType = "text/csv"
	case "json":
		filename = fmt.Sprintf("timesheet-export-%s.json", date)
		mimeType = "application/json"
	case "summary":
		filename = fmt.Sprintf("timesheet-summary-%s.json", date)
		mimeType = "application/json"
	case "xlsx":
		filename = fmt.Sprintf("timesheet-export-%s.xlsx", date)
		mimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "不支持的导出格式: " + req.Format})
		return
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("timelens_export_%d_%s", time.Now().UnixNano(), filename))

	if err := writeExportFile(tempPath, req.Format, entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成导出文件失败: " + err.Error()})
		return
	}

	token := h.downloads.put(tempPath, filename, mimeType, downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"filename": filename,
		"count":    len(entries),
	})
}

// writeExportFile 按格式生成导出文件
func writeExportFile(path, format string, entries []model.TimeEntry) error {
	if format == "xlsx" {
		f, err := exporter.BuildWorkbook(entries)
		if err != nil {
			return err
		}
		defer f.Close()
		return f.SaveAs(path)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "csv":
		return exporter.WriteCSV(file, entries)
	case "json":
		return exporter.WriteJSON(file, entries)
	case "summary":
		return exporter.WriteSummaryReport(file, entries)
	}
	return fmt.Errorf("unknown format: %s", format)
}

// DownloadExport 按令牌下载导出文件
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接无效或已过期"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件已被清理"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.filename))
	c.Header("Content-Type", item.mimeType)
	c.File(item.filePath)
}
