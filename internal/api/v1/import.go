package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"timelens/internal/fetcher"
	"timelens/internal/importer"
	"timelens/internal/model"
)

// Import 导入 CSV 数据 (SSE 流式响应)
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表单数据"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}

	uploadedFile := files[0]

	tempDir := os.TempDir()
	tempFilePath := filepath.Join(tempDir, fmt.Sprintf("timelens_import_%d_%s", time.Now().Unix(), uploadedFile.Filename))

	if err := c.SaveUploadedFile(uploadedFile, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}
	defer os.Remove(tempFilePath)

	cfg := model.ImportConfig{
		HourlyRate:       parseFloatWithDefault(c.DefaultPostForm("hourlyRate", ""), 0),
		RoundingInterval: parseIntWithDefault(c.DefaultPostForm("roundingInterval", ""), 0),
	}
	h.fillConfigDefaults(&cfg)

	h.streamImport(c, importer.ImportOptions{
		FilePath:         tempFilePath,
		OriginalFilename: uploadedFile.Filename,
		Config:           cfg,
		UpdateSettings:   true,
	})
}

// ImportURLRequest URL 导入请求
type ImportURLRequest struct {
	URL              string  `json:"url"`
	HourlyRate       float64 `json:"hourlyRate"`
	RoundingInterval int     `json:"roundingInterval"`
}

// ImportFromURL 从远程 URL 导入 CSV (SSE 流式响应)
// POST /api/import/url
func (h *Handler) ImportFromURL(c *gin.Context) {
	var req ImportURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 url 参数"})
		return
	}

	rawText, err := fetcher.New().FetchCSV(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	cfg := model.ImportConfig{
		HourlyRate:       req.HourlyRate,
		RoundingInterval: req.RoundingInterval,
	}
	h.fillConfigDefaults(&cfg)

	h.streamImport(c, importer.ImportOptions{
		RawText:          rawText,
		OriginalFilename: filepath.Base(req.URL),
		Config:           cfg,
		UpdateSettings:   true,
	})
}

// fillConfigDefaults 未提供的导入参数回落到当前设置
func (h *Handler) fillConfigDefaults(cfg *model.ImportConfig) {
	rate, interval, err := h.store.GetBillingSettings()
	if err != nil {
		return
	}
	if cfg.HourlyRate <= 0 {
		cfg.HourlyRate = rate
	}
	if !model.ValidRoundingInterval(cfg.RoundingInterval) {
		cfg.RoundingInterval = interval
	}
}

// streamImport 运行导入协调器并把进度事件以 SSE 发回
func (h *Handler) streamImport(c *gin.Context, opts importer.ImportOptions) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	coordinator := importer.NewCoordinator(h.store)
	progressChan := coordinator.Import(opts)

	for event := range progressChan {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}

		// SSE 格式: data: {json}\n\n
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}
