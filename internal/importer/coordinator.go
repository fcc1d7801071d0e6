package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"timelens/internal/model"
	"timelens/internal/parser"
	"timelens/internal/store"
)

// Coordinator 导入协调器：读文件 → 解析 → 替换工作集 → 记录日志，
// 过程中通过通道发送进度事件（SSE 透传给前端）
type Coordinator struct {
	store *store.Store
}

// NewCoordinator 创建导入协调器
func NewCoordinator(store *store.Store) *Coordinator {
	return &Coordinator{store: store}
}

// ImportOptions 导入选项
type ImportOptions struct {
	FilePath         string // 上传落盘的临时文件路径；RawText 非空时忽略
	RawText          string // 直接提供的 CSV 文本（URL 导入）
	OriginalFilename string // 原始文件名，用于扩展名校验与日志
	Config           model.ImportConfig
	UpdateSettings   bool // 是否把本次时薪/粒度写入设置
}

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`    // start/info/done/error
	Message   string      `json:"message"` // 事件消息
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ImportReport 导入结果汇总
type ImportReport struct {
	Filename     string        `json:"filename"`
	TotalRows    int           `json:"totalRows"`
	ImportedRows int           `json:"importedRows"`
	DroppedRows  int           `json:"droppedRows"`
	Duration     time.Duration `json:"duration"`
}

// Import 执行导入，返回进度通道
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 16)

	go func() {
		defer close(progressChan)
		c.doImport(opts, progressChan)
	}()

	return progressChan
}

// doImport 执行导入逻辑
func (c *Coordinator) doImport(opts ImportOptions, progressChan chan ProgressEvent) {
	startTime := time.Now()
	filename := opts.OriginalFilename
	if filename == "" {
		filename = filepath.Base(opts.FilePath)
	}

	c.send(progressChan, ProgressEvent{
		Type:      "start",
		Message:   "开始导入 CSV 文件",
		Data:      map[string]string{"filename": filename},
		Timestamp: time.Now(),
	})

	rawText, err := c.readSource(opts, filename)
	if err != nil {
		c.fail(progressChan, err)
		return
	}

	if err := c.validateConfig(opts.Config); err != nil {
		c.fail(progressChan, err)
		return
	}

	totalRows := countDataRows(rawText)
	c.send(progressChan, ProgressEvent{
		Type:      "info",
		Message:   fmt.Sprintf("发现 %d 行数据", totalRows),
		Data:      map[string]interface{}{"total_rows": totalRows},
		Timestamp: time.Now(),
	})

	entries, err := parser.ParseDataset(rawText, opts.Config)
	if err != nil {
		c.fail(progressChan, err)
		return
	}

	if err := c.store.ReplaceEntries(entries); err != nil {
		c.fail(progressChan, fmt.Errorf("写入数据失败: %w", err))
		return
	}

	if opts.UpdateSettings {
		if err := c.store.SetBillingSettings(opts.Config.HourlyRate, opts.Config.RoundingInterval); err != nil {
			c.fail(progressChan, fmt.Errorf("保存设置失败: %w", err))
			return
		}
	}

	report := ImportReport{
		Filename:     filename,
		TotalRows:    totalRows,
		ImportedRows: len(entries),
		DroppedRows:  totalRows - len(entries),
		Duration:     time.Since(startTime),
	}

	_ = c.store.AddImportLog(store.ImportLog{
		Filename:     report.Filename,
		ImportedRows: report.ImportedRows,
		DroppedRows:  report.DroppedRows,
		DurationMs:   report.Duration.Milliseconds(),
	})

	c.send(progressChan, ProgressEvent{
		Type:      "done",
		Message:   fmt.Sprintf("导入完成，共 %d 条有效记录", report.ImportedRows),
		Data:      report,
		Timestamp: time.Now(),
	})
}

// readSource 取得 CSV 文本；扩展名与基本形态校验在行级解析前完成
func (c *Coordinator) readSource(opts ImportOptions, filename string) (string, error) {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && ext != ".csv" && ext != ".txt" {
		return "", &parser.MalformedFileError{Reason: "仅支持 .csv 文件，收到 " + ext}
	}

	rawText := opts.RawText
	if rawText == "" {
		data, err := os.ReadFile(opts.FilePath)
		if err != nil {
			return "", fmt.Errorf("读取上传文件失败: %w", err)
		}
		rawText = string(data)
	}

	firstLine := rawText
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}
	if !strings.ContainsAny(firstLine, ",;\t") {
		return "", &parser.MalformedFileError{Reason: "表头没有任何分隔符"}
	}

	return rawText, nil
}

func (c *Coordinator) validateConfig(cfg model.ImportConfig) error {
	if cfg.HourlyRate <= 0 {
		return fmt.Errorf("时薪必须为正数")
	}
	if !model.ValidRoundingInterval(cfg.RoundingInterval) {
		return fmt.Errorf("取整粒度必须是 15/30/60 分钟")
	}
	return nil
}

func (c *Coordinator) fail(progressChan chan ProgressEvent, err error) {
	c.send(progressChan, ProgressEvent{
		Type:      "error",
		Message:   err.Error(),
		Timestamp: time.Now(),
	})
}

func (c *Coordinator) send(progressChan chan ProgressEvent, event ProgressEvent) {
	progressChan <- event
}

// countDataRows 数据行数（非空行，不含表头）
func countDataRows(rawText string) int {
	lines := strings.Split(strings.TrimSpace(rawText), "\n")
	count := 0
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
