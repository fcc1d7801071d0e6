package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FetchError 远程 CSV 获取失败（网络错误、非 2xx、非文本响应），
// 携带底层原因
type FetchError struct {
	URL    string
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("获取远程 CSV 失败 (%s): %s", e.URL, e.Reason)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher 远程 CSV 下载器
type Fetcher struct {
	client *http.Client
}

// New 创建下载器
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// maxCSVBytes 远程文件大小上限，防止异常响应占满内存
const maxCSVBytes = 64 << 20

// FetchCSV 下载远程 CSV 文本。
// 对 HTML 等明显非 CSV 的响应直接拒绝；取消/超时由 ctx 控制
func (f *Fetcher) FetchCSV(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Reason: "无效的 URL", Err: err}
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Reason: "网络请求失败", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, Reason: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") {
		return "", &FetchError{URL: url, Reason: "响应不是 CSV 文本: " + contentType}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVBytes))
	if err != nil {
		return "", &FetchError{URL: url, Reason: "读取响应失败", Err: err}
	}

	return string(body), nil
}
