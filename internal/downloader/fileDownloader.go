package downloader

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"freebooks_cli/config"
	"freebooks_cli/internal/lib/files"
	"freebooks_cli/internal/model"
	"freebooks_cli/utils"

	"github.com/kennygrant/sanitize"
)

type FileDownloader struct {
	client *http.Client
}

func NewFileDownloader(cfg *config.Config) *FileDownloader {
	return &FileDownloader{
		client: &http.Client{Timeout: time.Duration(cfg.Download.TimeoutSeconds) * time.Second},
	}
}

// DownloadAll скачивает книги строго по очереди. Ошибка одной книги не
// прерывает остальные: на каждую книгу всегда возвращается свой результат.
// При group файлы раскладываются по поддиректориям с названием пакета.
func (f *FileDownloader) DownloadAll(ctx context.Context, books []model.Book, destDir string, group bool) []model.DownloadResult {
	op := "FileDownloader.DownloadAll"
	rqID := utils.GetRequestIDFromCtx(ctx)

	results := make([]model.DownloadResult, 0, len(books))
	for _, book := range books {
		res := model.DownloadResult{Book: book}
		res.Path, res.Bytes, res.Err = f.download(ctx, book, destDir, group)
		if res.Err != nil {
			slog.Error(
				"Download failed",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("title", book.Title),
				slog.String("url", book.URL),
				slog.String("err", res.Err.Error()),
			)
		}
		results = append(results, res)
	}

	return results
}

func (f *FileDownloader) download(ctx context.Context, book model.Book, destDir string, group bool) (filePath string, written int64, err error) {
	op := "FileDownloader.download"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Info("Download start", slog.String("rqID", rqID), slog.String("op", op), slog.String("url", book.URL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, book.URL, nil)
	if err != nil {
		return "", 0, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("%w (code: %d)", ErrBadStatus, resp.StatusCode)
	}

	dir := destDir
	if group {
		dir = filepath.Join(destDir, sanitize.BaseName(book.Package))
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", 0, err
	}

	filename := f.filename(book, resp.Header.Get("Content-Disposition"))

	filePath, written, err = files.CreateFile(dir, filename, resp.Body)
	if err != nil {
		return "", 0, err
	}

	slog.Info("Download finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("path", filePath))

	return filePath, written, nil
}

// filename собирает имя файла из названия книги. Расширение берется из пути
// ссылки, потом из Content-Disposition, по умолчанию .pdf.
func (f *FileDownloader) filename(book model.Book, contentDisposition string) string {
	ext := ""
	if u, err := url.Parse(book.URL); err == nil {
		ext = path.Ext(u.Path)
	}

	if ext == "" && contentDisposition != "" {
		if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
			ext = path.Ext(params["filename"])
		}
	}

	if ext == "" {
		ext = ".pdf"
	}

	return sanitize.BaseName(book.Title) + ext
}
