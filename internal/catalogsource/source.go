package catalogsource

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"freebooks_cli/config"
	"freebooks_cli/utils"
)

const cacheFilename = "catalog.xlsx"

// Source выдает локальный путь до xlsx каталога. Удаленный каталог
// скачивается один раз в кэш-директорию и переиспользуется.
type Source struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) *Source {
	return &Source{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.Download.TimeoutSeconds) * time.Second},
	}
}

func (s *Source) Fetch(ctx context.Context, refresh bool) (string, error) {
	op := "Source.Fetch"
	rqID := utils.GetRequestIDFromCtx(ctx)

	location := s.cfg.Catalog.Location
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		if _, err := os.Stat(location); err != nil {
			return "", fmt.Errorf("catalog file: %w", err)
		}
		return location, nil
	}

	cachePath, err := s.cachePath()
	if err != nil {
		return "", err
	}

	if !refresh {
		if _, err := os.Stat(cachePath); err == nil {
			slog.Debug(
				"Using cached catalog",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("path", cachePath),
			)
			return cachePath, nil
		}
	}

	slog.Info(
		"Fetching catalog",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.String("url", location),
	)

	if err := s.download(ctx, location, cachePath); err != nil {
		return "", err
	}

	return cachePath, nil
}

func (s *Source) download(ctx context.Context, fileURL, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch catalog: %w (code: %d)", ErrBadStatus, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return err
	}

	outFile, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		_ = outFile.Close()
		_ = os.Remove(destPath)
		return fmt.Errorf("write catalog cache: %w", err)
	}

	return outFile.Close()
}

func (s *Source) cachePath() (string, error) {
	dir := s.cfg.Catalog.CacheDir
	if dir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("resolve cache dir: %w", err)
		}
		dir = filepath.Join(userCache, "freebooks")
	}
	return filepath.Join(dir, cacheFilename), nil
}
