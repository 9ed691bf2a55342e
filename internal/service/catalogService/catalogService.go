package catalogService

import (
	"context"
	"fmt"

	"freebooks_cli/config"
	"freebooks_cli/internal/model"
)

//go:generate mockgen -source=catalogService.go -destination=mocks/mocks.go -package=mocks

type CatalogSource interface {
	Fetch(ctx context.Context, refresh bool) (path string, err error)
}

type CatalogParser interface {
	Parse(ctx context.Context, path string) (*model.Catalog, error)
}

type FileDownloader interface {
	DownloadAll(ctx context.Context, books []model.Book, destDir string, group bool) []model.DownloadResult
}

type CatalogService struct {
	cfg        *config.Config
	source     CatalogSource
	parser     CatalogParser
	downloader FileDownloader
}

func New(cfg *config.Config, source CatalogSource, parser CatalogParser, downloader FileDownloader) *CatalogService {
	return &CatalogService{
		cfg:        cfg,
		source:     source,
		parser:     parser,
		downloader: downloader,
	}
}

func (s *CatalogService) LoadCatalog(ctx context.Context, refresh bool) (*model.Catalog, error) {
	path, err := s.source.Fetch(ctx, refresh)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	catalog, err := s.parser.Parse(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return catalog, nil
}

// Resolve возвращает книги темы или пакета с указанным идентификатором.
// Если идентификатор есть в обоих пространствах - побеждает тема.
func (s *CatalogService) Resolve(catalog *model.Catalog, id int) ([]model.Book, error) {
	if books, err := catalog.BooksOf(id); err == nil {
		return books, nil
	}

	if books, err := catalog.BooksOfPackage(id); err == nil {
		return books, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrTopicNotFound, id)
}

// DownloadTopics скачивает книги всех перечисленных тем и пакетов.
// Книга, попавшая в несколько идентификаторов, скачивается один раз.
// Неизвестный идентификатор - ошибка до начала скачивания.
func (s *CatalogService) DownloadTopics(ctx context.Context, catalog *model.Catalog, ids []int, destDir string, group bool) ([]model.DownloadResult, error) {
	seen := make(map[string]struct{})
	var books []model.Book

	for _, id := range ids {
		resolved, err := s.Resolve(catalog, id)
		if err != nil {
			return nil, err
		}
		for _, book := range resolved {
			if _, ok := seen[book.URL]; ok {
				continue
			}
			seen[book.URL] = struct{}{}
			books = append(books, book)
		}
	}

	return s.downloader.DownloadAll(ctx, books, destDir, group), nil
}
