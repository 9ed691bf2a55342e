package parser

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"freebooks_cli/config"
	"freebooks_cli/internal/model"
	"freebooks_cli/utils"

	"github.com/xuri/excelize/v2"
)

// maxSubjectLen - длина, до которой обрезаются названия тем в каталоге.
const maxSubjectLen = 50

type XlsxParser struct {
	cfg *config.Config
}

func NewXlsxParser(cfg *config.Config) *XlsxParser {
	return &XlsxParser{cfg: cfg}
}

type columns struct {
	title    int
	pkg      int
	subjects int
	url      int
}

type subjectKey struct {
	pkg  string
	name string
}

// Parse читает первый лист xlsx файла и строит дерево каталога.
// Строки без названия, пакета или ссылки пропускаются. Идентификаторы
// выдаются по отсортированным названиям: пакеты с 1, темы после пакетов.
func (p *XlsxParser) Parse(ctx context.Context, path string) (*model.Catalog, error) {
	op := "XlsxParser.Parse"
	rqID := utils.GetRequestIDFromCtx(ctx)

	cols, err := p.columns()
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read catalog sheet: %w", err)
	}

	if len(rows) < 2 {
		return nil, ErrEmptyCatalog
	}

	subjectBooks := make(map[subjectKey][]model.Book)
	skipped := 0

	// первая строка - заголовок
	for i, row := range rows[1:] {
		title := cell(row, cols.title)
		pkgName := cell(row, cols.pkg)
		subjectsCell := cell(row, cols.subjects)
		rawURL := cell(row, cols.url)

		if title == "" || pkgName == "" || rawURL == "" {
			skipped++
			slog.Debug(
				"Skipping catalog row with missing fields",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.Int("row", i+2),
			)
			continue
		}

		book := model.Book{
			Title:   title,
			URL:     p.buildURL(rawURL),
			Package: pkgName,
		}

		attached := false
		for _, s := range strings.Split(subjectsCell, ";") {
			name := truncateSubject(strings.TrimSpace(s))
			if name == "" {
				continue
			}
			key := subjectKey{pkg: pkgName, name: name}
			subjectBooks[key] = append(subjectBooks[key], book)
			attached = true
		}

		if !attached {
			skipped++
			slog.Debug(
				"Skipping catalog row without subjects",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.Int("row", i+2),
			)
		}
	}

	if len(subjectBooks) == 0 {
		return nil, fmt.Errorf("%w: no valid rows", ErrEmptyCatalog)
	}

	catalog := buildCatalog(subjectBooks)

	if skipped > 0 {
		slog.Warn(
			"Some catalog rows were skipped",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.Int("skipped", skipped),
		)
	}

	slog.Info(
		"Catalog loaded",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("packages", len(catalog.Packages())),
	)

	return catalog, nil
}

func buildCatalog(subjectBooks map[subjectKey][]model.Book) *model.Catalog {
	pkgByName := make(map[string]*model.Package)
	pkgNames := make([]string, 0)
	for key := range subjectBooks {
		if _, ok := pkgByName[key.pkg]; !ok {
			pkgByName[key.pkg] = &model.Package{Name: key.pkg}
			pkgNames = append(pkgNames, key.pkg)
		}
	}
	sort.Strings(pkgNames)

	packages := make([]*model.Package, 0, len(pkgNames))
	for i, name := range pkgNames {
		pkg := pkgByName[name]
		pkg.ID = i + 1
		packages = append(packages, pkg)
	}

	keys := make([]subjectKey, 0, len(subjectBooks))
	for key := range subjectBooks {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].pkg < keys[j].pkg
	})

	// темы нумеруются после последнего пакета
	nextID := len(packages) + 1
	for _, key := range keys {
		pkg := pkgByName[key.pkg]
		pkg.Subjects = append(pkg.Subjects, &model.Subject{
			ID:        nextID,
			Name:      key.name,
			PackageID: pkg.ID,
			Books:     subjectBooks[key],
		})
		nextID++
	}

	return model.NewCatalog(packages)
}

func (p *XlsxParser) columns() (columns, error) {
	var cols columns
	for _, c := range []struct {
		letter string
		idx    *int
	}{
		{p.cfg.Catalog.TitleCol, &cols.title},
		{p.cfg.Catalog.PackageCol, &cols.pkg},
		{p.cfg.Catalog.SubjectsCol, &cols.subjects},
		{p.cfg.Catalog.URLCol, &cols.url},
	} {
		n, err := excelize.ColumnNameToNumber(c.letter)
		if err != nil {
			return cols, fmt.Errorf("catalog column %q: %w", c.letter, err)
		}
		*c.idx = n - 1
	}
	return cols, nil
}

func (p *XlsxParser) buildURL(raw string) string {
	tmpl := p.cfg.Catalog.URLTemplate
	if tmpl == "" {
		return raw
	}

	id := strings.TrimPrefix(raw, "https://doi.org/")
	id = strings.TrimPrefix(id, "http://doi.org/")

	return strings.Replace(tmpl, "{id}", url.QueryEscape(id), 1)
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func truncateSubject(name string) string {
	runes := []rune(name)
	if len(runes) < maxSubjectLen {
		return name
	}
	return string(runes[:maxSubjectLen-3]) + "..."
}
