package cli

import (
	"fmt"
	"text/tabwriter"

	"freebooks_cli/internal/model"
)

func (c *Controller) renderPackages(catalog *model.Catalog) error {
	w := tabwriter.NewWriter(c.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tPACKAGE\tBOOKS")
	for _, pkg := range catalog.Packages() {
		books, err := catalog.BooksOfPackage(pkg.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%d\n", pkg.ID, pkg.Name, len(books))
	}
	return w.Flush()
}

func (c *Controller) renderSubjects(catalog *model.Catalog, packageIDs []int) error {
	w := tabwriter.NewWriter(c.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSUBJECT\tPACKAGE\tBOOKS")
	for _, id := range packageIDs {
		subjects, err := catalog.SubjectsOf(id)
		if err != nil {
			return fmt.Errorf("package %d: %w", id, err)
		}
		for _, subj := range subjects {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", subj.ID, subj.Name, subj.PackageID, len(subj.Books))
		}
	}
	return w.Flush()
}

func (c *Controller) renderBooks(catalog *model.Catalog, id int, books []model.Book) error {
	fmt.Fprintf(c.out, "Books in %s:\n", topicLabel(catalog, id))

	w := tabwriter.NewWriter(c.out, 0, 0, 3, ' ', 0)
	for _, book := range books {
		fmt.Fprintf(w, "   %s\t%s\n", book.Title, book.URL)
	}
	return w.Flush()
}

// renderResults печатает итог каждой книги и возвращает число неудач.
func (c *Controller) renderResults(results []model.DownloadResult) (failed int) {
	for _, res := range results {
		if res.Failed() {
			failed++
			fmt.Fprintf(c.errOut, "FAILED   %s: %s\n", res.Book.Title, res.Err)
			continue
		}
		fmt.Fprintf(c.out, "OK       %s -> %s (%d bytes)\n", res.Book.Title, res.Path, res.Bytes)
	}

	fmt.Fprintf(c.out, "Downloaded %d of %d books\n", len(results)-failed, len(results))
	return failed
}

// topicLabel подписывает заголовок списка книг. Приоритет совпадает с
// Resolve: сначала тема, потом пакет.
func topicLabel(catalog *model.Catalog, id int) string {
	if subj, err := catalog.Subject(id); err == nil {
		return fmt.Sprintf("subject %q", subj.Name)
	}
	if pkg, err := catalog.Package(id); err == nil {
		return fmt.Sprintf("package %q", pkg.Name)
	}
	return fmt.Sprintf("topic %d", id)
}
