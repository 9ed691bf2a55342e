package model

// Package - тематический пакет верхнего уровня (например "Computer Science").
type Package struct {
	ID       int
	Name     string
	Subjects []*Subject
}

// Subject - тема внутри пакета.
type Subject struct {
	ID        int
	Name      string
	PackageID int
	Books     []Book
}

type Book struct {
	Title   string
	URL     string
	Package string
}

// Catalog - дерево пакет -> тема -> книга, собирается один раз за запуск
// и дальше только читается.
type Catalog struct {
	packages   []*Package
	packageIdx map[int]*Package
	subjectIdx map[int]*Subject
}

func NewCatalog(packages []*Package) *Catalog {
	c := &Catalog{
		packages:   packages,
		packageIdx: make(map[int]*Package, len(packages)),
		subjectIdx: make(map[int]*Subject),
	}

	for _, pkg := range packages {
		c.packageIdx[pkg.ID] = pkg
		for _, subj := range pkg.Subjects {
			c.subjectIdx[subj.ID] = subj
		}
	}

	return c
}

func (c *Catalog) Packages() []*Package {
	return c.packages
}

func (c *Catalog) Package(id int) (*Package, error) {
	pkg, ok := c.packageIdx[id]
	if !ok {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

func (c *Catalog) Subject(id int) (*Subject, error) {
	subj, ok := c.subjectIdx[id]
	if !ok {
		return nil, ErrSubjectNotFound
	}
	return subj, nil
}

func (c *Catalog) SubjectsOf(packageID int) ([]*Subject, error) {
	pkg, err := c.Package(packageID)
	if err != nil {
		return nil, err
	}
	return pkg.Subjects, nil
}

func (c *Catalog) BooksOf(subjectID int) ([]Book, error) {
	subj, err := c.Subject(subjectID)
	if err != nil {
		return nil, err
	}
	return subj.Books, nil
}

// BooksOfPackage возвращает книги всех тем пакета в порядке тема -> книга.
// Книга, попавшая в несколько тем пакета, возвращается один раз.
func (c *Catalog) BooksOfPackage(packageID int) ([]Book, error) {
	pkg, err := c.Package(packageID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var books []Book
	for _, subj := range pkg.Subjects {
		for _, book := range subj.Books {
			if _, ok := seen[book.URL]; ok {
				continue
			}
			seen[book.URL] = struct{}{}
			books = append(books, book)
		}
	}

	return books, nil
}
