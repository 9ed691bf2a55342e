package parser

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"freebooks_cli/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type xlsxParserSuite struct {
	suite.Suite

	cfg    *config.Config
	parser *XlsxParser
}

func TestXlsxParserSuite(t *testing.T) {
	suite.Run(t, new(xlsxParserSuite))
}

func (s *xlsxParserSuite) SetupTest() {
	s.cfg = &config.Config{
		Catalog: config.Catalog{
			TitleCol:    "A",
			PackageCol:  "B",
			SubjectsCol: "C",
			URLCol:      "D",
		},
	}
	s.parser = NewXlsxParser(s.cfg)
}

func (s *xlsxParserSuite) writeWorkbook(rows [][]string) string {
	f := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			s.Require().NoError(err)
			s.Require().NoError(f.SetCellValue("Sheet1", cellName, val))
		}
	}

	path := filepath.Join(s.T().TempDir(), "catalog.xlsx")
	s.Require().NoError(f.SaveAs(path))
	return path
}

func (s *xlsxParserSuite) Test_Parse_BuildsTree() {
	path := s.writeWorkbook([][]string{
		{"Title", "Package", "Subjects", "URL"},
		{"Intro to X", "Computer Science", "Programming", "http://x/1.pdf"},
		{"Advanced X", "Computer Science", "Programming", "http://x/2.pdf"},
		{"Genes", "Biology", "Genetics; Botany", "http://x/3.pdf"},
	})

	catalog, err := s.parser.Parse(context.Background(), path)

	assert.Nil(s.T(), err)

	packages := catalog.Packages()
	assert.Len(s.T(), packages, 2)

	// пакеты нумеруются по алфавиту с 1
	assert.Equal(s.T(), 1, packages[0].ID)
	assert.Equal(s.T(), "Biology", packages[0].Name)
	assert.Equal(s.T(), 2, packages[1].ID)
	assert.Equal(s.T(), "Computer Science", packages[1].Name)

	// темы нумеруются по алфавиту после пакетов
	bio := packages[0]
	assert.Len(s.T(), bio.Subjects, 2)
	assert.Equal(s.T(), "Botany", bio.Subjects[0].Name)
	assert.Equal(s.T(), 3, bio.Subjects[0].ID)
	assert.Equal(s.T(), "Genetics", bio.Subjects[1].Name)
	assert.Equal(s.T(), 4, bio.Subjects[1].ID)

	cs := packages[1]
	assert.Len(s.T(), cs.Subjects, 1)
	assert.Equal(s.T(), "Programming", cs.Subjects[0].Name)
	assert.Equal(s.T(), 5, cs.Subjects[0].ID)

	// книги внутри темы идут в порядке строк
	books := cs.Subjects[0].Books
	assert.Len(s.T(), books, 2)
	assert.Equal(s.T(), "Intro to X", books[0].Title)
	assert.Equal(s.T(), "http://x/1.pdf", books[0].URL)
	assert.Equal(s.T(), "Advanced X", books[1].Title)

	// книга с двумя темами попадает в обе
	assert.Equal(s.T(), "Genes", bio.Subjects[0].Books[0].Title)
	assert.Equal(s.T(), "Genes", bio.Subjects[1].Books[0].Title)
}

func (s *xlsxParserSuite) Test_Parse_SkipsRowsWithMissingFields() {
	path := s.writeWorkbook([][]string{
		{"Title", "Package", "Subjects", "URL"},
		{"No URL", "Computer Science", "Programming", ""},
		{"", "Computer Science", "Programming", "http://x/1.pdf"},
		{"No Subjects", "Computer Science", "", "http://x/2.pdf"},
		{"Valid", "Computer Science", "Programming", "http://x/3.pdf"},
	})

	catalog, err := s.parser.Parse(context.Background(), path)

	assert.Nil(s.T(), err)

	packages := catalog.Packages()
	assert.Len(s.T(), packages, 1)
	assert.Len(s.T(), packages[0].Subjects, 1)

	books := packages[0].Subjects[0].Books
	assert.Len(s.T(), books, 1)
	assert.Equal(s.T(), "Valid", books[0].Title)
}

func (s *xlsxParserSuite) Test_Parse_EmptyCatalog() {
	path := s.writeWorkbook([][]string{
		{"Title", "Package", "Subjects", "URL"},
	})

	_, err := s.parser.Parse(context.Background(), path)

	assert.ErrorIs(s.T(), err, ErrEmptyCatalog)
}

func (s *xlsxParserSuite) Test_Parse_OnlyInvalidRows() {
	path := s.writeWorkbook([][]string{
		{"Title", "Package", "Subjects", "URL"},
		{"No URL", "Computer Science", "Programming", ""},
	})

	_, err := s.parser.Parse(context.Background(), path)

	assert.ErrorIs(s.T(), err, ErrEmptyCatalog)
}

func (s *xlsxParserSuite) Test_Parse_FileNotFound() {
	_, err := s.parser.Parse(context.Background(), filepath.Join(s.T().TempDir(), "missing.xlsx"))

	assert.NotNil(s.T(), err)
}

func (s *xlsxParserSuite) Test_Parse_URLTemplate() {
	s.cfg.Catalog.URLTemplate = "https://books.test/content/pdf/{id}.pdf"

	path := s.writeWorkbook([][]string{
		{"Title", "Package", "Subjects", "URL"},
		{"Intro to X", "Computer Science", "Programming", "http://doi.org/10.1007/978-3"},
	})

	catalog, err := s.parser.Parse(context.Background(), path)

	assert.Nil(s.T(), err)

	books := catalog.Packages()[0].Subjects[0].Books
	assert.Equal(s.T(), "https://books.test/content/pdf/10.1007%2F978-3.pdf", books[0].URL)
}

func (s *xlsxParserSuite) Test_Parse_TruncatesLongSubjects() {
	longSubject := strings.Repeat("a", 60)

	path := s.writeWorkbook([][]string{
		{"Title", "Package", "Subjects", "URL"},
		{"Intro to X", "Computer Science", longSubject, "http://x/1.pdf"},
	})

	catalog, err := s.parser.Parse(context.Background(), path)

	assert.Nil(s.T(), err)

	subjects := catalog.Packages()[0].Subjects
	assert.Len(s.T(), subjects, 1)
	assert.Equal(s.T(), strings.Repeat("a", 47)+"...", subjects[0].Name)
}

func (s *xlsxParserSuite) Test_Parse_BadColumnConfig() {
	s.cfg.Catalog.URLCol = "!!"

	path := s.writeWorkbook([][]string{
		{"Title", "Package", "Subjects", "URL"},
		{"Intro to X", "Computer Science", "Programming", "http://x/1.pdf"},
	})

	_, err := s.parser.Parse(context.Background(), path)

	assert.NotNil(s.T(), err)
}
