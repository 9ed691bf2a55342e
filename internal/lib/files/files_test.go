package files

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	filePath, written, err := CreateFile(dir, "book.pdf", strings.NewReader("content"))

	assert.Nil(t, err)
	assert.Equal(t, path.Join(dir, "book.pdf"), filePath)
	assert.Equal(t, int64(len("content")), written)

	content, err := os.ReadFile(filePath)
	assert.Nil(t, err)
	assert.Equal(t, "content", string(content))
}

func TestCreateFile_UniqueNameOnCollision(t *testing.T) {
	dir := t.TempDir()

	first, _, err := CreateFile(dir, "book.pdf", strings.NewReader("first"))
	assert.Nil(t, err)

	second, _, err := CreateFile(dir, "book.pdf", strings.NewReader("second"))
	assert.Nil(t, err)

	third, _, err := CreateFile(dir, "book.pdf", strings.NewReader("third"))
	assert.Nil(t, err)

	assert.Equal(t, path.Join(dir, "book.pdf"), first)
	assert.Equal(t, path.Join(dir, "book(1).pdf"), second)
	assert.Equal(t, path.Join(dir, "book(2).pdf"), third)

	content, err := os.ReadFile(second)
	assert.Nil(t, err)
	assert.Equal(t, "second", string(content))
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()

	filePath, _, err := CreateFile(dir, "book.pdf", strings.NewReader("content"))
	assert.Nil(t, err)

	assert.Nil(t, DeleteFile(filePath))

	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err))
}
