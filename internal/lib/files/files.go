package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
)

// CreateFile создает файл в директории dir с названием filename и содержимым content.
// Если файл с таким именем уже существует - название будет дополнено цифровым индексом.
func CreateFile(dir string, filename string, content io.Reader) (filePath string, written int64, err error) {
	filePath = generateUniqueFilePath(path.Join(dir, filename))

	outFile, err := os.Create(filePath)
	if err != nil {
		return "", 0, err
	}

	written, err = io.Copy(outFile, content)
	if err != nil {
		slog.Error("Write file failed", slog.String("filename", filename), slog.String("err", err.Error()))
		_ = outFile.Close()
		if errDelete := DeleteFile(filePath); errDelete != nil {
			slog.Error("failed on delete file", slog.String("filePath", filePath), slog.String("err", errDelete.Error()))
		}
		return "", 0, err
	}

	_ = outFile.Close()
	return filePath, written, nil
}

func DeleteFile(filePath string) error {
	if err := os.Remove(filePath); err != nil {
		return err
	}
	return nil
}

// generateUniqueFilePath проверяет существование файла и генерирует уникальное имя
func generateUniqueFilePath(filePath string) string {
	ext := path.Ext(filePath)
	base := strings.TrimSuffix(filePath, ext)
	i := 1

	for {
		if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
			break
		}
		filePath = fmt.Sprintf("%s(%d)%s", base, i, ext)
		i++
	}

	return filePath
}
