package model

// DownloadResult - итог скачивания одной книги. Err == nil означает успех,
// Path и Bytes заполнены только при успехе.
type DownloadResult struct {
	Book  Book
	Path  string
	Bytes int64
	Err   error
}

func (r DownloadResult) Failed() bool {
	return r.Err != nil
}
