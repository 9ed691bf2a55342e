package parser

import "errors"

var ErrEmptyCatalog = errors.New("catalog is empty")
