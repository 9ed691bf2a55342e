package model

import "errors"

var (
	ErrPackageNotFound = errors.New("package not found")
	ErrSubjectNotFound = errors.New("subject not found")
)
