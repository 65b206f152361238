package util

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrChapterNotFound      = errors.New("chapter not found")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrExportNotFound       = errors.New("export record not found")
	ErrDuplicateChapterName = errors.New("chapter name already exists")
	ErrConcurrencyConflict  = errors.New("submission conflicted with a concurrent attempt, please retry")
)
