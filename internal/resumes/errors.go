package resumes

import "errors"

var (
	ErrNotFound     = errors.New("resume not found")
	ErrInvalidInput = errors.New("invalid resume input")
	ErrNoText       = errors.New("no text could be extracted from resume")
)
