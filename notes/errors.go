package notes

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPageRequired     = errors.New("footnotes: page id required")
	ErrFootnoteRequired = errors.New("footnotes: footnote id required")
	ErrTextRequired     = errors.New("footnotes: text is required")
	ErrTextTooLong      = errors.New("footnotes: text exceeds maximum length")
	ErrFootnoteExists   = errors.New("footnotes: footnote already exists")
	ErrFootnoteNotFound = errors.New("footnotes: footnote not found")
)

// FootnoteNotFoundError carries lookup context for missing footnotes.
type FootnoteNotFoundError struct {
	Key string
}

func (e *FootnoteNotFoundError) Error() string {
	if e == nil {
		return ErrFootnoteNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key != "" {
		return fmt.Sprintf("%s: id=%s", ErrFootnoteNotFound.Error(), key)
	}
	return ErrFootnoteNotFound.Error()
}

func (e *FootnoteNotFoundError) Unwrap() error {
	return ErrFootnoteNotFound
}
