package connector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumns is wrapped by ParseError when the header lacks required columns
var ErrMissingColumns = errors.New("missing required columns")

// ErrEmptyFile is wrapped by ParseError when the file has no header row
var ErrEmptyFile = errors.New("file is empty")

// ParseError reports a fatal failure to load the catalog file
type ParseError struct {
	Path    string
	Line    int // 1-based line in the file, 0 when not tied to a row
	Column  string
	Missing []string
	Err     error
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("parse ")
	sb.WriteString(e.Path)

	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf(" line %d", e.Line))
	}
	if e.Column != "" {
		sb.WriteString(fmt.Sprintf(" column %s", e.Column))
	}
	if len(e.Missing) > 0 {
		sb.WriteString(fmt.Sprintf(" (%s)", strings.Join(e.Missing, ", ")))
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is or wraps a *ParseError
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
