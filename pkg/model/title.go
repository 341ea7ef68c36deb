// pkg/model/title.go
package model

import (
	"strings"
	"time"
)

// ContentType is the catalog's type column
type ContentType string

const (
	ContentTypeMovie  ContentType = "Movie"
	ContentTypeTVShow ContentType = "TV Show"
)

// KnownContentTypes lists the enum values in display order
func KnownContentTypes() []ContentType {
	return []ContentType{ContentTypeMovie, ContentTypeTVShow}
}

// MultiValueSeparator splits director, country, cast and listed_in cells
const MultiValueSeparator = ", "

// Title is one cleaned catalog row
type Title struct {
	ShowID      string
	Type        ContentType
	Name        string
	Director    string
	Cast        string
	Country     string
	DateAdded   *time.Time // nil when the source date is missing or unparseable
	ReleaseYear int
	Rating      string
	Duration    string
	ListedIn    string
	Description string

	// Derived fields
	YearAdded       *int
	MonthAdded      *int
	DurationMinutes *int // first digit run of the raw duration; nil when absent
}

// IsMovie reports whether the title is a movie
func (t Title) IsMovie() bool {
	return t.Type == ContentTypeMovie
}

// Split returns the individual values of a multi-valued cell
func Split(value string) []string {
	return strings.Split(value, MultiValueSeparator)
}
