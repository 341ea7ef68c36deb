// pkg/cleaner/operations.go
package cleaner

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/David-Botos/catalog-eda/pkg/model"
)

var digitRun = regexp.MustCompile(`\d+`)

var defaultDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"2 January 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
}

// fillSentinel replaces a missing value with the sentinel
func fillSentinel(value string, present bool, ctx model.CleaningContext) (string, *model.CleaningOperation) {
	if present {
		return value, nil
	}

	return ctx.Sentinel, &model.CleaningOperation{
		ColumnName:        ctx.ColumnName,
		OriginalValue:     nil,
		NewValue:          ctx.Sentinel,
		RowIdentifier:     ctx.RowIdentifier,
		CleaningOperation: model.OperationFillSentinel,
		CleaningReason:    "missing_value",
	}
}

// parseDateAdded parses date_added with coerce semantics: failures become nil.
// Surrounding whitespace is trimmed and recorded before parsing.
func parseDateAdded(value string, present bool, rowID string, layouts []string) (*time.Time, []*model.CleaningOperation) {
	if !present {
		return nil, []*model.CleaningOperation{{
			ColumnName:        model.ColumnDateAdded,
			OriginalValue:     nil,
			NewValue:          "",
			RowIdentifier:     rowID,
			CleaningOperation: model.OperationDateCoerce,
			CleaningReason:    "missing_value",
		}}
	}

	var operations []*model.CleaningOperation
	trimmed := strings.TrimSpace(value)
	if trimmed != value {
		operations = append(operations, &model.CleaningOperation{
			ColumnName:        model.ColumnDateAdded,
			OriginalValue:     value,
			NewValue:          trimmed,
			RowIdentifier:     rowID,
			CleaningOperation: model.OperationTrimWhitespace,
			CleaningReason:    "surrounding_whitespace",
		})
	}

	t, err := toTime(trimmed, layouts)
	if err != nil {
		return nil, append(operations, &model.CleaningOperation{
			ColumnName:        model.ColumnDateAdded,
			OriginalValue:     value,
			NewValue:          "",
			RowIdentifier:     rowID,
			CleaningOperation: model.OperationDateCoerce,
			CleaningReason:    fmt.Sprintf("cannot_parse_date: %v", err),
		})
	}

	return &t, operations
}

// extractDurationMinutes takes the first run of digits in the raw duration.
// Missing values are already reported by fillSentinel.
func extractDurationMinutes(value string, present bool, rowID string) (*int, *model.CleaningOperation) {
	if !present {
		return nil, nil
	}

	match := digitRun.FindString(value)
	if match == "" {
		return nil, &model.CleaningOperation{
			ColumnName:        model.ColumnDurationMinutes,
			OriginalValue:     value,
			NewValue:          "",
			RowIdentifier:     rowID,
			CleaningOperation: model.OperationDurationExtract,
			CleaningReason:    "no_digits",
		}
	}

	minutes, err := strconv.Atoi(match)
	if err != nil {
		return nil, &model.CleaningOperation{
			ColumnName:        model.ColumnDurationMinutes,
			OriginalValue:     value,
			NewValue:          "",
			RowIdentifier:     rowID,
			CleaningOperation: model.OperationDurationExtract,
			CleaningReason:    fmt.Sprintf("cannot_convert_to_int: %v", err),
		}
	}

	return &minutes, nil
}

// toInt converts a cell to int, accepting surrounding whitespace
func toInt(value string) (int, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, errors.New("empty string")
	}
	return strconv.Atoi(cleaned)
}

// toTime tries each layout in order after trimming whitespace
func toTime(value string, layouts []string) (time.Time, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return time.Time{}, errors.New("empty string")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse time from '%s'", cleaned)
}
