// pkg/catalog/verifier.go
package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/model"
)

// Integrity issue types
const (
	IssueEmptyFilledColumn = "EMPTY_FILLED_COLUMN"
	IssueDerivedMismatch   = "DERIVED_FIELD_MISMATCH"
	IssueDuplicateShowID   = "DUPLICATE_SHOW_ID"
	IssueUnknownType       = "UNKNOWN_CONTENT_TYPE"
)

// IntegrityIssue represents a data integrity issue
type IntegrityIssue struct {
	IssueType    string
	Description  string
	ColumnName   string
	AffectedRows int
}

// Verifier re-checks the cleaned catalog against the load invariants
type Verifier struct {
	sentinel string
	logger   *zap.Logger
}

// NewVerifier creates a new verifier
func NewVerifier(sentinel string, logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{sentinel: sentinel, logger: logger}
}

// VerifyIntegrity runs every check and returns the issues found
func (v *Verifier) VerifyIntegrity(c *Catalog) []IntegrityIssue {
	issues := make([]IntegrityIssue, 0)
	issues = append(issues, v.checkFilledColumns(c)...)
	issues = append(issues, v.checkDerivedFields(c)...)
	issues = append(issues, v.checkShowIDUniqueness(c)...)
	issues = append(issues, v.checkContentTypes(c)...)

	for _, issue := range issues {
		v.logger.Warn("Integrity issue",
			zap.String("type", issue.IssueType),
			zap.String("column", issue.ColumnName),
			zap.Int("affectedRows", issue.AffectedRows),
			zap.String("description", issue.Description))
	}
	return issues
}

// checkFilledColumns verifies that filled columns never stay empty
func (v *Verifier) checkFilledColumns(c *Catalog) []IntegrityIssue {
	fields := map[string]func(model.Title) string{
		model.ColumnDirector: func(t model.Title) string { return t.Director },
		model.ColumnCountry:  func(t model.Title) string { return t.Country },
		model.ColumnRating:   func(t model.Title) string { return t.Rating },
		model.ColumnDuration: func(t model.Title) string { return t.Duration },
		model.ColumnListedIn: func(t model.Title) string { return t.ListedIn },
	}

	var issues []IntegrityIssue
	for _, colName := range model.CatalogMetadata().FilledColumns() {
		get := fields[colName]
		empty := 0
		c.Each(func(_ int, t model.Title) {
			if get(t) == "" {
				empty++
			}
		})
		if empty > 0 {
			issues = append(issues, IntegrityIssue{
				IssueType:    IssueEmptyFilledColumn,
				Description:  fmt.Sprintf("Column should hold a value or %q", v.sentinel),
				ColumnName:   colName,
				AffectedRows: empty,
			})
		}
	}
	return issues
}

// checkDerivedFields verifies year/month added agree with date_added
func (v *Verifier) checkDerivedFields(c *Catalog) []IntegrityIssue {
	mismatched := 0
	c.Each(func(_ int, t model.Title) {
		if t.DateAdded == nil {
			if t.YearAdded != nil || t.MonthAdded != nil {
				mismatched++
			}
			return
		}
		if t.YearAdded == nil || *t.YearAdded != t.DateAdded.Year() ||
			t.MonthAdded == nil || *t.MonthAdded != int(t.DateAdded.Month()) {
			mismatched++
		}
	})

	if mismatched == 0 {
		return nil
	}
	return []IntegrityIssue{{
		IssueType:    IssueDerivedMismatch,
		Description:  "Derived added year/month disagree with date_added",
		ColumnName:   model.ColumnYearAdded,
		AffectedRows: mismatched,
	}}
}

// checkShowIDUniqueness reports repeated identifiers
func (v *Verifier) checkShowIDUniqueness(c *Catalog) []IntegrityIssue {
	seen := make(map[string]int, c.Len())
	c.Each(func(_ int, t model.Title) {
		if t.ShowID != "" {
			seen[t.ShowID]++
		}
	})

	duplicates := 0
	for _, n := range seen {
		if n > 1 {
			duplicates += n
		}
	}
	if duplicates == 0 {
		return nil
	}
	return []IntegrityIssue{{
		IssueType:    IssueDuplicateShowID,
		Description:  "show_id is not unique",
		ColumnName:   model.ColumnShowID,
		AffectedRows: duplicates,
	}}
}

// checkContentTypes counts rows outside the known type values. Such rows are
// kept and only appear under the "All" type filter.
func (v *Verifier) checkContentTypes(c *Catalog) []IntegrityIssue {
	unknown := 0
	c.Each(func(_ int, t model.Title) {
		if t.Type != model.ContentTypeMovie && t.Type != model.ContentTypeTVShow {
			unknown++
		}
	})
	if unknown == 0 {
		return nil
	}
	return []IntegrityIssue{{
		IssueType:    IssueUnknownType,
		Description:  "Content type is neither Movie nor TV Show",
		ColumnName:   model.ColumnType,
		AffectedRows: unknown,
	}}
}
