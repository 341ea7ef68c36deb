// pkg/catalog/metrics.go
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// LoadMetrics tracks what happened while loading and cleaning the catalog
type LoadMetrics struct {
	Source           string
	StartTime        time.Time
	EndTime          time.Time
	RowsRead         int
	Columns          int
	MissingValues    map[string]int // column -> raw missing cells
	CleaningOps      map[string]int // operation -> count
	TotalCleaningOps int
	IntegrityIssues  int
}

// NewLoadMetrics starts tracking a load from source
func NewLoadMetrics(source string) *LoadMetrics {
	return &LoadMetrics{
		Source:        source,
		StartTime:     time.Now(),
		MissingValues: make(map[string]int),
		CleaningOps:   make(map[string]int),
	}
}

// RecordCleaningOperation counts one cleaning operation
func (lm *LoadMetrics) RecordCleaningOperation(operation string) {
	lm.CleaningOps[operation]++
	lm.TotalCleaningOps++
}

// Complete marks the load as finished
func (lm *LoadMetrics) Complete() {
	lm.EndTime = time.Now()
}

// Duration returns the total duration of the load
func (lm *LoadMetrics) Duration() time.Duration {
	if lm.EndTime.IsZero() {
		return time.Since(lm.StartTime)
	}
	return lm.EndTime.Sub(lm.StartTime)
}

// formatDuration formats a duration to a human-readable string
func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// GenerateMetricsReport creates a plain-text load report
func (lm *LoadMetrics) GenerateMetricsReport() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`
Load Metrics Report
===================
Source:                  %s
Duration:                %s
Rows Read:               %d
Columns:                 %d
Total Cleaning Ops:      %d
Integrity Issues:        %d
`,
		lm.Source,
		formatDuration(lm.Duration()),
		lm.RowsRead,
		lm.Columns,
		lm.TotalCleaningOps,
		lm.IntegrityIssues,
	))

	if len(lm.CleaningOps) > 0 {
		sb.WriteString("\nCleaning Operations\n-------------------\n")
		for _, op := range sortedKeys(lm.CleaningOps) {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", op, lm.CleaningOps[op]))
		}
	}

	if len(lm.MissingValues) > 0 {
		sb.WriteString("\nMissing Values\n--------------\n")
		for _, col := range sortedKeys(lm.MissingValues) {
			if lm.MissingValues[col] > 0 {
				sb.WriteString(fmt.Sprintf("- %s: %d\n", col, lm.MissingValues[col]))
			}
		}
	}

	return sb.String()
}

// ToJSON serializes metrics to JSON
func (lm *LoadMetrics) ToJSON() ([]byte, error) {
	return sonic.Marshal(struct {
		Source           string         `json:"source"`
		Duration         string         `json:"duration"`
		RowsRead         int            `json:"rowsRead"`
		Columns          int            `json:"columns"`
		MissingValues    map[string]int `json:"missingValues"`
		CleaningOps      map[string]int `json:"cleaningOps"`
		TotalCleaningOps int            `json:"totalCleaningOps"`
		IntegrityIssues  int            `json:"integrityIssues"`
	}{
		Source:           lm.Source,
		Duration:         formatDuration(lm.Duration()),
		RowsRead:         lm.RowsRead,
		Columns:          lm.Columns,
		MissingValues:    lm.MissingValues,
		CleaningOps:      lm.CleaningOps,
		TotalCleaningOps: lm.TotalCleaningOps,
		IntegrityIssues:  lm.IntegrityIssues,
	})
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
