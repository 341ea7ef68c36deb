package cleaner

import (
	"errors"
	"strconv"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/model"
)

var header = []string{
	"show_id", "type", "title", "director", "cast", "country", "date_added",
	"release_year", "rating", "duration", "listed_in", "description",
}

func loadRecords(t *testing.T, rows ...[]string) dataframe.DataFrame {
	t.Helper()
	records := append([][]string{header}, rows...)
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{""}),
	)
	if df.Err != nil {
		t.Fatalf("Failed to build frame: %v", df.Err)
	}
	return df
}

func newTestCleaner(t *testing.T, sentinel string) *DataCleaner {
	t.Helper()
	policy := DefaultPolicy()
	if sentinel != "" {
		policy.Sentinel = sentinel
	}
	c, err := NewDataCleaner(policy, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create cleaner: %v", err)
	}
	return c
}

func TestNewDataCleanerValidation(t *testing.T) {
	if _, err := NewDataCleaner(DefaultPolicy(), nil); err == nil {
		t.Error("Expected error for nil logger")
	}
	if _, err := NewDataCleaner(Policy{}, zap.NewNop()); err == nil {
		t.Error("Expected error for empty sentinel")
	}
}

func TestCleanFrameFillsSentinel(t *testing.T) {
	df := loadRecords(t,
		[]string{"s1", "Movie", "Dick Johnson Is Dead", "", "", "", "September 25, 2021", "2020", "", "", "", "A doc"},
	)
	c := newTestCleaner(t, "")

	titles, ops, err := c.CleanFrame(df)
	if err != nil {
		t.Fatalf("CleanFrame failed: %v", err)
	}
	if len(titles) != 1 {
		t.Fatalf("Expected 1 title, got %d", len(titles))
	}

	got := titles[0]
	for name, value := range map[string]string{
		"director":  got.Director,
		"country":   got.Country,
		"rating":    got.Rating,
		"duration":  got.Duration,
		"listed_in": got.ListedIn,
	} {
		if value != DefaultSentinel {
			t.Errorf("Expected %s to be %q, got %q", name, DefaultSentinel, value)
		}
	}

	if got.Cast != "" {
		t.Errorf("Expected cast to stay empty, got %q", got.Cast)
	}
	if got.DurationMinutes != nil {
		t.Errorf("Expected nil duration minutes for missing duration, got %d", *got.DurationMinutes)
	}

	fills := 0
	for _, op := range ops {
		if op.CleaningOperation == model.OperationFillSentinel {
			fills++
			if op.RowIdentifier != "s1" {
				t.Errorf("Expected row identifier s1, got %s", op.RowIdentifier)
			}
		}
	}
	if fills != 5 {
		t.Errorf("Expected 5 fill operations, got %d", fills)
	}
}

func TestCleanFrameCustomSentinel(t *testing.T) {
	df := loadRecords(t,
		[]string{"s1", "TV Show", "Blood & Water", "", "", "", "", "2021", "", "", "", ""},
	)
	c := newTestCleaner(t, "Desconhecido")

	titles, _, err := c.CleanFrame(df)
	if err != nil {
		t.Fatalf("CleanFrame failed: %v", err)
	}
	if titles[0].Country != "Desconhecido" {
		t.Errorf("Expected Desconhecido, got %q", titles[0].Country)
	}
}

func TestCleanFrameDates(t *testing.T) {
	df := loadRecords(t,
		[]string{"s1", "Movie", "A", "X", "", "US", " September 25, 2021 ", "2020", "PG", "90 min", "Dramas", ""},
		[]string{"s2", "Movie", "B", "X", "", "US", "not a date", "2020", "PG", "90 min", "Dramas", ""},
		[]string{"s3", "Movie", "C", "X", "", "US", "", "2020", "PG", "90 min", "Dramas", ""},
		[]string{"s4", "Movie", "D", "X", "", "US", "2019-03-01", "2018", "PG", "90 min", "Dramas", ""},
	)
	c := newTestCleaner(t, "")

	titles, ops, err := c.CleanFrame(df)
	if err != nil {
		t.Fatalf("CleanFrame failed: %v", err)
	}

	first := titles[0]
	if first.DateAdded == nil {
		t.Fatal("Expected parsed date for padded value")
	}
	if *first.YearAdded != 2021 || *first.MonthAdded != 9 {
		t.Errorf("Expected 2021-09, got %d-%d", *first.YearAdded, *first.MonthAdded)
	}

	for _, i := range []int{1, 2} {
		if titles[i].DateAdded != nil || titles[i].YearAdded != nil || titles[i].MonthAdded != nil {
			t.Errorf("Expected nil date fields for row %d", i)
		}
	}

	if titles[3].YearAdded == nil || *titles[3].YearAdded != 2019 {
		t.Errorf("Expected ISO date to parse to 2019")
	}

	coerced := 0
	for _, op := range ops {
		if op.CleaningOperation == model.OperationDateCoerce {
			coerced++
		}
	}
	if coerced != 2 {
		t.Errorf("Expected 2 date coerce operations, got %d", coerced)
	}

	var trims []model.CleaningOperation
	for _, op := range ops {
		if op.CleaningOperation == model.OperationTrimWhitespace {
			trims = append(trims, op)
		}
	}
	if len(trims) != 1 {
		t.Fatalf("Expected 1 trim operation, got %d", len(trims))
	}
	if trims[0].RowIdentifier != "s1" || trims[0].NewValue != "September 25, 2021" {
		t.Errorf("Unexpected trim operation %+v", trims[0])
	}
}

func TestCleanFrameHeaderCase(t *testing.T) {
	records := [][]string{
		{"Show_ID", "TYPE", "Title", "Director", "Cast", " Country ", "Date_Added",
			"Release_Year", "Rating", "Duration", "Listed_In", "Description"},
		{"s1", "TV Show", "Blood & Water", "", "", "South Africa", "September 24, 2021", "2021", "TV-MA", "2 Seasons", "TV Dramas", ""},
	}
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{""}),
	)
	if df.Err != nil {
		t.Fatalf("Failed to build frame: %v", df.Err)
	}

	titles, _, err := newTestCleaner(t, "").CleanFrame(df)
	if err != nil {
		t.Fatalf("CleanFrame failed: %v", err)
	}

	got := titles[0]
	if got.ShowID != "s1" || got.Type != model.ContentTypeTVShow {
		t.Errorf("Expected s1 TV Show, got %s %s", got.ShowID, got.Type)
	}
	if got.Country != "South Africa" {
		t.Errorf("Expected South Africa, got %q", got.Country)
	}
	if got.ReleaseYear != 2021 || got.YearAdded == nil || *got.YearAdded != 2021 {
		t.Errorf("Expected 2021 release and added years, got %+v", got)
	}
	if got.Director != DefaultSentinel {
		t.Errorf("Expected sentinel director, got %q", got.Director)
	}
}

func TestCleanFrameDurationMinutes(t *testing.T) {
	tests := []struct {
		duration string
		want     *int
	}{
		{"90 min", intp(90)},
		{"2 Seasons", intp(2)},
		{"1 Season", intp(1)},
		{"min", nil},
		{"", nil},
		{"approx 45-50 min", intp(45)},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			df := loadRecords(t,
				[]string{"s1", "Movie", "A", "X", "", "US", "", "2020", "PG", tt.duration, "Dramas", ""},
			)
			titles, _, err := newTestCleaner(t, "").CleanFrame(df)
			if err != nil {
				t.Fatalf("CleanFrame failed: %v", err)
			}
			got := titles[0].DurationMinutes
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Expected nil, got %d", *got)
			case tt.want != nil && got == nil:
				t.Errorf("Expected %d, got nil", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("Expected %d, got %d", *tt.want, *got)
			}
		})
	}
}

func TestCleanFrameInvalidReleaseYear(t *testing.T) {
	df := loadRecords(t,
		[]string{"s1", "Movie", "A", "X", "", "US", "", "2020", "PG", "90 min", "Dramas", ""},
		[]string{"s2", "Movie", "B", "X", "", "US", "", "twenty", "PG", "90 min", "Dramas", ""},
	)

	_, _, err := newTestCleaner(t, "").CleanFrame(df)
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("Expected RowError, got %v", err)
	}
	if rowErr.Row != 1 {
		t.Errorf("Expected row 1, got %d", rowErr.Row)
	}
	if rowErr.Column != model.ColumnReleaseYear {
		t.Errorf("Expected column release_year, got %s", rowErr.Column)
	}
}

func TestCleanFramePreservesOrder(t *testing.T) {
	var rows [][]string
	for i := 0; i < 5; i++ {
		id := "s" + strconv.Itoa(i)
		rows = append(rows, []string{id, "Movie", "T", "X", "", "US", "", "2020", "PG", "90 min", "Dramas", ""})
	}

	titles, _, err := newTestCleaner(t, "").CleanFrame(loadRecords(t, rows...))
	if err != nil {
		t.Fatalf("CleanFrame failed: %v", err)
	}
	for i, title := range titles {
		if want := "s" + strconv.Itoa(i); title.ShowID != want {
			t.Errorf("Expected %s at %d, got %s", want, i, title.ShowID)
		}
	}
}

func TestRecordCleaningOperations(t *testing.T) {
	c := newTestCleaner(t, "")
	counts := c.RecordCleaningOperations([]model.CleaningOperation{
		{ColumnName: "country", CleaningOperation: model.OperationFillSentinel},
		{ColumnName: "country", CleaningOperation: model.OperationFillSentinel},
		{ColumnName: "date_added", CleaningOperation: model.OperationDateCoerce},
	})

	if counts["fill_sentinel/country"] != 2 {
		t.Errorf("Expected 2 country fills, got %d", counts["fill_sentinel/country"])
	}
	if counts["date_coerce/date_added"] != 1 {
		t.Errorf("Expected 1 date coerce, got %d", counts["date_coerce/date_added"])
	}
}

func intp(v int) *int {
	return &v
}
