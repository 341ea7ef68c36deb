// pkg/connector/csv.go
package connector

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"go.uber.org/zap"

	"github.com/David-Botos/catalog-eda/pkg/model"
)

// CSVSource implements Source for a delimited file on disk
type CSVSource struct {
	path      string
	delimiter rune
	metadata  *model.TableMetadata
	logger    *zap.Logger
}

// CSVOption configures a CSVSource
type CSVOption func(*CSVSource)

// WithDelimiter overrides the default comma delimiter
func WithDelimiter(delimiter rune) CSVOption {
	return func(s *CSVSource) {
		s.delimiter = delimiter
	}
}

// WithMetadata overrides the expected table layout
func WithMetadata(metadata *model.TableMetadata) CSVOption {
	return func(s *CSVSource) {
		s.metadata = metadata
	}
}

// NewCSVSource creates a source for the file at path
func NewCSVSource(path string, logger *zap.Logger, options ...CSVOption) *CSVSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &CSVSource{
		path:      path,
		delimiter: ',',
		metadata:  model.CatalogMetadata(),
		logger:    logger.Named("csv-source"),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Name returns the file path
func (s *CSVSource) Name() string {
	return s.path
}

// Read parses the whole file into a string-typed frame
func (s *CSVSource) Read(ctx context.Context) (dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}

	s.logger.Info("Reading catalog file", zap.String("path", s.path))

	file, err := os.Open(s.path)
	if err != nil {
		return dataframe.DataFrame{}, &ParseError{Path: s.path, Err: fmt.Errorf("failed to open file: %w", err)}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return dataframe.DataFrame{}, &ParseError{Path: s.path, Err: fmt.Errorf("failed to stat file: %w", err)}
	}
	if info.Size() == 0 {
		return dataframe.DataFrame{}, &ParseError{Path: s.path, Err: ErrEmptyFile}
	}

	reader := csv.NewReader(file)
	reader.Comma = s.delimiter
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, &ParseError{Path: s.path, Err: fmt.Errorf("failed to read CSV: %w", err)}
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, &ParseError{Path: s.path, Err: ErrEmptyFile}
	}

	header := records[0]
	if missing := s.metadata.MissingColumns(header); len(missing) > 0 {
		return dataframe.DataFrame{}, &ParseError{Path: s.path, Missing: missing, Err: ErrMissingColumns}
	}

	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}

	var df dataframe.DataFrame
	if len(records) == 1 {
		// A header without rows is an empty catalog
		df = emptyFrame(header)
	} else {
		df = dataframe.LoadRecords(records,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
			dataframe.NaNValues([]string{""}),
		)
	}
	if df.Err != nil {
		return dataframe.DataFrame{}, &ParseError{Path: s.path, Err: fmt.Errorf("failed to build frame: %w", df.Err)}
	}

	LogFrameStats(s.logger, s.path, df)
	s.logger.Info("Catalog file read",
		zap.String("path", s.path),
		zap.Int("rows", df.Nrow()),
		zap.Int("columns", df.Ncol()))

	return df, nil
}

// emptyFrame builds a zero-row string frame with the given columns
func emptyFrame(header []string) dataframe.DataFrame {
	columns := make([]series.Series, len(header))
	for i, name := range header {
		columns[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(columns...)
}
