package processor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vegasq/tabproc/internal/logger"
	"github.com/vegasq/tabproc/output"
	"github.com/vegasq/tabproc/reader"
	"github.com/vegasq/tabproc/table"
)

// Columns of the movie dataset referenced by the processors.
const (
	ColTitle      = "title"
	ColDirectedBy = "directedBy"
	ColDateAdded  = "dateAdded"
	ColAvgRating  = "avgRating"
)

// MinColumns is the fewest columns a source must have for Read to succeed.
const MinColumns = 2

// ErrNotRead is returned by Run when no successful Read preceded it.
var ErrNotRead = errors.New("dataset not read")

// Processor is the lifecycle shared by every file format.
type Processor interface {
	// Read loads the dataset and reports whether it is usable. Failures
	// are logged, never returned.
	Read() bool

	// Run transforms the dataset and appends it to the result.
	Run() error

	// PrintResult writes the accumulated result with the processor label.
	PrintResult()

	// Result returns the accumulated result, nil before the first Run.
	Result() *table.Table

	// Name returns the label identifying the processor.
	Name() string
}

// Config carries the collaborators of a processor. Zero fields are
// defaulted: Out to stdout, Formatter to a console table and Logger to the
// global logger.
type Config struct {
	Reader    reader.Options
	Out       io.Writer
	Formatter output.Formatter
	Logger    *zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Formatter == nil {
		c.Formatter = output.NewTableFormatter(c.Out)
	} else {
		c.Formatter.SetOutput(c.Out)
	}
	if c.Logger == nil {
		log := logger.GetLogger()
		c.Logger = &log
	}
	return c
}

// Base holds the state every variant owns: the source, the parsed dataset
// and the accumulated result. Variants embed it, call Load from Read and
// Apply from Run; PrintResult, Result and Name come with it.
type Base struct {
	label      string
	format     reader.Format
	datasource string
	cfg        Config

	dataset *table.Table
	result  *table.Table
}

// NewBase prepares the shared state for a variant labelled label reading
// datasource in format.
func NewBase(label string, format reader.Format, datasource string, cfg Config) Base {
	return Base{
		label:      label,
		format:     format,
		datasource: datasource,
		cfg:        cfg.withDefaults(),
	}
}

func (b *Base) log() *zerolog.Logger {
	return b.cfg.Logger
}

// Load parses the datasource and replaces the dataset. On failure the
// reason is logged, the dataset is cleared and the result is left alone.
func (b *Base) Load() bool {
	t, err := reader.ReadFile(b.datasource, b.format, b.cfg.Reader)
	if err != nil {
		b.dataset = nil
		b.log().Error().
			Err(err).
			Str("source", b.datasource).
			Str("format", string(b.format)).
			Msg("failed to read dataset")
		return false
	}

	if t.NumColumns() < MinColumns {
		b.dataset = nil
		b.log().Error().
			Str("source", b.datasource).
			Str("format", string(b.format)).
			Int("columns", t.NumColumns()).
			Msgf("dataset needs at least %d columns", MinColumns)
		return false
	}

	b.dataset = t
	b.log().Debug().
		Str("source", b.datasource).
		Int("columns", t.NumColumns()).
		Int("rows", t.NumRows()).
		Msg("dataset loaded")
	return true
}

// Apply runs transform on the dataset and appends the outcome to the
// result. It returns ErrNotRead when no Load succeeded.
func (b *Base) Apply(transform func(*table.Table) (*table.Table, error)) error {
	if b.dataset == nil {
		return fmt.Errorf("%s processor: %w", b.label, ErrNotRead)
	}

	batch, err := transform(b.dataset)
	if err != nil {
		return fmt.Errorf("%s processor: %w", b.label, err)
	}

	b.result = b.result.Append(batch)

	b.log().Debug().
		Str("batch", uuid.NewString()).
		Str("processor", b.label).
		Int("rows", batch.NumRows()).
		Int("total", b.result.NumRows()).
		Msg("batch appended")
	return nil
}

// PrintResult writes the label followed by the formatted result.
func (b *Base) PrintResult() {
	fmt.Fprintf(b.cfg.Out, "Running %s-file processor!\n", b.label)
	if b.result == nil {
		fmt.Fprintln(b.cfg.Out, "Empty result")
		return
	}
	if err := b.cfg.Formatter.Format(b.result); err != nil {
		b.log().Error().Err(err).Str("processor", b.label).Msg("failed to print result")
	}
}

// Result returns the accumulated result.
func (b *Base) Result() *table.Table {
	return b.result
}

// Name returns the processor label.
func (b *Base) Name() string {
	return b.label
}

// dropAndSort removes drop from t and then sorts by each of sortBy in turn
func dropAndSort(t *table.Table, drop []string, sortBy []string, ascending bool) (*table.Table, error) {
	cleaned, err := RemoveColByName(t, drop)
	if err != nil {
		return nil, err
	}
	for _, col := range sortBy {
		cleaned, err = SortDataByCol(cleaned, col, ascending)
		if err != nil {
			return nil, err
		}
	}
	return cleaned, nil
}
