package processor

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vegasq/tabproc/reader"
)

// ErrUnknownKind is returned when no processor is registered for a kind.
var ErrUnknownKind = errors.New("unknown processor kind")

// Constructor builds a processor for a data source.
type Constructor func(datasource string, cfg Config) Processor

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{
		string(reader.FormatDelimited): func(ds string, cfg Config) Processor {
			return NewCSVProcessor(ds, cfg)
		},
		string(reader.FormatWhitespace): func(ds string, cfg Config) Processor {
			return NewTXTProcessor(ds, cfg)
		},
		string(reader.FormatJSONLines): func(ds string, cfg Config) Processor {
			return NewJSONProcessor(ds, cfg)
		},
		string(reader.FormatParquet): func(ds string, cfg Config) Processor {
			return NewParquetProcessor(ds, cfg)
		},
	}
)

// Register adds or replaces the constructor for kind.
func Register(kind string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalizeKind(kind)] = ctor
}

// Kinds returns the registered kinds in sorted order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// New creates the processor registered for kind. Format aliases accepted
// by reader.ParseFormat, such as "jsonl" or "delimited", resolve to the
// built-in processors.
func New(kind string, datasource string, cfg Config) (Processor, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	key := normalizeKind(kind)
	ctor, ok := registry[key]
	if !ok {
		if format, err := reader.ParseFormat(key); err == nil {
			ctor, ok = registry[string(format)]
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(datasource, cfg), nil
}

// ForPath creates a processor chosen by the file extension of path.
func ForPath(path string, cfg Config) (Processor, error) {
	format := reader.DetectFormat(path)
	if format == reader.FormatUnknown {
		return nil, fmt.Errorf("%w: cannot detect format of %s", ErrUnknownKind, path)
	}
	return New(string(format), path, cfg)
}

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}
