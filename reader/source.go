package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Compression identifies a compression container around a source file.
type Compression int

// Supported compression containers.
const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionLZ4
	CompressionBrotli
	CompressionXZ
)

var compressionExts = map[string]Compression{
	".gz":   CompressionGzip,
	".gzip": CompressionGzip,
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".lz4":  CompressionLZ4,
	".br":   CompressionBrotli,
	".xz":   CompressionXZ,
}

// ErrUnknownEncoding is returned for a text encoding label that is not
// recognised.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// DetectCompression returns the compression implied by the file extension
// and the path with that extension removed.
func DetectCompression(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := compressionExts[ext]; ok {
		return c, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return CompressionNone, path
}

// IsUTF8 reports whether the encoding label names UTF-8 (the default).
func IsUTF8(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}

// ValidateEncoding checks that the encoding label is UTF-8 or a known
// WHATWG label.
func ValidateEncoding(encoding string) error {
	if IsUTF8(encoding) {
		return nil
	}
	if _, err := htmlindex.Get(strings.TrimSpace(encoding)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	return nil
}

// source chains the readers opened for one file so a single Close
// releases all of them.
type source struct {
	io.Reader
	closers []func() error
}

func (s *source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OpenRaw opens a file and transparently decompresses it according to its
// extension. The returned reader yields raw bytes.
//
// Should be closed when done reading to avoid resource leaks.
func OpenRaw(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	src := &source{Reader: file, closers: []func() error{file.Close}}

	compression, _ := DetectCompression(path)
	if err := src.decompress(compression); err != nil {
		_ = src.Close()
		return nil, err
	}

	return src, nil
}

// Open opens a text source: the file is decompressed and decoded from the
// given encoding to UTF-8. A leading byte order mark is consumed.
func Open(path string, encoding string) (io.ReadCloser, error) {
	var decoder transform.Transformer = transform.Nop
	if !IsUTF8(encoding) {
		enc, err := htmlindex.Get(strings.TrimSpace(encoding))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
		}
		decoder = enc.NewDecoder()
	}

	rc, err := OpenRaw(path)
	if err != nil {
		return nil, err
	}
	src := rc.(*source)
	src.Reader = transform.NewReader(src.Reader, unicode.BOMOverride(decoder))

	return src, nil
}

func (s *source) decompress(c Compression) error {
	switch c {
	case CompressionNone:
		return nil
	case CompressionGzip:
		gz, err := gzip.NewReader(s.Reader)
		if err != nil {
			return fmt.Errorf("failed to open gzip stream: %w", err)
		}
		s.Reader = gz
		s.closers = append(s.closers, gz.Close)
	case CompressionZstd:
		dec, err := zstd.NewReader(s.Reader)
		if err != nil {
			return fmt.Errorf("failed to open zstd stream: %w", err)
		}
		rc := dec.IOReadCloser()
		s.Reader = rc
		s.closers = append(s.closers, rc.Close)
	case CompressionLZ4:
		s.Reader = lz4.NewReader(s.Reader)
	case CompressionBrotli:
		s.Reader = brotli.NewReader(s.Reader)
	case CompressionXZ:
		xr, err := xz.NewReader(s.Reader)
		if err != nil {
			return fmt.Errorf("failed to open xz stream: %w", err)
		}
		s.Reader = xr
	}
	return nil
}
