// Command generate writes the sample movie datasets used by the examples in
// every supported format.
//
//	go run ./testdata/generate.go -o testdata
package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/parquet-go/parquet-go"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/pflag"

	"github.com/vegasq/tabproc/internal/logger"
)

type Movie struct {
	Title      string  `parquet:"title" json:"title"`
	DirectedBy string  `parquet:"directedBy" json:"directedBy"`
	DateAdded  string  `parquet:"dateAdded" json:"dateAdded"`
	AvgRating  float64 `parquet:"avgRating" json:"avgRating"`
}

var movies = []Movie{
	{Title: "Heat", DirectedBy: "Michael Mann", DateAdded: "2021-03-14", AvgRating: 4.1},
	{Title: "Alien", DirectedBy: "Ridley Scott", DateAdded: "2021-03-15", AvgRating: 4.3},
	{Title: "Vertigo", DirectedBy: "Alfred Hitchcock", DateAdded: "2021-04-02", AvgRating: 4.4},
	{Title: "Blade Runner", DirectedBy: "Ridley Scott", DateAdded: "2021-04-20", AvgRating: 4.2},
	{Title: "Psycho", DirectedBy: "Alfred Hitchcock", DateAdded: "2021-05-01", AvgRating: 4.5},
	{Title: "Collateral", DirectedBy: "Michael Mann", DateAdded: "2021-05-09", AvgRating: 3.9},
	{Title: "Gladiator", DirectedBy: "Ridley Scott", DateAdded: "2021-06-11", AvgRating: 4.0},
	{Title: "Rear Window", DirectedBy: "Alfred Hitchcock", DateAdded: "2021-06-30", AvgRating: 4.4},
}

var outDir = pflag.StringP("out", "o", ".", "directory to write the datasets to")

func main() {
	pflag.Parse()
	log := logger.GetLogger()

	files := map[string]func() ([]byte, error){
		"movies.csv":      movieCSV,
		"movies.txt":      movieTXT,
		"movies.jsonl":    movieJSONLines,
		"movies.parquet":  movieParquet,
		"movies.csv.gz":   func() ([]byte, error) { return gzipped(movieCSV) },
		"movies.jsonl.gz": func() ([]byte, error) { return gzipped(movieJSONLines) },
	}

	for name, build := range files {
		data, err := build()
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("failed to build dataset")
		}
		path := filepath.Join(*outDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Fatal().Err(err).Str("file", path).Msg("failed to write dataset")
		}
		log.Info().Str("file", path).Int("rows", len(movies)).Msg("generated")
	}
}

func rating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func movieCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write([]string{"title", "directedBy", "dateAdded", "avgRating"}); err != nil {
		return nil, err
	}
	for _, m := range movies {
		if err := w.Write([]string{m.Title, m.DirectedBy, m.DateAdded, rating(m.AvgRating)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// movieTXT replaces inner spaces with underscores since whitespace separates fields
func movieTXT() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("title directedBy dateAdded avgRating\n")
	for _, m := range movies {
		fields := []string{
			strings.ReplaceAll(m.Title, " ", "_"),
			strings.ReplaceAll(m.DirectedBy, " ", "_"),
			m.DateAdded,
			rating(m.AvgRating),
		}
		buf.WriteString(strings.Join(fields, "\t"))
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func movieJSONLines() ([]byte, error) {
	var buf bytes.Buffer
	for _, m := range movies {
		line, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func movieParquet() ([]byte, error) {
	var buf bytes.Buffer
	writer := parquet.NewGenericWriter[Movie](&buf)
	if _, err := writer.Write(movies); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gzipped(build func() ([]byte, error)) ([]byte, error) {
	data, err := build()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
