package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tabproc/internal/logger"
)

const moviesCSV = `title;directedBy;dateAdded
Alien;Ridley Scott;2020-01-02
Vertigo;Alfred Hitchcock;2020-01-03
`

const moviesJSON = `{"title":"Vertigo","directedBy":"Alfred Hitchcock","dateAdded":"2020-01-03","avgRating":4.4}
{"title":"Alien","directedBy":"Ridley Scott","dateAdded":"2020-01-02","avgRating":4.3}
`

// movieRow defines a simple test data structure
type movieRow struct {
	Title      string `parquet:"title"`
	DirectedBy string `parquet:"directedBy"`
	DateAdded  string `parquet:"dateAdded"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// runCLI runs the command and restores the global logger afterwards
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	defer logger.SetOutput(os.Stderr)
	defer logger.SetDebug(false)

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_CSVFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "movies.csv", moviesCSV)

	code, stdout, stderr := runCLI(t, "-f", "csv", "--runs", "2", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	want := "Running CSV-file processor!\n" +
		"title,directedBy\n" +
		"Vertigo,Alfred Hitchcock\n" +
		"Alien,Ridley Scott\n" +
		"Vertigo,Alfred Hitchcock\n" +
		"Alien,Ridley Scott\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_MultipleFiles(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "movies.csv", moviesCSV)
	jsonPath := writeFile(t, dir, "movies.jsonl", moviesJSON)

	code, stdout, stderr := runCLI(t, "--format=jsonl", csvPath, jsonPath)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	csvAt := strings.Index(stdout, "Running CSV-file processor!")
	jsonAt := strings.Index(stdout, "Running JSON-file processor!")
	if csvAt < 0 || jsonAt < csvAt {
		t.Fatalf("labels missing or out of order:\n%s", stdout)
	}
	if strings.Contains(stdout, "avgRating") || strings.Contains(stdout, "dateAdded") {
		t.Errorf("dropped columns printed:\n%s", stdout)
	}
	if !strings.Contains(stdout[jsonAt:], `"title":"Alien"`) {
		t.Errorf("json result missing:\n%s", stdout)
	}
}

func TestRun_TableFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "movies.csv", moviesCSV)

	code, stdout, stderr := runCLI(t, "--max-width", "5", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Ve...") {
		t.Errorf("expected truncated cell in:\n%s", stdout)
	}
}

func TestRun_Parquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	writer := parquet.NewGenericWriter[movieRow](f)
	if _, err := writer.Write([]movieRow{
		{Title: "Vertigo", DirectedBy: "Alfred Hitchcock", DateAdded: "2020-01-03"},
		{Title: "Alien", DirectedBy: "Ridley Scott", DateAdded: "2020-01-02"},
	}); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	code, stdout, stderr := runCLI(t, "-f", "jsonl", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	alien := strings.Index(stdout, "Alien")
	vertigo := strings.Index(stdout, "Vertigo")
	if alien < 0 || vertigo < alien {
		t.Errorf("expected ascending titles:\n%s", stdout)
	}
}

func TestRun_TypeOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "export.dat", "title,directedBy\nHeat,Michael Mann\n")

	code, stdout, stderr := runCLI(t, "-t", "csv", "--separator", ",", "-f", "csv", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Heat,Michael Mann") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "movies.csv", moviesCSV)
	cfgPath := writeFile(t, dir, "tabproc.yaml", "format: csv\nruns: 3\n")

	code, stdout, stderr := runCLI(t, "-c", cfgPath, "--runs", "1", path)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	// runs from the flag, format from the file
	if got := strings.Count(stdout, "Alien,Ridley Scott"); got != 1 {
		t.Errorf("rows printed %d times, want 1:\n%s", got, stdout)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	single := writeFile(t, dir, "single.csv", "title\nHeat\n")
	noRating := writeFile(t, dir, "movies.jsonl", `{"title":"Heat","directedBy":"Michael Mann","dateAdded":"2020-01-01"}`+"\n")
	badConfig := writeFile(t, dir, "bad.yaml", "runs: 0\n")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"no files", []string{}, 2, "missing file argument"},
		{"unknown flag", []string{"--where", "x > 1", single}, 2, "unknown flag"},
		{"unknown format", []string{"-f", "xml", single}, 1, "invalid configuration"},
		{"zero runs", []string{"--runs", "0", single}, 1, "runs must be at least 1"},
		{"bad config", []string{"-c", badConfig, single}, 1, "runs must be at least 1"},
		{"missing config", []string{"-c", filepath.Join(dir, "none.yaml"), single}, 1, "failed to read config"},
		{"unknown extension", []string{filepath.Join(dir, "movies.xlsx")}, 1, "unknown processor kind"},
		{"read failure", []string{single}, 1, "failed to read " + single},
		{"missing file", []string{filepath.Join(dir, "none.csv")}, 1, "failed to read"},
		{"run failure", []string{noRating}, 1, "run failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr %q should contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	code, _, stderr := runCLI(t, "--help")
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr, "Usage: tabproc") {
		t.Errorf("usage not printed: %q", stderr)
	}
}

func TestRun_SampleData(t *testing.T) {
	for _, name := range []string{"movies.csv", "movies.txt", "movies.jsonl"} {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "-f", "csv", filepath.Join("..", "..", "testdata", name))
			if code != 0 {
				t.Fatalf("exit code = %d, stderr: %s", code, stderr)
			}
			// header and label plus eight movies
			if lines := strings.Count(stdout, "\n"); lines != 10 {
				t.Errorf("printed %d lines, want 10:\n%s", lines, stdout)
			}
		})
	}
}
