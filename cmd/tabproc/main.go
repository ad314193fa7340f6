package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/vegasq/tabproc/internal/config"
	"github.com/vegasq/tabproc/internal/logger"
	"github.com/vegasq/tabproc/output"
	"github.com/vegasq/tabproc/processor"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("tabproc", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	defaults := config.Default()
	typeFlag := fs.StringP("type", "t", "", "Processor kind: csv, txt, json, parquet (default: detect from extension)")
	formatFlag := fs.StringP("format", "f", defaults.Format, "Output format: table, csv, jsonl")
	configFlag := fs.StringP("config", "c", "", "YAML config file")
	separatorFlag := fs.String("separator", defaults.Separator, "Field separator for csv sources")
	patternFlag := fs.String("pattern", defaults.Pattern, "Field separator regex for txt sources")
	encodingFlag := fs.String("encoding", defaults.Encoding, "Text encoding of csv, txt and json sources")
	maxWidthFlag := fs.Int("max-width", defaults.MaxWidth, "Truncate table cells to this width (0 = unlimited)")
	runsFlag := fs.Int("runs", defaults.Runs, "Number of runs, each appending a batch to the result")
	debugFlag := fs.Bool("debug", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tabproc [options] <file>...\n\n")
		fmt.Fprintf(stderr, "Reads movie datasets, drops and sorts columns, and prints the result.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  tabproc movies.csv\n")
		fmt.Fprintf(stderr, "  tabproc -f csv --runs 2 movies.txt movies.jsonl.gz\n")
		fmt.Fprintf(stderr, "  tabproc -t csv --separator , --encoding windows-1251 export.dat\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg := defaults
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// Flags given explicitly win over the config file
	if fs.Changed("type") {
		cfg.Type = *typeFlag
	}
	if fs.Changed("format") {
		cfg.Format = *formatFlag
	}
	if fs.Changed("separator") {
		cfg.Separator = *separatorFlag
	}
	if fs.Changed("pattern") {
		cfg.Pattern = *patternFlag
	}
	if fs.Changed("encoding") {
		cfg.Encoding = *encodingFlag
	}
	if fs.Changed("max-width") {
		cfg.MaxWidth = *maxWidthFlag
	}
	if fs.Changed("runs") {
		cfg.Runs = *runsFlag
	}
	if fs.Changed("debug") {
		cfg.Debug = *debugFlag
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if fs.NArg() == 0 {
		fmt.Fprintf(stderr, "Error: missing file argument\n\n")
		fs.Usage()
		return 2
	}

	logger.SetOutput(stderr)
	logger.SetDebug(cfg.Debug)
	log := logger.GetLogger()

	formatter, err := output.NewFormatter(cfg.Format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if tf, ok := formatter.(*output.TableFormatter); ok {
		tf.MaxWidth = cfg.MaxWidth
	}

	pcfg := processor.Config{
		Reader:    cfg.ReaderOptions(),
		Out:       stdout,
		Formatter: formatter,
		Logger:    &log,
	}

	for _, path := range fs.Args() {
		var p processor.Processor
		if cfg.Type != "" {
			p, err = processor.New(cfg.Type, path, pcfg)
		} else {
			p, err = processor.ForPath(path, pcfg)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}

		if !p.Read() {
			fmt.Fprintf(stderr, "Error: failed to read %s\n", path)
			return 1
		}

		for i := 0; i < cfg.Runs; i++ {
			if err := p.Run(); err != nil {
				log.Error().Err(err).Str("source", path).Int("run", i+1).Msg("run failed")
				return 1
			}
		}

		p.PrintResult()
	}

	return 0
}
