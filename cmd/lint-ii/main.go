// Command lint-ii scores pre-annotated Dutch documents for readability and
// prints a per-sentence analysis report.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/vanboefer/lint-ii/analysis"
	"github.com/vanboefer/lint-ii/annotation"
	"github.com/vanboefer/lint-ii/internal/config"
	"github.com/vanboefer/lint-ii/internal/log"
	"github.com/vanboefer/lint-ii/internal/output"
	"github.com/vanboefer/lint-ii/lexicon"
	"github.com/vanboefer/lint-ii/preprocess"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: lint-ii <command> [flags] [files...]

Commands:
  score     Score annotated documents (default when given file arguments)
  extract   Extract plain text from Markdown files for annotation
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'lint-ii <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch os.Args[1] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "score":
		return runScore(os.Args[2:])
	case "extract":
		return runExtract(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		// Bare file arguments default to the score command.
		return runScore(os.Args[1:])
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("lint-ii %s\n", version)
}

// runScore implements the "score" subcommand: analyze annotated documents.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var (
		lexiconDir string
		configPath string
		format     string
		noColor    bool
		verbose    bool
	)

	fs.StringVarP(&lexiconDir, "lexicon", "l", "", "Directory with lexicon tables")
	fs.StringVarP(&configPath, "config", "c", "", "Config file with coefficient revisions")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Print progress messages to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lint-ii score [flags] <files...>\n\n"+
			"Score annotated documents for readability.\n\n"+
			"Each file holds one annotated document as JSON: sentences with\n"+
			"tokens carrying lemma, POS, fine tag, dependency head and relation,\n"+
			"conjunct flag, and entity label.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return 2
	}

	formatter, err := newFormatter(format, noColor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint-ii: %v\n", err)
		return 2
	}

	logger := log.New(os.Stderr, verbose)

	coeff, err := loadCoefficients(configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint-ii: %v\n", err)
		return 1
	}

	store, err := loadLexicon(lexiconDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lint-ii: %v\n", err)
		return 1
	}

	analyzer := analysis.NewAnalyzerWithCoefficients(store, coeff)

	docs := make([]annotation.Document, len(files))
	for i, path := range files {
		doc, err := readDocument(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint-ii: %v\n", err)
			return 1
		}
		docs[i] = doc
	}

	logger.Printf("analyzing %d document(s)", len(docs))
	reports, errs := analyzer.AnalyzeAll(docs)

	exit := 0
	for i, path := range files {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "lint-ii: %s: %v\n", path, errs[i])
			exit = 1
			continue
		}
		if len(files) > 1 {
			fmt.Printf("%s:\n", path)
		}
		if err := formatter.Format(os.Stdout, reports[i]); err != nil {
			fmt.Fprintf(os.Stderr, "lint-ii: writing report: %v\n", err)
			return 1
		}
	}
	return exit
}

// runExtract implements the "extract" subcommand: Markdown to plain text.
func runExtract(args []string) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lint-ii extract <files...>\n\n"+
			"Extract running text from Markdown files, one line per file.\n"+
			"Headings, code blocks, and other non-prose blocks are dropped.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return 2
	}

	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint-ii: %v\n", err)
			return 1
		}
		fmt.Println(preprocess.ExtractText(source))
	}
	return 0
}

func newFormatter(format string, noColor bool) (output.Formatter, error) {
	switch format {
	case "text":
		return &output.TextFormatter{Color: !noColor && isTerminal(os.Stdout)}, nil
	case "json":
		return &output.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func loadCoefficients(configPath string, logger *log.Logger) (analysis.Coefficients, error) {
	if configPath == "" {
		return analysis.DefaultCoefficients, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return analysis.Coefficients{}, err
	}
	coeff, err := config.Resolve(cfg)
	if err != nil {
		return analysis.Coefficients{}, err
	}
	logger.Printf("using coefficient revision %q", cfg.Revision)
	return coeff, nil
}

func loadLexicon(dir string, logger *log.Logger) (lexicon.Store, error) {
	if dir == "" {
		logger.Printf("no lexicon directory given; all lookups will miss")
		return &lexicon.MapStore{}, nil
	}
	store, err := lexicon.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	logger.Printf("lexicon loaded from %s", dir)
	return store, nil
}

func readDocument(path string) (annotation.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return annotation.Document{}, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return annotation.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc annotation.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return annotation.Document{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}
