// Command cdkeygen generates batches of random license keys from the
// command line, an interactive menu (-interactive) or a browser form (-web).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/unkn0wn-root/cdkeygen"
	zlog "github.com/unkn0wn-root/cdkeygen/log/zerolog"
	"github.com/unkn0wn-root/cdkeygen/output"
	"github.com/unkn0wn-root/cdkeygen/seenstore"
)

// largeUniqueRun is the unique-mode batch size from which the off-heap seen
// store replaces the default map store.
const largeUniqueRun = 1_000_000

type cliArgs struct {
	count     int
	length    int
	pattern   string
	groupSize int
	sep       string
	alphabet  string
	out       string
	format    string
	preview   int

	allowAmbiguous bool
	noUnique       bool

	interactive bool
	web         bool
	addr        string
	configFile  string
	logLevel    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cdkeygen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var a cliArgs
	fs.IntVar(&a.count, "count", 10, "how many keys to generate")
	fs.IntVar(&a.length, "length", cdkeygen.DefaultLength, "key length (ignored if -pattern is used)")
	fs.StringVar(&a.pattern, "pattern", "", `pattern using X as random chars, e.g. "XXXXX-XXXXX-XXXXX"`)
	fs.IntVar(&a.groupSize, "groupsize", 0, "auto-group size (e.g. 5 => AAAAA-BBBBB-...); ignored if -pattern is used")
	fs.StringVar(&a.sep, "sep", cdkeygen.DefaultSeparator, "separator for grouping")
	fs.StringVar(&a.alphabet, "alphabet", "", "custom alphabet characters (letters/numbers you allow)")
	fs.BoolVar(&a.allowAmbiguous, "allow-ambiguous", false, "allow ambiguous chars (0,O,1,I,L)")
	fs.BoolVar(&a.noUnique, "no-unique", false, "allow duplicates (faster, but not recommended)")
	fs.StringVar(&a.out, "out", "", "output file path (e.g. keys.txt)")
	fs.StringVar(&a.format, "format", output.FormatText, "output format: text, csv or json")
	fs.IntVar(&a.preview, "preview", 10, "how many keys to print to the console")
	fs.BoolVar(&a.interactive, "interactive", false, "interactive menu mode")
	fs.BoolVar(&a.web, "web", false, "serve the browser form instead of generating")
	fs.StringVar(&a.addr, "addr", "127.0.0.1:8394", "listen address for -web")
	fs.StringVar(&a.configFile, "config", "", "YAML file with flag defaults (./cdkeygen.yaml is picked up automatically)")
	fs.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(argv); err != nil {
		return 2
	}

	if len(argv) == 0 {
		printExamples(stdout)
		return 0
	}

	if err := applyFileConfig(fs, a.configFile); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	zl := newLogger(stderr, a.logLevel)
	logger := zlog.Logger{L: zl}

	switch {
	case a.web:
		if err := runWeb(a.addr, logger, zl); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	case a.interactive:
		if err := runInteractive(stdin, stdout, logger); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "Generating %d key(s)...\n", a.count)
	keys, err := generateBatch(a, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "Done.")

	if n := a.preview; n > 0 {
		if n > len(keys) {
			n = len(keys)
		}
		fmt.Fprintln(stdout, "\nPreview:")
		for _, k := range keys[:n] {
			fmt.Fprintf(stdout, "  %s\n", k)
		}
	}

	if a.out != "" {
		if err := output.Save(keys, a.out, a.format); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "\nSaved: %s (%s)\n", a.out, strings.ToUpper(strings.TrimSpace(a.format)))
	} else {
		fmt.Fprintln(stdout, "\nTip: use -out keys.txt to save them to a file.")
	}
	return 0
}

func generateBatch(a cliArgs, logger cdkeygen.Logger) ([]string, error) {
	cfg := cdkeygen.Config{
		Count:          a.count,
		Length:         a.length,
		Pattern:        a.pattern,
		Alphabet:       a.alphabet,
		AvoidAmbiguous: !a.allowAmbiguous,
		Unique:         !a.noUnique,
		GroupSize:      a.groupSize,
		Separator:      a.sep,
		Uppercase:      true,
	}

	opts := cdkeygen.Options{Config: cfg, Logger: logger}
	if cfg.Unique && cfg.Count >= largeUniqueRun {
		store, err := seenstore.NewBigCache(seenstore.BigCacheConfig{})
		if err != nil {
			return nil, err
		}
		defer store.Close()
		opts.Seen = store
	}

	g, err := cdkeygen.New(opts)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger()
}

func printExamples(w io.Writer) {
	fmt.Fprintln(w, "cdkeygen")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  cdkeygen -count 100 -length 25 -out keys.txt")
	fmt.Fprintln(w, `  cdkeygen -count 50 -pattern "XXXXX-XXXXX-XXXXX" -out keys.txt`)
	fmt.Fprintln(w, "  cdkeygen -count 100 -length 25 -groupsize 5 -out keys.csv -format csv")
	fmt.Fprintln(w, "  cdkeygen -interactive   (interactive menu)")
	fmt.Fprintln(w, "  cdkeygen -web           (browser form)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run with -help for all options.")
}
