package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/cdkeygen"
	"github.com/unkn0wn-root/cdkeygen/output"
)

func runInteractive(in io.Reader, out io.Writer, logger cdkeygen.Logger) error {
	p := prompter{sc: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, "cdkeygen (interactive menu)")
	fmt.Fprintln(out)

	count := p.askInt("How many keys to generate?", 100, 1)

	pattern := p.askString("Use pattern? (leave blank for no, or enter like XXXXX-XXXXX-XXXXX)", "")
	length := cdkeygen.DefaultLength
	groupSize := 0
	if pattern == "" {
		length = p.askInt("Key length?", cdkeygen.DefaultLength, 1)
		groupSize = p.askInt("Group size (0 = no grouping)?", 5, 0)
	}
	sep := p.askString("Group separator?", cdkeygen.DefaultSeparator)

	allowAmb := strings.HasPrefix(strings.ToLower(p.askString("Allow ambiguous chars (0,O,1,I,L)? (y/n)", "n")), "y")
	alphabet := p.askString("Custom alphabet? (leave blank to use default)", "")

	outPath := p.askString("Output file path (e.g. keys.txt)", "keys.txt")
	format := strings.ToLower(strings.TrimSpace(p.askString("Format (text/csv/json)", output.FormatText)))
	if _, err := output.For(format); err != nil {
		fmt.Fprintln(out, "Invalid format; defaulting to text.")
		format = output.FormatText
	}

	cfg := cdkeygen.Config{
		Count:          count,
		Length:         length,
		Pattern:        pattern,
		Alphabet:       alphabet,
		AvoidAmbiguous: !allowAmb,
		Unique:         true,
		GroupSize:      groupSize,
		Separator:      sep,
		Uppercase:      true,
	}

	fmt.Fprintf(out, "\nGenerating %d key(s)...\n", count)
	g, err := cdkeygen.New(cdkeygen.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	keys, err := g.Generate()
	if err != nil {
		return err
	}
	if err := output.Save(keys, outPath, format); err != nil {
		return err
	}
	fmt.Fprintf(out, "Done. Saved: %s (%s)\n", outPath, strings.ToUpper(format))

	fmt.Fprintln(out, "\nPreview:")
	n := len(keys)
	if n > 10 {
		n = 10
	}
	for _, k := range keys[:n] {
		fmt.Fprintf(out, "  %s\n", k)
	}
	return nil
}

type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// askString prompts and returns the trimmed answer, or def on empty input
// and on EOF.
func (p prompter) askString(prompt, def string) string {
	fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	if !p.sc.Scan() {
		fmt.Fprintln(p.out)
		return def
	}
	raw := strings.TrimSpace(p.sc.Text())
	if raw == "" {
		return def
	}
	return raw
}

func (p prompter) askInt(prompt string, def, minV int) int {
	for {
		raw := p.askString(prompt, strconv.Itoa(def))
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.out, "  Please enter a number.")
			continue
		}
		if v < minV {
			fmt.Fprintf(p.out, "  Must be >= %d\n", minV)
			continue
		}
		return v
	}
}
