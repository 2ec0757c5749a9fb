// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package report renders computed results as fixed-column text reports, and
// saves them to files.
//
// Each report is framed by rules of "=" characters, with one labeled metric
// or table row per line. Reports do not include timestamps or timings, so the
// same results always render to the same text.
package report

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/datatools/baseconv"
	"github.com/creachadair/datatools/descstats"
	"github.com/creachadair/datatools/wordfreq"
)

// A Formatter renders a report as text.
type Formatter interface {
	// Format writes the complete text of the report to w.
	Format(w io.Writer) error
}

// Render returns the text of the report rendered by f.
func Render(f Formatter) (string, error) {
	var buf bytes.Buffer
	if err := f.Format(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// text renders f for a String method. Writes to a bytes.Buffer do not fail,
// so neither does Format.
func text(f Formatter) string { s, _ := Render(f); return s }

// Save renders f to a file at path, replacing any existing file, and returns
// the rendered text.
//
// The report is written to a temporary file that replaces path only once
// rendering has completed successfully. If rendering or writing fails, the
// temporary file is removed and any existing file at path is unmodified.
func Save(path string, f Formatter) (string, error) {
	out, err := atomicfile.New(path, 0644)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer out.Cancel()

	var buf bytes.Buffer
	if err := f.Format(io.MultiWriter(out, &buf)); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return buf.String(), nil
}

// Widths of the report frames and columns.
const (
	statsRule  = 60
	labelWidth = 21

	convRule  = 70
	numberCol = 15
	binaryCol = 30
	wordsRule = 60
	wordCol   = 30
)

// writer wraps a bufio.Writer with helpers for the common report elements.
// Write errors are sticky, and are reported by flush.
type writer struct{ *bufio.Writer }

func newWriter(w io.Writer) writer { return writer{bufio.NewWriter(w)} }

func (w writer) rule(c byte, n int) { w.WriteString(strings.Repeat(string(c), n) + "\n") }

func (w writer) line(s string) { w.WriteString(s + "\n") }

func (w writer) field(label, value string) { fmt.Fprintf(w, "%-*s%s\n", labelWidth, label, value) }

func (w writer) flush() error { return w.Flush() }

// Stats renders the descriptive statistics of a sample.
type Stats struct {
	Result  descstats.Result
	Invalid int // the number of invalid entries rejected from the input

	// Precision is the number of digits to print after the decimal point.
	// If negative, each value is printed with the fewest digits that
	// represent it exactly.
	Precision int

	// MaxModes, if positive, is the number of modes listed before the rest
	// are elided.
	MaxModes int
}

func (s Stats) String() string { return text(s) }

// Format implements the Formatter interface.
func (s Stats) Format(w io.Writer) error {
	out := newWriter(w)
	out.rule('=', statsRule)
	out.line("DESCRIPTIVE STATISTICS RESULTS")
	out.rule('=', statsRule)
	out.field("Count:", strconv.Itoa(s.Result.Count))
	out.field("Invalid Entries:", strconv.Itoa(s.Invalid))

	r := s.Result
	if r.Defined {
		out.field("Mean:", s.number(r.Mean))
		out.field("Median:", s.number(r.Median))
		out.field("Mode:", s.modes(r.Modes))
		out.field("Standard Deviation:", s.number(r.StdDev))
		out.field("Variance:", s.number(r.Variance))
	} else {
		for _, label := range []string{"Mean:", "Median:", "Mode:", "Standard Deviation:", "Variance:"} {
			out.field(label, "undefined")
		}
		out.rule('-', statsRule)
		out.line("WARNING: no valid entries; statistics are undefined")
	}
	out.rule('=', statsRule)
	return out.flush()
}

func (s Stats) number(v float64) string {
	if s.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', s.Precision, 64)
}

func (s Stats) modes(vs []float64) string {
	show := vs
	if s.MaxModes > 0 && len(vs) > s.MaxModes {
		show = vs[:s.MaxModes]
	}
	parts := make([]string, len(show))
	for i, v := range show {
		parts[i] = s.number(v)
	}
	text := strings.Join(parts, ", ")
	if n := len(vs) - len(show); n > 0 {
		text += fmt.Sprintf(" (+%d more)", n)
	}
	return text
}

// Conversions renders a table of numbers with their binary and hexadecimal
// representations. The number and binary columns are 15 and 30 characters
// wide, or wider if some entry needs more, so the columns always line up.
type Conversions struct {
	Items   []baseconv.Conversion
	Invalid int // the number of invalid entries rejected from the input
}

func (c Conversions) String() string { return text(c) }

// Format implements the Formatter interface.
func (c Conversions) Format(w io.Writer) error {
	numW, binW, hexW := numberCol, binaryCol, len("HEXADECIMAL")
	for _, item := range c.Items {
		numW = max(numW, len(strconv.FormatInt(item.Value, 10)))
		binW = max(binW, len(item.Binary))
		hexW = max(hexW, len(item.Hex))
	}
	width := max(convRule, numW+1+binW+1+hexW)

	out := newWriter(w)
	out.rule('=', width)
	out.line("NUMBER BASE CONVERSION RESULTS")
	out.rule('=', width)
	fmt.Fprintf(out, "%-*s %-*s %s\n", numW, "NUMBER", binW, "BINARY", "HEXADECIMAL")
	out.rule('-', width)
	for _, item := range c.Items {
		fmt.Fprintf(out, "%-*d %-*s %s\n", numW, item.Value, binW, item.Binary, item.Hex)
	}
	if len(c.Items) == 0 {
		out.line("WARNING: no valid entries")
	}
	out.rule('=', width)
	fmt.Fprintf(out, "Total conversions: %d\n", len(c.Items))
	fmt.Fprintf(out, "Invalid entries:   %d\n", c.Invalid)
	out.rule('=', width)
	return out.flush()
}

// Words renders a table of word frequencies.
type Words struct {
	Entries   []wordfreq.Entry // in the order they should be listed
	Discarded int              // tokens dropped during normalization
}

func (ws Words) String() string { return text(ws) }

// Format implements the Formatter interface.
func (ws Words) Format(w io.Writer) error {
	out := newWriter(w)
	out.rule('=', wordsRule)
	out.line("WORD FREQUENCY COUNT RESULTS")
	out.rule('=', wordsRule)
	fmt.Fprintf(out, "%-*s %s\n", wordCol, "WORD", "FREQUENCY")
	out.rule('-', wordsRule)
	for _, e := range ws.Entries {
		fmt.Fprintf(out, "%-*s %d\n", wordCol, e.Word, e.Count)
	}
	if len(ws.Entries) == 0 {
		out.line("WARNING: no words found")
	}
	out.rule('=', wordsRule)
	fmt.Fprintf(out, "Total distinct words: %d\n", len(ws.Entries))
	fmt.Fprintf(out, "Total words:          %d\n", wordfreq.Total(ws.Entries))
	fmt.Fprintf(out, "Discarded tokens:     %d\n", ws.Discarded)
	out.rule('=', wordsRule)
	return out.flush()
}
