// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package report_test

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/datatools/baseconv"
	"github.com/creachadair/datatools/descstats"
	"github.com/creachadair/datatools/report"
	"github.com/creachadair/datatools/wordfreq"
	"github.com/google/go-cmp/cmp"
)

func lines(ss ...string) string { return strings.Join(ss, "\n") + "\n" }

func rule(c string, n int) string { return strings.Repeat(c, n) }

func TestStats(t *testing.T) {
	tests := []struct {
		name  string
		input report.Stats
		want  string
	}{
		{"Defined", report.Stats{
			Result:    descstats.Compute([]float64{2, 4, 4, 4, 5, 5, 7, 9}),
			Invalid:   2,
			Precision: -1,
		}, lines(
			rule("=", 60),
			"DESCRIPTIVE STATISTICS RESULTS",
			rule("=", 60),
			"Count:               8",
			"Invalid Entries:     2",
			"Mean:                5",
			"Median:              4.5",
			"Mode:                4",
			"Standard Deviation:  2",
			"Variance:            4",
			rule("=", 60),
		)},
		{"Precision", report.Stats{
			Result:    descstats.Compute([]float64{1, 1, 2, 2, 3, 4}),
			Precision: 2,
		}, lines(
			rule("=", 60),
			"DESCRIPTIVE STATISTICS RESULTS",
			rule("=", 60),
			"Count:               6",
			"Invalid Entries:     0",
			"Mean:                2.17",
			"Median:              2.00",
			"Mode:                1.00, 2.00",
			"Standard Deviation:  1.07",
			"Variance:            1.14",
			rule("=", 60),
		)},
		{"ElidedModes", report.Stats{
			Result:    descstats.Compute([]float64{7, -1, 1, -7}),
			Precision: -1,
			MaxModes:  2,
		}, lines(
			rule("=", 60),
			"DESCRIPTIVE STATISTICS RESULTS",
			rule("=", 60),
			"Count:               4",
			"Invalid Entries:     0",
			"Mean:                0",
			"Median:              0",
			"Mode:                7, -1 (+2 more)",
			"Standard Deviation:  5",
			"Variance:            25",
			rule("=", 60),
		)},
		{"Undefined", report.Stats{
			Result:    descstats.Compute(nil),
			Invalid:   3,
			Precision: -1,
		}, lines(
			rule("=", 60),
			"DESCRIPTIVE STATISTICS RESULTS",
			rule("=", 60),
			"Count:               0",
			"Invalid Entries:     3",
			"Mean:                undefined",
			"Median:              undefined",
			"Mode:                undefined",
			"Standard Deviation:  undefined",
			"Variance:            undefined",
			rule("-", 60),
			"WARNING: no valid entries; statistics are undefined",
			rule("=", 60),
		)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := report.Render(test.input)
			if err != nil {
				t.Fatalf("Render: unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Report: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	got, err := report.Render(report.Conversions{
		Items:   baseconv.Convert([]int64{10, 255, -5}),
		Invalid: 1,
	})
	if err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	want := lines(
		rule("=", 70),
		"NUMBER BASE CONVERSION RESULTS",
		rule("=", 70),
		"NUMBER          BINARY                         HEXADECIMAL",
		rule("-", 70),
		"10              1010                           A",
		"255             11111111                       FF",
		"-5              -101                           -5",
		rule("=", 70),
		"Total conversions: 3",
		"Invalid entries:   1",
		rule("=", 70),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report: (-want, +got)\n%s", diff)
	}

	empty, err := report.Render(report.Conversions{Invalid: 2})
	if err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	if !strings.Contains(empty, "WARNING: no valid entries\n") {
		t.Errorf("Empty report lacks a warning:\n%s", empty)
	}
}

func TestConversionsWide(t *testing.T) {
	items := baseconv.Convert([]int64{1, math.MinInt64, math.MaxInt64})
	got, err := report.Render(report.Conversions{Items: items})
	if err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	out := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	// The widest number is 20 characters and the widest binary form is 65,
	// so the hexadecimal column begins at offset 87 on every row.
	const hexCol = 20 + 1 + 65 + 1
	if rule := strings.Repeat("=", hexCol+len("-8000000000000000")); out[0] != rule {
		t.Errorf("Rule: got %q, want %q", out[0], rule)
	}
	rows := append([]string{out[3]}, out[5:5+len(items)]...)
	wantHex := []string{"HEXADECIMAL"}
	for _, item := range items {
		wantHex = append(wantHex, item.Hex)
	}
	for i, row := range rows {
		if len(row) < hexCol || row[hexCol-1] != ' ' || row[hexCol:] != wantHex[i] {
			t.Errorf("Row %d: hexadecimal column misaligned: %q", i, row)
		}
	}
}

func TestWords(t *testing.T) {
	got, err := report.Render(report.Words{
		Entries:   wordfreq.Count(strings.Fields("the cat the dog the")),
		Discarded: 1,
	})
	if err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	want := lines(
		rule("=", 60),
		"WORD FREQUENCY COUNT RESULTS",
		rule("=", 60),
		"WORD                           FREQUENCY",
		rule("-", 60),
		"the                            3",
		"cat                            1",
		"dog                            1",
		rule("=", 60),
		"Total distinct words: 3",
		"Total words:          5",
		"Discarded tokens:     1",
		rule("=", 60),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report: (-want, +got)\n%s", diff)
	}
}

func TestString(t *testing.T) {
	ws := report.Words{Entries: wordfreq.Count([]string{"x"})}
	want, err := report.Render(ws)
	if err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	if got := ws.String(); got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "StatisticsResults.txt")
	rpt := report.Stats{Result: descstats.Compute([]float64{1, 2, 3}), Precision: -1}

	text, err := report.Save(path, rpt)
	if err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading saved report: %v", err)
	}
	if diff := cmp.Diff(text, string(data)); diff != "" {
		t.Errorf("Saved report differs from returned text: (-want, +got)\n%s", diff)
	}

	// Saving again replaces the file with identical content.
	again, err := report.Save(path, rpt)
	if err != nil {
		t.Fatalf("Save again: unexpected error: %v", err)
	}
	data2, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading saved report: %v", err)
	}
	if again != text || string(data2) != string(data) {
		t.Errorf("Second save differs:\n%s\nvs.\n%s", data2, data)
	}
}

// failAfter is a Formatter that writes some text and then fails.
type failAfter struct{ err error }

func (f failAfter) Format(w io.Writer) error {
	io.WriteString(w, "partial report\n")
	return f.err
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	if err := os.WriteFile(path, []byte("original\n"), 0644); err != nil {
		t.Fatalf("Writing existing report: %v", err)
	}

	bad := errors.New("formatting failed")
	if _, err := report.Save(path, failAfter{bad}); !errors.Is(err, bad) {
		t.Errorf("Save: got %v, want %v", err, bad)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Reading report: %v", err)
	}
	if got := string(data); got != "original\n" {
		t.Errorf("Failed save modified the report: got %q", got)
	}

	// No temporary files are left behind.
	es, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(es) != 1 {
		var names []string
		for _, e := range es {
			names = append(names, e.Name())
		}
		t.Errorf("Directory contents: got %q, want only report.txt", names)
	}

	// The destination directory must exist.
	missing := filepath.Join(dir, "nonesuch", "report.txt")
	if _, err := report.Save(missing, report.Words{}); err == nil {
		t.Errorf("Save(%q): got nil, want error", missing)
	} else {
		t.Logf("Save(%q): got expected error: %v", missing, err)
	}
}
