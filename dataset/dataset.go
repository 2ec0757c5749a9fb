// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package dataset reads whitespace-delimited tokens from an input and
// validates them as values of a particular type.
//
// A token that does not parse is not an error: It is recorded as a Rejected
// entry and reading continues. The only errors reported are failures to open
// or read the input itself.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/creachadair/datatools/scanner"
	"github.com/creachadair/datatools/wordfreq"
	"github.com/creachadair/mds/mstr"
)

// Errors describing why a token was rejected.
var (
	ErrNotNumber  = errors.New("not a number")
	ErrNotInteger = errors.New("not an integer")
	ErrRange      = errors.New("value out of range")
)

// errDiscard is reported by a parse function for a token that should be
// dropped without being counted as invalid.
var errDiscard = errors.New("discard token")

// A Rejected records a token that could not be parsed as a value.
type Rejected struct {
	Text     string           // the text of the token as written
	Location scanner.Location // where the token occurs in the input
	Err      error            // why the token was rejected
}

// maxShown is the longest token text included in a Rejected string.
const maxShown = 40

func (r Rejected) String() string {
	text := r.Text
	if len(text) > maxShown {
		text = mstr.Trunc(text, maxShown) + "..."
	}
	return fmt.Sprintf("line %d: invalid entry %q: %v", r.Location.Line, text, r.Err)
}

// A Dataset is the result of validating the tokens of an input.
//
// Every token is accounted for exactly once, so that
//
//	len(d.Valid) + len(d.Invalid) + d.Discarded == d.Total
type Dataset[T any] struct {
	Valid     []T        // accepted values, in input order
	Invalid   []Rejected // rejected tokens, in input order
	Discarded int        // tokens dropped without being counted as invalid
	Total     int        // the number of tokens read
}

// IsEmpty reports whether d contains no valid values.
func (d *Dataset[T]) IsEmpty() bool { return len(d.Valid) == 0 }

// An InputError reports a failure to open or read an input file.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	err := e.Err
	var perr *fs.PathError
	if errors.As(err, &perr) {
		err = perr.Err // the path is already reported
	}
	return fmt.Sprintf("input %q: %v", e.Path, err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseFloats reads tokens from r and validates them as floating-point
// numbers. A token is valid if it is lexically a number (see scanner.Classify)
// and its value is finite.
func ParseFloats(r io.Reader) (*Dataset[float64], error) { return parse(r, parseFloat) }

// ParseInts reads tokens from r and validates them as decimal integers that
// fit in an int64.
func ParseInts(r io.Reader) (*Dataset[int64], error) { return parse(r, parseInt) }

// ParseWords reads tokens from r and normalizes them with n. Tokens for which
// n returns an empty word are discarded, not rejected, so the result never
// has invalid entries.
func ParseWords(r io.Reader, n wordfreq.Normalizer) (*Dataset[string], error) {
	return parse(r, func(text string, _ scanner.Kind) (string, error) {
		if w := n.Normalize(text); w != "" {
			return w, nil
		}
		return "", errDiscard
	})
}

// ReadFloats opens the file at path and calls ParseFloats on its contents.
// Errors opening or reading the file have concrete type *InputError.
func ReadFloats(path string) (*Dataset[float64], error) {
	return readFile(path, ParseFloats)
}

// ReadInts opens the file at path and calls ParseInts on its contents.
// Errors opening or reading the file have concrete type *InputError.
func ReadInts(path string) (*Dataset[int64], error) {
	return readFile(path, ParseInts)
}

// ReadWords opens the file at path and calls ParseWords on its contents.
// Errors opening or reading the file have concrete type *InputError.
func ReadWords(path string, n wordfreq.Normalizer) (*Dataset[string], error) {
	return readFile(path, func(r io.Reader) (*Dataset[string], error) {
		return ParseWords(r, n)
	})
}

func readFile[T any](path string, parse func(io.Reader) (*Dataset[T], error)) (*Dataset[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	ds, err := parse(f)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return ds, nil
}

func parse[T any](r io.Reader, f func(string, scanner.Kind) (T, error)) (*Dataset[T], error) {
	ds := new(Dataset[T])
	s := scanner.New(r)
	for s.Next() {
		ds.Total++
		v, err := f(s.Text(), s.Kind())
		if err == errDiscard {
			ds.Discarded++
		} else if err != nil {
			ds.Invalid = append(ds.Invalid, Rejected{
				Text:     s.Text(),
				Location: s.Location(),
				Err:      err,
			})
		} else {
			ds.Valid = append(ds.Valid, v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

func parseFloat(text string, kind scanner.Kind) (float64, error) {
	if !kind.IsNumber() {
		return 0, ErrNotNumber
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// The lexical check admits only well-formed numbers, so the only
		// possible failure is overflow.
		return 0, ErrRange
	}
	return v, nil
}

func parseInt(text string, kind scanner.Kind) (int64, error) {
	switch kind {
	case scanner.Word:
		return 0, ErrNotNumber
	case scanner.Decimal:
		return 0, ErrNotInteger
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, ErrRange
	}
	return v, nil
}
