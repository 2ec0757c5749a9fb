// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package wordfreq normalizes words and counts how often each distinct word
// occurs in a sequence.
package wordfreq

import (
	"strings"
	"unicode"

	"github.com/creachadair/datatools/internal/msort"
	"github.com/creachadair/mds/mapset"
)

// A Normalizer converts raw tokens into the words that are counted.
// The zero value is ready for use and skips no words.
type Normalizer struct {
	// Skip, if non-empty, lists normalized words that are discarded.
	Skip mapset.Set[string]
}

// Normalize returns the word denoted by tok: The token is case-folded to
// lower case, and leading and trailing punctuation and symbols are removed.
// Punctuation inside the word is kept, so "Don't" becomes "don't".
//
// Normalize returns "" if nothing remains of the token, or if the word is
// one that n is configured to skip.
func (n Normalizer) Normalize(tok string) string {
	w := strings.TrimFunc(tok, isTrim)
	if w == "" {
		return ""
	}
	w = strings.ToLower(w)
	if n.Skip.Has(w) {
		return ""
	}
	return w
}

func isTrim(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) || unicode.IsControl(r)
}

// ParseSkip parses a comma-separated list of words to skip, as SkipSet.
func ParseSkip(list string) mapset.Set[string] {
	return SkipSet(strings.Split(list, ","))
}

// SkipSet returns a set of the given words to skip. The words are normalized
// as by Normalize, and empty entries are ignored.
func SkipSet(words []string) mapset.Set[string] {
	var skip mapset.Set[string]
	for _, w := range words {
		if w = (Normalizer{}).Normalize(w); w != "" {
			skip.Add(w)
		}
	}
	return skip
}

// An Entry records the number of occurrences of a word.
type Entry struct {
	Word  string
	Count int
	First int // offset of the first occurrence of Word in the input
}

// Count returns the frequency of each distinct word in words, ordered by
// decreasing count. Words with the same count are ordered by their first
// occurrence in words.
func Count(words []string) []Entry {
	index := make(map[string]int)
	var out []Entry
	for i, w := range words {
		p, ok := index[w]
		if !ok {
			p = len(out)
			index[w] = p
			out = append(out, Entry{Word: w, First: i})
		}
		out[p].Count++
	}

	// The entries are already in order of first occurrence, and the sort is
	// stable, so ties retain that order.
	msort.Stable(out, func(a, b Entry) bool { return a.Count > b.Count })
	return out
}

// Total returns the sum of the counts in es.
func Total(es []Entry) int {
	var n int
	for _, e := range es {
		n += e.Count
	}
	return n
}
