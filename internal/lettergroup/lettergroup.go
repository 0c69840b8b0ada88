// Package lettergroup splits a sorted list of names into runs that share an
// uppercased leading character.
package lettergroup

import (
	"strings"
	"unicode/utf8"
)

// Entry is one item of a grouped listing. Header is set on the first item of
// each run and empty otherwise.
type Entry struct {
	Header string
	Item   string
}

// Letter returns the first character of name, uppercased.
func Letter(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return ""
	}
	return strings.ToUpper(string(r))
}

// Group emits a header whenever the leading letter changes. names must already
// be sorted for every header to be unique.
func Group(names []string) []Entry {
	entries := make([]Entry, 0, len(names))
	current := ""
	started := false

	for _, name := range names {
		letter := Letter(name)
		entry := Entry{Item: name}
		if !started || letter != current {
			entry.Header = letter
			current = letter
			started = true
		}
		entries = append(entries, entry)
	}

	return entries
}

// NavLetters is the fixed A-Z navigation bar. Groups keyed by digits or
// symbols have no entry here.
func NavLetters() []string {
	letters := make([]string, 0, 26)
	for l := 'A'; l <= 'Z'; l++ {
		letters = append(letters, string(l))
	}
	return letters
}
