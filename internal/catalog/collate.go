package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders game names using the CLDR root collation for English:
// case-insensitive at the primary level, lowercase before uppercase when the
// letters are otherwise equal, digits before letters. Names the collator
// considers equal fall back to byte order, so the result never depends on the
// host locale.
//
// A Collator is not safe for concurrent use.
type Collator struct {
	c *collate.Collator
}

func NewCollator() *Collator {
	return &Collator{c: collate.New(language.English)}
}

func (c *Collator) Compare(a, b string) int {
	if r := c.c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// Sort sorts names in place.
func (c *Collator) Sort(names []string) {
	slices.SortFunc(names, c.Compare)
}
