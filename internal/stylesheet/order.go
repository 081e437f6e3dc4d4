package stylesheet

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// nameOrder compares names with locale-aware collation, falling back to
// byte order when the collator considers two distinct names equal.
// A collator is not safe for concurrent use, so each sort builds its own.
type nameOrder struct {
	c *collate.Collator
}

func newNameOrder() nameOrder {
	return nameOrder{c: collate.New(language.Und)}
}

func (o nameOrder) compare(a, b string) int {
	if r := o.c.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// CompareNames orders two names ascending.
func CompareNames(a, b string) int {
	return newNameOrder().compare(a, b)
}

// sortByName sorts entries ascending by key.
func sortByName[T Entry](items []T) {
	order := newNameOrder()
	sort.SliceStable(items, func(i, j int) bool {
		return order.compare(items[i].Key(), items[j].Key()) < 0
	})
}
