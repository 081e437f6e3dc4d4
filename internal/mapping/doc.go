// Package mapping translates design-token category names into CSS
// custom-property prefixes.
//
// Lookups are exact and case-sensitive. A prefix without an entry is
// returned unchanged, so callers can feed every accumulated path through
// the mapper without checking for membership first.
package mapping
