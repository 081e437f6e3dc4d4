package stylesheet

import "strings"

// Source is one parsed stylesheet.
type Source struct {
	Declarations *Set[Declaration]
	Keyframes    *Set[Keyframes]
}

// ParseSource extracts the keyframes of css, then the custom properties of
// what remains. Declarations inside keyframe steps are not collected.
func ParseSource(css string) Source {
	keyframes, residual := ExtractKeyframes(css)
	return Source{
		Declarations: ExtractVariables(residual),
		Keyframes:    keyframes,
	}
}

// Result is the outcome of a merge.
type Result struct {
	CSS            string        // Base text with the rebuilt @theme block
	Variables      []Declaration // Sorted by name
	Keyframes      []Keyframes   // Sorted by name
	AddedVariables int           // Variables contributed by themes
	AddedKeyframes int           // Keyframes contributed by themes
}

// accumulator holds the merge state between steps. Steps never mutate an
// accumulator; mergeStep returns a new one.
type accumulator struct {
	vars           *Set[Declaration]
	keyframes      *Set[Keyframes]
	addedVars      int
	addedKeyframes int
}

// mergeStep adds every name from src that acc does not hold yet.
func mergeStep(acc accumulator, src Source) accumulator {
	next := accumulator{
		vars:           acc.vars.Clone(),
		keyframes:      acc.keyframes.Clone(),
		addedVars:      acc.addedVars,
		addedKeyframes: acc.addedKeyframes,
	}

	for _, d := range src.Declarations.Items() {
		if !next.vars.Has(d.Name) {
			next.vars.Put(d)
			next.addedVars++
		}
	}
	for _, k := range src.Keyframes.Items() {
		if !next.keyframes.Has(k.Name) {
			next.keyframes.Put(k)
			next.addedKeyframes++
		}
	}

	return next
}

// Merge folds the custom properties and keyframes of themes into the
// @theme block of base.
//
// The base always wins a name collision; among themes the earliest wins.
// Keyframes found anywhere in base move into the rebuilt @theme block.
// Variables and keyframes are each sorted ascending by name.
// Merging the output again with the same themes returns it unchanged.
func Merge(base string, themes []string) (*Result, error) {
	baseKeyframes, residual := ExtractKeyframes(base)

	span, err := FindThemeBlock(residual)
	if err != nil {
		return nil, err
	}

	acc := accumulator{
		vars:      ExtractVariables(residual[span.BodyStart:span.BodyEnd]),
		keyframes: baseKeyframes,
	}

	for _, theme := range themes {
		acc = mergeStep(acc, ParseSource(theme))
	}

	vars := acc.vars.Items()
	sortByName(vars)

	keyframes := acc.keyframes.Items()
	sortByName(keyframes)

	block := RenderThemeBlock(vars, keyframes)

	return &Result{
		CSS:            residual[:span.Start] + block + residual[span.End:],
		Variables:      vars,
		Keyframes:      keyframes,
		AddedVariables: acc.addedVars,
		AddedKeyframes: acc.addedKeyframes,
	}, nil
}

// RenderThemeBlock builds an @theme block holding vars followed by keyframes.
func RenderThemeBlock(vars []Declaration, keyframes []Keyframes) string {
	var b strings.Builder
	b.WriteString("@theme {\n")
	for _, d := range vars {
		b.WriteString("  ")
		b.WriteString(d.Raw)
		b.WriteString("\n")
	}
	for _, k := range keyframes {
		b.WriteString("  ")
		b.WriteString(k.Raw)
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
