// Package lexicon provides the read-only lookup tables the feature extractor
// depends on: Zipf word frequencies, a frequency skip-list, compound base
// words, noun semantic types, and the manner-adverb set. Tables are loaded
// once at process start and are immutable afterwards; a Store is safe for
// concurrent readers without synchronization.
package lexicon

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SemClass is the lexicon-assigned semantic class of a noun. Nouns absent
// from the lexicon have no class; callers treat them as "unknown".
type SemClass string

// Semantic classes.
const (
	Concrete  SemClass = "concrete"
	Abstract  SemClass = "abstract"
	Undefined SemClass = "undefined"
)

// NounInfo is the lexicon entry for a noun: its fine-grained semantic type
// and its coarse semantic class.
type NounInfo struct {
	SemType string
	Class   SemClass
}

// Store is the query contract for the lexical resources. All lookups are
// case-insensitive on the lemma form.
type Store interface {
	// Frequency returns the Zipf frequency of a lemma, or false when the
	// lemma is absent from the frequency table.
	Frequency(lemma string) (float64, bool)

	// IsSkipped reports whether a lemma is on the frequency skip-list.
	IsSkipped(lemma string) bool

	// BaseWord resolves a compound (including plural compound forms) to its
	// singular base word. Non-compounds resolve to themselves.
	BaseWord(lemma string) string

	// NounInfo returns the semantic type and class of a noun lemma, or
	// false when the noun is unknown to the lexicon.
	NounInfo(lemma string) (NounInfo, bool)

	// IsMannerAdverb reports whether a lemma is in the manner-adverb set.
	IsMannerAdverb(lemma string) bool
}

// Fold lowercases a lemma for table lookup using Dutch casing rules, so that
// forms like "Ĳsselmeer" and "ĳsselmeer" hit the same entry.
func Fold(lemma string) string {
	return cases.Lower(language.Dutch).String(lemma)
}
