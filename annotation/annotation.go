// Package annotation defines the input contract for the readability engine:
// tokens, sentences, and documents as produced by an external
// syntactic/morphological annotator. The engine consumes these structures
// read-only; it never tokenizes, tags, or parses text itself.
package annotation

import (
	"errors"
	"fmt"
	"strings"
)

// POS is a coarse part-of-speech tag from the Universal Dependencies tag set.
type POS string

// Coarse POS tags. Tags not listed here pass through unchanged; the engine
// only branches on the ones below.
const (
	Noun  POS = "NOUN"
	Propn POS = "PROPN"
	Verb  POS = "VERB"
	Aux   POS = "AUX"
	Adj   POS = "ADJ"
	Adv   POS = "ADV"
	Punct POS = "PUNCT"
)

// Token is a single annotated token within a sentence. Head is the index of
// the syntactic head within the same sentence; the root token has Head equal
// to its own index.
type Token struct {
	Text          string `json:"text"`
	Lemma         string `json:"lemma"`
	POS           POS    `json:"pos"`
	FineTag       string `json:"fine_tag"`
	Head          int    `json:"head"`
	DepRel        string `json:"dep_rel"`
	IsConjunct    bool   `json:"is_conjunct"`
	EntityLabel   string `json:"entity_label,omitempty"`
	LeadingPunct  string `json:"leading_punct,omitempty"`
	TrailingPunct string `json:"trailing_punct,omitempty"`
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool { return t.POS == Punct }

// finiteMarker is the fine-tag substring marking person/tense-bearing verb
// forms in the CGN tag set used by Dutch annotators ("WW|pv|...").
const finiteMarker = "WW|pv"

// IsFiniteVerb reports whether the token is a finite verb form.
func (t Token) IsFiniteVerb() bool {
	return strings.Contains(t.FineTag, finiteMarker)
}

// IsSubject reports whether the token's dependency relation is a subject
// relation.
func (t Token) IsSubject() bool {
	switch t.DepRel {
	case "nsubj", "nsubj:pass", "csubj":
		return true
	}
	return false
}

// Sentence is an ordered sequence of annotated tokens. Token order follows
// surface order; indices into Tokens are the head indices used by Token.Head.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// Document is a sequence of annotated sentences.
type Document struct {
	Sentences []Sentence `json:"sentences"`
}

// ErrMalformed marks annotation that violates the structural contract:
// dangling head indices, missing or duplicate roots, conjunct cycles.
// These are collaborator-side faults, not recoverable conditions.
var ErrMalformed = errors.New("malformed annotation")

// Validate checks the structural invariants of a sentence and returns a
// descriptive error wrapping ErrMalformed on the first violation found.
func Validate(s Sentence) error {
	n := len(s.Tokens)
	if n == 0 {
		return fmt.Errorf("%w: sentence has no tokens", ErrMalformed)
	}

	roots := 0
	for i, tok := range s.Tokens {
		if tok.Head < 0 || tok.Head >= n {
			return fmt.Errorf("%w: token %d (%q) head index %d out of range [0, %d)",
				ErrMalformed, i, tok.Text, tok.Head, n)
		}
		if tok.Head == i {
			roots++
		}
	}
	if roots == 0 {
		return fmt.Errorf("%w: sentence has no root token", ErrMalformed)
	}
	if roots > 1 && n > 1 {
		return fmt.Errorf("%w: sentence has %d root tokens", ErrMalformed, roots)
	}

	// Conjunct chains must terminate: walking head links from any conjunct
	// token has to leave the chain within n steps.
	for i, tok := range s.Tokens {
		if !tok.IsConjunct {
			continue
		}
		visited := make(map[int]bool, 4)
		cur := i
		for s.Tokens[cur].IsConjunct {
			if visited[cur] {
				return fmt.Errorf("%w: conjunct cycle through token %d (%q)",
					ErrMalformed, i, tok.Text)
			}
			visited[cur] = true
			next := s.Tokens[cur].Head
			if next == cur {
				break
			}
			cur = next
		}
	}

	return nil
}
