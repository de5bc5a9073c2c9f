package analysis

import (
	"fmt"
	"sort"

	"github.com/vanboefer/lint-ii/annotation"
	"github.com/vanboefer/lint-ii/lexicon"
)

// Entity labels that force a noun to "abstract" regardless of its lexicon
// entry: organizations, languages, laws, and nationality/religious/political
// groups.
var abstractEntityLabels = map[string]bool{
	"ORG":      true,
	"LANGUAGE": true,
	"LAW":      true,
	"NORP":     true,
}

// leastFrequentCap bounds the least-frequent-words diagnostic list.
const leastFrequentCap = 5

// Extractor computes the four sentence features against a lexicon store.
// It is stateless apart from the store and safe for concurrent use.
type Extractor struct {
	Lex lexicon.Store
}

// Extract validates the sentence and computes its features and diagnostics.
// The only error condition is malformed annotation; a feature that cannot be
// computed is reported as unavailable, never as an error.
func (e *Extractor) Extract(s annotation.Sentence) (SentenceFeatures, error) {
	if err := annotation.Validate(s); err != nil {
		return SentenceFeatures{}, fmt.Errorf("extracting features: %w", err)
	}

	toks := s.Tokens
	content := make([]bool, len(toks))
	for i, tok := range toks {
		content[i] = e.isContentWord(tok)
	}

	var feats SentenceFeatures
	feats.Diagnostics = e.diagnostics(toks, content)
	feats.MeanLogWordFrequency = e.meanLogWordFrequency(toks, content, &feats.Diagnostics)
	feats.MaxSDL = maxSDL(toks, feats.Diagnostics.SDLs)
	feats.ContentWordsPerClause = contentWordsPerClause(feats.Diagnostics)
	feats.ProportionConcreteNouns = proportionConcreteNouns(feats.Diagnostics)
	return feats, nil
}

// isContentWord reports whether a token counts as a content word: nouns,
// proper nouns, lexical verbs, adjectives, and manner adverbs. Auxiliaries
// and other adverbs do not count.
func (e *Extractor) isContentWord(tok annotation.Token) bool {
	switch tok.POS {
	case annotation.Noun, annotation.Propn, annotation.Verb, annotation.Adj:
		return true
	}
	return e.Lex.IsMannerAdverb(tok.Lemma)
}

// diagnostics collects the per-sentence word lists shared by the features.
func (e *Extractor) diagnostics(toks []annotation.Token, content []bool) Diagnostics {
	var d Diagnostics
	for i, tok := range toks {
		if content[i] {
			d.ContentWords = append(d.ContentWords, tok.Text)
		}
		if tok.IsFiniteVerb() {
			d.FiniteVerbs = append(d.FiniteVerbs, tok.Text)
		}
		if tok.POS == annotation.Noun || tok.POS == annotation.Propn {
			switch e.classifyNoun(tok) {
			case lexicon.Concrete:
				d.ConcreteNouns = append(d.ConcreteNouns, tok.Text)
			case lexicon.Abstract:
				d.AbstractNouns = append(d.AbstractNouns, tok.Text)
			case lexicon.Undefined:
				d.UndefinedNouns = append(d.UndefinedNouns, tok.Text)
			default:
				d.UnknownNouns = append(d.UnknownNouns, tok.Text)
			}
		}
	}
	d.SDLs = dependencyLengths(toks)
	return d
}

// classifyNoun returns the semantic class of a noun token, or "" when the
// noun is unknown. The entity-label override wins over the lexicon entry;
// classification uses the lemma directly, without compound resolution.
func (e *Extractor) classifyNoun(tok annotation.Token) lexicon.SemClass {
	if abstractEntityLabels[tok.EntityLabel] {
		return lexicon.Abstract
	}
	if info, ok := e.Lex.NounInfo(tok.Lemma); ok {
		return info.Class
	}
	return ""
}

// meanLogWordFrequency computes feature 1: the mean Zipf frequency of the
// content words excluding proper nouns and skip-listed lemmas. Lemmas are
// resolved to their compound base word before lookup; lemmas without a
// frequency entry are dropped. Unavailable when nothing remains.
func (e *Extractor) meanLogWordFrequency(toks []annotation.Token, content []bool, d *Diagnostics) Value {
	var found []WordFrequency
	sum := 0.0
	for i, tok := range toks {
		if !content[i] || tok.POS == annotation.Propn {
			continue
		}
		base := e.Lex.BaseWord(tok.Lemma)
		if e.Lex.IsSkipped(tok.Lemma) || e.Lex.IsSkipped(base) {
			continue
		}
		zipf, ok := e.Lex.Frequency(base)
		if !ok {
			continue
		}
		sum += zipf
		found = append(found, WordFrequency{
			Word:     tok.Text,
			Zipf:     zipf,
			Uncommon: zipf < UncommonZipfThreshold,
		})
	}
	if len(found) == 0 {
		return Unavailable()
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Zipf < found[j].Zipf
	})
	if len(found) > leastFrequentCap {
		d.LeastFrequentWords = found[:leastFrequentCap]
	} else {
		d.LeastFrequentWords = found
	}

	return Available(sum / float64(len(found)))
}

// maxSDL computes feature 2: the maximum per-token dependency length among
// non-punctuation tokens. Unavailable when the sentence has at most one
// non-punctuation token, since no head-dependent pair exists.
func maxSDL(toks []annotation.Token, sdls []TokenSDL) Value {
	nonPunct := 0
	max := 0
	for i, tok := range toks {
		if tok.IsPunct() {
			continue
		}
		nonPunct++
		if sdls[i].DepLength > max {
			max = sdls[i].DepLength
		}
	}
	if nonPunct <= 1 {
		return Unavailable()
	}
	return Available(float64(max))
}

// contentWordsPerClause computes feature 3: content words divided by clause
// count, where each finite verb counts as one clause. Unavailable when the
// sentence has no finite verb.
func contentWordsPerClause(d Diagnostics) Value {
	clauses := len(d.FiniteVerbs)
	if clauses == 0 {
		return Unavailable()
	}
	return Available(float64(len(d.ContentWords)) / float64(clauses))
}

// proportionConcreteNouns computes feature 4: concrete nouns over all
// classifiable nouns. Unknown nouns are excluded from both numerator and
// denominator; unavailable when no noun is classifiable.
func proportionConcreteNouns(d Diagnostics) Value {
	concrete := len(d.ConcreteNouns)
	classified := concrete + len(d.AbstractNouns) + len(d.UndefinedNouns)
	if classified == 0 {
		return Unavailable()
	}
	return Available(float64(concrete) / float64(classified))
}
