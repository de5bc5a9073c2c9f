package analysis

import (
	"fmt"
	"sync"

	"github.com/vanboefer/lint-ii/annotation"
	"github.com/vanboefer/lint-ii/lexicon"
)

// Analyzer runs the full pipeline over annotated documents: per-sentence
// feature extraction and scoring, document aggregation, and report assembly.
// An Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	extractor Extractor
	scorer    Scorer
}

// NewAnalyzer constructs an Analyzer over a lexicon store with the default
// coefficient set.
func NewAnalyzer(lex lexicon.Store) *Analyzer {
	return NewAnalyzerWithCoefficients(lex, DefaultCoefficients)
}

// NewAnalyzerWithCoefficients constructs an Analyzer with an explicit
// coefficient set.
func NewAnalyzerWithCoefficients(lex lexicon.Store, coeff Coefficients) *Analyzer {
	return &Analyzer{
		extractor: Extractor{Lex: lex},
		scorer:    Scorer{Coeff: coeff},
	}
}

// Analyze computes the readability report for one document. It fails only
// on malformed annotation, identifying the offending sentence; sentences
// whose features cannot be computed score as unavailable instead.
func (a *Analyzer) Analyze(doc annotation.Document) (Report, error) {
	texts := make([]string, len(doc.Sentences))
	features := make([]SentenceFeatures, len(doc.Sentences))
	scores := make([]ScoreResult, len(doc.Sentences))

	for i, sent := range doc.Sentences {
		feats, err := a.extractor.Extract(sent)
		if err != nil {
			return Report{}, fmt.Errorf("sentence %d: %w", i+1, err)
		}
		texts[i] = sent.Text
		features[i] = feats
		scores[i] = a.scorer.ScoreSentence(feats)
	}

	docFeatures := Aggregate(features)
	docScore := a.scorer.ScoreDocument(docFeatures)

	return BuildReport(texts, features, scores, docFeatures, docScore), nil
}

// AnalyzeAll analyzes documents concurrently, one goroutine per document.
// Results and errors are positional; a failed document leaves a zero Report
// at its index. Safe because the lexicon store is immutable.
func (a *Analyzer) AnalyzeAll(docs []annotation.Document) ([]Report, []error) {
	reports := make([]Report, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		go func(i int, doc annotation.Document) {
			defer wg.Done()
			reports[i], errs[i] = a.Analyze(doc)
		}(i, doc)
	}
	wg.Wait()

	return reports, errs
}
