package analysis

// DocumentStats are the document-level fields of a report.
type DocumentStats struct {
	SentenceCount    int
	Score            Value
	Level            int
	MinSentenceScore Value
	MaxSentenceScore Value
}

// SentenceStats are the per-sentence fields of a report: the sentence text,
// its score and level, the four feature values, and the diagnostics.
type SentenceStats struct {
	Text                    string
	Score                   Value
	Level                   int
	MeanLogWordFrequency    Value
	MaxSDL                  Value
	ContentWordsPerClause   Value
	ProportionConcreteNouns Value
	Diagnostics             Diagnostics
}

// Report is the complete readability analysis of one document. Every field
// is always present; values upstream could not compute are unavailable, so
// the report is structurally complete even for unscorable input.
type Report struct {
	Document  DocumentStats
	Sentences []SentenceStats
}

// BuildReport assembles a report from per-sentence and document results. It
// performs no computation beyond min/max over the available sentence scores.
func BuildReport(
	sentences []string,
	features []SentenceFeatures,
	scores []ScoreResult,
	docFeatures DocumentFeatures,
	docScore ScoreResult,
) Report {
	stats := make([]SentenceStats, len(features))
	minScore, maxScore := Unavailable(), Unavailable()
	for i, f := range features {
		stats[i] = SentenceStats{
			Text:                    sentences[i],
			Score:                   scores[i].Score,
			Level:                   scores[i].Level,
			MeanLogWordFrequency:    f.MeanLogWordFrequency,
			MaxSDL:                  f.MaxSDL,
			ContentWordsPerClause:   f.ContentWordsPerClause,
			ProportionConcreteNouns: f.ProportionConcreteNouns,
			Diagnostics:             f.Diagnostics,
		}
		if s := scores[i].Score; s.Available {
			if !minScore.Available || s.Number < minScore.Number {
				minScore = s
			}
			if !maxScore.Available || s.Number > maxScore.Number {
				maxScore = s
			}
		}
	}

	return Report{
		Document: DocumentStats{
			SentenceCount:    docFeatures.SentenceCount,
			Score:            docScore.Score,
			Level:            docScore.Level,
			MinSentenceScore: minScore,
			MaxSentenceScore: maxScore,
		},
		Sentences: stats,
	}
}
