package analysis

// Aggregate combines per-sentence features into document-level features.
// Each feature is averaged independently over the sentences where it is
// available; a feature no sentence defines stays unavailable. SentenceCount
// counts every sentence regardless of feature availability.
func Aggregate(features []SentenceFeatures) DocumentFeatures {
	return DocumentFeatures{
		MeanLogWordFrequency:    meanOf(features, func(f SentenceFeatures) Value { return f.MeanLogWordFrequency }),
		MaxSDL:                  meanOf(features, func(f SentenceFeatures) Value { return f.MaxSDL }),
		ContentWordsPerClause:   meanOf(features, func(f SentenceFeatures) Value { return f.ContentWordsPerClause }),
		ProportionConcreteNouns: meanOf(features, func(f SentenceFeatures) Value { return f.ProportionConcreteNouns }),
		SentenceCount:           len(features),
	}
}

func meanOf(features []SentenceFeatures, pick func(SentenceFeatures) Value) Value {
	sum := 0.0
	n := 0
	for _, f := range features {
		if v := pick(f); v.Available {
			sum += v.Number
			n++
		}
	}
	if n == 0 {
		return Unavailable()
	}
	return Available(sum / float64(n))
}
