package analysis

// TokenSDL is the per-token dependency-length diagnostic: the token text,
// its computed dependency length, and the surface text of its effective
// head(s) after conjunct-chain resolution.
type TokenSDL struct {
	Token     string
	DepLength int
	Heads     []string
}

// WordFrequency pairs a word with its Zipf frequency. Uncommon flags
// frequencies below the display threshold; it plays no role in scoring.
type WordFrequency struct {
	Word     string
	Zipf     float64
	Uncommon bool
}

// UncommonZipfThreshold is the Zipf frequency below which a word is shown as
// uncommon. Display only, not part of the formula.
const UncommonZipfThreshold = 3.0

// Diagnostics are the supporting word lists behind the four features,
// reported per sentence. Lists hold surface text in sentence order.
type Diagnostics struct {
	ContentWords   []string
	ConcreteNouns  []string
	AbstractNouns  []string
	UndefinedNouns []string
	UnknownNouns   []string
	FiniteVerbs    []string
	SDLs           []TokenSDL
	// LeastFrequentWords lists the looked-up content words ascending by
	// Zipf frequency, capped at five entries.
	LeastFrequentWords []WordFrequency
}

// SentenceFeatures holds the four core features of one sentence plus their
// supporting diagnostics. Each feature is either a finite number or
// unavailable.
type SentenceFeatures struct {
	MeanLogWordFrequency    Value
	MaxSDL                  Value
	ContentWordsPerClause   Value
	ProportionConcreteNouns Value
	Diagnostics             Diagnostics
}

// DocumentFeatures holds the per-feature means over the sentences where the
// feature is available, and the total sentence count.
type DocumentFeatures struct {
	MeanLogWordFrequency    Value
	MaxSDL                  Value
	ContentWordsPerClause   Value
	ProportionConcreteNouns Value
	SentenceCount           int
}
