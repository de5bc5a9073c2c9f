package analysis

// Coefficients is a LiNT-II regression coefficient set. The formula is a
// frozen fit on empirical reading comprehension data; published revisions
// differ slightly, so the set is a replaceable input, never hard-coded in
// the scoring code.
type Coefficients struct {
	Constant  float64
	Frequency float64
	MaxSDL    float64
	Density   float64
	Concrete  float64
}

// DefaultCoefficients is the frozen default coefficient set.
var DefaultCoefficients = Coefficients{
	Constant:  -4.21,
	Frequency: 17.28,
	MaxSDL:    -1.62,
	Density:   -2.54,
	Concrete:  16.00,
}

// ScoreResult is a readability score on the 0-100 scale (higher is harder)
// and its difficulty level. Level is 0 exactly when Score is unavailable.
type ScoreResult struct {
	Score Value
	Level int
}

// Level boundaries. A score maps to the higher level at each boundary.
const (
	levelBoundary2 = 34
	levelBoundary3 = 46
	levelBoundary4 = 58
)

// Scorer applies the readability formula with a fixed coefficient set.
type Scorer struct {
	Coeff Coefficients
}

// NewScorer returns a Scorer with the default coefficient set.
func NewScorer() *Scorer {
	return &Scorer{Coeff: DefaultCoefficients}
}

// Score computes the readability score from the four feature values. If any
// input is unavailable the score and level are unavailable; there is no
// partial computation and no default substitution. The score is not clamped
// and may fall outside [0, 100].
func (sc *Scorer) Score(freq, sdl, density, concrete Value) ScoreResult {
	if !freq.Available || !sdl.Available || !density.Available || !concrete.Available {
		return ScoreResult{Score: Unavailable()}
	}

	raw := sc.Coeff.Constant +
		sc.Coeff.Frequency*freq.Number +
		sc.Coeff.MaxSDL*sdl.Number +
		sc.Coeff.Density*density.Number +
		sc.Coeff.Concrete*concrete.Number
	score := 100 - raw

	return ScoreResult{
		Score: Available(score),
		Level: DifficultyLevel(score),
	}
}

// ScoreSentence scores one sentence's features.
func (sc *Scorer) ScoreSentence(f SentenceFeatures) ScoreResult {
	return sc.Score(f.MeanLogWordFrequency, f.MaxSDL, f.ContentWordsPerClause, f.ProportionConcreteNouns)
}

// ScoreDocument scores document-level features.
func (sc *Scorer) ScoreDocument(f DocumentFeatures) ScoreResult {
	return sc.Score(f.MeanLogWordFrequency, f.MaxSDL, f.ContentWordsPerClause, f.ProportionConcreteNouns)
}

// DifficultyLevel maps a score to a difficulty level 1-4. The partition is
// total over the real line: scores below the first boundary, including
// negative ones, are level 1, and scores from the last boundary up,
// including above 100, are level 4.
func DifficultyLevel(score float64) int {
	switch {
	case score < levelBoundary2:
		return 1
	case score < levelBoundary3:
		return 2
	case score < levelBoundary4:
		return 3
	default:
		return 4
	}
}
