package lexicon

// Data holds the raw tables used to build a MapStore. Keys and list entries
// are case-folded by NewMapStore; callers can pass them in any casing.
type Data struct {
	// Frequencies maps lemma to Zipf frequency.
	Frequencies map[string]float64
	// Skip lists lemmas excluded from frequency computation.
	Skip []string
	// Compounds maps a compound form (singular or plural) to its singular
	// base word.
	Compounds map[string]string
	// Nouns maps a noun lemma to its semantic type and class.
	Nouns map[string]NounInfo
	// MannerAdverbs lists manner-adverb lemmas.
	MannerAdverbs []string
}

// MapStore is an immutable in-memory Store. The zero value is an empty
// store where every lookup misses.
type MapStore struct {
	freq      map[string]float64
	skip      map[string]struct{}
	compounds map[string]string
	nouns     map[string]NounInfo
	manner    map[string]struct{}
}

// NewMapStore builds a MapStore from the given tables. The input maps are
// copied; mutating them afterwards does not affect the store.
func NewMapStore(d Data) *MapStore {
	s := &MapStore{
		freq:      make(map[string]float64, len(d.Frequencies)),
		skip:      make(map[string]struct{}, len(d.Skip)),
		compounds: make(map[string]string, len(d.Compounds)),
		nouns:     make(map[string]NounInfo, len(d.Nouns)),
		manner:    make(map[string]struct{}, len(d.MannerAdverbs)),
	}
	for lemma, zipf := range d.Frequencies {
		s.freq[Fold(lemma)] = zipf
	}
	for _, lemma := range d.Skip {
		s.skip[Fold(lemma)] = struct{}{}
	}
	for form, base := range d.Compounds {
		s.compounds[Fold(form)] = Fold(base)
	}
	for lemma, info := range d.Nouns {
		s.nouns[Fold(lemma)] = info
	}
	for _, lemma := range d.MannerAdverbs {
		s.manner[Fold(lemma)] = struct{}{}
	}
	return s
}

// Frequency implements Store.
func (s *MapStore) Frequency(lemma string) (float64, bool) {
	zipf, ok := s.freq[Fold(lemma)]
	return zipf, ok
}

// IsSkipped implements Store.
func (s *MapStore) IsSkipped(lemma string) bool {
	_, ok := s.skip[Fold(lemma)]
	return ok
}

// BaseWord implements Store.
func (s *MapStore) BaseWord(lemma string) string {
	if base, ok := s.compounds[Fold(lemma)]; ok {
		return base
	}
	return lemma
}

// NounInfo implements Store.
func (s *MapStore) NounInfo(lemma string) (NounInfo, bool) {
	info, ok := s.nouns[Fold(lemma)]
	return info, ok
}

// IsMannerAdverb implements Store.
func (s *MapStore) IsMannerAdverb(lemma string) bool {
	_, ok := s.manner[Fold(lemma)]
	return ok
}

var _ Store = (*MapStore)(nil)
