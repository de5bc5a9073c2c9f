package lexicon

import "testing"

func fixtureStore() *MapStore {
	return NewMapStore(Data{
		Frequencies: map[string]float64{
			"stad":  5.68,
			"hart":  5.20,
			"Fiets": 4.90,
		},
		Skip:      []string{"zijn"},
		Compounds: map[string]string{"stadsfietsen": "fiets", "stadsfiets": "fiets"},
		Nouns: map[string]NounInfo{
			"stad": {SemType: "place", Class: Concrete},
			"idee": {SemType: "mental", Class: Abstract},
			"hart": {SemType: "body", Class: Undefined},
		},
		MannerAdverbs: []string{"snel"},
	})
}

func TestMapStore_FrequencyCaseInsensitive(t *testing.T) {
	s := fixtureStore()

	zipf, ok := s.Frequency("Stad")
	if !ok || zipf != 5.68 {
		t.Fatalf("Frequency(Stad) = %v, %v, want 5.68, true", zipf, ok)
	}
	// Keys are folded at construction time too.
	if _, ok := s.Frequency("fiets"); !ok {
		t.Fatal("Frequency(fiets) missed; table key Fiets should be folded")
	}
	if _, ok := s.Frequency("onbekend"); ok {
		t.Fatal("Frequency(onbekend) should miss")
	}
}

func TestMapStore_BaseWord(t *testing.T) {
	s := fixtureStore()

	if got := s.BaseWord("stadsfietsen"); got != "fiets" {
		t.Errorf("BaseWord(stadsfietsen) = %q, want fiets", got)
	}
	if got := s.BaseWord("Stadsfietsen"); got != "fiets" {
		t.Errorf("BaseWord(Stadsfietsen) = %q, want fiets", got)
	}
	// Non-compounds resolve to themselves, casing preserved.
	if got := s.BaseWord("Stad"); got != "Stad" {
		t.Errorf("BaseWord(Stad) = %q, want Stad", got)
	}
}

func TestMapStore_NounInfo(t *testing.T) {
	s := fixtureStore()

	info, ok := s.NounInfo("IDEE")
	if !ok || info.Class != Abstract {
		t.Fatalf("NounInfo(IDEE) = %+v, %v, want abstract entry", info, ok)
	}
	if _, ok := s.NounInfo("oudegracht"); ok {
		t.Fatal("NounInfo(oudegracht) should miss (unknown noun)")
	}
}

func TestMapStore_SkipAndMannerAdverb(t *testing.T) {
	s := fixtureStore()

	if !s.IsSkipped("Zijn") {
		t.Error("IsSkipped(Zijn) = false, want true")
	}
	if s.IsSkipped("stad") {
		t.Error("IsSkipped(stad) = true, want false")
	}
	if !s.IsMannerAdverb("Snel") {
		t.Error("IsMannerAdverb(Snel) = false, want true")
	}
	if s.IsMannerAdverb("niet") {
		t.Error("IsMannerAdverb(niet) = true, want false")
	}
}

func TestMapStore_ZeroValueIsEmpty(t *testing.T) {
	var s MapStore
	if _, ok := s.Frequency("stad"); ok {
		t.Error("zero-value store should miss every lookup")
	}
	if got := s.BaseWord("stad"); got != "stad" {
		t.Errorf("BaseWord on zero-value store = %q, want identity", got)
	}
}

func TestFold_DutchDigraph(t *testing.T) {
	if got := Fold("ĲSSELMEER"); got != Fold("ĳsselmeer") {
		t.Errorf("Fold folds inconsistently: %q vs %q", got, Fold("ĳsselmeer"))
	}
}
