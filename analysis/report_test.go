package analysis

import "testing"

func TestBuildReport_MinMaxOverAvailableScores(t *testing.T) {
	features := []SentenceFeatures{{}, {}, {}}
	scores := []ScoreResult{
		{Score: Available(48.3), Level: 3},
		{Score: Unavailable()},
		{Score: Available(31.1), Level: 1},
	}
	docFeatures := DocumentFeatures{SentenceCount: 3}
	docScore := ScoreResult{Score: Available(40.0), Level: 2}

	report := BuildReport([]string{"a", "b", "c"}, features, scores, docFeatures, docScore)

	if report.Document.SentenceCount != 3 {
		t.Errorf("sentenceCount = %d, want 3", report.Document.SentenceCount)
	}
	if got := report.Document.MinSentenceScore; !got.Available || got.Number != 31.1 {
		t.Errorf("minSentenceScore = %+v, want 31.1", got)
	}
	if got := report.Document.MaxSentenceScore; !got.Available || got.Number != 48.3 {
		t.Errorf("maxSentenceScore = %+v, want 48.3", got)
	}
	if len(report.Sentences) != 3 {
		t.Fatalf("len(sentences) = %d, want 3", len(report.Sentences))
	}
	if report.Sentences[1].Score.Available {
		t.Error("sentence 2 score should stay unavailable")
	}
	if report.Sentences[1].Level != 0 {
		t.Errorf("sentence 2 level = %d, want 0", report.Sentences[1].Level)
	}
	if report.Sentences[2].Text != "c" {
		t.Errorf("sentence 3 text = %q, want c", report.Sentences[2].Text)
	}
}

func TestBuildReport_NoScorableSentences(t *testing.T) {
	features := []SentenceFeatures{{}}
	scores := []ScoreResult{{Score: Unavailable()}}

	report := BuildReport([]string{"Waarom?"}, features, scores,
		DocumentFeatures{SentenceCount: 1}, ScoreResult{Score: Unavailable()})

	if report.Document.Score.Available {
		t.Error("document score should be unavailable")
	}
	if report.Document.Level != 0 {
		t.Errorf("document level = %d, want 0", report.Document.Level)
	}
	if report.Document.MinSentenceScore.Available || report.Document.MaxSentenceScore.Available {
		t.Error("min/max should be unavailable with no scorable sentence")
	}
}
