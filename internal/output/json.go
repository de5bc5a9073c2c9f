package output

import (
	"encoding/json"
	"io"

	"github.com/vanboefer/lint-ii/analysis"
)

// JSONFormatter outputs a report as pretty-printed JSON. Unavailable values
// render as null; no field is ever omitted.
type JSONFormatter struct{}

type jsonReport struct {
	Document  jsonDocumentStats   `json:"document_stats"`
	Sentences []jsonSentenceStats `json:"sentence_stats"`
}

type jsonDocumentStats struct {
	SentenceCount    int      `json:"sentence_count"`
	Score            *float64 `json:"score"`
	Level            *int     `json:"level"`
	MinSentenceScore *float64 `json:"min_sentence_score"`
	MaxSentenceScore *float64 `json:"max_sentence_score"`
}

type jsonSentenceStats struct {
	Text                    string              `json:"text"`
	Score                   *float64            `json:"score"`
	Level                   *int                `json:"level"`
	MeanLogWordFrequency    *float64            `json:"mean_log_word_frequency"`
	MaxSDL                  *float64            `json:"max_sdl"`
	ContentWordsPerClause   *float64            `json:"content_words_per_clause"`
	ProportionConcreteNouns *float64            `json:"proportion_concrete_nouns"`
	ContentWords            []string            `json:"content_words"`
	ConcreteNouns           []string            `json:"concrete_nouns"`
	AbstractNouns           []string            `json:"abstract_nouns"`
	UndefinedNouns          []string            `json:"undefined_nouns"`
	UnknownNouns            []string            `json:"unknown_nouns"`
	FiniteVerbs             []string            `json:"finite_verbs"`
	SDLs                    []jsonTokenSDL      `json:"sdls"`
	LeastFrequentWords      []jsonWordFrequency `json:"least_frequent_words"`
}

type jsonTokenSDL struct {
	Token     string   `json:"token"`
	DepLength int      `json:"dep_length"`
	Heads     []string `json:"heads"`
}

type jsonWordFrequency struct {
	Word     string  `json:"word"`
	Zipf     float64 `json:"zipf"`
	Uncommon bool    `json:"uncommon"`
}

// Format writes the report as a pretty-printed JSON object.
func (f *JSONFormatter) Format(w io.Writer, report analysis.Report) error {
	out := jsonReport{
		Document: jsonDocumentStats{
			SentenceCount:    report.Document.SentenceCount,
			Score:            numberPtr(report.Document.Score),
			Level:            levelPtr(report.Document.Level),
			MinSentenceScore: numberPtr(report.Document.MinSentenceScore),
			MaxSentenceScore: numberPtr(report.Document.MaxSentenceScore),
		},
		Sentences: make([]jsonSentenceStats, 0, len(report.Sentences)),
	}

	for _, sent := range report.Sentences {
		d := sent.Diagnostics
		sdls := make([]jsonTokenSDL, 0, len(d.SDLs))
		for _, s := range d.SDLs {
			sdls = append(sdls, jsonTokenSDL{Token: s.Token, DepLength: s.DepLength, Heads: s.Heads})
		}
		words := make([]jsonWordFrequency, 0, len(d.LeastFrequentWords))
		for _, wf := range d.LeastFrequentWords {
			words = append(words, jsonWordFrequency{Word: wf.Word, Zipf: wf.Zipf, Uncommon: wf.Uncommon})
		}

		out.Sentences = append(out.Sentences, jsonSentenceStats{
			Text:                    sent.Text,
			Score:                   numberPtr(sent.Score),
			Level:                   levelPtr(sent.Level),
			MeanLogWordFrequency:    numberPtr(sent.MeanLogWordFrequency),
			MaxSDL:                  numberPtr(sent.MaxSDL),
			ContentWordsPerClause:   numberPtr(sent.ContentWordsPerClause),
			ProportionConcreteNouns: numberPtr(sent.ProportionConcreteNouns),
			ContentWords:            emptyNotNil(d.ContentWords),
			ConcreteNouns:           emptyNotNil(d.ConcreteNouns),
			AbstractNouns:           emptyNotNil(d.AbstractNouns),
			UndefinedNouns:          emptyNotNil(d.UndefinedNouns),
			UnknownNouns:            emptyNotNil(d.UnknownNouns),
			FiniteVerbs:             emptyNotNil(d.FiniteVerbs),
			SDLs:                    sdls,
			LeastFrequentWords:      words,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func numberPtr(v analysis.Value) *float64 {
	if !v.Available {
		return nil
	}
	n := v.Number
	return &n
}

func levelPtr(level int) *int {
	if level == 0 {
		return nil
	}
	return &level
}

// emptyNotNil keeps word lists as [] rather than null in the JSON output.
func emptyNotNil(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
