package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vanboefer/lint-ii/analysis"
)

// TextFormatter outputs a report in human-readable text format. When Color
// is true, sentence numbers are printed in cyan and difficulty levels in
// yellow. Unavailable values print as "-".
type TextFormatter struct {
	Color bool
}

// Format writes the document line followed by one line per sentence:
// n: score=S level=L freq=F sdl=D density=C concrete=P text
func (f *TextFormatter) Format(w io.Writer, report analysis.Report) error {
	doc := report.Document
	_, err := fmt.Fprintf(w, "document: sentences=%d score=%s level=%s min=%s max=%s\n",
		doc.SentenceCount,
		formatValue(doc.Score, 1),
		formatLevel(doc.Level),
		formatValue(doc.MinSentenceScore, 1),
		formatValue(doc.MaxSentenceScore, 1),
	)
	if err != nil {
		return err
	}

	for i, sent := range report.Sentences {
		if f.Color {
			_, err = fmt.Fprintf(w, "\033[36m%d:\033[0m score=%s level=\033[33m%s\033[0m freq=%s sdl=%s density=%s concrete=%s %s\n",
				i+1,
				formatValue(sent.Score, 1),
				formatLevel(sent.Level),
				formatValue(sent.MeanLogWordFrequency, 2),
				formatValue(sent.MaxSDL, 0),
				formatValue(sent.ContentWordsPerClause, 1),
				formatValue(sent.ProportionConcreteNouns, 2),
				sent.Text)
		} else {
			_, err = fmt.Fprintf(w, "%d: score=%s level=%s freq=%s sdl=%s density=%s concrete=%s %s\n",
				i+1,
				formatValue(sent.Score, 1),
				formatLevel(sent.Level),
				formatValue(sent.MeanLogWordFrequency, 2),
				formatValue(sent.MaxSDL, 0),
				formatValue(sent.ContentWordsPerClause, 1),
				formatValue(sent.ProportionConcreteNouns, 2),
				sent.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func formatValue(v analysis.Value, precision int) string {
	if !v.Available {
		return "-"
	}
	return strconv.FormatFloat(v.Number, 'f', precision, 64)
}

func formatLevel(level int) string {
	if level == 0 {
		return "-"
	}
	return strconv.Itoa(level)
}
