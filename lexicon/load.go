package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
)

// Filename patterns matched by LoadDir. Lexicon releases carry a version in
// the filename (e.g. nouns_sem_types_v2.tsv), so patterns match any suffix.
var (
	globFrequencies   = glob.MustCompile("frequencies*.tsv")
	globNounTypes     = glob.MustCompile("nouns_sem_types*.tsv")
	globCompounds     = glob.MustCompile("compounds*.tsv")
	globMannerAdverbs = glob.MustCompile("manner_adverbs*.txt")
	globSkip          = glob.MustCompile("skip*.txt")
)

// LoadDir assembles a MapStore from the lexicon files in dir. Each table is
// optional: a missing file yields an empty table, since absence from a table
// is a defined lookup outcome, not an error. When several files match a
// pattern the lexicographically first one is used.
func LoadDir(dir string) (*MapStore, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var d Data
	if name := firstMatch(globFrequencies, names); name != "" {
		d.Frequencies, err = LoadFrequencies(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
	}
	if name := firstMatch(globNounTypes, names); name != "" {
		d.Nouns, err = LoadNounTypes(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
	}
	if name := firstMatch(globCompounds, names); name != "" {
		d.Compounds, err = LoadCompounds(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
	}
	if name := firstMatch(globMannerAdverbs, names); name != "" {
		d.MannerAdverbs, err = LoadWordList(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
	}
	if name := firstMatch(globSkip, names); name != "" {
		d.Skip, err = LoadWordList(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
	}

	return NewMapStore(d), nil
}

func firstMatch(g glob.Glob, names []string) string {
	for _, name := range names {
		if g.Match(name) {
			return name
		}
	}
	return ""
}

// LoadWordList reads a one-lemma-per-line word list. Blank lines and lines
// starting with '#' are ignored.
func LoadWordList(path string) ([]string, error) {
	var words []string
	err := scanLines(path, func(lineNo int, line string) error {
		words = append(words, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// LoadFrequencies reads a tab-separated lemma/Zipf table.
func LoadFrequencies(path string) (map[string]float64, error) {
	freq := make(map[string]float64)
	err := scanLines(path, func(lineNo int, line string) error {
		lemma, rest, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("%s:%d: expected lemma<TAB>zipf", path, lineNo)
		}
		zipf, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid zipf value %q", path, lineNo, rest)
		}
		freq[lemma] = zipf
		return nil
	})
	if err != nil {
		return nil, err
	}
	return freq, nil
}

// LoadCompounds reads a tab-separated compound-form/base-word table.
func LoadCompounds(path string) (map[string]string, error) {
	compounds := make(map[string]string)
	err := scanLines(path, func(lineNo int, line string) error {
		form, base, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("%s:%d: expected compound<TAB>base", path, lineNo)
		}
		compounds[form] = strings.TrimSpace(base)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return compounds, nil
}

// LoadNounTypes reads a tab-separated lemma/semantic-type/class table.
func LoadNounTypes(path string) (map[string]NounInfo, error) {
	nouns := make(map[string]NounInfo)
	err := scanLines(path, func(lineNo int, line string) error {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return fmt.Errorf("%s:%d: expected lemma<TAB>sem-type<TAB>class", path, lineNo)
		}
		class, err := ParseSemClass(strings.TrimSpace(fields[2]))
		if err != nil {
			return fmt.Errorf("%s:%d: %v", path, lineNo, err)
		}
		nouns[fields[0]] = NounInfo{
			SemType: strings.TrimSpace(fields[1]),
			Class:   class,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nouns, nil
}

// ParseSemClass parses a semantic class name.
func ParseSemClass(raw string) (SemClass, error) {
	switch SemClass(strings.ToLower(raw)) {
	case Concrete:
		return Concrete, nil
	case Abstract:
		return Abstract, nil
	case Undefined:
		return Undefined, nil
	default:
		return "", fmt.Errorf("unknown semantic class %q (supported: concrete, abstract, undefined)", raw)
	}
}

// scanLines reads path line by line, skipping blanks and '#' comments, and
// calls fn with the 1-based line number and trimmed line.
func scanLines(path string, fn func(lineNo int, line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening lexicon file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
