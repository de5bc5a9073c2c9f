package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all e2e tests.
	tmp, err := os.MkdirTemp("", "lint-ii-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tmp, "lint-ii")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(tmp)
	os.Exit(code)
}

// runBinary runs the lint-ii binary with the given args. It returns stdout,
// stderr, and the exit code.
func runBinary(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("unexpected error running binary: %v", err)
		}
	}

	return outBuf.String(), errBuf.String(), exitCode
}

// writeFixture creates a file with the given content in the given directory.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
	return path
}

// writeLexicon creates a minimal lexicon directory.
func writeLexicon(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "frequencies.tsv", "stad\t5.68\nhuis\t5.5\nmooi\t5.9\n")
	writeFixture(t, dir, "nouns_sem_types.tsv", "stad\tplace\tconcrete\nhuis\tartefact\tconcrete\n")
	writeFixture(t, dir, "skip.txt", "hebben\n")
	return dir
}

const annotatedDoc = `{
  "sentences": [
    {
      "text": "De stad heeft mooie huizen.",
      "tokens": [
        {"text": "De", "lemma": "de", "pos": "DET", "fine_tag": "LID|bep|stan|rest", "head": 1, "dep_rel": "det"},
        {"text": "stad", "lemma": "stad", "pos": "NOUN", "fine_tag": "N|soort|ev|basis|zijd|stan", "head": 2, "dep_rel": "nsubj"},
        {"text": "heeft", "lemma": "hebben", "pos": "VERB", "fine_tag": "WW|pv|tgw|met-t", "head": 2, "dep_rel": "root"},
        {"text": "mooie", "lemma": "mooi", "pos": "ADJ", "fine_tag": "ADJ|prenom|basis|met-e|stan", "head": 4, "dep_rel": "amod"},
        {"text": "huizen", "lemma": "huis", "pos": "NOUN", "fine_tag": "N|soort|mv|basis", "head": 2, "dep_rel": "obj"},
        {"text": ".", "lemma": ".", "pos": "PUNCT", "fine_tag": "LET", "head": 2, "dep_rel": "punct"}
      ]
    }
  ]
}`

func TestE2E_NoArgs_PrintsUsage(t *testing.T) {
	_, stderr, exitCode := runBinary(t)
	if exitCode != 0 {
		t.Errorf("exit code = %d, want 0", exitCode)
	}
	if !strings.Contains(stderr, "Usage: lint-ii") {
		t.Errorf("stderr missing usage text:\n%s", stderr)
	}
}

func TestE2E_ScoreTextFormat(t *testing.T) {
	docPath := writeFixture(t, t.TempDir(), "doc.json", annotatedDoc)
	lexDir := writeLexicon(t)

	stdout, stderr, exitCode := runBinary(t, "score", "-l", lexDir, docPath)
	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", exitCode, stderr)
	}
	if !strings.Contains(stdout, "document: sentences=1") {
		t.Errorf("stdout missing document line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "level=") {
		t.Errorf("stdout missing level:\n%s", stdout)
	}
}

func TestE2E_ScoreJSONFormat(t *testing.T) {
	docPath := writeFixture(t, t.TempDir(), "doc.json", annotatedDoc)
	lexDir := writeLexicon(t)

	stdout, stderr, exitCode := runBinary(t, "score", "-l", lexDir, "-f", "json", docPath)
	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", exitCode, stderr)
	}

	var report struct {
		Document struct {
			SentenceCount int      `json:"sentence_count"`
			Score         *float64 `json:"score"`
		} `json:"document_stats"`
		Sentences []struct {
			Score *float64 `json:"score"`
			Level *int     `json:"level"`
		} `json:"sentence_stats"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("stdout is not valid JSON: %v\n%s", err, stdout)
	}
	if report.Document.SentenceCount != 1 {
		t.Errorf("sentence_count = %d, want 1", report.Document.SentenceCount)
	}
	if report.Document.Score == nil || len(report.Sentences) != 1 || report.Sentences[0].Level == nil {
		t.Errorf("report incomplete: %s", stdout)
	}
}

func TestE2E_ScoreWithCoefficientRevision(t *testing.T) {
	dir := t.TempDir()
	docPath := writeFixture(t, dir, "doc.json", annotatedDoc)
	lexDir := writeLexicon(t)
	cfgPath := writeFixture(t, dir, ".lint-ii.yml",
		"revision: frozen\ncoefficients:\n  frozen: [-4.21, 17.28, -1.62, -2.54, 16.00]\n")

	withCfg, _, exitCode := runBinary(t, "score", "-l", lexDir, "-c", cfgPath, docPath)
	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0", exitCode)
	}
	withoutCfg, _, _ := runBinary(t, "score", "-l", lexDir, docPath)
	if withCfg != withoutCfg {
		t.Errorf("frozen revision output differs from default:\n%s\nvs\n%s", withCfg, withoutCfg)
	}
}

func TestE2E_UnknownRevisionFails(t *testing.T) {
	dir := t.TempDir()
	docPath := writeFixture(t, dir, "doc.json", annotatedDoc)
	cfgPath := writeFixture(t, dir, ".lint-ii.yml",
		"revision: nope\ncoefficients:\n  frozen: [-4.21, 17.28, -1.62, -2.54, 16.00]\n")

	_, stderr, exitCode := runBinary(t, "score", "-c", cfgPath, docPath)
	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr, "unknown coefficient revision") {
		t.Errorf("stderr = %q, want unknown revision error", stderr)
	}
}

func TestE2E_MalformedDocumentFails(t *testing.T) {
	docPath := writeFixture(t, t.TempDir(), "doc.json",
		`{"sentences": [{"text": "x", "tokens": [{"text": "x", "head": 9}]}]}`)

	_, stderr, exitCode := runBinary(t, "score", docPath)
	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(stderr, "malformed annotation") {
		t.Errorf("stderr = %q, want malformed annotation error", stderr)
	}
}

func TestE2E_Extract(t *testing.T) {
	mdPath := writeFixture(t, t.TempDir(), "doc.md", "# Kop\n\nDe stad groeit.\n")

	stdout, stderr, exitCode := runBinary(t, "extract", mdPath)
	if exitCode != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", exitCode, stderr)
	}
	if got := strings.TrimSpace(stdout); got != "De stad groeit." {
		t.Errorf("stdout = %q, want extracted paragraph only", got)
	}
}

func TestE2E_Version(t *testing.T) {
	stdout, _, exitCode := runBinary(t, "version")
	if exitCode != 0 {
		t.Errorf("exit code = %d, want 0", exitCode)
	}
	if !strings.Contains(stdout, "lint-ii") {
		t.Errorf("stdout = %q, want version line", stdout)
	}
}
