package note

import (
	"os"
	"path/filepath"
	"testing"
)

func writeVocabulary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write vocabulary file: %v", err)
	}
	return path
}

func TestLoadRules_ExtendsExistingSection(t *testing.T) {
	path := writeVocabulary(t, `
sections:
  - id: chief-complaint
    patterns:
      - "coceira"
`)

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := NewClassifierWithRules(rules)
	utts := []Utterance{{Speaker: SpeakerPatient, Text: "Estou com muita coceira no braço"}}
	result := c.Classify(utts, DefaultSchema())

	if len(result[SectionChiefComplaint]) != 1 {
		t.Error("expected the extended pattern to classify the utterance")
	}
}

func TestLoadRules_KeepsBuiltinPatterns(t *testing.T) {
	path := writeVocabulary(t, `
sections:
  - id: chief-complaint
    patterns:
      - "coceira"
`)

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := NewClassifierWithRules(rules)
	utts := []Utterance{{Speaker: SpeakerPatient, Text: "Estou com dor no joelho"}}
	result := c.Classify(utts, DefaultSchema())

	if len(result[SectionChiefComplaint]) != 1 {
		t.Error("built-in patterns must survive the merge")
	}
}

func TestLoadRules_InvalidPattern(t *testing.T) {
	path := writeVocabulary(t, `
sections:
  - id: chief-complaint
    patterns:
      - "[unclosed"
`)

	if _, err := LoadRules(path); err == nil {
		t.Error("expected an error for an invalid pattern")
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := LoadRules("/nonexistent/vocabulary.yaml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}
