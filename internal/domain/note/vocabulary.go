package note

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// vocabularyFile is the on-disk shape of a clinic vocabulary extension:
//
//	sections:
//	  - id: chief-complaint
//	    patterns:
//	      - "coceira"
//	      - "manchas? na pele"
type vocabularyFile struct {
	Sections []struct {
		ID       string   `yaml:"id"`
		Patterns []string `yaml:"patterns"`
	} `yaml:"sections"`
}

// LoadRules merges a YAML vocabulary file into the built-in rule set.
// Patterns for a known section are appended after the built-in ones; a
// section id not present in the defaults gets a new rule at the end of the
// list. Patterns are compiled case-insensitive, matching the built-ins.
func LoadRules(path string) ([]SectionRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}

	rules := defaultRules()
	for _, sec := range file.Sections {
		if sec.ID == "" {
			return nil, fmt.Errorf("vocabulary section without id")
		}
		compiled := make([]*regexp.Regexp, 0, len(sec.Patterns))
		for _, expr := range sec.Patterns {
			p, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return nil, fmt.Errorf("vocabulary pattern %q for section %s: %w", expr, sec.ID, err)
			}
			compiled = append(compiled, p)
		}

		found := false
		for i := range rules {
			if rules[i].SectionID == sec.ID {
				rules[i].Patterns = append(rules[i].Patterns, compiled...)
				found = true
				break
			}
		}
		if !found {
			rules = append(rules, SectionRule{SectionID: sec.ID, Patterns: compiled})
		}
	}

	return rules, nil
}
