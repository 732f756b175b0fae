package pharmacy

import "strings"

// KnowledgeBase resolves medication names and concentrations against the
// static catalog. The catalog slice is never mutated after construction, so a
// single KnowledgeBase may be shared by any number of goroutines.
type KnowledgeBase struct {
	catalog []MedicationKnowledge
}

// NewKnowledgeBase returns a KnowledgeBase over the built-in catalog.
func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{catalog: defaultCatalog}
}

// NewKnowledgeBaseWith returns a KnowledgeBase over a caller-supplied catalog.
// Entry order is preserved; the partial-match pass depends on it.
func NewKnowledgeBaseWith(catalog []MedicationKnowledge) *KnowledgeBase {
	return &KnowledgeBase{catalog: catalog}
}

// FindMedication resolves a free-text medication name to a catalog entry.
// Two explicit passes keep the precedence exact: pass 1 is an exact
// case-insensitive match on the canonical name or any alias; pass 2 falls
// back to substring containment in catalog order. Returns nil when nothing
// matches.
func (kb *KnowledgeBase) FindMedication(query string) *MedicationKnowledge {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	for i := range kb.catalog {
		med := &kb.catalog[i]
		if strings.ToLower(med.Name) == q {
			return med
		}
		for _, alias := range med.Aliases {
			if strings.ToLower(alias) == q {
				return med
			}
		}
	}

	for i := range kb.catalog {
		med := &kb.catalog[i]
		if strings.Contains(strings.ToLower(med.Name), q) || strings.Contains(q, strings.ToLower(med.Name)) {
			return med
		}
		for _, alias := range med.Aliases {
			la := strings.ToLower(alias)
			if strings.Contains(la, q) || strings.Contains(q, la) {
				return med
			}
		}
	}

	return nil
}

// FindDosePattern returns the dose pattern matching the given concentration,
// comparing with all whitespace stripped. When no concentration is supplied,
// or no exact match exists, the medication's first dose pattern is returned
// as a representative default. Returns nil only when the medication carries
// no dose patterns at all.
func (kb *KnowledgeBase) FindDosePattern(med *MedicationKnowledge, concentration string) *DosePattern {
	if med == nil || len(med.DosePatterns) == 0 {
		return nil
	}

	want := normalizeConcentration(concentration)
	if want != "" {
		for i := range med.DosePatterns {
			if normalizeConcentration(med.DosePatterns[i].Concentration) == want {
				return &med.DosePatterns[i]
			}
		}
	}

	return &med.DosePatterns[0]
}

func normalizeConcentration(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
