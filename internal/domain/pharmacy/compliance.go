package pharmacy

import "fmt"

// categoryRank orders medication categories for escalation. A single
// controlled item forces the whole prescription into the controlled-special
// bucket regardless of the other items.
var categoryRank = map[MedicationCategory]int{
	CategorySimple:        0,
	CategoryAntimicrobial: 1,
	CategoryControlled:    2,
}

func recipeForCategory(c MedicationCategory) RecipeType {
	switch c {
	case CategoryControlled:
		return RecipeControlledSpecial
	case CategoryAntimicrobial:
		return RecipeAntimicrobial
	default:
		return RecipeSimple
	}
}

// ClassifyPrescription resolves every item against the knowledge base and
// derives the regulatory bucket, the per-category requirement checklist and
// advisory warnings. It never fails: an empty or all-unknown item list still
// yields a valid simple-category result.
func (kb *KnowledgeBase) ClassifyPrescription(items []PrescriptionItem) ComplianceResult {
	highest := CategorySimple
	var warnings []string
	unknownItems := 0

	for _, item := range items {
		med := kb.FindMedication(item.MedicationName)
		if med == nil {
			unknownItems++
			warnings = append(warnings, fmt.Sprintf("Medicamento não reconhecido: %s", item.MedicationName))
			continue
		}
		if categoryRank[med.Category] > categoryRank[highest] {
			highest = med.Category
		}
		if len(med.Cautions) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s: %s", med.Name, med.Cautions[0]))
		}
	}

	recipe := recipeForCategory(highest)
	rule := recipeRules[recipe]

	if warnings == nil {
		warnings = []string{}
	}

	return ComplianceResult{
		RecipeType:          recipe,
		Requirements:        rule.Requirements,
		Warnings:            warnings,
		NeedsConfirmation:   unknownItems > 0 || recipe == RecipeControlledSpecial,
		SuggestedTemplateID: rule.SuggestedTemplateID,
		RegulatorySource:    rule.RegulatorySource,
	}
}
