package pharmacy

import (
	"strings"
	"testing"
)

func TestClassifyPrescription_Simple(t *testing.T) {
	kb := NewKnowledgeBase()

	result := kb.ClassifyPrescription([]PrescriptionItem{
		{MedicationName: "Paracetamol", Concentration: "750mg"},
	})

	if result.RecipeType != RecipeSimple {
		t.Errorf("expected simple, got %q", result.RecipeType)
	}
	if result.RegulatorySource != "Lei 5.991/1973" {
		t.Errorf("unexpected regulatory source: %q", result.RegulatorySource)
	}
	if result.NeedsConfirmation {
		t.Error("simple prescription with known items should not need confirmation")
	}
}

func TestClassifyPrescription_AntimicrobialEscalatesOverSimple(t *testing.T) {
	kb := NewKnowledgeBase()

	result := kb.ClassifyPrescription([]PrescriptionItem{
		{MedicationName: "Dipirona"},
		{MedicationName: "Amoxicilina"},
	})

	if result.RecipeType != RecipeAntimicrobial {
		t.Errorf("expected antimicrobial, got %q", result.RecipeType)
	}
	if result.RegulatorySource != "RDC 471/2021 (ANVISA)" {
		t.Errorf("unexpected regulatory source: %q", result.RegulatorySource)
	}
}

func TestClassifyPrescription_ControlledBeatsAntimicrobial(t *testing.T) {
	kb := NewKnowledgeBase()

	result := kb.ClassifyPrescription([]PrescriptionItem{
		{MedicationName: "Amoxicilina"},
		{MedicationName: "Clonazepam"},
	})

	if result.RecipeType != RecipeControlledSpecial {
		t.Errorf("expected controlled-special, got %q", result.RecipeType)
	}
	if !result.NeedsConfirmation {
		t.Error("controlled-special prescriptions must need confirmation")
	}
	if result.RegulatorySource != "Portaria SVS/MS 344/1998" {
		t.Errorf("unexpected regulatory source: %q", result.RegulatorySource)
	}
}

func TestClassifyPrescription_UnknownItem(t *testing.T) {
	kb := NewKnowledgeBase()

	result := kb.ClassifyPrescription([]PrescriptionItem{
		{MedicationName: "Nonexistentium"},
	})

	if result.RecipeType != RecipeSimple {
		t.Errorf("expected simple for unknown-only list, got %q", result.RecipeType)
	}
	if !result.NeedsConfirmation {
		t.Error("unknown items must set needs_confirmation")
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Nonexistentium") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning naming the unknown item, got %v", result.Warnings)
	}
}

func TestClassifyPrescription_CautionBecomesWarning(t *testing.T) {
	kb := NewKnowledgeBase()

	result := kb.ClassifyPrescription([]PrescriptionItem{
		{MedicationName: "Amoxicilina"},
	})

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "penicilinas") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the medication's first caution as a warning, got %v", result.Warnings)
	}
}

func TestClassifyPrescription_EmptyList(t *testing.T) {
	kb := NewKnowledgeBase()

	result := kb.ClassifyPrescription(nil)

	if result.RecipeType != RecipeSimple {
		t.Errorf("expected simple for empty list, got %q", result.RecipeType)
	}
	if result.NeedsConfirmation {
		t.Error("empty list should not need confirmation")
	}
	if result.Warnings == nil {
		t.Error("warnings must be an empty slice, not nil")
	}
	if len(result.Requirements) == 0 {
		t.Error("expected the simple requirement checklist")
	}
}
