package note

import "testing"

func sampleTranscript() []Utterance {
	return []Utterance{
		{Speaker: SpeakerClinician, Text: "Bom dia, o que trouxe você aqui hoje?", OffsetSeconds: 0},
		{Speaker: SpeakerPatient, Text: "Estou com dor de cabeça há 3 dias, piora à tarde", OffsetSeconds: 5},
		{Speaker: SpeakerPatient, Text: "Tomo losartana 50mg todo dia", OffsetSeconds: 14},
		{Speaker: SpeakerPatient, Text: "Sou alérgico a dipirona", OffsetSeconds: 21},
		{Speaker: SpeakerClinician, Text: "Sua pressão está 140 por 90", OffsetSeconds: 30},
		{Speaker: SpeakerClinician, Text: "Quadro sugestivo de cefaleia tensional", OffsetSeconds: 42},
		{Speaker: SpeakerClinician, Text: "Vamos iniciar tratamento com analgésico comum", OffsetSeconds: 50},
		{Speaker: SpeakerClinician, Text: "Solicito hemograma completo", OffsetSeconds: 58},
		{Speaker: SpeakerClinician, Text: "Evite cafeína e faça repouso hoje", OffsetSeconds: 65},
	}
}

func TestClassify_TotalMapping(t *testing.T) {
	c := NewClassifier()
	schema := DefaultSchema()

	result := c.Classify(nil, schema)

	if len(result) != len(schema) {
		t.Fatalf("expected %d entries, got %d", len(schema), len(result))
	}
	for _, tmpl := range schema {
		utts, ok := result[tmpl.ID]
		if !ok {
			t.Errorf("missing entry for section %q", tmpl.ID)
		}
		if utts == nil {
			t.Errorf("section %q must carry an empty slice, not nil", tmpl.ID)
		}
	}
}

func TestClassify_AssignsSections(t *testing.T) {
	c := NewClassifier()
	result := c.Classify(sampleTranscript(), DefaultSchema())

	if len(result[SectionChiefComplaint]) == 0 {
		t.Error("expected chief-complaint matches")
	}
	if len(result[SectionMedicationsInUse]) == 0 {
		t.Error("expected medications-in-use matches")
	}
	if len(result[SectionAllergies]) != 1 {
		t.Errorf("expected 1 allergy utterance, got %d", len(result[SectionAllergies]))
	}
	if len(result[SectionOrders]) == 0 {
		t.Error("expected orders matches")
	}
}

func TestClassify_MultiLabel(t *testing.T) {
	c := NewClassifier()
	utts := []Utterance{
		{Speaker: SpeakerPatient, Text: "Estou com dor de cabeça há 3 dias, piora à tarde"},
	}

	result := c.Classify(utts, DefaultSchema())

	// One utterance may land in several sections: "dor" is a chief-complaint
	// cue and "há 3 dias" / "piora" are history cues.
	if len(result[SectionChiefComplaint]) != 1 {
		t.Error("expected the utterance in chief-complaint")
	}
	if len(result[SectionHPI]) != 1 {
		t.Error("expected the same utterance in history-of-present-illness")
	}
}

func TestClassify_StructuralSectionsStayEmpty(t *testing.T) {
	c := NewClassifier()
	result := c.Classify(sampleTranscript(), DefaultSchema())

	if len(result[SectionIdentification]) != 0 {
		t.Error("identification must never receive utterances")
	}
	if len(result[SectionAttachments]) != 0 {
		t.Error("attachments must never receive utterances")
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := NewClassifier()
	utts := []Utterance{
		{Speaker: SpeakerPatient, Text: "SOU ALÉRGICO A PENICILINA"},
	}

	result := c.Classify(utts, DefaultSchema())
	if len(result[SectionAllergies]) != 1 {
		t.Error("classification must be case-insensitive")
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	c := NewClassifier()
	utts := sampleTranscript()
	original := utts[1].Text

	c.Classify(utts, DefaultSchema())

	if utts[1].Text != original {
		t.Error("classification must not mutate input utterances")
	}
}
