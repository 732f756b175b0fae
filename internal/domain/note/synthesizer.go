package note

import (
	"fmt"
	"regexp"
	"strings"
)

// Extraction patterns of the per-section cascades. Each synthesizer tries its
// most specific extraction first and degrades to a generic formatting of the
// raw utterance text.
var (
	reDuration    = regexp.MustCompile(`(?i)h[áa]\s+(\d+)\s+(dias?|semanas?|m[êe]s|meses)`)
	reWorsens     = regexp.MustCompile(`(?i)piora\s+(?:com|ao|quando|à noite|a noite)?\s*([^,.;]+)`)
	reImproves    = regexp.MustCompile(`(?i)melhora\s+(?:com|ao|quando)?\s*([^,.;]+)`)
	reDrugDose    = regexp.MustCompile(`(?i)([a-zà-ú]{4,})\s+(\d+(?:[.,]\d+)?\s*(?:mg|mcg|g|ml))`)
	reAllergyTo   = regexp.MustCompile(`(?i)al[ée]rgic[oa]?\s+a\s+([^,.;]+)`)
	reDeniesAllergy = regexp.MustCompile(`(?i)(n[ãa]o\s+ten|nega|nenhuma)\w*\s*.*alergia`)
	reBloodPress  = regexp.MustCompile(`(?i)press[ãa]o[^\d]*(\d{1,3})\s*(?:por|x|/)\s*(\d{1,3})`)
	reTemperature = regexp.MustCompile(`(?i)(\d{2}(?:[.,]\d)?)\s*(?:graus|ºc|°c)`)
	reCIDCode     = regexp.MustCompile(`(?i)\bcid(?:-?10)?\s*:?\s*([a-z]\d{2}(?:\.\d)?)`)
)

// Synthesizer turns classified utterance subsets into human-readable section
// content. All output is deterministic: same transcript and context, same
// bytes.
type Synthesizer struct {
	schema []SectionTemplate
}

func NewSynthesizer(schema []SectionTemplate) *Synthesizer {
	return &Synthesizer{schema: schema}
}

// Synthesize produces one NoteSection per schema entry, in schema order.
// The full transcript is needed alongside the classified map because plan,
// orders and patient-instructions re-run against all clinician utterances
// when their own subset is empty.
func (s *Synthesizer) Synthesize(classified map[string][]Utterance, utterances []Utterance, ctx NoteContext) []NoteSection {
	sections := make([]NoteSection, 0, len(s.schema))

	for _, tmpl := range s.schema {
		content := s.sectionContent(tmpl.ID, classified[tmpl.ID], utterances, ctx)
		if content == "" {
			content = Placeholder
		}
		sections = append(sections, NoteSection{
			ID:            tmpl.ID,
			Title:         tmpl.Title,
			Content:       content,
			AutoGenerated: true,
		})
	}

	return sections
}

func (s *Synthesizer) sectionContent(id string, subset []Utterance, utterances []Utterance, ctx NoteContext) string {
	switch id {
	case SectionIdentification:
		return synthIdentification(ctx)
	case SectionChiefComplaint:
		return synthChiefComplaint(subset)
	case SectionHPI:
		return synthHPI(subset)
	case SectionMedicationsInUse:
		return synthMedications(subset)
	case SectionAllergies:
		return synthAllergies(subset)
	case SectionPhysicalExam:
		return synthPhysicalExam(subset)
	case SectionAssessment:
		return synthAssessment(subset)
	case SectionPlan:
		return withClinicianFallback(subset, utterances, synthClinicianBullets)
	case SectionOrders:
		return withClinicianFallback(subset, utterances, synthClinicianBullets)
	case SectionPatientInstructions:
		return withClinicianFallback(subset, utterances, synthClinicianBullets)
	case SectionDiagnosisCode:
		return synthDiagnosis(subset)
	default:
		// Structural sections (attachments) are never synthesized from text.
		return ""
	}
}

// withClinicianFallback gives plan-like sections a second chance: when their
// own classified subset is empty, the synthesizer runs once more over every
// clinician utterance of the transcript before giving up.
func withClinicianFallback(subset []Utterance, utterances []Utterance, synth func([]Utterance) string) string {
	if out := synth(subset); out != "" {
		return out
	}
	var clinician []Utterance
	for _, u := range utterances {
		if u.Speaker == SpeakerClinician {
			clinician = append(clinician, u)
		}
	}
	return synth(clinician)
}

func synthIdentification(ctx NoteContext) string {
	var lines []string
	if ctx.PatientName != "" {
		lines = append(lines, "Paciente: "+ctx.PatientName)
	}
	if ctx.ClinicianName != "" {
		lines = append(lines, "Profissional: "+ctx.ClinicianName)
	}
	if ctx.DateLabel != "" {
		lines = append(lines, "Data: "+ctx.DateLabel)
	}
	return strings.Join(lines, "\n")
}

func synthChiefComplaint(subset []Utterance) string {
	for _, u := range subset {
		if u.Speaker == SpeakerPatient {
			return fmt.Sprintf("Paciente relata: %q", strings.TrimSpace(u.Text))
		}
	}
	if len(subset) > 0 {
		return fmt.Sprintf("Registrado em consulta: %q", strings.TrimSpace(subset[0].Text))
	}
	return ""
}

func synthHPI(subset []Utterance) string {
	var lines []string

	for _, u := range subset {
		if m := reDuration.FindStringSubmatch(u.Text); m != nil {
			lines = append(lines, fmt.Sprintf("Início dos sintomas: há %s %s.", m[1], strings.ToLower(m[2])))
			break
		}
	}
	for _, u := range subset {
		if m := reWorsens.FindStringSubmatch(u.Text); m != nil {
			lines = append(lines, "Fator de piora: "+strings.TrimSpace(m[1])+".")
			break
		}
	}
	for _, u := range subset {
		if m := reImproves.FindStringSubmatch(u.Text); m != nil {
			lines = append(lines, "Fator de melhora: "+strings.TrimSpace(m[1])+".")
			break
		}
	}

	if len(lines) > 0 {
		return strings.Join(lines, "\n")
	}
	return bulletList(subset)
}

func synthMedications(subset []Utterance) string {
	var lines []string
	seen := map[string]bool{}

	for _, u := range subset {
		for _, m := range reDrugDose.FindAllStringSubmatch(u.Text, -1) {
			name := capitalize(m[1])
			dose := strings.Join(strings.Fields(m[2]), "")
			entry := fmt.Sprintf("- %s %s", name, dose)
			if !seen[entry] {
				seen[entry] = true
				lines = append(lines, entry)
			}
		}
	}

	if len(lines) > 0 {
		return strings.Join(lines, "\n")
	}
	return bulletList(subset)
}

func synthAllergies(subset []Utterance) string {
	for _, u := range subset {
		if m := reAllergyTo.FindStringSubmatch(u.Text); m != nil {
			return "Alergia relatada: " + strings.TrimSpace(m[1]) + "."
		}
	}
	for _, u := range subset {
		if reDeniesAllergy.MatchString(u.Text) {
			return "Nega alergias conhecidas."
		}
	}
	if len(subset) > 0 {
		return fmt.Sprintf("Relato: %q", strings.TrimSpace(subset[0].Text))
	}
	return ""
}

func synthPhysicalExam(subset []Utterance) string {
	var lines []string

	for _, u := range subset {
		if m := reBloodPress.FindStringSubmatch(u.Text); m != nil {
			lines = append(lines, fmt.Sprintf("PA: %sx%s mmHg.", m[1], m[2]))
			break
		}
	}
	for _, u := range subset {
		if m := reTemperature.FindStringSubmatch(u.Text); m != nil {
			lines = append(lines, fmt.Sprintf("Temperatura: %s °C.", strings.ReplaceAll(m[1], ",", ".")))
			break
		}
	}

	if len(lines) > 0 {
		return strings.Join(lines, "\n")
	}

	var clinician []Utterance
	for _, u := range subset {
		if u.Speaker == SpeakerClinician {
			clinician = append(clinician, u)
		}
	}
	return bulletList(clinician)
}

func synthAssessment(subset []Utterance) string {
	for _, u := range subset {
		if u.Speaker == SpeakerClinician {
			return fmt.Sprintf("Impressão clínica: %q", strings.TrimSpace(u.Text))
		}
	}
	return bulletList(subset)
}

func synthClinicianBullets(subset []Utterance) string {
	var clinician []Utterance
	for _, u := range subset {
		if u.Speaker == SpeakerClinician {
			clinician = append(clinician, u)
		}
	}
	return bulletList(clinician)
}

func synthDiagnosis(subset []Utterance) string {
	for _, u := range subset {
		if m := reCIDCode.FindStringSubmatch(u.Text); m != nil {
			return "CID-10: " + strings.ToUpper(m[1])
		}
	}
	for _, u := range subset {
		if u.Speaker == SpeakerClinician {
			return fmt.Sprintf("Hipótese registrada: %q", strings.TrimSpace(u.Text))
		}
	}
	return ""
}

func bulletList(utts []Utterance) string {
	var lines []string
	for _, u := range utts {
		text := strings.TrimSpace(u.Text)
		if text != "" {
			lines = append(lines, "- "+text)
		}
	}
	return strings.Join(lines, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}
