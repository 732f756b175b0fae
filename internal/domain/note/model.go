package note

import "time"

// Speaker identifies who produced an utterance.
type Speaker string

const (
	SpeakerClinician Speaker = "clinician"
	SpeakerPatient   Speaker = "patient"
)

// Utterance is one timestamped, speaker-tagged line of a clinical
// conversation transcript. Produced by an external capture source and never
// mutated by this package.
type Utterance struct {
	Speaker       Speaker `json:"speaker"`
	Text          string  `json:"text"`
	OffsetSeconds float64 `json:"offset_seconds"`
}

// SectionTemplate describes one section of the note schema. The catalog
// order defines the order of the synthesized note.
type SectionTemplate struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Hint  string `json:"hint,omitempty"`
}

// NoteSection is one synthesized section of a clinical note. Content is
// never empty: sections with nothing to say carry Placeholder.
type NoteSection struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	AutoGenerated bool       `json:"auto_generated"`
	LastEditedAt  *time.Time `json:"last_edited_at,omitempty"`
}

// NoteContext carries the encounter metadata used to synthesize the
// identification section.
type NoteContext struct {
	PatientName   string `json:"patient_name,omitempty"`
	ClinicianName string `json:"clinician_name,omitempty"`
	DateLabel     string `json:"date_label,omitempty"`
}

// Placeholder is the fixed content of sections that could not be synthesized
// from the transcript. The owning editor flips AutoGenerated off once a human
// touches the section.
const Placeholder = "(auto-generated — review and edit)"

// Section ids of the default schema.
const (
	SectionChiefComplaint      = "chief-complaint"
	SectionHPI                 = "history-of-present-illness"
	SectionMedicationsInUse    = "medications-in-use"
	SectionAllergies           = "allergies"
	SectionPhysicalExam        = "physical-exam"
	SectionAssessment          = "assessment"
	SectionPlan                = "plan"
	SectionOrders              = "orders"
	SectionPatientInstructions = "patient-instructions"
	SectionDiagnosisCode       = "diagnosis-code"
	SectionIdentification      = "identification"
	SectionAttachments         = "attachments"
)

// DefaultSchema returns the fixed, ordered section catalog of a SOAP-style
// outpatient note. identification and attachments are structural: they are
// never synthesized from utterance text.
func DefaultSchema() []SectionTemplate {
	return []SectionTemplate{
		{ID: SectionChiefComplaint, Title: "Queixa principal", Hint: "Motivo da consulta nas palavras do paciente"},
		{ID: SectionHPI, Title: "História da doença atual", Hint: "Início, duração e evolução dos sintomas"},
		{ID: SectionMedicationsInUse, Title: "Medicamentos em uso", Hint: "Medicações atuais com dose e frequência"},
		{ID: SectionAllergies, Title: "Alergias", Hint: "Alergias medicamentosas e alimentares"},
		{ID: SectionPhysicalExam, Title: "Exame físico", Hint: "Achados do exame e sinais vitais"},
		{ID: SectionAssessment, Title: "Avaliação", Hint: "Impressão clínica"},
		{ID: SectionPlan, Title: "Plano", Hint: "Conduta terapêutica"},
		{ID: SectionOrders, Title: "Solicitações", Hint: "Exames e encaminhamentos solicitados"},
		{ID: SectionPatientInstructions, Title: "Orientações ao paciente", Hint: "Instruções de cuidado e retorno"},
		{ID: SectionDiagnosisCode, Title: "Hipótese diagnóstica", Hint: "Diagnóstico e código CID"},
		{ID: SectionIdentification, Title: "Identificação", Hint: "Paciente, profissional e data"},
		{ID: SectionAttachments, Title: "Anexos", Hint: "Documentos e imagens vinculados"},
	}
}
