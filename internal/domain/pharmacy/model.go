package pharmacy

// MedicationCategory is the regulatory class of a medication.
type MedicationCategory string

const (
	CategorySimple        MedicationCategory = "simple"
	CategoryAntimicrobial MedicationCategory = "antimicrobial"
	CategoryControlled    MedicationCategory = "controlled"
)

// RecipeType is the regulatory bucket of a whole prescription.
type RecipeType string

const (
	RecipeSimple            RecipeType = "simple"
	RecipeAntimicrobial     RecipeType = "antimicrobial"
	RecipeControlledSpecial RecipeType = "controlled-special"
)

// DosePattern is a canned dosage/duration/quantity combination for one
// concentration of a medication.
type DosePattern struct {
	Concentration string `json:"concentration"`
	Dosage        string `json:"dosage"`
	Duration      string `json:"duration,omitempty"`
	Quantity      string `json:"quantity,omitempty"`
}

// Variant is a named presentation of a medication (e.g. suspension vs tablet)
// with its own default dosage.
type Variant struct {
	Label         string `json:"label"`
	Description   string `json:"description"`
	Dosage        string `json:"dosage"`
	Concentration string `json:"concentration,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

// MedicationKnowledge is one entry of the static medication catalog.
// Read-only at runtime; the catalog is published once at init.
type MedicationKnowledge struct {
	Name         string             `json:"name"`
	Aliases      []string           `json:"aliases,omitempty"`
	Category     MedicationCategory `json:"category"`
	DosePatterns []DosePattern      `json:"dose_patterns"`
	CommonForms  []string           `json:"common_forms,omitempty"`
	Cautions     []string           `json:"cautions,omitempty"`
	Variants     []Variant          `json:"variants,omitempty"`
}

// PrescriptionItem is one line of a prescription draft as submitted by the
// prescribing layer.
type PrescriptionItem struct {
	MedicationName string `json:"medication_name"`
	Concentration  string `json:"concentration,omitempty"`
}

// ComplianceResult is the regulatory classification of a prescription draft.
type ComplianceResult struct {
	RecipeType          RecipeType `json:"recipe_type"`
	Requirements        []string   `json:"requirements"`
	Warnings            []string   `json:"warnings"`
	NeedsConfirmation   bool       `json:"needs_confirmation"`
	SuggestedTemplateID string     `json:"suggested_template_id"`
	RegulatorySource    string     `json:"regulatory_source"`
}
