package pharmacy

import "fmt"

// Service exposes the knowledge base and compliance classification to the
// transport layer. It is stateless apart from the immutable catalog.
type Service struct {
	kb *KnowledgeBase
}

func NewService(kb *KnowledgeBase) *Service {
	return &Service{kb: kb}
}

// SearchMedication resolves a query string to a catalog entry.
func (s *Service) SearchMedication(query string) (*MedicationKnowledge, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	return s.kb.FindMedication(query), nil
}

// DosePatternFor resolves the dose pattern of a medication by name and
// optional concentration. The second return value reports whether the
// medication itself was found.
func (s *Service) DosePatternFor(name, concentration string) (*DosePattern, bool) {
	med := s.kb.FindMedication(name)
	if med == nil {
		return nil, false
	}
	return s.kb.FindDosePattern(med, concentration), true
}

// ClassifyPrescription derives the regulatory classification for a
// prescription draft.
func (s *Service) ClassifyPrescription(items []PrescriptionItem) ComplianceResult {
	return s.kb.ClassifyPrescription(items)
}
