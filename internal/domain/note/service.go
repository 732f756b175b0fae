package note

// Service ties the classifier and synthesizer together behind a single
// compose operation. It holds no mutable state; both collaborators are
// immutable after construction.
type Service struct {
	classifier  *Classifier
	synthesizer *Synthesizer
	schema      []SectionTemplate
}

func NewService(classifier *Classifier, schema []SectionTemplate) *Service {
	return &Service{
		classifier:  classifier,
		synthesizer: NewSynthesizer(schema),
		schema:      schema,
	}
}

// Schema returns the section catalog the service composes against.
func (s *Service) Schema() []SectionTemplate {
	return s.schema
}

// Classify exposes the raw classification map, mainly for vocabulary tuning.
func (s *Service) Classify(utterances []Utterance) map[string][]Utterance {
	return s.classifier.Classify(utterances, s.schema)
}

// ComposeNote runs the full pipeline: classify the transcript, then
// synthesize one section per schema entry.
func (s *Service) ComposeNote(utterances []Utterance, ctx NoteContext) []NoteSection {
	classified := s.classifier.Classify(utterances, s.schema)
	return s.synthesizer.Synthesize(classified, utterances, ctx)
}
