package note

import "regexp"

// SectionRule binds a section id to its ordered pattern list. An utterance
// belongs to the section when any pattern matches its raw text. Rules are
// data, not control flow, so clinics can extend the vocabulary without
// touching the classifier (see vocabulary.go).
type SectionRule struct {
	SectionID string
	Patterns  []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile("(?i)"+e))
	}
	return out
}

// defaultRules is the built-in pt-BR vocabulary, one tagged rule per
// content-bearing section. Structural sections (identification, attachments)
// carry no rules.
func defaultRules() []SectionRule {
	return []SectionRule{
		{SectionID: SectionChiefComplaint, Patterns: compileAll(
			`\bdor\b`,
			`queixa`,
			`incomod`,
			`\bsent(indo|ir|e)\b`,
			`febre`,
			`tosse`,
			`cansa[çc]o`,
			`mal[- ]estar`,
			`tontura`,
		)},
		{SectionID: SectionHPI, Patterns: compileAll(
			`h[áa]\s+\d+\s+(dia|semana|m[êe]s|meses)`,
			`come[çc]ou`,
			`\bdesde\b`,
			`piora`,
			`melhora`,
			`progressiv`,
			`evolu[çi]`,
		)},
		{SectionID: SectionMedicationsInUse, Patterns: compileAll(
			`\d+\s*(mg|mcg|ml|g)\b`,
			`\btom(o|a|ando)\b`,
			`\bus(o|ando)\b`,
			`medicamento`,
			`rem[ée]dio`,
			`comprimido`,
			`c[áa]psula`,
			`gotas`,
		)},
		{SectionID: SectionAllergies, Patterns: compileAll(
			`alergia`,
			`al[ée]rgic`,
			`rea[çc][ãa]o\s+(a|ao|à)`,
		)},
		{SectionID: SectionPhysicalExam, Patterns: compileAll(
			`exame\s+f[íi]sico`,
			`ausculta`,
			`press[ãa]o`,
			`frequ[êe]ncia\s+card[íi]aca`,
			`satura[çc][ãa]o`,
			`temperatura`,
			`abdome`,
			`palpa[çc][ãa]o`,
		)},
		{SectionID: SectionAssessment, Patterns: compileAll(
			`avalia[çc][ãa]o`,
			`quadro\s+(cl[íi]nico|sugestivo)`,
			`suspeita`,
			`prov[áa]vel`,
			`compat[íi]vel\s+com`,
			`impress[ãa]o`,
		)},
		{SectionID: SectionPlan, Patterns: compileAll(
			`vamos\s+(iniciar|fazer|tratar|come[çc]ar)`,
			`prescrev`,
			`receit`,
			`retorno\s+em`,
			`encaminh`,
			`tratamento`,
			`conduta`,
		)},
		{SectionID: SectionOrders, Patterns: compileAll(
			`solicit`,
			`\bpe[çc]o\b`,
			`hemograma`,
			`raio[- ]?x`,
			`ultrassom`,
			`tomografia`,
			`eletrocardiograma`,
			`exame\s+de\s+(sangue|urina|imagem)`,
		)},
		{SectionID: SectionPatientInstructions, Patterns: compileAll(
			`repouso`,
			`evit(e|ar)`,
			`\bbeb(a|er)\b`,
			`hidrat`,
			`retorne`,
			`procure\s+(o|a|um|uma)`,
			`tomar\s+.*a\s+cada`,
			`orienta[çc]`,
		)},
		{SectionID: SectionDiagnosisCode, Patterns: compileAll(
			`diagn[óo]stico`,
			`\bcid\b`,
			`hip[óo]tese`,
		)},
	}
}

// Classifier assigns transcript utterances to note sections. It holds only
// compiled patterns and is safe for concurrent use once built.
type Classifier struct {
	rules []SectionRule
}

func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules()}
}

func NewClassifierWithRules(rules []SectionRule) *Classifier {
	return &Classifier{rules: rules}
}

func (c *Classifier) ruleFor(sectionID string) *SectionRule {
	for i := range c.rules {
		if c.rules[i].SectionID == sectionID {
			return &c.rules[i]
		}
	}
	return nil
}

// Classify returns, per section of the schema, the subset of utterances
// relevant to it. Classification is multi-label: one utterance may land in
// several sections, or in none. The mapping is total: every schema section
// id is present, with an empty (never nil) slice when nothing matched.
func (c *Classifier) Classify(utterances []Utterance, schema []SectionTemplate) map[string][]Utterance {
	result := make(map[string][]Utterance, len(schema))

	for _, tmpl := range schema {
		matched := []Utterance{}
		if rule := c.ruleFor(tmpl.ID); rule != nil {
			for _, u := range utterances {
				for _, p := range rule.Patterns {
					if p.MatchString(u.Text) {
						matched = append(matched, u)
						break
					}
				}
			}
		}
		result[tmpl.ID] = matched
	}

	return result
}
