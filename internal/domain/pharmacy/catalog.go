package pharmacy

// defaultCatalog is the built-in medication reference table. Order is
// significant: the partial-match pass in FindMedication returns the first
// catalog hit, so more common medications come first.
var defaultCatalog = []MedicationKnowledge{
	{
		Name:     "Dipirona",
		Aliases:  []string{"Metamizol", "Novalgina"},
		Category: CategorySimple,
		DosePatterns: []DosePattern{
			{Concentration: "500mg", Dosage: "1 comprimido a cada 6 horas se dor ou febre", Quantity: "20 comprimidos"},
			{Concentration: "1g", Dosage: "1 comprimido a cada 8 horas se dor ou febre", Quantity: "10 comprimidos"},
			{Concentration: "500mg/ml", Dosage: "20 a 40 gotas a cada 6 horas se dor ou febre", Quantity: "1 frasco"},
		},
		CommonForms: []string{"comprimido", "gotas", "solução oral"},
		Cautions:    []string{"Contraindicada em histórico de alergia a pirazolonas"},
		Variants: []Variant{
			{Label: "Gotas", Description: "Solução oral 500mg/ml", Dosage: "20 a 40 gotas a cada 6 horas", Concentration: "500mg/ml"},
		},
	},
	{
		Name:     "Paracetamol",
		Aliases:  []string{"Acetaminofeno", "Tylenol"},
		Category: CategorySimple,
		DosePatterns: []DosePattern{
			{Concentration: "750mg", Dosage: "1 comprimido a cada 6 horas se dor ou febre", Quantity: "20 comprimidos"},
			{Concentration: "500mg", Dosage: "1 a 2 comprimidos a cada 6 horas", Quantity: "24 comprimidos"},
		},
		CommonForms: []string{"comprimido", "gotas"},
		Cautions:    []string{"Dose máxima diária de 4g; cautela em hepatopatas"},
	},
	{
		Name:     "Ibuprofeno",
		Aliases:  []string{"Alivium", "Advil"},
		Category: CategorySimple,
		DosePatterns: []DosePattern{
			{Concentration: "600mg", Dosage: "1 comprimido a cada 8 horas após as refeições", Duration: "5 dias", Quantity: "15 comprimidos"},
			{Concentration: "400mg", Dosage: "1 comprimido a cada 8 horas após as refeições", Duration: "5 dias", Quantity: "15 comprimidos"},
		},
		CommonForms: []string{"comprimido", "cápsula"},
		Cautions:    []string{"Evitar em úlcera péptica ativa e insuficiência renal"},
	},
	{
		Name:     "Omeprazol",
		Aliases:  []string{"Losec", "Peprazol"},
		Category: CategorySimple,
		DosePatterns: []DosePattern{
			{Concentration: "20mg", Dosage: "1 cápsula em jejum pela manhã", Duration: "30 dias", Quantity: "30 cápsulas"},
			{Concentration: "40mg", Dosage: "1 cápsula em jejum pela manhã", Duration: "30 dias", Quantity: "30 cápsulas"},
		},
		CommonForms: []string{"cápsula"},
	},
	{
		Name:     "Losartana",
		Aliases:  []string{"Losartana potássica", "Cozaar"},
		Category: CategorySimple,
		DosePatterns: []DosePattern{
			{Concentration: "50mg", Dosage: "1 comprimido ao dia, uso contínuo", Quantity: "30 comprimidos"},
			{Concentration: "100mg", Dosage: "1 comprimido ao dia, uso contínuo", Quantity: "30 comprimidos"},
		},
		CommonForms: []string{"comprimido"},
		Cautions:    []string{"Monitorar potássio sérico em uso prolongado"},
	},
	{
		Name:     "Loratadina",
		Aliases:  []string{"Claritin"},
		Category: CategorySimple,
		DosePatterns: []DosePattern{
			{Concentration: "10mg", Dosage: "1 comprimido ao dia", Duration: "7 dias", Quantity: "7 comprimidos"},
		},
		CommonForms: []string{"comprimido", "xarope"},
	},
	{
		Name:     "Amoxicilina",
		Aliases:  []string{"Amoxil"},
		Category: CategoryAntimicrobial,
		DosePatterns: []DosePattern{
			{Concentration: "500mg", Dosage: "1 cápsula a cada 8 horas", Duration: "7 dias", Quantity: "21 cápsulas"},
			{Concentration: "875mg", Dosage: "1 comprimido a cada 12 horas", Duration: "7 dias", Quantity: "14 comprimidos"},
		},
		CommonForms: []string{"cápsula", "comprimido", "suspensão oral"},
		Cautions:    []string{"Verificar histórico de alergia a penicilinas"},
		Variants: []Variant{
			{Label: "Com clavulanato", Description: "Amoxicilina + clavulanato de potássio 875mg+125mg", Dosage: "1 comprimido a cada 12 horas", Concentration: "875mg+125mg", Duration: "7 dias"},
			{Label: "Suspensão", Description: "Suspensão oral 250mg/5ml para uso pediátrico", Dosage: "conforme peso, a cada 8 horas", Concentration: "250mg/5ml", Duration: "7 dias"},
		},
	},
	{
		Name:     "Azitromicina",
		Aliases:  []string{"Zitromax"},
		Category: CategoryAntimicrobial,
		DosePatterns: []DosePattern{
			{Concentration: "500mg", Dosage: "1 comprimido ao dia", Duration: "5 dias", Quantity: "5 comprimidos"},
		},
		CommonForms: []string{"comprimido", "suspensão oral"},
		Cautions:    []string{"Cautela em pacientes com prolongamento do intervalo QT"},
	},
	{
		Name:     "Cefalexina",
		Aliases:  []string{"Keflex"},
		Category: CategoryAntimicrobial,
		DosePatterns: []DosePattern{
			{Concentration: "500mg", Dosage: "1 cápsula a cada 6 horas", Duration: "7 dias", Quantity: "28 cápsulas"},
		},
		CommonForms: []string{"cápsula", "suspensão oral"},
		Cautions:    []string{"Possível reação cruzada em alérgicos a penicilinas"},
	},
	{
		Name:     "Ciprofloxacino",
		Aliases:  []string{"Cipro"},
		Category: CategoryAntimicrobial,
		DosePatterns: []DosePattern{
			{Concentration: "500mg", Dosage: "1 comprimido a cada 12 horas", Duration: "7 dias", Quantity: "14 comprimidos"},
		},
		CommonForms: []string{"comprimido"},
		Cautions:    []string{"Evitar em menores de 18 anos; risco de tendinopatia"},
	},
	{
		Name:     "Clonazepam",
		Aliases:  []string{"Rivotril"},
		Category: CategoryControlled,
		DosePatterns: []DosePattern{
			{Concentration: "2mg", Dosage: "1 comprimido à noite", Duration: "30 dias", Quantity: "30 comprimidos"},
			{Concentration: "0,5mg", Dosage: "1 comprimido à noite", Duration: "30 dias", Quantity: "30 comprimidos"},
			{Concentration: "2,5mg/ml", Dosage: "5 a 10 gotas à noite", Duration: "30 dias", Quantity: "1 frasco"},
		},
		CommonForms: []string{"comprimido", "gotas"},
		Cautions:    []string{"Risco de dependência; retirada deve ser gradual"},
	},
	{
		Name:     "Zolpidem",
		Aliases:  []string{"Stilnox"},
		Category: CategoryControlled,
		DosePatterns: []DosePattern{
			{Concentration: "10mg", Dosage: "1 comprimido ao deitar", Duration: "30 dias", Quantity: "30 comprimidos"},
		},
		CommonForms: []string{"comprimido"},
		Cautions:    []string{"Usar imediatamente antes de deitar; risco de sonambulismo"},
	},
	{
		Name:     "Codeína",
		Aliases:  []string{"Codein", "Paracetamol + codeína", "Tylex"},
		Category: CategoryControlled,
		DosePatterns: []DosePattern{
			{Concentration: "30mg", Dosage: "1 comprimido a cada 6 horas se dor intensa", Duration: "10 dias", Quantity: "20 comprimidos"},
		},
		CommonForms: []string{"comprimido"},
		Cautions:    []string{"Depressor respiratório; evitar associação com outros sedativos"},
	},
	{
		Name:     "Tramadol",
		Aliases:  []string{"Tramal"},
		Category: CategoryControlled,
		DosePatterns: []DosePattern{
			{Concentration: "50mg", Dosage: "1 cápsula a cada 8 horas se dor intensa", Duration: "10 dias", Quantity: "30 cápsulas"},
			{Concentration: "100mg", Dosage: "1 comprimido a cada 12 horas se dor intensa", Duration: "10 dias", Quantity: "20 comprimidos"},
		},
		CommonForms: []string{"cápsula", "comprimido retard"},
		Cautions:    []string{"Reduz limiar convulsivo; cautela em epilépticos"},
	},
	{
		Name:     "Prednisona",
		Aliases:  []string{"Meticorten"},
		Category: CategorySimple,
		DosePatterns: []DosePattern{
			{Concentration: "20mg", Dosage: "1 comprimido pela manhã", Duration: "5 dias", Quantity: "5 comprimidos"},
			{Concentration: "5mg", Dosage: "1 comprimido pela manhã", Duration: "5 dias", Quantity: "5 comprimidos"},
		},
		CommonForms: []string{"comprimido"},
		Cautions:    []string{"Não suspender abruptamente em cursos prolongados"},
	},
}

// recipeRule is the fixed per-category compliance configuration.
type recipeRule struct {
	Requirements        []string
	RegulatorySource    string
	SuggestedTemplateID string
}

var recipeRules = map[RecipeType]recipeRule{
	RecipeSimple: {
		Requirements: []string{
			"Identificação completa do paciente",
			"Identificação do prescritor com CRM e assinatura",
			"Data de emissão",
		},
		RegulatorySource:    "Lei 5.991/1973",
		SuggestedTemplateID: "receita-simples",
	},
	RecipeAntimicrobial: {
		Requirements: []string{
			"Receita em 2 vias (1ª via retida na farmácia)",
			"Identificação completa do paciente",
			"Identificação do prescritor com CRM e assinatura",
			"Validade de 10 dias a partir da emissão",
		},
		RegulatorySource:    "RDC 471/2021 (ANVISA)",
		SuggestedTemplateID: "receita-antimicrobiano",
	},
	RecipeControlledSpecial: {
		Requirements: []string{
			"Notificação de Receita ou Receituário de Controle Especial em 2 vias",
			"Identificação completa do paciente com endereço",
			"Identificação do prescritor com CRM, endereço e assinatura",
			"Quantidade limitada a 60 dias de tratamento",
			"1ª via retida no estabelecimento dispensador",
		},
		RegulatorySource:    "Portaria SVS/MS 344/1998",
		SuggestedTemplateID: "receita-controle-especial",
	},
}
