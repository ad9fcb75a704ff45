package catalog

// Pillars lists the seven maturity dimensions in display order. The order is
// part of the contract: analytics emit per-pillar results in this order.
var Pillars = []Pillar{
	{
		ID:          "gov",
		Name:        "Governança",
		Description: "Estruturas de decisão, papéis, alçadas e comitês que dirigem o portfólio de projetos.",
		Importance:  "Sem governança formal, priorização e prestação de contas dependem de pessoas, não de processos.",
	},
	{
		ID:          "strategy",
		Name:        "Estratégia",
		Description: "Alinhamento entre o portfólio de projetos e os objetivos estratégicos da organização.",
		Importance:  "Projetos desconectados da estratégia consomem recursos sem gerar direção.",
	},
	{
		ID:          "delivery",
		Name:        "Entrega",
		Description: "Capacidade de planejar, executar e concluir projetos com previsibilidade.",
		Importance:  "A entrega é onde a maturidade se converte em resultados visíveis.",
	},
	{
		ID:          "benefits",
		Name:        "Benefícios",
		Description: "Definição, medição e realização dos benefícios prometidos pelos projetos.",
		Importance:  "Projetos entregues sem benefícios realizados são custo, não investimento.",
	},
	{
		ID:          "financial",
		Name:        "Financeiro",
		Description: "Orçamentação, acompanhamento de custos e análise de viabilidade dos projetos.",
		Importance:  "Controle financeiro fraco torna qualquer portfólio insustentável.",
	},
	{
		ID:          "people",
		Name:        "Pessoas",
		Description: "Papéis, competências, alocação e cultura das equipes de projeto.",
		Importance:  "Processos maduros não compensam equipes sem preparo ou sobrecarregadas.",
	},
	{
		ID:          "tech",
		Name:        "Tecnologia",
		Description: "Ferramentas, dados e automação que sustentam a gestão de projetos.",
		Importance:  "Sem dados confiáveis e ferramentas adequadas, a gestão opera no escuro.",
	},
}
