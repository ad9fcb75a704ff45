package catalog

// Levels lists the nine OSRL maturity descriptors in ascending order. The
// scale mirrors TRL: level 1 is conceptual awareness, level 9 is an
// organization that transforms through its portfolio.
var Levels = []LevelDescriptor{
	{
		Level:       1,
		Name:        "Conceito Inicial",
		Description: "A organização reconhece projetos como unidades de trabalho, mas não há práticas estabelecidas de gestão.",
		Characteristics: []string{
			"Projetos conduzidos de forma totalmente informal",
			"Resultados dependem do esforço heroico de indivíduos",
			"Nenhuma visibilidade consolidada do que está em andamento",
		},
		Recommendations: []string{
			"Inventariar os projetos em andamento e seus responsáveis",
			"Definir um patrocinador para a evolução da maturidade",
			"Estabelecer um vocabulário mínimo comum de gestão de projetos",
		},
	},
	{
		Level:       2,
		Name:        "Práticas Emergentes",
		Description: "Práticas isoladas de gestão surgem em algumas áreas, sem padronização nem apoio institucional.",
		Characteristics: []string{
			"Ilhas de boa prática convivendo com improviso",
			"Artefatos de projeto criados por iniciativa individual",
			"Aprendizado não circula entre as equipes",
		},
		Recommendations: []string{
			"Mapear e divulgar as práticas que já funcionam",
			"Padronizar os artefatos mínimos de abertura e status",
			"Criar um fórum regular entre os condutores de projeto",
		},
	},
	{
		Level:       3,
		Name:        "Processos Definidos",
		Description: "Uma metodologia básica está documentada e os principais papéis estão definidos, com adoção ainda irregular.",
		Characteristics: []string{
			"Metodologia documentada com ciclo de vida e artefatos",
			"Papéis de patrocinador e gerente de projeto formalizados",
			"Adoção varia muito entre áreas e projetos",
		},
		Recommendations: []string{
			"Tornar a metodologia obrigatória para projetos relevantes",
			"Capacitar os gerentes de projeto na metodologia definida",
			"Implantar um acompanhamento regular de portfólio",
		},
	},
	{
		Level:       4,
		Name:        "Processos Gerenciados",
		Description: "Os processos definidos são praticados na maioria dos projetos e a organização acompanha execução e desvios.",
		Characteristics: []string{
			"Status, riscos e custos acompanhados em cadência definida",
			"Governança ativa com decisões registradas",
			"Desvios tratados de forma reativa porém consistente",
		},
		Recommendations: []string{
			"Definir indicadores padrão de desempenho de entrega",
			"Formalizar a definição e medição de benefícios",
			"Integrar o acompanhamento financeiro ao de cronograma",
		},
	},
	{
		Level:       5,
		Name:        "Integração Organizacional",
		Description: "Gestão de projetos, portfólio e estratégia operam de forma integrada entre as áreas.",
		Characteristics: []string{
			"Portfólio alinhado e revisado frente à estratégia",
			"Capacidade das equipes considerada na priorização",
			"Dados de projeto centralizados em fonte única",
		},
		Recommendations: []string{
			"Automatizar painéis de acompanhamento do portfólio",
			"Estabelecer donos formais para a realização de benefícios",
			"Consolidar a visão financeira de todo o portfólio",
		},
	},
	{
		Level:       6,
		Name:        "Gestão Quantitativa",
		Description: "Decisões de portfólio e de projeto são sustentadas por indicadores e séries históricas confiáveis.",
		Characteristics: []string{
			"Metas quantitativas de desempenho por tipo de projeto",
			"Estimativas calibradas com dados realizados",
			"Benefícios medidos e auditados sistematicamente",
		},
		Recommendations: []string{
			"Construir baselines históricas de prazo, custo e benefício",
			"Usar análises comparativas na disputa por capital",
			"Instrumentar a qualidade dos dados de projeto",
		},
	},
	{
		Level:       7,
		Name:        "Otimização Contínua",
		Description: "A organização melhora seus processos de forma contínua a partir de dados e lições incorporadas.",
		Characteristics: []string{
			"Ciclos formais de melhoria com resultados mensurados",
			"Lições aprendidas alteram metodologia e templates",
			"Governança revisada periodicamente quanto à eficácia",
		},
		Recommendations: []string{
			"Automatizar fluxos de aprovação e coleta de dados",
			"Expandir o planejamento por cenários para o portfólio",
			"Vincular incentivos à realização de benefícios",
		},
	},
	{
		Level:       8,
		Name:        "Excelência Operacional",
		Description: "Previsibilidade alta de entrega e realização de benefícios; a gestão de projetos é vantagem competitiva.",
		Characteristics: []string{
			"Entrega previsível mesmo em portfólios complexos",
			"Alocação de capital otimizada pelo retorno realizado",
			"Cultura colaborativa madura entre todas as áreas",
		},
		Recommendations: []string{
			"Aplicar modelos preditivos aos riscos de entrega",
			"Otimizar o mix do portfólio por retorno realizado",
			"Compartilhar práticas como referência de mercado",
		},
	},
	{
		Level:       9,
		Name:        "Transformação e Inovação",
		Description: "O portfólio é o motor de transformação da organização, com adaptação contínua e inteligência aplicada.",
		Characteristics: []string{
			"Rebalanceamento dinâmico guiado por simulações",
			"Automação inteligente integrada à gestão do portfólio",
			"Capacidade de absorver mudanças estratégicas rapidamente",
		},
		Recommendations: []string{
			"Sustentar o nível com auditorias independentes",
			"Explorar novas fronteiras de automação e análise",
			"Exportar o modelo para parceiros e cadeia de valor",
		},
	},
}
