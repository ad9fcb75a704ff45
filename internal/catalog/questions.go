package catalog

func scale(labels [5]string, descriptions [5]string) []Option {
	out := make([]Option, 5)
	for i := range out {
		out[i] = Option{Value: i + 1, Label: labels[i], Description: descriptions[i]}
	}
	return out
}

// Questions lists the 28 survey items in catalog order, four per pillar. The
// first question of each pillar is foundational for that dimension.
var Questions = []Question{
	// Governança
	{
		ID:       "gov1",
		PillarID: "gov",
		Text:     "A organização possui uma estrutura formal de governança de projetos?",
		Context:  "Estrutura formal inclui patrocinadores definidos, alçadas de decisão e um fórum regular de direcionamento.",
		Options: scale(
			[5]string{"Inexistente", "Informal", "Definida", "Ativa", "Otimizada"},
			[5]string{
				"Não há estrutura de governança; decisões são pontuais.",
				"Decisões acontecem, mas sem papéis ou fóruns formalizados.",
				"Estrutura documentada com papéis e alçadas definidos.",
				"Estrutura em operação regular, com decisões rastreáveis.",
				"Governança revisada periodicamente e ajustada ao contexto.",
			},
		),
	},
	{
		ID:       "gov2",
		PillarID: "gov",
		Text:     "A priorização de projetos segue critérios definidos e conhecidos?",
		Context:  "Critérios podem incluir valor esperado, risco, capacidade e alinhamento estratégico.",
		Options: scale(
			[5]string{"Ad hoc", "Por influência", "Critérios definidos", "Critérios aplicados", "Critérios revisados"},
			[5]string{
				"Projetos entram no portfólio sem qualquer critério.",
				"A priorização depende de quem pede, não do que vale.",
				"Critérios documentados, aplicados de forma irregular.",
				"Critérios aplicados consistentemente nas decisões.",
				"Critérios calibrados com dados de resultados anteriores.",
			},
		),
	},
	{
		ID:       "gov3",
		PillarID: "gov",
		Text:     "Comitês executivos acompanham o portfólio com papéis e alçadas claros?",
		Context:  "Comitês eficazes têm pauta, cadência e autoridade para decidir, não apenas para tomar ciência.",
		Options: scale(
			[5]string{"Não existem", "Esporádicos", "Formalizados", "Deliberativos", "Estratégicos"},
			[5]string{
				"Não há comitês de acompanhamento.",
				"Reuniões acontecem sem cadência nem autoridade definida.",
				"Comitês com pauta e cadência formalizadas.",
				"Comitês decidem sobre recursos, escopo e continuidade.",
				"Comitês antecipam riscos e redirecionam o portfólio.",
			},
		),
	},
	{
		ID:       "gov4",
		PillarID: "gov",
		Text:     "A governança de projetos é avaliada e aprimorada continuamente?",
		Context:  "Inclui auditorias de aderência, indicadores de eficácia da governança e ciclos de melhoria.",
		Options: scale(
			[5]string{"Nunca avaliada", "Avaliação reativa", "Avaliação periódica", "Melhoria contínua", "Referência"},
			[5]string{
				"A estrutura nunca foi revisitada desde a criação.",
				"Ajustes só ocorrem após falhas relevantes.",
				"Avaliações agendadas geram ajustes pontuais.",
				"Ciclos regulares de melhoria com indicadores próprios.",
				"A governança é referência interna e externa de eficácia.",
			},
		),
	},

	// Estratégia
	{
		ID:       "strategy1",
		PillarID: "strategy",
		Text:     "Os projetos do portfólio estão explicitamente vinculados a objetivos estratégicos?",
		Context:  "Cada projeto deveria responder a qual objetivo estratégico serve e como contribui para ele.",
		Options: scale(
			[5]string{"Sem vínculo", "Vínculo implícito", "Vínculo documentado", "Vínculo gerenciado", "Vínculo otimizado"},
			[5]string{
				"Projetos nascem de demandas isoladas, sem relação com a estratégia.",
				"O vínculo existe na cabeça dos gestores, mas não está registrado.",
				"Cada projeto declara o objetivo estratégico que atende.",
				"A contribuição estratégica é acompanhada durante a execução.",
				"O portfólio é rebalanceado conforme a contribuição estratégica medida.",
			},
		),
	},
	{
		ID:       "strategy2",
		PillarID: "strategy",
		Text:     "Os objetivos estratégicos são desdobrados em iniciativas e metas de portfólio?",
		Context:  "Desdobramento conecta a estratégia de longo prazo às decisões de investimento do ano.",
		Options: scale(
			[5]string{"Não desdobrados", "Desdobramento parcial", "Desdobramento anual", "Desdobramento integrado", "Desdobramento dinâmico"},
			[5]string{
				"A estratégia não se traduz em iniciativas concretas.",
				"Algumas áreas desdobram, outras não.",
				"Ciclo anual formal de desdobramento em iniciativas.",
				"Metas de portfólio integradas ao planejamento orçamentário.",
				"Desdobramento ajustado ao longo do ano conforme o contexto.",
			},
		),
	},
	{
		ID:       "strategy3",
		PillarID: "strategy",
		Text:     "O portfólio é revisado periodicamente frente à estratégia?",
		Context:  "Revisões de portfólio decidem continuar, pausar ou encerrar iniciativas à luz da estratégia.",
		Options: scale(
			[5]string{"Nunca", "Reativa", "Periódica", "Sistemática", "Contínua"},
			[5]string{
				"Projetos iniciados nunca são reavaliados.",
				"Revisões só ocorrem em crises ou cortes de orçamento.",
				"Revisões agendadas com critérios definidos.",
				"Revisões sistemáticas com decisões de continuidade registradas.",
				"Sinais estratégicos disparam reavaliações a qualquer momento.",
			},
		),
	},
	{
		ID:       "strategy4",
		PillarID: "strategy",
		Text:     "A organização usa cenários e planejamento adaptativo para o portfólio?",
		Context:  "Cenários permitem preparar respostas a mudanças de mercado antes que elas ocorram.",
		Options: scale(
			[5]string{"Inexistente", "Pontual", "Estruturado", "Integrado", "Avançado"},
			[5]string{
				"Não há exercícios de cenário.",
				"Cenários construídos apenas em momentos de incerteza aguda.",
				"Exercícios regulares de cenário com impactos no portfólio.",
				"Planos de contingência vinculados aos cenários priorizados.",
				"Simulações quantitativas alimentam o rebalanceamento do portfólio.",
			},
		),
	},

	// Entrega
	{
		ID:       "delivery1",
		PillarID: "delivery",
		Text:     "Existe uma metodologia de gestão de projetos definida e utilizada?",
		Context:  "Metodologia cobre ciclo de vida, artefatos mínimos e papéis, seja preditiva, ágil ou híbrida.",
		Options: scale(
			[5]string{"Inexistente", "Informal", "Definida", "Adotada", "Adaptativa"},
			[5]string{
				"Cada projeto é conduzido de um jeito diferente.",
				"Boas práticas circulam, mas nada está padronizado.",
				"Metodologia documentada com artefatos mínimos.",
				"Metodologia aplicada na maioria dos projetos.",
				"Metodologia adaptada por tipo de projeto, com guias claros.",
			},
		),
	},
	{
		ID:       "delivery2",
		PillarID: "delivery",
		Text:     "Cronogramas, riscos e dependências são planejados e acompanhados?",
		Context:  "Acompanhamento regular permite agir sobre desvios antes que virem atrasos.",
		Options: scale(
			[5]string{"Não há plano", "Plano inicial", "Acompanhamento regular", "Gestão proativa", "Gestão preditiva"},
			[5]string{
				"Projetos executam sem plano ou registro de riscos.",
				"Plano criado no início e raramente atualizado.",
				"Status e riscos revisados em cadência definida.",
				"Desvios disparam ações antes de afetar prazos.",
				"Tendências e simulações antecipam problemas de entrega.",
			},
		),
	},
	{
		ID:       "delivery3",
		PillarID: "delivery",
		Text:     "Indicadores de desempenho de entrega são medidos e usados?",
		Context:  "Prazo, escopo, custo e qualidade medidos por projeto e agregados por portfólio.",
		Options: scale(
			[5]string{"Sem indicadores", "Medição isolada", "Painel definido", "Gestão por indicadores", "Melhoria orientada a dados"},
			[5]string{
				"Não há medição de desempenho de entrega.",
				"Alguns projetos medem, sem padrão comum.",
				"Conjunto padrão de indicadores por projeto e portfólio.",
				"Indicadores pautam decisões de gestão recorrentes.",
				"Metas de melhoria derivadas de séries históricas.",
			},
		),
	},
	{
		ID:       "delivery4",
		PillarID: "delivery",
		Text:     "Lições aprendidas alimentam a melhoria contínua da entrega?",
		Context:  "Captura estruturada ao fim de fases e projetos, com ações incorporadas à metodologia.",
		Options: scale(
			[5]string{"Não capturadas", "Capturadas e esquecidas", "Capturadas e revisadas", "Incorporadas", "Sistêmicas"},
			[5]string{
				"Projetos encerram sem registro de aprendizado.",
				"Lições registradas que ninguém consulta.",
				"Lições revisadas no planejamento de novos projetos.",
				"Aprendizados alteram a metodologia e os templates.",
				"Ciclo formal de melhoria com resultados mensurados.",
			},
		),
	},

	// Benefícios
	{
		ID:       "benefits1",
		PillarID: "benefits",
		Text:     "Os benefícios esperados são definidos antes da aprovação dos projetos?",
		Context:  "Benefício definido tem métrica, linha de base e meta, não apenas uma intenção.",
		Options: scale(
			[5]string{"Não definidos", "Declarados", "Quantificados", "Validados", "Contratados"},
			[5]string{
				"Projetos são aprovados sem declarar benefícios.",
				"Benefícios citados de forma genérica no business case.",
				"Benefícios com métrica, linha de base e meta.",
				"Benefícios validados com as áreas que vão realizá-los.",
				"Metas de benefício compõem o compromisso formal do patrocinador.",
			},
		),
	},
	{
		ID:       "benefits2",
		PillarID: "benefits",
		Text:     "Os benefícios são medidos após a entrega dos projetos?",
		Context:  "A medição pós-entrega é o único teste real do business case.",
		Options: scale(
			[5]string{"Nunca medidos", "Medição pontual", "Medição definida", "Medição sistemática", "Medição auditada"},
			[5]string{
				"Nenhum benefício é verificado depois da entrega.",
				"Alguns projetos medem, por iniciativa própria.",
				"Plano de medição definido para cada benefício.",
				"Medição executada e reportada em todos os projetos.",
				"Resultados auditados e comparados ao business case.",
			},
		),
	},
	{
		ID:       "benefits3",
		PillarID: "benefits",
		Text:     "Existem responsáveis formais pela realização de cada benefício?",
		Context:  "Benefícios se realizam na operação, depois do projeto; alguém precisa responder por isso.",
		Options: scale(
			[5]string{"Ninguém responde", "Projeto responde", "Dono definido", "Dono cobrado", "Dono incentivado"},
			[5]string{
				"Após a entrega, nenhuma área responde pelos benefícios.",
				"O gerente de projeto segue responsável mesmo após encerrar.",
				"Cada benefício tem um dono na operação.",
				"Donos prestam contas da realização em fóruns regulares.",
				"Metas de benefício integram os incentivos dos donos.",
			},
		),
	},
	{
		ID:       "benefits4",
		PillarID: "benefits",
		Text:     "O portfólio é otimizado com base em benefícios realizados?",
		Context:  "Benefícios realizados deveriam recalibrar estimativas e prioridades de novos investimentos.",
		Options: scale(
			[5]string{"Sem retroalimentação", "Uso informal", "Uso pontual", "Uso sistemático", "Otimização contínua"},
			[5]string{
				"Resultados passados não influenciam novas decisões.",
				"Experiências anteriores circulam informalmente.",
				"Casos relevantes ajustam estimativas de novos projetos.",
				"Base histórica de benefícios calibra todo novo business case.",
				"O mix do portfólio é otimizado pelo retorno realizado.",
			},
		),
	},

	// Financeiro
	{
		ID:       "financial1",
		PillarID: "financial",
		Text:     "Os projetos possuem orçamentos formais aprovados?",
		Context:  "Orçamento formal com decomposição de custos e reserva é pré-condição de controle.",
		Options: scale(
			[5]string{"Sem orçamento", "Estimativa informal", "Orçamento aprovado", "Orçamento detalhado", "Orçamento dinâmico"},
			[5]string{
				"Projetos executam sem orçamento definido.",
				"Valores estimados sem decomposição nem aprovação formal.",
				"Orçamento aprovado antes do início da execução.",
				"Orçamento decomposto por fase, com reservas definidas.",
				"Orçamento recalibrado por marcos com gatilhos claros.",
			},
		),
	},
	{
		ID:       "financial2",
		PillarID: "financial",
		Text:     "Os custos são acompanhados contra o planejado durante a execução?",
		Context:  "Comparação real×planejado em cadência curta evita surpresas no fechamento.",
		Options: scale(
			[5]string{"Não acompanhados", "Acompanhamento anual", "Acompanhamento mensal", "Gestão de desvios", "Gestão preditiva"},
			[5]string{
				"Custos só são conhecidos no encerramento.",
				"Fechamentos contábeis anuais revelam os desvios.",
				"Real×planejado revisado mensalmente por projeto.",
				"Desvios disparam replanejamento e decisões formais.",
				"Projeções de custo final atualizadas continuamente.",
			},
		),
	},
	{
		ID:       "financial3",
		PillarID: "financial",
		Text:     "Análises de viabilidade embasam a aprovação de projetos?",
		Context:  "ROI, VPL ou payback calculados com premissas explícitas e comparáveis.",
		Options: scale(
			[5]string{"Sem análise", "Análise informal", "Análise padrão", "Análise comparativa", "Análise recalibrada"},
			[5]string{
				"Projetos aprovados sem análise de viabilidade.",
				"Números apresentados sem método ou premissas claras.",
				"Método padrão de viabilidade aplicado a todo projeto.",
				"Projetos disputam capital com análises comparáveis.",
				"Premissas recalibradas com resultados realizados.",
			},
		),
	},
	{
		ID:       "financial4",
		PillarID: "financial",
		Text:     "A gestão financeira do portfólio é integrada e consolidada?",
		Context:  "Visão única de investimento, custo e retorno em todos os projetos do portfólio.",
		Options: scale(
			[5]string{"Fragmentada", "Consolidação manual", "Consolidação regular", "Gestão integrada", "Otimização de capital"},
			[5]string{
				"Cada área controla seus números isoladamente.",
				"Planilhas consolidadas manualmente sob demanda.",
				"Consolidação periódica do portfólio inteiro.",
				"Visão financeira integrada às decisões de portfólio.",
				"Alocação de capital otimizada pelo retorno do portfólio.",
			},
		),
	},

	// Pessoas
	{
		ID:       "people1",
		PillarID: "people",
		Text:     "Papéis e responsabilidades de projeto estão definidos e são conhecidos?",
		Context:  "Patrocinador, gerente, equipe e áreas de apoio sabem o que cabe a cada um.",
		Options: scale(
			[5]string{"Indefinidos", "Implícitos", "Documentados", "Praticados", "Evoluídos"},
			[5]string{
				"Ninguém sabe ao certo quem responde pelo quê.",
				"Os papéis existem na prática, sem registro formal.",
				"Matriz de papéis e responsabilidades documentada.",
				"Papéis exercidos conforme definidos, com cobrança.",
				"Papéis revisados conforme a organização evolui.",
			},
		),
	},
	{
		ID:       "people2",
		PillarID: "people",
		Text:     "A organização capacita suas equipes em gestão de projetos?",
		Context:  "Trilhas de capacitação por papel, do patrocinador ao membro de equipe.",
		Options: scale(
			[5]string{"Sem capacitação", "Iniciativa individual", "Treinamentos pontuais", "Trilhas definidas", "Desenvolvimento contínuo"},
			[5]string{
				"Não há qualquer investimento em capacitação.",
				"Quem quer aprender busca por conta própria.",
				"Treinamentos oferecidos sem plano estruturado.",
				"Trilhas de capacitação por papel, com metas.",
				"Desenvolvimento contínuo medido por proficiência.",
			},
		),
	},
	{
		ID:       "people3",
		PillarID: "people",
		Text:     "A alocação e a capacidade das equipes são gerenciadas?",
		Context:  "Visão de quem está em quê, com limites de capacidade respeitados na priorização.",
		Options: scale(
			[5]string{"Invisível", "Percepção informal", "Mapa de alocação", "Gestão de capacidade", "Otimização de alocação"},
			[5]string{
				"Ninguém sabe a carga real das equipes.",
				"Sobrecarga é percebida apenas quando algo falha.",
				"Alocação mapeada e atualizada regularmente.",
				"Capacidade limita a entrada de novos projetos.",
				"Alocação otimizada por competência e demanda.",
			},
		),
	},
	{
		ID:       "people4",
		PillarID: "people",
		Text:     "Existe uma cultura colaborativa orientada a resultados de projeto?",
		Context:  "Colaboração entre áreas, segurança para reportar problemas e foco em resultado comum.",
		Options: scale(
			[5]string{"Silos", "Cooperação pontual", "Colaboração estruturada", "Cultura estabelecida", "Cultura de alta performance"},
			[5]string{
				"Áreas trabalham isoladas e problemas são escondidos.",
				"Colaboração acontece por relações pessoais.",
				"Rituais e fóruns formais de colaboração entre áreas.",
				"Problemas são expostos cedo e tratados em conjunto.",
				"Times multidisciplinares entregam com autonomia e confiança.",
			},
		),
	},

	// Tecnologia
	{
		ID:       "tech1",
		PillarID: "tech",
		Text:     "Uma ferramenta de gestão de projetos está implantada e em uso?",
		Context:  "Ferramenta única ou integrada cobrindo cronograma, riscos, custos e colaboração.",
		Options: scale(
			[5]string{"Sem ferramenta", "Planilhas dispersas", "Ferramenta implantada", "Uso consolidado", "Plataforma integrada"},
			[5]string{
				"Gestão feita por e-mail e documentos avulsos.",
				"Cada equipe mantém suas próprias planilhas.",
				"Ferramenta oficial implantada para os projetos.",
				"Ferramenta usada por todos como fonte primária.",
				"Plataforma integrada aos sistemas corporativos.",
			},
		),
	},
	{
		ID:       "tech2",
		PillarID: "tech",
		Text:     "Os dados de projetos são centralizados e confiáveis?",
		Context:  "Fonte única de verdade para status, custos e riscos, com qualidade de dados gerida.",
		Options: scale(
			[5]string{"Dispersos", "Parcialmente centralizados", "Centralizados", "Qualidade gerida", "Dados como ativo"},
			[5]string{
				"Dados espalhados e frequentemente contraditórios.",
				"Parte dos dados em repositório comum, parte não.",
				"Repositório único para os dados de projeto.",
				"Qualidade de dados monitorada com regras e donos.",
				"Dados históricos tratados como ativo de decisão.",
			},
		),
	},
	{
		ID:       "tech3",
		PillarID: "tech",
		Text:     "Relatórios e painéis de acompanhamento são automatizados?",
		Context:  "Status reportado a partir dos dados da ferramenta, sem montagem manual.",
		Options: scale(
			[5]string{"Manuais", "Semiautomatizados", "Painéis automatizados", "Autosserviço", "Analytics avançado"},
			[5]string{
				"Relatórios montados manualmente a cada ciclo.",
				"Partes extraídas da ferramenta, consolidação manual.",
				"Painéis atualizados automaticamente a partir da fonte.",
				"Gestores consultam painéis sob demanda, sem intermediários.",
				"Análises e alertas derivados automaticamente dos dados.",
			},
		),
	},
	{
		ID:       "tech4",
		PillarID: "tech",
		Text:     "Automação e integrações avançadas apoiam a gestão do portfólio?",
		Context:  "Integrações entre sistemas, automação de fluxos e uso de modelos preditivos.",
		Options: scale(
			[5]string{"Inexistente", "Integrações pontuais", "Fluxos automatizados", "Integração ampla", "Inteligência aplicada"},
			[5]string{
				"Nenhuma automação além da ferramenta básica.",
				"Algumas integrações construídas caso a caso.",
				"Fluxos de aprovação e coleta de dados automatizados.",
				"Sistemas de projeto integrados ao ERP e ao financeiro.",
				"Modelos preditivos e automação inteligente em uso.",
			},
		),
	},
}
