package roadmap

import (
	"fmt"

	"osrl-backend/internal/analytics"
	"osrl-backend/internal/analyzer"
	"osrl-backend/internal/catalog"
)

// Hand-authored plans for the questions whose remediation is well understood.
// Everything else gets the generic three-step template.
var authoredTemplates = map[string]ContextualRecommendation{
	"gov1": {
		Title:       "Estruturar a governança de projetos",
		Description: "Criar a estrutura formal de decisão sobre o portfólio, com patrocinadores, alçadas e um fórum regular de direcionamento.",
		Steps: []ImplementationStep{
			{
				Order:        1,
				Description:  "Mapear os projetos ativos e seus decisores de fato",
				Duration:     "2 semanas",
				Responsible:  "PMO / Diretoria",
				Deliverables: []string{"Inventário de projetos ativos", "Mapa de decisores atuais"},
				Checkpoints:  []string{"Inventário validado pela diretoria"},
			},
			{
				Order:        2,
				Description:  "Definir patrocinadores e alçadas de decisão por projeto",
				Duration:     "3 semanas",
				Responsible:  "Diretoria",
				Deliverables: []string{"Matriz de alçadas aprovada", "Termo de patrocínio por projeto"},
				Checkpoints:  []string{"Todos os projetos ativos com patrocinador nomeado"},
			},
			{
				Order:        3,
				Description:  "Instituir o fórum mensal de direcionamento do portfólio",
				Duration:     "4 semanas",
				Responsible:  "PMO",
				Deliverables: []string{"Regimento do fórum", "Pauta e ata padrão"},
				Checkpoints:  []string{"Primeira reunião realizada com quórum completo"},
			},
			{
				Order:        4,
				Description:  "Registrar e comunicar as decisões do fórum",
				Duration:     "2 semanas",
				Responsible:  "PMO",
				Deliverables: []string{"Registro público de decisões"},
				Checkpoints:  []string{"Decisões do primeiro ciclo publicadas"},
			},
		},
		SuccessMetrics: []string{
			"100% dos projetos ativos com patrocinador formal",
			"Fórum de direcionamento realizado todos os meses",
			"Decisões de portfólio registradas e rastreáveis",
		},
		Templates: []string{"Matriz de alçadas", "Regimento de comitê", "Ata de decisão"},
		Impacts: ExpectedImpacts{
			ShortTerm:  []string{"Decisões de projeto deixam de depender de acesso informal"},
			MediumTerm: []string{"Conflitos de prioridade resolvidos em fórum único"},
			LongTerm:   []string{"Portfólio dirigido por critérios explícitos"},
		},
	},
	"delivery1": {
		Title:       "Implantar uma metodologia de gestão de projetos",
		Description: "Estabelecer o método mínimo comum de planejamento e acompanhamento, aplicado a todos os projetos do portfólio.",
		Steps: []ImplementationStep{
			{
				Order:        1,
				Description:  "Selecionar o método mínimo adequado ao porte dos projetos",
				Duration:     "2 semanas",
				Responsible:  "PMO",
				Deliverables: []string{"Método documentado", "Artefatos obrigatórios definidos"},
				Checkpoints:  []string{"Método aprovado pela liderança"},
			},
			{
				Order:        2,
				Description:  "Treinar os gerentes de projeto no método",
				Duration:     "3 semanas",
				Responsible:  "PMO / RH",
				Deliverables: []string{"Turma de capacitação concluída", "Material de referência"},
				Checkpoints:  []string{"Todos os gerentes ativos treinados"},
			},
			{
				Order:        3,
				Description:  "Aplicar o método aos projetos em andamento",
				Duration:     "6 semanas",
				Responsible:  "Gerentes de projeto",
				Deliverables: []string{"Planos e cronogramas no padrão novo"},
				Checkpoints:  []string{"Projetos ativos com plano no padrão", "Primeira rodada de status no método"},
			},
		},
		SuccessMetrics: []string{
			"100% dos projetos com plano no método padrão",
			"Status semanal disponível para todo o portfólio",
			"Desvios de cronograma detectados antes do impacto",
		},
		Templates: []string{"Plano de projeto padrão", "Relatório de status", "Registro de riscos"},
		Impacts: ExpectedImpacts{
			ShortTerm:  []string{"Visibilidade comparável do andamento de todos os projetos"},
			MediumTerm: []string{"Queda nos atrasos descobertos tardiamente"},
			LongTerm:   []string{"Base de dados histórica para estimativas confiáveis"},
		},
	},
	"benefits1": {
		Title:       "Quantificar benefícios na aprovação de projetos",
		Description: "Tornar o benefício esperado, com número e responsável, pré-condição para aprovar qualquer projeto.",
		Steps: []ImplementationStep{
			{
				Order:        1,
				Description:  "Definir o padrão de business case com benefício quantificado",
				Duration:     "2 semanas",
				Responsible:  "PMO / Financeiro",
				Deliverables: []string{"Modelo de business case", "Catálogo de tipos de benefício"},
				Checkpoints:  []string{"Modelo aprovado pelo comitê"},
			},
			{
				Order:        2,
				Description:  "Levantar a linha de base dos benefícios dos projetos ativos",
				Duration:     "4 semanas",
				Responsible:  "Donos de benefício",
				Deliverables: []string{"Linha de base por projeto"},
				Checkpoints:  []string{"Projetos ativos com benefício declarado e medível"},
			},
			{
				Order:        3,
				Description:  "Condicionar novas aprovações ao benefício quantificado",
				Duration:     "2 semanas",
				Responsible:  "Comitê de portfólio",
				Deliverables: []string{"Critério de entrada atualizado"},
				Checkpoints:  []string{"Primeira aprovação sob o critério novo"},
			},
		},
		SuccessMetrics: []string{
			"100% das novas aprovações com benefício quantificado",
			"Donos de benefício nomeados para os projetos ativos",
			"Linha de base registrada antes do início da execução",
		},
		Templates: []string{"Modelo de business case", "Ficha de benefício"},
		Impacts: ExpectedImpacts{
			ShortTerm:  []string{"Fim das aprovações baseadas apenas em narrativa"},
			MediumTerm: []string{"Comparabilidade entre propostas concorrentes"},
			LongTerm:   []string{"Portfólio priorizado por retorno demonstrado"},
		},
	},
}

// BuildRecommendations synthesizes one recommendation per critical or warning
// insight, one per detected pattern and one per quick win. Order follows the
// inputs.
func BuildRecommendations(insights []analyzer.QuestionInsight, patterns []analyzer.ResponsePattern, path analyzer.CriticalPathView) []ContextualRecommendation {
	out := make([]ContextualRecommendation, 0, len(insights))

	for _, in := range insights {
		if in.Status != analyzer.StatusCritical && in.Status != analyzer.StatusWarning {
			continue
		}
		out = append(out, recommendationForInsight(in))
	}
	for i, pat := range patterns {
		out = append(out, recommendationForPattern(pat, i+1))
	}
	for _, win := range path.QuickWins {
		out = append(out, recommendationForQuickWin(win))
	}
	return out
}

func recommendationForInsight(in analyzer.QuestionInsight) ContextualRecommendation {
	rec, ok := authoredTemplates[in.QuestionID]
	if !ok {
		rec = genericRecommendation(in)
	}
	rec.ID = "rec-" + in.QuestionID
	rec.QuestionID = in.QuestionID
	rec.PillarID = in.PillarID
	rec.Category = categoryForQuestion(in.QuestionID)
	rec.Priority = priorityForInsight(in.Status, in.Urgency)
	rec.Effort = effortFromText(rec.Title)
	return rec
}

func genericRecommendation(in analyzer.QuestionInsight) ContextualRecommendation {
	pillarName := in.PillarID
	if p, ok := catalog.PillarByID(in.PillarID); ok {
		pillarName = p.Name
	}
	topic := in.Question
	return ContextualRecommendation{
		Title:       "Evoluir a prática avaliada no pilar " + pillarName,
		Description: fmt.Sprintf("Estruturar a prática coberta por \"%s\", hoje abaixo do necessário.", topic),
		Steps: []ImplementationStep{
			{
				Order:        1,
				Description:  "Diagnosticar a situação atual da prática com os envolvidos",
				Duration:     "2 semanas",
				Responsible:  "PMO",
				Deliverables: []string{"Diagnóstico da prática"},
				Checkpoints:  []string{"Diagnóstico validado com as áreas"},
			},
			{
				Order:        2,
				Description:  "Definir e aprovar o padrão mínimo de funcionamento",
				Duration:     "3 semanas",
				Responsible:  "PMO / Liderança",
				Deliverables: []string{"Padrão documentado e aprovado"},
				Checkpoints:  []string{"Aprovação formal da liderança"},
			},
			{
				Order:        3,
				Description:  "Implantar o padrão e acompanhar a adesão",
				Duration:     "4 semanas",
				Responsible:  "PMO",
				Deliverables: []string{"Padrão em uso nos projetos ativos"},
				Checkpoints:  []string{"Primeira medição de adesão"},
			},
		},
		SuccessMetrics: []string{
			"Prática implantada nos projetos ativos",
			"Adesão medida e reportada regularmente",
		},
		Templates: []string{"Plano de implantação"},
		Impacts: ExpectedImpacts{
			ShortTerm:  []string{"Padrão mínimo definido e comunicado"},
			MediumTerm: []string{"Prática incorporada à rotina dos projetos"},
			LongTerm:   []string{"Pilar " + pillarName + " sustentado por processo, não por heroísmo"},
		},
	}
}

func recommendationForPattern(pat analyzer.ResponsePattern, seq int) ContextualRecommendation {
	priority := PriorityMedium
	switch pat.Severity {
	case analyzer.LevelHigh:
		priority = PriorityHigh
	case analyzer.LevelLow:
		priority = PriorityLow
	}
	return ContextualRecommendation{
		ID:          fmt.Sprintf("rec-pattern-%s-%d", pat.Type, seq),
		PillarID:    "cross-functional",
		Title:       pat.Title,
		Description: pat.Description,
		Category:    CategoryProcess,
		Priority:    priority,
		Effort:      effortFromText(pat.Title),
		Steps: []ImplementationStep{
			{
				Order:        1,
				Description:  "Tratar o padrão identificado com as áreas envolvidas",
				Duration:     "4 semanas",
				Responsible:  "PMO",
				Deliverables: []string{"Plano de tratamento acordado"},
				Checkpoints:  []string{"Plano aprovado pelas áreas"},
			},
		},
		SuccessMetrics: append([]string(nil), pat.Recommendations...),
		Impacts: ExpectedImpacts{
			ShortTerm: []string{"Padrão sistêmico reconhecido e endereçado"},
		},
	}
}

func recommendationForQuickWin(in analyzer.QuestionInsight) ContextualRecommendation {
	pillarName := in.PillarID
	if p, ok := catalog.PillarByID(in.PillarID); ok {
		pillarName = p.Name
	}
	return ContextualRecommendation{
		ID:          "rec-quickwin-" + in.QuestionID,
		QuestionID:  in.QuestionID,
		PillarID:    in.PillarID,
		Title:       "Ganho rápido no pilar " + pillarName,
		Description: fmt.Sprintf("Resolver \"%s\" exige pouco esforço e destrava outras práticas do portfólio.", in.Question),
		Category:    CategoryProcess,
		Priority:    PriorityHigh,
		Effort:      analytics.Baixo,
		QuickWin:    true,
		Steps: []ImplementationStep{
			{
				Order:        1,
				Description:  "Executar a melhoria pontual identificada",
				Duration:     "2 semanas",
				Responsible:  "PMO",
				Deliverables: []string{"Melhoria implantada"},
				Checkpoints:  []string{"Resultado comunicado às áreas"},
			},
		},
		SuccessMetrics: []string{"Melhoria visível dentro de um mês"},
		Impacts: ExpectedImpacts{
			ShortTerm: []string{"Resultado rápido que dá tração ao programa de maturidade"},
		},
	}
}
