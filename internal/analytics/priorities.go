package analytics

import (
	"sort"
	"strings"

	"osrl-backend/internal/catalog"
)

const priorityMatrixLimit = 20

// criticalActions are candidates for pillars under 40.
var criticalActions = map[string][]string{
	"gov":       {"Criar estrutura formal de governança de projetos", "Documentar alçadas de decisão por projeto", "Implementar fórum mensal de direcionamento"},
	"strategy":  {"Mapear o vínculo estratégico dos projetos ativos", "Criar critérios de entrada vinculados à estratégia", "Implementar revisão de portfólio frente aos objetivos"},
	"delivery":  {"Criar metodologia mínima de gestão de projetos", "Documentar o ciclo de vida e os artefatos obrigatórios", "Implementar acompanhamento de cronograma e riscos"},
	"benefits":  {"Criar padrão de benefícios quantificados no business case", "Documentar linha de base dos benefícios declarados", "Implementar medição pós-entrega dos benefícios"},
	"financial": {"Criar orçamento formal por projeto", "Mapear os custos reais dos projetos em andamento", "Implementar comparação mensal real contra planejado"},
	"people":    {"Documentar a matriz de papéis e responsabilidades", "Mapear a alocação real das equipes", "Criar trilha básica de capacitação em projetos"},
	"tech":      {"Implementar ferramenta única de gestão de projetos", "Mapear as fontes de dados de projeto existentes", "Criar repositório central de dados de projeto"},
}

// improvementActions are candidates for pillars between 40 and 69.
var improvementActions = map[string][]string{
	"gov":       {"Estabelecer comitês com poder deliberativo", "Desenvolver indicadores de eficácia da governança", "Documentar as decisões de portfólio tomadas"},
	"strategy":  {"Desenvolver o desdobramento anual da estratégia em iniciativas", "Estabelecer cadência formal de revisão do portfólio", "Documentar a contribuição estratégica por projeto"},
	"delivery":  {"Estabelecer o conjunto padrão de indicadores de entrega", "Desenvolver a gestão proativa de desvios", "Documentar e incorporar lições aprendidas"},
	"benefits":  {"Estabelecer donos formais de benefício", "Desenvolver o plano de medição pós-entrega", "Documentar benefícios realizados por projeto"},
	"financial": {"Estabelecer análise de viabilidade padrão", "Desenvolver a consolidação financeira do portfólio", "Documentar gatilhos de desvio orçamentário"},
	"people":    {"Estabelecer trilhas de capacitação por papel", "Desenvolver a gestão de capacidade das equipes", "Documentar critérios de alocação por competência"},
	"tech":      {"Desenvolver painéis automatizados de acompanhamento", "Estabelecer regras de qualidade de dados", "Documentar o dicionário de dados de projeto"},
}

// maturityActions builds the generic candidates for pillars at 70 or above.
func maturityActions(pillarName string) []string {
	return []string{
		"Otimizar as práticas do pilar " + pillarName + " com base em séries históricas",
		"Automatizar os controles do pilar " + pillarName,
		"Implementar análises preditivas no pilar " + pillarName,
	}
}

// PrioritizationMatrix scores candidate actions for every answered pillar and
// returns the top entries by priority descending, capped at 20.
func PrioritizationMatrix(pillarScores map[string]int) []PriorityItem {
	out := make([]PriorityItem, 0, 32)
	for _, p := range catalog.Pillars {
		score, ok := pillarScores[p.ID]
		if !ok {
			continue
		}
		var candidates []string
		switch {
		case score < 40:
			candidates = criticalActions[p.ID]
		case score < 70:
			candidates = improvementActions[p.ID]
		default:
			candidates = maturityActions(p.Name)
		}
		for _, action := range candidates {
			impact := actionImpact(action, score)
			effort := actionEffort(action, score)
			out = append(out, PriorityItem{
				PillarID: p.ID,
				Action:   action,
				Impact:   impact,
				Effort:   effort,
				Priority: impact*2 + (5 - effort),
				QuickWin: impact >= 3 && effort <= 2,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if len(out) > priorityMatrixLimit {
		out = out[:priorityMatrixLimit]
	}
	return out
}

// actionImpact derives an action's impact (1–5) from the pillar's score band,
// bumped when the text announces new capability. Content sniffing is kept for
// compatibility with the original questionnaire's behavior.
func actionImpact(action string, score int) int {
	impact := 2
	switch {
	case score < 40:
		impact = 4
	case score < 70:
		impact = 3
	}
	lower := strings.ToLower(action)
	if strings.Contains(lower, "implementar") || strings.Contains(lower, "criar") {
		impact++
	}
	if impact > 5 {
		impact = 5
	}
	return impact
}

// actionEffort estimates an action's effort (1–5) from its verbs.
func actionEffort(action string, score int) int {
	lower := strings.ToLower(action)
	switch {
	case strings.Contains(lower, "documentar") || strings.Contains(lower, "mapear"):
		return 1
	case strings.Contains(lower, "criar") || strings.Contains(lower, "estabelecer"):
		if score < 40 {
			return 3
		}
		return 2
	case strings.Contains(lower, "implementar") || strings.Contains(lower, "desenvolver"):
		if score < 40 {
			return 4
		}
		return 3
	case strings.Contains(lower, "otimizar") || strings.Contains(lower, "automatizar"):
		return 4
	default:
		return 3
	}
}
