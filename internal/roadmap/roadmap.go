package roadmap

import "osrl-backend/internal/analytics"

const (
	roadmapPhase1Limit = 8
	roadmapPhase2Limit = 6
)

// BuildRoadmap lays the prioritization matrix over three fixed time boxes:
// quick wins first, then the heavier structural work, then standing
// optimization. Budgets, objectives, KPIs and risks are fixed per phase.
func BuildRoadmap(matrix []analytics.PriorityItem) []RoadmapPhase {
	return []RoadmapPhase{
		{
			Name:      "Vitórias Rápidas",
			Timeframe: "0-90 dias",
			Budget:    "R$ 100k - R$ 300k",
			Objectives: []string{
				"Gerar resultados visíveis que sustentem o patrocínio do programa",
				"Eliminar as lacunas de baixo esforço e alto impacto",
				"Estabelecer a disciplina de acompanhamento do plano",
			},
			Actions: quickWinActions(matrix),
			KPIs: []string{
				"Ações do plano concluídas no prazo",
				"Projetos ativos cobertos pelas novas práticas",
				"Satisfação dos patrocinadores com o programa",
			},
			Risks: []string{
				"Perda de patrocínio se os resultados demorarem a aparecer",
				"Sobrecarga das equipes que acumulam projeto e melhoria",
				"Melhorias pontuais sem dono após a entrega",
			},
		},
		{
			Name:      "Estruturação",
			Timeframe: "90-180 dias",
			Budget:    "R$ 300k - R$ 800k",
			Objectives: []string{
				"Implantar os processos estruturantes de maior impacto",
				"Consolidar as práticas iniciadas na fase anterior",
				"Integrar as áreas em torno do modelo de portfólio",
			},
			Actions: structuralActions(matrix),
			KPIs: []string{
				"Processos estruturantes implantados e em uso",
				"Desvios de cronograma e orçamento detectados proativamente",
				"Decisões de portfólio tomadas nos fóruns formais",
			},
			Risks: []string{
				"Resistência das áreas a processos novos",
				"Competição por recursos com a operação corrente",
				"Processos implantados no papel mas não na prática",
			},
		},
		{
			Name:      "Otimização",
			Timeframe: "180-365 dias",
			Budget:    "R$ 500k - R$ 1.200k",
			Objectives: []string{
				"Automatizar o acompanhamento do portfólio",
				"Usar dados históricos para decidir e estimar",
				"Institucionalizar a melhoria contínua das práticas",
			},
			Actions: []RoadmapAction{
				{
					PillarID: "tech",
					Action:   "Automatizar painéis e alertas de acompanhamento do portfólio",
					Effort:   analytics.Alto,
					Impact:   analytics.Alto,
				},
				{
					PillarID: "delivery",
					Action:   "Calibrar estimativas e metas com as séries históricas acumuladas",
					Effort:   analytics.Medio,
					Impact:   analytics.Alto,
				},
				{
					PillarID: "gov",
					Action:   "Instituir o ciclo anual de revisão e melhoria do modelo de governança",
					Effort:   analytics.Medio,
					Impact:   analytics.Medio,
				},
			},
			KPIs: []string{
				"Indicadores de portfólio atualizados sem apuração manual",
				"Erro médio das estimativas em queda",
				"Ciclo de melhoria executado e documentado",
			},
			Risks: []string{
				"Automação construída sobre dados de baixa qualidade",
				"Acomodação após os ganhos das fases anteriores",
				"Rotatividade levando conhecimento do modelo embora",
			},
		},
	}
}

func quickWinActions(matrix []analytics.PriorityItem) []RoadmapAction {
	out := make([]RoadmapAction, 0, roadmapPhase1Limit)
	for _, item := range matrix {
		if !item.QuickWin {
			continue
		}
		out = append(out, actionFromItem(item))
		if len(out) == roadmapPhase1Limit {
			break
		}
	}
	return out
}

func structuralActions(matrix []analytics.PriorityItem) []RoadmapAction {
	out := make([]RoadmapAction, 0, roadmapPhase2Limit)
	for _, item := range matrix {
		if item.QuickWin || item.Impact < 3 {
			continue
		}
		out = append(out, actionFromItem(item))
		if len(out) == roadmapPhase2Limit {
			break
		}
	}
	return out
}

func actionFromItem(item analytics.PriorityItem) RoadmapAction {
	return RoadmapAction{
		PillarID: item.PillarID,
		Action:   item.Action,
		Effort:   effortBucket(item.Effort),
		Impact:   impactBucket(item.Impact),
		QuickWin: item.QuickWin,
	}
}
