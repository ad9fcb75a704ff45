package analytics

import (
	"sort"

	"osrl-backend/internal/catalog"
)

var criticalRiskRecommendations = map[string][]string{
	"gov": {
		"Formalizar a estrutura de governança antes de ampliar o portfólio",
		"Definir alçadas de decisão e um fórum regular de direcionamento",
	},
	"strategy": {
		"Vincular cada projeto ativo a um objetivo estratégico declarado",
		"Encerrar iniciativas sem contribuição estratégica identificável",
	},
	"delivery": {
		"Implantar uma metodologia mínima de gestão de projetos",
		"Estabelecer acompanhamento regular de cronograma e riscos",
	},
	"benefits": {
		"Exigir benefícios quantificados na aprovação de novos projetos",
		"Criar medição pós-entrega para os projetos já concluídos",
	},
	"financial": {
		"Tornar o orçamento aprovado pré-condição de início de projeto",
		"Implantar acompanhamento mensal de custo real contra planejado",
	},
	"people": {
		"Publicar a matriz de papéis e responsabilidades de projeto",
		"Mapear a alocação real das equipes antes de aceitar novos projetos",
	},
	"tech": {
		"Implantar uma ferramenta única de gestão de projetos",
		"Centralizar os dados de projeto em fonte única",
	},
}

var warningRiskRecommendations = map[string][]string{
	"gov": {
		"Aumentar a cadência e o poder deliberativo dos comitês",
		"Auditar a aderência das decisões aos critérios definidos",
	},
	"strategy": {
		"Formalizar o ciclo de revisão do portfólio frente à estratégia",
		"Desdobrar os objetivos estratégicos em metas de portfólio",
	},
	"delivery": {
		"Padronizar os indicadores de desempenho de entrega",
		"Incorporar lições aprendidas à metodologia",
	},
	"benefits": {
		"Nomear donos formais para a realização de cada benefício",
		"Reportar benefícios realizados no fórum de portfólio",
	},
	"financial": {
		"Padronizar a análise de viabilidade nas aprovações",
		"Consolidar a visão financeira de todo o portfólio",
	},
	"people": {
		"Estruturar trilhas de capacitação por papel",
		"Gerenciar a capacidade das equipes na priorização",
	},
	"tech": {
		"Automatizar painéis de acompanhamento do portfólio",
		"Instituir regras de qualidade para os dados de projeto",
	},
}

// RiskFactors flags pillars below the risk thresholds: score under 40 is a
// critical risk, 40–59 a warning. Sorted by impact descending; pillars
// without a score are skipped.
func RiskFactors(pillarScores map[string]int) []RiskFactor {
	out := make([]RiskFactor, 0, len(pillarScores))
	for _, p := range catalog.Pillars {
		score, ok := pillarScores[p.ID]
		if !ok {
			continue
		}
		switch {
		case score < 40:
			out = append(out, RiskFactor{
				PillarID:        p.ID,
				Pillar:          p.Name,
				Severity:        RiskCritical,
				Impact:          0.9,
				Description:     "O pilar " + p.Name + " está em nível crítico e compromete a sustentação do portfólio.",
				Recommendations: riskRecommendations(criticalRiskRecommendations, p),
			})
		case score < 60:
			out = append(out, RiskFactor{
				PillarID:        p.ID,
				Pillar:          p.Name,
				Severity:        RiskWarning,
				Impact:          0.6,
				Description:     "O pilar " + p.Name + " está abaixo do patamar de segurança e merece atenção no curto prazo.",
				Recommendations: riskRecommendations(warningRiskRecommendations, p),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Impact > out[j].Impact
	})
	return out
}

func riskRecommendations(table map[string][]string, p catalog.Pillar) []string {
	if recs, ok := table[p.ID]; ok {
		return append([]string(nil), recs...)
	}
	return []string{"Estruturar um plano de evolução para o pilar " + p.Name}
}
