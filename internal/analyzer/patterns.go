package analyzer

import (
	"fmt"

	"osrl-backend/internal/catalog"
)

// DetectPatterns evaluates the static pattern rules over the full insight set
// and pillar averages (1–5 scale). Output order is fixed: inconsistencies,
// bottlenecks, enablers, cascade risks.
func DetectPatterns(insights []QuestionInsight, pillarAverages map[string]float64) []ResponsePattern {
	out := make([]ResponsePattern, 0, 8)
	out = append(out, detectInconsistencies(insights, pillarAverages)...)
	out = append(out, detectBottlenecks(insights)...)
	out = append(out, detectEnablers(insights)...)
	out = append(out, detectCascadeRisks(insights)...)
	return out
}

func detectInconsistencies(insights []QuestionInsight, pillarAverages map[string]float64) []ResponsePattern {
	out := make([]ResponsePattern, 0, 2)

	govAvg, govOK := pillarAverages["gov"]
	deliveryAvg, deliveryOK := pillarAverages["delivery"]
	if govOK && deliveryOK && govAvg >= 4 && deliveryAvg <= 2 {
		out = append(out, ResponsePattern{
			Type:        PatternInconsistency,
			Title:       "Governança madura sem capacidade de entrega",
			Description: "A governança está bem estruturada, mas a entrega não acompanha: decisões bem tomadas não se convertem em projetos concluídos.",
			Questions:   []string{"gov1", "gov2", "delivery1", "delivery2"},
			Severity:    LevelHigh,
			Recommendations: []string{
				"Direcionar o fórum de governança para destravar a entrega",
				"Priorizar a implantação da metodologia antes de novos controles",
			},
		})
	}

	benefitsDefined := responseFor(insights, "benefits1")
	benefitsMeasured := responseFor(insights, "benefits2")
	if benefitsDefined >= 4 && benefitsMeasured <= 2 {
		out = append(out, ResponsePattern{
			Type:        PatternInconsistency,
			Title:       "Benefícios definidos mas não medidos",
			Description: "A organização define benefícios com rigor na aprovação, porém nunca verifica se eles se realizam após a entrega.",
			Questions:   []string{"benefits1", "benefits2"},
			Severity:    LevelMedium,
			Recommendations: []string{
				"Criar plano de medição pós-entrega para os benefícios já definidos",
				"Nomear donos de benefício com prestação de contas regular",
			},
		})
	}

	return out
}

func detectBottlenecks(insights []QuestionInsight) []ResponsePattern {
	out := make([]ResponsePattern, 0, 4)
	for _, insight := range insights {
		if insight.Status != StatusCritical || len(insight.Affects) < 2 {
			continue
		}
		questions := append([]string{insight.QuestionID}, insight.Affects...)
		out = append(out, ResponsePattern{
			Type:        PatternBottleneck,
			Title:       "Gargalo: " + insight.Question,
			Description: fmt.Sprintf("A fragilidade nesta prática limita diretamente outras %d práticas que dependem dela.", len(insight.Affects)),
			Questions:   questions,
			Severity:    LevelHigh,
			Recommendations: []string{
				"Tratar esta prática antes das que dependem dela",
				"Designar um responsável e um prazo curto para a correção",
			},
		})
	}
	return out
}

func detectEnablers(insights []QuestionInsight) []ResponsePattern {
	out := make([]ResponsePattern, 0, 4)
	for _, insight := range insights {
		if insight.Status != StatusExcellent || len(insight.Affects) < 2 {
			continue
		}
		questions := append([]string{insight.QuestionID}, insight.Affects...)
		out = append(out, ResponsePattern{
			Type:        PatternEnabler,
			Title:       "Alavanca: " + insight.Question,
			Description: fmt.Sprintf("Esta prática madura pode acelerar a evolução de outras %d práticas relacionadas.", len(insight.Affects)),
			Questions:   questions,
			Severity:    LevelLow,
			Recommendations: []string{
				"Usar esta prática como referência interna para as demais",
				"Envolver seus responsáveis na evolução das práticas relacionadas",
			},
		})
	}
	return out
}

func detectCascadeRisks(insights []QuestionInsight) []ResponsePattern {
	out := make([]ResponsePattern, 0, 2)
	for _, p := range catalog.Pillars {
		critical := make([]string, 0, 4)
		for _, insight := range insights {
			if insight.PillarID == p.ID && insight.Status == StatusCritical {
				critical = append(critical, insight.QuestionID)
			}
		}
		if len(critical) < 3 {
			continue
		}
		out = append(out, ResponsePattern{
			Type:        PatternCascadeRisk,
			Title:       "Risco em cascata no pilar " + p.Name,
			Description: fmt.Sprintf("%d das práticas do pilar %s estão em estado crítico; a fragilidade tende a se propagar para os pilares que dependem dele.", len(critical), p.Name),
			Questions:   critical,
			Severity:    LevelHigh,
			Recommendations: []string{
				"Tratar o pilar " + p.Name + " como frente prioritária do plano",
				"Começar pela prática fundacional do pilar",
			},
		})
	}
	return out
}

func responseFor(insights []QuestionInsight, questionID string) int {
	for _, insight := range insights {
		if insight.QuestionID == questionID {
			return insight.Response
		}
	}
	return 0
}
