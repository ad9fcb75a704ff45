package analytics

import (
	"fmt"
	"math"
	"sort"

	"osrl-backend/internal/catalog"
)

// Weight tables for gap priority. Effort is inverted on purpose: a low-effort
// gap contributes more priority than a high-effort one, so quick wins surface
// first.
var (
	gapEffortWeight = map[string]int{Baixo: 3, Medio: 2, Alto: 1}
	gapImpactWeight = map[string]int{Baixo: 1, Medio: 2, Alto: 3}
)

// gapImpact is the fixed strategic impact of closing each pillar's gap.
var gapImpact = map[string]string{
	"gov":       Alto,
	"strategy":  Alto,
	"delivery":  Alto,
	"benefits":  Medio,
	"financial": Medio,
	"people":    Medio,
	"tech":      Medio,
}

// gapActions maps pillar id and target level to the concrete steps of that
// transition. Unmatched combinations fall back to a generic action.
var gapActions = map[string]map[int][]string{
	"gov": {
		2: {"Formalizar patrocinadores e alçadas por projeto", "Criar um fórum mensal de direcionamento"},
		3: {"Documentar critérios de priorização com pesos", "Implantar comitês com pauta e cadência fixas"},
		4: {"Dar poder deliberativo aos comitês de portfólio", "Registrar e acompanhar as decisões tomadas"},
		5: {"Medir a eficácia da governança com indicadores próprios", "Estabelecer ciclos de melhoria da estrutura"},
	},
	"strategy": {
		2: {"Declarar o vínculo estratégico de cada projeto ativo", "Mapear iniciativas órfãs de objetivo"},
		3: {"Desdobrar objetivos estratégicos em iniciativas anuais", "Formalizar o ciclo de revisão do portfólio"},
		4: {"Integrar metas de portfólio ao planejamento orçamentário", "Acompanhar a contribuição estratégica na execução"},
		5: {"Implantar planejamento por cenários", "Rebalancear o portfólio por contribuição medida"},
	},
	"delivery": {
		2: {"Documentar uma metodologia mínima de projetos", "Treinar os gerentes na metodologia"},
		3: {"Estabelecer cadência de revisão de cronograma e riscos", "Definir o conjunto padrão de indicadores de entrega"},
		4: {"Gerenciar desvios de forma proativa com gatilhos", "Incorporar lições aprendidas à metodologia"},
		5: {"Derivar metas de melhoria de séries históricas", "Adaptar a metodologia por tipo de projeto"},
	},
	"benefits": {
		2: {"Exigir benefícios quantificados no business case", "Criar linha de base para os benefícios declarados"},
		3: {"Definir plano de medição pós-entrega por benefício", "Nomear donos formais de benefício"},
		4: {"Medir e reportar benefícios em todos os projetos", "Cobrar a realização nos fóruns regulares"},
		5: {"Auditar benefícios contra o business case", "Otimizar o portfólio pelo retorno realizado"},
	},
	"financial": {
		2: {"Aprovar orçamento formal antes de iniciar projetos", "Decompor custos por fase com contingência"},
		3: {"Implantar comparação mensal real contra planejado", "Padronizar a análise de viabilidade"},
		4: {"Definir gatilhos de desvio com decisão formal", "Consolidar a visão financeira do portfólio"},
		5: {"Projetar custo final continuamente", "Otimizar a alocação de capital pelo retorno"},
	},
	"people": {
		2: {"Publicar a matriz de papéis e responsabilidades", "Comunicar papéis na abertura dos projetos"},
		3: {"Estruturar trilhas de capacitação por papel", "Mapear a alocação real das equipes"},
		4: {"Limitar a entrada de projetos pela capacidade", "Criar rituais formais de colaboração entre áreas"},
		5: {"Medir proficiência e desenvolver continuamente", "Otimizar a alocação por competência e demanda"},
	},
	"tech": {
		2: {"Implantar uma ferramenta única de gestão", "Migrar os projetos ativos para a ferramenta"},
		3: {"Centralizar os dados de projeto em fonte única", "Automatizar os painéis de acompanhamento"},
		4: {"Instituir donos e regras de qualidade de dados", "Disponibilizar painéis em autosserviço"},
		5: {"Integrar os sistemas de projeto ao ERP", "Aplicar modelos preditivos aos dados históricos"},
	},
}

// MaturityGaps computes the next-level step for every answered pillar not yet
// at level 5, sorted by priority descending.
func MaturityGaps(pillarScores map[string]int) []MaturityGap {
	out := make([]MaturityGap, 0, len(pillarScores))
	for _, p := range catalog.Pillars {
		score, ok := pillarScores[p.ID]
		if !ok {
			continue
		}
		current := int(math.Ceil(float64(score) / 20))
		if current < 1 {
			current = 1
		}
		if current > 5 {
			current = 5
		}
		if current == 5 {
			continue
		}
		target := current + 1

		effort := Baixo
		switch {
		case score < 40:
			effort = Alto
		case score < 70:
			effort = Medio
		}
		impact := gapImpact[p.ID]

		out = append(out, MaturityGap{
			PillarID:     p.ID,
			Pillar:       p.Name,
			CurrentLevel: current,
			TargetLevel:  target,
			Effort:       effort,
			Impact:       impact,
			Priority:     gapEffortWeight[effort] + gapImpactWeight[impact],
			Actions:      actionsForGap(p, target),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

func actionsForGap(p catalog.Pillar, targetLevel int) []string {
	if byLevel, ok := gapActions[p.ID]; ok {
		if actions, ok := byLevel[targetLevel]; ok {
			return append([]string(nil), actions...)
		}
	}
	return []string{fmt.Sprintf("Planejar a evolução do pilar %s para o nível %d", p.Name, targetLevel)}
}
