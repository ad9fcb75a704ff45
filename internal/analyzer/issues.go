package analyzer

import "osrl-backend/internal/catalog"

type issueEntry struct {
	issues          []string
	recommendations []string
}

// questionIssues maps question ids to the specific problems and actions shown
// when the response is 2 or lower. Ids without an entry fall back to generic
// text derived from the pillar.
var questionIssues = map[string]issueEntry{
	"gov1": {
		issues: []string{
			"Decisões de projeto sem estrutura formal dependem de indivíduos",
			"Ausência de alçadas claras gera retrabalho e conflitos de prioridade",
		},
		recommendations: []string{
			"Formalizar patrocinadores e alçadas de decisão por projeto",
			"Instituir um fórum mensal de direcionamento do portfólio",
		},
	},
	"gov2": {
		issues: []string{
			"Projetos entram no portfólio por influência, não por valor",
			"Sem critérios, o portfólio cresce além da capacidade de entrega",
		},
		recommendations: []string{
			"Definir critérios de priorização com pesos publicados",
			"Reavaliar o portfólio atual contra os novos critérios",
		},
	},
	"strategy1": {
		issues: []string{
			"Projetos desconectados da estratégia disputam recursos com os essenciais",
			"Não é possível justificar investimentos frente aos objetivos",
		},
		recommendations: []string{
			"Exigir vínculo estratégico declarado na abertura de cada projeto",
			"Revisar o portfólio atual e encerrar iniciativas sem vínculo",
		},
	},
	"delivery1": {
		issues: []string{
			"Cada projeto reinventa sua forma de trabalhar",
			"Sem metodologia, não há comparabilidade nem previsibilidade",
		},
		recommendations: []string{
			"Documentar uma metodologia mínima com ciclo de vida e artefatos",
			"Treinar os gerentes de projeto na metodologia definida",
		},
	},
	"delivery2": {
		issues: []string{
			"Desvios de prazo só são percebidos quando já viraram atraso",
			"Riscos conhecidos não são registrados nem acompanhados",
		},
		recommendations: []string{
			"Estabelecer cadência quinzenal de revisão de cronograma e riscos",
			"Criar registro de riscos padrão com donos e respostas",
		},
	},
	"benefits1": {
		issues: []string{
			"Projetos são aprovados sem benefícios quantificados",
			"Sem linha de base, nenhum resultado poderá ser comprovado",
		},
		recommendations: []string{
			"Exigir métrica, linha de base e meta para cada benefício no business case",
			"Validar os benefícios com as áreas que vão realizá-los",
		},
	},
	"benefits2": {
		issues: []string{
			"Benefícios prometidos nunca são verificados após a entrega",
			"O ciclo de investimento não aprende com os resultados reais",
		},
		recommendations: []string{
			"Definir um plano de medição pós-entrega para cada benefício",
			"Reportar benefícios realizados no fórum de portfólio",
		},
	},
	"financial1": {
		issues: []string{
			"Projetos consomem recursos sem orçamento aprovado",
			"Não há base para controlar custos nem cobrar desvios",
		},
		recommendations: []string{
			"Tornar o orçamento aprovado pré-condição de início",
			"Decompor custos por fase com reserva de contingência",
		},
	},
	"financial2": {
		issues: []string{
			"Custos reais só aparecem no fechamento contábil",
			"Estouros de orçamento são descobertos tarde demais para agir",
		},
		recommendations: []string{
			"Implantar comparação mensal de custo real contra planejado",
			"Definir gatilhos de desvio que exigem decisão formal",
		},
	},
	"people1": {
		issues: []string{
			"Responsabilidades difusas travam decisões e diluem a cobrança",
			"Conflitos entre áreas sem um papel claro para arbitrá-los",
		},
		recommendations: []string{
			"Publicar a matriz de papéis e responsabilidades de projeto",
			"Comunicar papéis na abertura de cada novo projeto",
		},
	},
	"tech1": {
		issues: []string{
			"Gestão por e-mail e planilhas dispersas impede visão consolidada",
			"Dados de projeto retrabalhados manualmente a cada relatório",
		},
		recommendations: []string{
			"Implantar uma ferramenta única de gestão de projetos",
			"Migrar os projetos ativos para a ferramenta oficial",
		},
	},
	"tech2": {
		issues: []string{
			"Fontes de dados contraditórias minam a confiança nos relatórios",
			"Cada área reporta números diferentes para o mesmo projeto",
		},
		recommendations: []string{
			"Centralizar os dados de projeto em uma fonte única",
			"Definir donos e regras de qualidade para os dados críticos",
		},
	},
}

// issuesFor returns the specific issue and recommendation lists for a low
// response, falling back to generic pillar-based text for unmatched ids.
func issuesFor(q catalog.Question) ([]string, []string) {
	if entry, ok := questionIssues[q.ID]; ok {
		return append([]string(nil), entry.issues...), append([]string(nil), entry.recommendations...)
	}
	pillarName := q.PillarID
	if p, ok := catalog.PillarByID(q.PillarID); ok {
		pillarName = p.Name
	}
	issues := []string{
		"Prática pouco desenvolvida no pilar " + pillarName,
	}
	recommendations := []string{
		"Estruturar a prática avaliada em \"" + q.Text + "\"",
		"Priorizar a evolução do pilar " + pillarName + " no plano de ação",
	}
	return issues, recommendations
}
