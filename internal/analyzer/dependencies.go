package analyzer

// dependsOn encodes the prerequisite chain inside each pillar: the second
// question builds on the first, the third on the first two, and so on. The
// graph is hand-authored and must only reference catalog question ids.
var dependsOn = map[string][]string{
	"gov2": {"gov1"},
	"gov3": {"gov1", "gov2"},
	"gov4": {"gov1", "gov2", "gov3"},

	"strategy2": {"strategy1"},
	"strategy3": {"strategy1", "strategy2"},
	"strategy4": {"strategy1", "strategy2", "strategy3"},

	"delivery2": {"delivery1"},
	"delivery3": {"delivery1", "delivery2"},
	"delivery4": {"delivery1", "delivery2", "delivery3"},

	"benefits2": {"benefits1"},
	"benefits3": {"benefits1", "benefits2"},
	"benefits4": {"benefits1", "benefits2", "benefits3"},

	"financial2": {"financial1"},
	"financial3": {"financial1", "financial2"},
	"financial4": {"financial1", "financial2", "financial3"},

	"people2": {"people1"},
	"people3": {"people1", "people2"},
	"people4": {"people1", "people2", "people3"},

	"tech2": {"tech1"},
	"tech3": {"tech1", "tech2"},
	"tech4": {"tech1", "tech2", "tech3"},
}

// affects encodes cross-pillar influence: answering a question poorly drags
// the listed questions down with it. Hand-authored, separate from dependsOn.
var affects = map[string][]string{
	"gov1": {"gov2", "delivery2", "financial1"},
	"gov2": {"delivery1", "benefits1", "financial2"},
	"gov3": {"strategy3", "financial4"},

	"strategy1": {"gov2", "benefits1", "delivery1"},
	"strategy2": {"financial3", "benefits1"},
	"strategy3": {"strategy4"},

	"delivery1": {"delivery2", "delivery3", "people2"},
	"delivery2": {"delivery3", "financial2", "benefits2"},
	"delivery3": {"delivery4", "benefits2"},

	"benefits1": {"benefits2", "benefits3", "financial3"},
	"benefits2": {"benefits4", "financial3"},
	"benefits3": {"benefits2"},

	"financial1": {"financial2", "financial3"},
	"financial2": {"financial4", "delivery3"},
	"financial3": {"benefits4"},

	"people1": {"people2", "people3"},
	"people2": {"people4", "delivery1"},
	"people3": {"delivery2"},

	"tech1": {"tech2", "tech3", "delivery2"},
	"tech2": {"tech3", "financial4"},
	"tech3": {"tech4", "delivery3"},
}

// foundationalQuestions lists the first question of each pillar. A low answer
// here blocks everything built on top of that pillar.
var foundationalQuestions = map[string]bool{
	"gov1":       true,
	"strategy1":  true,
	"delivery1":  true,
	"benefits1":  true,
	"financial1": true,
	"people1":    true,
	"tech1":      true,
}

// DependsOn returns the static prerequisite list for a question id.
func DependsOn(questionID string) []string {
	return append([]string(nil), dependsOn[questionID]...)
}

// Affects returns the static influence list for a question id.
func Affects(questionID string) []string {
	return append([]string(nil), affects[questionID]...)
}
