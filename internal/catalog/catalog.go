package catalog

import "fmt"

// Pillar is one of the seven fixed organizational maturity dimensions.
type Pillar struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Importance  string `json:"importance"`
}

// Option is one of the five ordered answers of a question.
type Option struct {
	Value       int    `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Question is one of the 28 fixed survey items, four per pillar.
type Question struct {
	ID       string   `json:"id"`
	PillarID string   `json:"pillarId"`
	Text     string   `json:"text"`
	Context  string   `json:"context"`
	Options  []Option `json:"options"`
}

// LevelDescriptor describes one of the nine OSRL maturity levels.
type LevelDescriptor struct {
	Level           int      `json:"level"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	Recommendations []string `json:"recommendations"`
}

// QuestionByID returns the catalog question with the given id.
func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// PillarByID returns the pillar with the given id.
func PillarByID(id string) (Pillar, bool) {
	for _, p := range Pillars {
		if p.ID == id {
			return p, true
		}
	}
	return Pillar{}, false
}

// QuestionsForPillar returns the pillar's questions in catalog order.
func QuestionsForPillar(pillarID string) []Question {
	out := make([]Question, 0, 4)
	for _, q := range Questions {
		if q.PillarID == pillarID {
			out = append(out, q)
		}
	}
	return out
}

// LevelByNumber returns the descriptor for an OSRL level between 1 and 9.
func LevelByNumber(level int) (LevelDescriptor, bool) {
	for _, l := range Levels {
		if l.Level == level {
			return l, true
		}
	}
	return LevelDescriptor{}, false
}

// OptionLabel returns the label of the option with the given value, or an
// empty string when the question or value is unknown.
func OptionLabel(questionID string, value int) string {
	q, ok := QuestionByID(questionID)
	if !ok {
		return ""
	}
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return ""
}

// Validate checks the catalog's internal consistency. Any failure is a
// configuration error and should be treated as fatal at startup.
func Validate() error {
	if len(Pillars) != 7 {
		return fmt.Errorf("catalog: expected 7 pillars, got %d", len(Pillars))
	}
	if len(Questions) != 28 {
		return fmt.Errorf("catalog: expected 28 questions, got %d", len(Questions))
	}
	if len(Levels) != 9 {
		return fmt.Errorf("catalog: expected 9 level descriptors, got %d", len(Levels))
	}

	perPillar := make(map[string]int, len(Pillars))
	seen := make(map[string]bool, len(Questions))
	for _, q := range Questions {
		if seen[q.ID] {
			return fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if _, ok := PillarByID(q.PillarID); !ok {
			return fmt.Errorf("catalog: question %q references unknown pillar %q", q.ID, q.PillarID)
		}
		perPillar[q.PillarID]++
		if len(q.Options) != 5 {
			return fmt.Errorf("catalog: question %q must have 5 options, got %d", q.ID, len(q.Options))
		}
		for i, opt := range q.Options {
			if opt.Value != i+1 {
				return fmt.Errorf("catalog: question %q option %d has value %d", q.ID, i, opt.Value)
			}
			if opt.Label == "" {
				return fmt.Errorf("catalog: question %q option %d has empty label", q.ID, i)
			}
		}
	}
	for _, p := range Pillars {
		if perPillar[p.ID] != 4 {
			return fmt.Errorf("catalog: pillar %q has %d questions, expected 4", p.ID, perPillar[p.ID])
		}
	}
	for i, l := range Levels {
		if l.Level != i+1 {
			return fmt.Errorf("catalog: level descriptor %d has level %d", i, l.Level)
		}
		if l.Name == "" {
			return fmt.Errorf("catalog: level %d has empty name", l.Level)
		}
	}
	return nil
}
