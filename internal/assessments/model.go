package assessments

import "time"

// Assessment is one completed questionnaire with its computed result.
type Assessment struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	Email        string         `json:"email,omitempty"`
	Responses    map[string]int `json:"responses"`
	OSRLLevel    int            `json:"osrlLevel"`
	OverallScore int            `json:"overallScore"`
	PillarScores map[string]int `json:"pillarScores"`
	Result       *Result        `json:"result,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
