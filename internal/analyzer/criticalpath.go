package analyzer

// CriticalPath partitions insights into blockers, enablers and quick wins.
// Buckets are checked in order and an insight joins only the first match, so
// the partition stays disjoint even if the predicates ever overlap.
func CriticalPath(insights []QuestionInsight) CriticalPathView {
	view := CriticalPathView{
		Blockers:  []QuestionInsight{},
		Enablers:  []QuestionInsight{},
		QuickWins: []QuestionInsight{},
	}
	for _, insight := range insights {
		switch {
		case insight.Status == StatusCritical && len(insight.Affects) >= 2 && insight.Urgency == LevelHigh:
			view.Blockers = append(view.Blockers, insight)
		case insight.Status == StatusExcellent && len(insight.Affects) >= 2:
			view.Enablers = append(view.Enablers, insight)
		case insight.Status == StatusWarning && insight.Impact == LevelHigh && insight.Urgency == LevelMedium:
			view.QuickWins = append(view.QuickWins, insight)
		}
	}
	return view
}
