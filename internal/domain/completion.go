package domain

import "math"

// EstimateCompletion derives a 0-100 completion percentage for a project
// from its status and checklist. The not-started and completed sentinels
// short-circuit to 0 and 100; any other status falls back to the ratio of
// done checklist items, rounded half-up. When the status carries no
// sentinel meaning and the checklist is empty there is nothing to
// estimate from, and ok=false is returned (render no progress at all,
// not 0%).
func EstimateCompletion(status string, checklist []ChecklistItem, vocab *Vocabulary) (int, bool) {
	switch status {
	case vocab.NotStartedStatus:
		return 0, true
	case vocab.CompletedStatus:
		return 100, true
	}
	if len(checklist) == 0 {
		return 0, false
	}
	done := 0
	for _, item := range checklist {
		if item.Done {
			done++
		}
	}
	pct := math.Floor(100*float64(done)/float64(len(checklist)) + 0.5)
	return int(pct), true
}
