package domain

import (
	"sort"
	"time"
)

// SortProjects orders projects for display: priority rank first
// (high > medium > low, missing ranks with low), then deadline ascending.
// When priorities tie, a project with a valid deadline sorts before one
// without. Remaining ties keep input order (the sort is stable).
//
// Returns a new slice; the input is not reordered.
func SortProjects(projects []Project, today time.Time) []Project {
	sorted := make([]Project, len(projects))
	copy(sorted, projects)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]

		rankA, rankB := PriorityRank(a.Priority), PriorityRank(b.Priority)
		if rankA != rankB {
			return rankA < rankB
		}

		dlA, okA := NormalizeDate(a.Deadline)
		dlB, okB := NormalizeDate(b.Deadline)
		if okA != okB {
			return okA // valid deadline before none
		}
		if okA && okB && !dlA.Equal(dlB) {
			return dlA.Before(dlB)
		}
		return false
	})

	return sorted
}

// PartitionClientsByUrgency orders clients into three stable groups:
// clients with at least one imminent-or-overdue project first, then
// clients with any projects, then clients with none. Within each group
// input order is preserved. This is a stable partition, not a full
// comparator sort.
func PartitionClientsByUrgency(clients []Client, today time.Time) []Client {
	var imminent, withProjects, empty []Client
	for _, c := range clients {
		switch {
		case clientHasImminentProject(&c, today):
			imminent = append(imminent, c)
		case c.HasProjects():
			withProjects = append(withProjects, c)
		default:
			empty = append(empty, c)
		}
	}

	out := make([]Client, 0, len(clients))
	out = append(out, imminent...)
	out = append(out, withProjects...)
	out = append(out, empty...)
	return out
}

func clientHasImminentProject(c *Client, today time.Time) bool {
	for i := range c.Projects {
		p := &c.Projects[i]
		dl, ok := NormalizeDate(p.Deadline)
		if !ok {
			continue
		}
		badge := ClassifyDeadline(&dl, today, ModeFilter)
		if badge.Bucket == BucketDueSoon {
			return true
		}
	}
	return false
}
