package domain

import (
	"fmt"
	"time"
)

// Day-distance thresholds shared by both classification modes. A single
// set of constants guarantees the badge and filter classifications can
// never drift apart.
const (
	dueSoonDays  = 3
	upcomingDays = 7
)

// DeadlineBadge is the derived, presentation-ready classification of a
// deadline: the urgency bucket, a human-relative label, and a severity
// hint. SeverityNone means "render no badge".
type DeadlineBadge struct {
	Bucket   UrgencyBucket
	Label    string
	Severity Severity
}

// ClassifyDeadline buckets a deadline relative to today. Both times are
// expected at local midnight (see NormalizeDate); a nil deadline yields
// BucketNoDeadline.
//
// ModeBadge produces the full six-bucket classification with relative
// labels. ModeFilter collapses to the coarser categories used for filter
// dropdowns: overdue and due-within-3-days merge into a single bucket and
// the labels are generic range descriptions.
func ClassifyDeadline(deadline *time.Time, today time.Time, mode ClassifyMode) DeadlineBadge {
	if deadline == nil || deadline.IsZero() {
		return DeadlineBadge{Bucket: BucketNoDeadline, Label: "No deadline", Severity: SeverityOutline}
	}

	days := DaysBetween(today, *deadline)

	if mode == ModeFilter {
		return classifyFilter(days)
	}

	switch {
	case days < 0:
		return DeadlineBadge{
			Bucket:   BucketOverdue,
			Label:    fmt.Sprintf("Overdue by %s", pluralDays(-days)),
			Severity: SeverityDestructive,
		}
	case days == 0:
		return DeadlineBadge{Bucket: BucketDueToday, Label: "Due today", Severity: SeverityDestructive}
	case days <= dueSoonDays:
		return DeadlineBadge{
			Bucket:   BucketDueSoon,
			Label:    fmt.Sprintf("Due in %s", pluralDays(days)),
			Severity: SeverityDestructive,
		}
	case days <= upcomingDays:
		return DeadlineBadge{
			Bucket:   BucketUpcoming,
			Label:    fmt.Sprintf("Due in %s", pluralDays(days)),
			Severity: SeveritySecondary,
		}
	default:
		return DeadlineBadge{
			Bucket:   BucketLater,
			Label:    deadline.Format("Jan 2, 2006"),
			Severity: SeverityNone,
		}
	}
}

func classifyFilter(days int) DeadlineBadge {
	switch {
	case days <= dueSoonDays:
		return DeadlineBadge{Bucket: BucketDueSoon, Label: "Overdue / next 3 days", Severity: SeverityDestructive}
	case days <= upcomingDays:
		return DeadlineBadge{Bucket: BucketUpcoming, Label: "Next 7 days", Severity: SeveritySecondary}
	default:
		return DeadlineBadge{Bucket: BucketLater, Label: "Later", Severity: SeverityNone}
	}
}

// ProjectBadge derives the badge for a project. Completed projects are
// classified by completion date, never by deadline: "Completed on" when
// the completion date is present and valid, otherwise no badge at all.
func ProjectBadge(p *Project, vocab *Vocabulary, today time.Time) DeadlineBadge {
	if vocab.IsCompleted(p.Status) {
		if done, ok := NormalizeDate(p.CompletedOn); ok {
			return DeadlineBadge{
				Bucket:   BucketCompleted,
				Label:    "Completed on " + done.Format(DateLayout),
				Severity: SeverityDefault,
			}
		}
		return DeadlineBadge{Bucket: BucketCompleted, Severity: SeverityNone}
	}
	if dl, ok := NormalizeDate(p.Deadline); ok {
		return ClassifyDeadline(&dl, today, ModeBadge)
	}
	return ClassifyDeadline(nil, today, ModeBadge)
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
