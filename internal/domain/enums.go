package domain

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityRank returns a sort rank (lower = more important).
// Unknown or empty priorities rank with low.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"admin": true, "user": true,
}

// Severity is a presentation hint attached to deadline badges.
// SeverityNone means no badge should be shown at all.
type Severity string

const (
	SeverityDestructive Severity = "destructive"
	SeveritySecondary   Severity = "secondary"
	SeverityOutline     Severity = "outline"
	SeverityDefault     Severity = "default"
	SeverityNone        Severity = ""
)

// UrgencyBucket classifies how close a deadline is to a reference day.
type UrgencyBucket string

const (
	BucketOverdue    UrgencyBucket = "overdue"
	BucketDueToday   UrgencyBucket = "due_today"
	BucketDueSoon    UrgencyBucket = "due_soon"
	BucketUpcoming   UrgencyBucket = "upcoming"
	BucketLater      UrgencyBucket = "later"
	BucketNoDeadline UrgencyBucket = "no_deadline"
	BucketCompleted  UrgencyBucket = "completed"
)

// ClassifyMode selects between the two deadline classification granularities.
// ModeBadge produces the full six-bucket classification used for badge text;
// ModeFilter collapses to the coarser buckets used by filter dropdowns.
// Both modes share the same numeric thresholds.
type ClassifyMode string

const (
	ModeBadge  ClassifyMode = "badge"
	ModeFilter ClassifyMode = "filter"
)
