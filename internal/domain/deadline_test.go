package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocab() *Vocabulary {
	return &Vocabulary{
		Types: []ProjectType{
			{Name: "development", Statuses: []string{"not-started", "in-progress", "review", "completed"}},
			{Name: "design", Statuses: []string{"not-started", "drafting", "feedback", "completed"}},
		},
		NotStartedStatus: "not-started",
		CompletedStatus:  "completed",
	}
}

func today() time.Time {
	return Midnight(time.Now().In(time.Local))
}

func datePtr(t time.Time) *time.Time { return &t }

func TestClassifyDeadline_DueToday(t *testing.T) {
	now := today()
	badge := ClassifyDeadline(&now, now, ModeBadge)
	assert.Equal(t, BucketDueToday, badge.Bucket)
	assert.Equal(t, "Due today", badge.Label)
	assert.Equal(t, SeverityDestructive, badge.Severity)
}

func TestClassifyDeadline_Overdue(t *testing.T) {
	now := today()
	badge := ClassifyDeadline(datePtr(now.AddDate(0, 0, -5)), now, ModeBadge)
	assert.Equal(t, BucketOverdue, badge.Bucket)
	assert.Contains(t, badge.Label, "5")
	assert.Equal(t, SeverityDestructive, badge.Severity)
}

func TestClassifyDeadline_OverdueSingular(t *testing.T) {
	now := today()
	badge := ClassifyDeadline(datePtr(now.AddDate(0, 0, -1)), now, ModeBadge)
	assert.Equal(t, "Overdue by 1 day", badge.Label)
}

func TestClassifyDeadline_BadgeBuckets(t *testing.T) {
	now := today()
	cases := []struct {
		days     int
		bucket   UrgencyBucket
		severity Severity
	}{
		{1, BucketDueSoon, SeverityDestructive},
		{3, BucketDueSoon, SeverityDestructive},
		{4, BucketUpcoming, SeveritySecondary},
		{7, BucketUpcoming, SeveritySecondary},
		{8, BucketLater, SeverityNone},
		{10, BucketLater, SeverityNone},
	}
	for _, tc := range cases {
		badge := ClassifyDeadline(datePtr(now.AddDate(0, 0, tc.days)), now, ModeBadge)
		assert.Equal(t, tc.bucket, badge.Bucket, "+%d days", tc.days)
		assert.Equal(t, tc.severity, badge.Severity, "+%d days", tc.days)
	}
}

func TestClassifyDeadline_NoDeadline(t *testing.T) {
	badge := ClassifyDeadline(nil, today(), ModeBadge)
	assert.Equal(t, BucketNoDeadline, badge.Bucket)
}

// The filter mode must use the exact same thresholds as badge mode: any
// drift between the two shows up as a project wearing a "due soon" badge
// while escaping the "due soon" filter.
func TestClassifyDeadline_FilterAgreesWithBadgeThresholds(t *testing.T) {
	now := today()
	for days := -10; days <= 14; days++ {
		dl := datePtr(now.AddDate(0, 0, days))
		badge := ClassifyDeadline(dl, now, ModeBadge)
		filter := ClassifyDeadline(dl, now, ModeFilter)

		switch badge.Bucket {
		case BucketOverdue, BucketDueToday, BucketDueSoon:
			assert.Equal(t, BucketDueSoon, filter.Bucket, "%d days", days)
		case BucketUpcoming:
			assert.Equal(t, BucketUpcoming, filter.Bucket, "%d days", days)
		case BucketLater:
			assert.Equal(t, BucketLater, filter.Bucket, "%d days", days)
		}
	}
}

func TestProjectBadge_CompletedUsesCompletionDate(t *testing.T) {
	now := today()
	done := now.AddDate(0, 0, -2)
	p := &Project{
		Status:      "completed",
		Deadline:    datePtr(now.AddDate(0, 0, -30)), // must be ignored
		CompletedOn: &done,
	}
	badge := ProjectBadge(p, testVocab(), now)
	require.Equal(t, BucketCompleted, badge.Bucket)
	assert.Contains(t, badge.Label, "Completed on")
	assert.Contains(t, badge.Label, done.Format(DateLayout))
}

func TestProjectBadge_CompletedWithoutDateHasNoBadge(t *testing.T) {
	p := &Project{Status: "completed"}
	badge := ProjectBadge(p, testVocab(), today())
	assert.Equal(t, BucketCompleted, badge.Bucket)
	assert.Equal(t, SeverityNone, badge.Severity)
	assert.Empty(t, badge.Label)
}

func TestProjectBadge_ActiveUsesDeadline(t *testing.T) {
	now := today()
	p := &Project{Status: "in-progress", Deadline: datePtr(now)}
	badge := ProjectBadge(p, testVocab(), now)
	assert.Equal(t, BucketDueToday, badge.Bucket)
}
