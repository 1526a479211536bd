package service

import (
	"context"
	"sort"
	"time"

	"github.com/rferraz/clientdesk/internal/config"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/repository"
)

// Metric names used in the dashboard exclusion configuration.
const (
	MetricTopClients   = "top_clients"
	MetricMonthlyValue = "monthly_value"
)

const (
	topClientsLimit = 5
	trailingMonths  = 6
)

type dashboardService struct {
	clients  repository.ClientRepo
	vocab    *domain.Vocabulary
	excluded config.DashboardConfig
}

func NewDashboardService(clients repository.ClientRepo, vocab *domain.Vocabulary, excluded config.DashboardConfig) DashboardService {
	return &dashboardService{clients: clients, vocab: vocab, excluded: excluded}
}

func (s *dashboardService) Summary(ctx context.Context, today time.Time) (*DashboardSummary, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		ClientCount: len(clients),
		Buckets:     make(map[domain.UrgencyBucket]int),
	}
	totals := make(map[string]*ClientValue)

	for _, c := range clients {
		for i := range c.Projects {
			p := &c.Projects[i]
			summary.ProjectCount++

			badge := domain.ProjectBadge(p, s.vocab, today)
			summary.Buckets[badge.Bucket]++
			if badge.Bucket != domain.BucketCompleted {
				summary.OpenProjectCount++
			}

			if done, ok := domain.NormalizeDate(p.CompletedOn); ok && s.vocab.IsCompleted(p.Status) {
				if done.Year() == today.Year() && done.Month() == today.Month() {
					summary.CompletedThisMonth++
				}
			}

			s.accumulateValue(totals, c, p)
		}
	}

	summary.TopClients = topClients(totals)
	summary.MonthlyValues = s.monthlyValues(clients, today)
	return summary, nil
}

func (s *dashboardService) accumulateValue(totals map[string]*ClientValue, c *domain.Client, p *domain.Project) {
	if p.Value == nil {
		return
	}
	if s.excluded.Excluded(MetricTopClients, c.Name) || s.excluded.Excluded(MetricTopClients, p.Name) {
		return
	}
	t, ok := totals[c.ID]
	if !ok {
		t = &ClientValue{ClientID: c.ID, ClientName: c.Name}
		totals[c.ID] = t
	}
	t.Total += *p.Value
}

// topClients ranks summed client values descending, name ascending on
// ties so the cut at five is deterministic.
func topClients(totals map[string]*ClientValue) []ClientValue {
	ranked := make([]ClientValue, 0, len(totals))
	for _, t := range totals {
		ranked = append(ranked, *t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].ClientName < ranked[j].ClientName
	})
	if len(ranked) > topClientsLimit {
		ranked = ranked[:topClientsLimit]
	}
	return ranked
}

// monthlyValues sums the value of completed projects by completion month
// over the trailing window, oldest month first.
func (s *dashboardService) monthlyValues(clients []*domain.Client, today time.Time) []MonthValue {
	out := make([]MonthValue, trailingMonths)
	index := make(map[string]*MonthValue, trailingMonths)
	// Anchor on the first of the month: AddDate from a day-31 anchor
	// would normalize into the wrong month.
	base := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	for i := 0; i < trailingMonths; i++ {
		m := base.AddDate(0, i-(trailingMonths-1), 0)
		out[i] = MonthValue{Year: m.Year(), Month: m.Month()}
		index[monthKey(m.Year(), m.Month())] = &out[i]
	}

	for _, c := range clients {
		for i := range c.Projects {
			p := &c.Projects[i]
			if p.Value == nil || !s.vocab.IsCompleted(p.Status) {
				continue
			}
			if s.excluded.Excluded(MetricMonthlyValue, c.Name) || s.excluded.Excluded(MetricMonthlyValue, p.Name) {
				continue
			}
			done, ok := domain.NormalizeDate(p.CompletedOn)
			if !ok {
				continue
			}
			if mv, found := index[monthKey(done.Year(), done.Month())]; found {
				mv.Total += *p.Value
			}
		}
	}
	return out
}

func monthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
