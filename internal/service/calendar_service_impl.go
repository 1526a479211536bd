package service

import (
	"context"
	"time"

	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/repository"
)

type calendarService struct {
	clients repository.ClientRepo
	vocab   *domain.Vocabulary
}

func NewCalendarService(clients repository.ClientRepo, vocab *domain.Vocabulary) CalendarService {
	return &calendarService{clients: clients, vocab: vocab}
}

// Month builds the calendar view for one month: open projects appear on
// their deadline day, completed projects on their completion day. Badges
// are computed against the supplied today, not the viewed month, so
// browsing ahead does not change urgency.
func (s *calendarService) Month(ctx context.Context, year int, month time.Month, today time.Time) (*CalendarMonth, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	cal := &CalendarMonth{
		Year:  year,
		Month: month,
		Days:  make(map[int][]CalendarEntry),
	}

	for _, c := range clients {
		for i := range c.Projects {
			p := c.Projects[i]

			var anchor time.Time
			var ok bool
			if s.vocab.IsCompleted(p.Status) {
				anchor, ok = domain.NormalizeDate(p.CompletedOn)
			} else {
				anchor, ok = domain.NormalizeDate(p.Deadline)
			}
			if !ok || anchor.Year() != year || anchor.Month() != month {
				continue
			}

			cal.Days[anchor.Day()] = append(cal.Days[anchor.Day()], CalendarEntry{
				Project:    p,
				ClientName: c.Name,
				Badge:      domain.ProjectBadge(&p, s.vocab, today),
			})
		}
	}
	return cal, nil
}
