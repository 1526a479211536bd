package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rferraz/clientdesk/internal/db"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/repository"
)

type delegationService struct {
	clients repository.ClientRepo
	users   repository.UserRepo
	uow     db.UnitOfWork
	vocab   *domain.Vocabulary
}

func NewDelegationService(clients repository.ClientRepo, users repository.UserRepo, uow db.UnitOfWork, vocab *domain.Vocabulary) DelegationService {
	return &delegationService{clients: clients, users: users, uow: uow, vocab: vocab}
}

// Delegate copies a client and a selected subset of its projects into the
// target user's ownership. The pure copy construction happens first; the
// resulting record set is then written inside a single transaction so a
// failure partway cannot leave a half-delegated client behind.
func (s *delegationService) Delegate(ctx context.Context, session domain.Session, req DelegationRequest) (*DelegationResult, error) {
	source, err := s.clients.GetByID(ctx, req.SourceClientID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, req.TargetUserID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.NewName)
	if name == "" {
		name = source.Name
	}

	copySet, err := domain.BuildDelegatedCopy(session, source, req.ProjectIDs, req.TargetUserID, name, s.vocab)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	copySet.Client.CreatedAt = now
	copySet.Client.UpdatedAt = now
	for i := range copySet.Projects {
		copySet.Projects[i].CreatedAt = now
		copySet.Projects[i].UpdatedAt = now
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		clients := repository.NewSQLiteClientRepo(tx)
		projects := repository.NewSQLiteProjectRepo(tx)

		if err := clients.Create(ctx, &copySet.Client); err != nil {
			return err
		}
		for i := range copySet.Projects {
			if err := projects.Create(ctx, &copySet.Projects[i]); err != nil {
				return fmt.Errorf("copying project %q: %w", copySet.Projects[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persisting delegation: %w", err)
	}

	result := &DelegationResult{Client: &copySet.Client, Projects: copySet.Projects}
	if len(copySet.Projects) == 0 {
		result.Warning = "no projects were selected; only the client was copied"
	}
	return result, nil
}
