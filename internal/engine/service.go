package engine

import (
	"context"

	"daymark/internal/storage"
)

// Service bundles the per-identity repositories. The identity is injected
// explicitly; construction fails fast when it is empty rather than deferring
// the failure into the repositories.
type Service struct {
	identity  string
	tasks     *TaskRepo
	locations *LocationRepo
}

func NewService(ctx context.Context, store *storage.Store, identity string) (*Service, error) {
	if identity == "" {
		return nil, ErrSessionMissing
	}
	tasks, err := NewTaskRepo(ctx, store, identity)
	if err != nil {
		return nil, err
	}
	locations, err := NewLocationRepo(ctx, store, identity)
	if err != nil {
		return nil, err
	}
	return &Service{identity: identity, tasks: tasks, locations: locations}, nil
}

func (s *Service) Identity() string         { return s.identity }
func (s *Service) Tasks() *TaskRepo         { return s.tasks }
func (s *Service) Locations() *LocationRepo { return s.locations }

// Progress derives the completion percentage from the current task list.
// It is never stored, so it cannot drift from the collection.
func (s *Service) Progress() int {
	return Progress(s.tasks.List())
}
