package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/internal/sduclouddb/domain"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/events"
)

// publishTimeout bounds a change event published after the request that
// caused it has finished.
const publishTimeout = 5 * time.Second

// Store is the persistence contract shared by every entity repository.
type Store[T any] interface {
	Table() string
	Create(ctx context.Context, e *T) error
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context, opts domain.ListOptions) ([]T, error)
	FindBy(ctx context.Context, column string, value any, opts domain.ListOptions) ([]T, error)
	Update(ctx context.Context, e *T) error
	SoftDelete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
	ParseLookupValue(column, raw string) (any, error)
	LookupColumns() []string
}

// EntityService wraps a Store and announces every committed change.
type EntityService[T any, P interface {
	*T
	domain.Entity
}] struct {
	store     Store[T]
	publisher events.Publisher
	logger    *zap.Logger
}

// NewEntityService creates a service for one entity type. A nil publisher
// disables change events.
func NewEntityService[T any, P interface {
	*T
	domain.Entity
}](store Store[T], publisher events.Publisher, logger *zap.Logger) *EntityService[T, P] {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntityService[T, P]{store: store, publisher: publisher, logger: logger}
}

func (s *EntityService[T, P]) Table() string {
	return s.store.Table()
}

// Create persists e; the store assigns its id and timestamps.
func (s *EntityService[T, P]) Create(ctx context.Context, e *T) error {
	if err := s.store.Create(ctx, e); err != nil {
		return err
	}
	s.announce(ctx, events.ActionCreated, P(e).Identity().ID)
	return nil
}

// LookupColumns lists the columns FindBy accepts.
func (s *EntityService[T, P]) LookupColumns() []string {
	return s.store.LookupColumns()
}

func (s *EntityService[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return s.store.GetByID(ctx, id)
}

func (s *EntityService[T, P]) List(ctx context.Context, opts domain.ListOptions) ([]T, error) {
	return s.store.List(ctx, opts)
}

// FindBy looks rows up by a column given its textual value.
func (s *EntityService[T, P]) FindBy(ctx context.Context, column, raw string, opts domain.ListOptions) ([]T, error) {
	value, err := s.store.ParseLookupValue(column, raw)
	if err != nil {
		return nil, err
	}
	return s.store.FindBy(ctx, column, value, opts)
}

// Update writes e back. e must carry an id.
func (s *EntityService[T, P]) Update(ctx context.Context, e *T) error {
	id := P(e).Identity().ID
	if id == 0 {
		return fmt.Errorf("%s: update without id: %w", s.store.Table(), domain.ErrNotFound)
	}
	if err := s.store.Update(ctx, e); err != nil {
		return err
	}
	s.announce(ctx, events.ActionUpdated, id)
	return nil
}

// Delete soft-deletes the row. It reports false when there was nothing to mark.
func (s *EntityService[T, P]) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.store.SoftDelete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.announce(ctx, events.ActionDeleted, id)
	return true, nil
}

func (s *EntityService[T, P]) Restore(ctx context.Context, id int64) (bool, error) {
	ok, err := s.store.Restore(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.announce(ctx, events.ActionRestored, id)
	return true, nil
}

func (s *EntityService[T, P]) announce(ctx context.Context, action string, id int64) {
	s.logger.Debug("entity changed",
		zap.String("table", s.store.Table()),
		zap.String("action", action),
		zap.Int64("id", id),
	)
	// the write is committed; a client going away must not drop the event
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	s.publisher.Publish(pubCtx, events.Event{Table: s.store.Table(), Action: action, ID: id})
}
