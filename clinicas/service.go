package clinicas

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dentalanalytics/clinicas/store"
)

type RepositoryFactory func(collection *mongo.Collection) Repository

func NewService(sessions store.Sessions, logger *zap.SugaredLogger) (Service, error) {
	return NewServiceWithRepository(sessions, NewRepository, logger), nil
}

func NewServiceWithRepository(sessions store.Sessions, newRepository RepositoryFactory, logger *zap.SugaredLogger) Service {
	return &service{
		sessions:      sessions,
		newRepository: newRepository,
		logger:        logger,
	}
}

// service acquires a database handle for every call and releases it once
// the single repository operation has completed, whatever its outcome.
type service struct {
	sessions      store.Sessions
	newRepository RepositoryFactory
	logger        *zap.SugaredLogger
}

func (s *service) List(ctx context.Context, filter *Filter) (list []Clinica, err error) {
	err = s.withRepository(ctx, func(repo Repository) error {
		list, err = repo.List(ctx, filter)
		return err
	})
	return list, err
}

func (s *service) Get(ctx context.Context, id string) (clinica Clinica, err error) {
	err = s.withRepository(ctx, func(repo Repository) error {
		clinica, err = repo.Get(ctx, id)
		return err
	})
	return clinica, err
}

func (s *service) Create(ctx context.Context, clinica Clinica) (insertedId interface{}, err error) {
	err = s.withRepository(ctx, func(repo Repository) error {
		insertedId, err = repo.Create(ctx, clinica)
		return err
	})
	return insertedId, err
}

func (s *service) Update(ctx context.Context, id string, update Clinica) (modifiedCount int64, err error) {
	err = s.withRepository(ctx, func(repo Repository) error {
		modifiedCount, err = repo.Update(ctx, id, update)
		return err
	})
	return modifiedCount, err
}

func (s *service) Delete(ctx context.Context, id string) (deletedCount int64, err error) {
	err = s.withRepository(ctx, func(repo Repository) error {
		deletedCount, err = repo.Delete(ctx, id)
		return err
	})
	return deletedCount, err
}

func (s *service) withRepository(ctx context.Context, fn func(repo Repository) error) error {
	handle, err := s.sessions.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// The request context may already be cancelled, the handle must still be returned
		if err := handle.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warnw("unable to release database handle", zap.Error(err))
		}
	}()

	return fn(s.newRepository(handle.Collection))
}
