package clinicas_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/dentalanalytics/clinicas/clinicas"
	"github.com/dentalanalytics/clinicas/store"
)

type countingSessions struct {
	acquired   int
	released   int
	acquireErr error
	releaseErr error
}

func (c *countingSessions) Acquire(ctx context.Context) (*store.Handle, error) {
	if c.acquireErr != nil {
		return nil, c.acquireErr
	}
	c.acquired++
	return store.NewHandle(nil, func(ctx context.Context) error {
		c.released++
		return c.releaseErr
	}), nil
}

func (c *countingSessions) Close(ctx context.Context) error {
	return nil
}

type stubRepository struct {
	clinicas.Repository
	err error
}

func (s *stubRepository) List(ctx context.Context, filter *clinicas.Filter) ([]clinicas.Clinica, error) {
	return []clinicas.Clinica{{"nomeClinica": "Sorriso"}}, s.err
}

func (s *stubRepository) Create(ctx context.Context, clinica clinicas.Clinica) (interface{}, error) {
	if s.err != nil {
		return nil, s.err
	}
	return primitive.NewObjectID(), nil
}

func (s *stubRepository) Update(ctx context.Context, id string, update clinicas.Clinica) (int64, error) {
	return 1, s.err
}

var _ = Describe("Service", func() {
	var sessions *countingSessions
	var repo *stubRepository
	var service clinicas.Service

	BeforeEach(func() {
		sessions = &countingSessions{}
		repo = &stubRepository{}
		service = clinicas.NewServiceWithRepository(sessions, func(collection *mongo.Collection) clinicas.Repository {
			return repo
		}, zap.NewNop().Sugar())
	})

	It("releases the handle after a successful operation", func() {
		list, err := service.List(context.Background(), &clinicas.Filter{})
		Expect(err).ToNot(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(sessions.acquired).To(Equal(1))
		Expect(sessions.released).To(Equal(1))
	})

	It("releases the handle after a failed operation", func() {
		repo.err = errors.New("connection reset")

		_, err := service.Create(context.Background(), clinicas.Clinica{})
		Expect(err).To(MatchError("connection reset"))
		Expect(sessions.released).To(Equal(1))
	})

	It("acquires a new handle for every call", func() {
		for i := 0; i < 3; i++ {
			_, err := service.Update(context.Background(), primitive.NewObjectID().Hex(), clinicas.Clinica{"nomeClinica": "x"})
			Expect(err).ToNot(HaveOccurred())
		}
		Expect(sessions.acquired).To(Equal(3))
		Expect(sessions.released).To(Equal(3))
	})

	It("returns the acquire error without releasing", func() {
		sessions.acquireErr = errors.New("server selection error")

		_, err := service.List(context.Background(), nil)
		Expect(err).To(MatchError("server selection error"))
		Expect(sessions.released).To(BeZero())
	})

	It("ignores release failures", func() {
		sessions.releaseErr = errors.New("disconnect failed")

		modified, err := service.Update(context.Background(), primitive.NewObjectID().Hex(), clinicas.Clinica{})
		Expect(err).ToNot(HaveOccurred())
		Expect(modified).To(Equal(int64(1)))
		Expect(sessions.released).To(Equal(1))
	})

	It("releases the handle when the identifier is malformed", func() {
		service = clinicas.NewServiceWithRepository(sessions, clinicas.NewRepository, zap.NewNop().Sugar())

		_, err := service.Get(context.Background(), "0001")
		Expect(err).To(HaveOccurred())
		_, err = service.Delete(context.Background(), "0001")
		Expect(err).To(HaveOccurred())
		Expect(sessions.acquired).To(Equal(2))
		Expect(sessions.released).To(Equal(2))
	})
})
