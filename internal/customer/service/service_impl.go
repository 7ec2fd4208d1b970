package service

import (
	"context"
	"strings"
	"time"

	"github.com/storelane/storelane/internal/customer/domain"
	"github.com/storelane/storelane/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const maxNameLength = 100

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:  p.Log.Named("customer.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.FindAll(ctx)
}

// Get collapses a malformed id and a missing record into ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (domain.Customer, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	customer, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *customer, nil
}

// GetOrCreateByEmail is not transactional: two concurrent calls for a new
// email race on the insert. The unique index on email turns the loser into a
// duplicate-key error, which falls back to a second lookup.
func (s *Service) GetOrCreateByEmail(ctx context.Context, name, email string) (domain.Customer, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.Customer{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	// Record constraints are enforced on creation only; a reused customer is
	// returned as stored.
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Customer{}, validation.New("customer", "Customer name is required")
	}
	if len(name) > maxNameLength {
		return domain.Customer{}, validation.New("customer", "Customer name must be at most 100 characters")
	}

	customer := domain.Customer{
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	err = s.repo.Insert(ctx, &customer)
	if err == nil {
		s.log.Info("customer created", zap.String("customer_id", customer.ID.Hex()))
		return customer, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return domain.Customer{}, err
	}

	existing, lookupErr := s.repo.FindByEmail(ctx, email)
	if lookupErr != nil {
		return domain.Customer{}, lookupErr
	}
	if existing == nil {
		return domain.Customer{}, err
	}
	return *existing, nil
}
