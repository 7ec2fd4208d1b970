package service

import (
	"context"
	"strings"
	"time"

	"github.com/storelane/storelane/internal/item/domain"
	"github.com/storelane/storelane/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
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
		log:  p.Log.Named("item.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.FindAll(ctx)
}

// Get collapses a malformed id and a missing record into ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (domain.Item, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return domain.Item{}, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return domain.Item{}, err
	}
	if item == nil {
		return domain.Item{}, domain.ErrNotFound
	}
	return *item, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return domain.Item{}, err
	}

	item := domain.Item{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, &item); err != nil {
		return domain.Item{}, err
	}

	s.log.Info("item created", zap.String("item_id", item.ID.Hex()))
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateItemRequest, partial bool) (domain.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}

	if !partial && req.Name == nil {
		return domain.Item{}, validation.New("name", "Name is required")
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return domain.Item{}, err
		}
		item.Name = name
	}
	if req.Description != nil {
		item.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.Replace(ctx, &item); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrNotFound
	}

	found, err := s.repo.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}

	s.log.Info("item deleted", zap.String("item_id", oid.Hex()))
	return nil
}

func validateName(name string) error {
	if name == "" {
		return validation.New("name", "Name is required")
	}
	if len(name) > maxNameLength {
		return validation.New("name", "Name must be at most 100 characters")
	}
	return nil
}
