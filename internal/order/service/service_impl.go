package service

import (
	"context"
	"errors"
	"strings"
	"time"

	customerdomain "github.com/storelane/storelane/internal/customer/domain"
	itemdomain "github.com/storelane/storelane/internal/item/domain"
	"github.com/storelane/storelane/internal/order/domain"
	"github.com/storelane/storelane/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Repo      domain.Repository
	Customers customerdomain.Service
	Items     itemdomain.Repository
}

type Service struct {
	log       *zap.Logger
	repo      domain.Repository
	customers customerdomain.Service
	items     itemdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("order.service"),
		repo:      p.Repo,
		customers: p.Customers,
		items:     p.Items,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.OrderView, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := s.resolve(ctx, order)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Create validates the payload in a fixed order so the first failing field is
// the one reported: customer payload, email, name, item id, quantity.
func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.OrderView, error) {
	if req.Customer == nil {
		return domain.OrderView{}, validation.New("customer", "Customer data is required")
	}
	email := strings.TrimSpace(req.Customer.Email)
	if email == "" {
		return domain.OrderView{}, validation.New("email", "Customer email is required")
	}
	name := strings.TrimSpace(req.Customer.Name)
	if name == "" {
		return domain.OrderView{}, validation.New("name", "Customer name is required")
	}

	customer, err := s.customers.GetOrCreateByEmail(ctx, name, email)
	if err != nil {
		return domain.OrderView{}, err
	}

	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		return domain.OrderView{}, validation.New("itemId", "Item ID is required")
	}
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return domain.OrderView{}, validation.New("itemId", "Invalid item ID format")
	}
	item, err := s.items.FindByID(ctx, oid)
	if err != nil {
		return domain.OrderView{}, err
	}
	if item == nil {
		return domain.OrderView{}, validation.New("item", "Item not found")
	}

	if req.Quantity == nil {
		return domain.OrderView{}, validation.New("quantity", "Quantity is required")
	}
	if *req.Quantity < 1 {
		return domain.OrderView{}, validation.New("quantity", "Quantity must be a positive integer")
	}

	order := domain.Order{
		CustomerID: customer.ID,
		ItemID:     item.ID,
		Quantity:   *req.Quantity,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, &order); err != nil {
		return domain.OrderView{}, err
	}

	s.log.Info("order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("customer_id", customer.ID.Hex()),
		zap.String("item_id", item.ID.Hex()),
	)

	return domain.OrderView{
		ID:        order.ID,
		Customer:  &customer,
		Item:      item,
		Quantity:  order.Quantity,
		CreatedAt: order.CreatedAt,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.OrderView, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return domain.OrderView{}, domain.ErrNotFound
	}

	order, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return domain.OrderView{}, err
	}
	if order == nil {
		return domain.OrderView{}, domain.ErrNotFound
	}
	return s.resolve(ctx, *order)
}

func (s *Service) resolve(ctx context.Context, order domain.Order) (domain.OrderView, error) {
	view := domain.OrderView{
		ID:        order.ID,
		Quantity:  order.Quantity,
		CreatedAt: order.CreatedAt,
	}

	customer, err := s.customers.Get(ctx, order.CustomerID.Hex())
	if err == nil {
		view.Customer = &customer
	} else if !errors.Is(err, customerdomain.ErrNotFound) {
		return domain.OrderView{}, err
	}

	item, err := s.items.FindByID(ctx, order.ItemID)
	if err != nil {
		return domain.OrderView{}, err
	}
	view.Item = item

	return view, nil
}
