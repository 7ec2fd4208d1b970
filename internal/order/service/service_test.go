package service

import (
	"context"
	"testing"
	"time"

	customerdomain "github.com/storelane/storelane/internal/customer/domain"
	itemdomain "github.com/storelane/storelane/internal/item/domain"
	"github.com/storelane/storelane/internal/order/domain"
	"github.com/storelane/storelane/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	orders map[primitive.ObjectID]domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]domain.Order)}
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order *domain.Order) error {
	order.ID = primitive.NewObjectID()
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(f.orders))
	for _, order := range f.orders {
		out = append(out, order)
	}
	return out, nil
}

type fakeCustomerService struct {
	customers map[string]customerdomain.Customer // keyed by email
	creates   int
}

func newFakeCustomerService() *fakeCustomerService {
	return &fakeCustomerService{customers: make(map[string]customerdomain.Customer)}
}

func (f *fakeCustomerService) List(ctx context.Context) ([]customerdomain.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerService) Get(ctx context.Context, id string) (customerdomain.Customer, error) {
	for _, customer := range f.customers {
		if customer.ID.Hex() == id {
			return customer, nil
		}
	}
	return customerdomain.Customer{}, customerdomain.ErrNotFound
}

func (f *fakeCustomerService) GetOrCreateByEmail(ctx context.Context, name, email string) (customerdomain.Customer, error) {
	if existing, ok := f.customers[email]; ok {
		return existing, nil
	}
	f.creates++
	customer := customerdomain.Customer{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	f.customers[email] = customer
	return customer, nil
}

type fakeItemRepo struct {
	items map[primitive.ObjectID]itemdomain.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[primitive.ObjectID]itemdomain.Item)}
}

func (f *fakeItemRepo) add() itemdomain.Item {
	item := itemdomain.Item{ID: primitive.NewObjectID(), Name: "widget", CreatedAt: time.Now().UTC()}
	f.items[item.ID] = item
	return item
}

func (f *fakeItemRepo) Insert(ctx context.Context, item *itemdomain.Item) error {
	item.ID = primitive.NewObjectID()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*itemdomain.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeItemRepo) FindAll(ctx context.Context) ([]itemdomain.Item, error) { return nil, nil }

func (f *fakeItemRepo) Replace(ctx context.Context, item *itemdomain.Item) error { return nil }

func (f *fakeItemRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.items[id]
	delete(f.items, id)
	return ok, nil
}

type fixture struct {
	svc       domain.Service
	orders    *fakeOrderRepo
	customers *fakeCustomerService
	items     *fakeItemRepo
}

func newFixture() fixture {
	orders := newFakeOrderRepo()
	customers := newFakeCustomerService()
	items := newFakeItemRepo()
	svc := New(Params{
		Log:       zap.NewNop(),
		Repo:      orders,
		Customers: customers,
		Items:     items,
	})
	return fixture{svc: svc, orders: orders, customers: customers, items: items}
}

func quantity(n int) *int { return &n }

func fieldError(t *testing.T, err error, field, message string) {
	t.Helper()
	var fieldErrs validation.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, message, fieldErrs[field])
}

func TestCreateOrder_ResolvesReferences(t *testing.T) {
	f := newFixture()
	item := f.items.add()

	order, err := f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann", Email: "ann@x.com"},
		ItemID:   item.ID.Hex(),
		Quantity: quantity(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, order.Quantity)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "ann@x.com", order.Customer.Email)
	require.NotNil(t, order.Item)
	assert.Equal(t, item.ID, order.Item.ID)
}

func TestCreateOrder_ReusesCustomerByEmail(t *testing.T) {
	f := newFixture()
	item := f.items.add()

	req := domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann", Email: "ann@x.com"},
		ItemID:   item.ID.Hex(),
		Quantity: quantity(1),
	}
	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	req.Customer.Name = "Someone Else"
	_, err = f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, f.customers.creates)
}

func TestCreateOrder_MissingFields(t *testing.T) {
	f := newFixture()
	item := f.items.add()

	_, err := f.svc.Create(context.Background(), domain.CreateOrderRequest{})
	fieldError(t, err, "customer", "Customer data is required")

	_, err = f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann"},
	})
	fieldError(t, err, "email", "Customer email is required")

	_, err = f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Email: "ann@x.com"},
	})
	fieldError(t, err, "name", "Customer name is required")

	_, err = f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann", Email: "ann@x.com"},
	})
	fieldError(t, err, "itemId", "Item ID is required")

	_, err = f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann", Email: "ann@x.com"},
		ItemID:   item.ID.Hex(),
	})
	fieldError(t, err, "quantity", "Quantity is required")
}

func TestCreateOrder_ItemErrorsAreDistinct(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann", Email: "ann@x.com"},
		ItemID:   "zzz",
		Quantity: quantity(1),
	})
	fieldError(t, err, "itemId", "Invalid item ID format")

	_, err = f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann", Email: "ann@x.com"},
		ItemID:   primitive.NewObjectID().Hex(),
		Quantity: quantity(1),
	})
	fieldError(t, err, "item", "Item not found")
}

func TestCreateOrder_RejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture()
	item := f.items.add()

	_, err := f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann", Email: "ann@x.com"},
		ItemID:   item.ID.Hex(),
		Quantity: quantity(0),
	})
	fieldError(t, err, "quantity", "Quantity must be a positive integer")
}

func TestGetOrder_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Get(context.Background(), "bad-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrders_ToleratesDanglingItem(t *testing.T) {
	f := newFixture()
	item := f.items.add()

	created, err := f.svc.Create(context.Background(), domain.CreateOrderRequest{
		Customer: &domain.OrderCustomer{Name: "Ann", Email: "ann@x.com"},
		ItemID:   item.ID.Hex(),
		Quantity: quantity(2),
	})
	require.NoError(t, err)

	_, err = f.items.Delete(context.Background(), item.ID)
	require.NoError(t, err)

	views, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, created.ID, views[0].ID)
	assert.Nil(t, views[0].Item)
	assert.NotNil(t, views[0].Customer)
}
