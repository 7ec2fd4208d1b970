package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	authdomain "github.com/storelane/storelane/internal/auth/domain"
	"github.com/storelane/storelane/internal/config"
	customerdomain "github.com/storelane/storelane/internal/customer/domain"
	itemdomain "github.com/storelane/storelane/internal/item/domain"
	orderdomain "github.com/storelane/storelane/internal/order/domain"
	"github.com/storelane/storelane/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeItemService struct {
	items map[string]itemdomain.Item
}

func newFakeItemService() *fakeItemService {
	return &fakeItemService{items: make(map[string]itemdomain.Item)}
}

func (f *fakeItemService) List(ctx context.Context) ([]itemdomain.Item, error) {
	out := make([]itemdomain.Item, 0, len(f.items))
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeItemService) Get(ctx context.Context, id string) (itemdomain.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return itemdomain.Item{}, itemdomain.ErrNotFound
	}
	return item, nil
}

func (f *fakeItemService) Create(ctx context.Context, req itemdomain.CreateItemRequest) (itemdomain.Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return itemdomain.Item{}, validation.New("name", "Name is required")
	}
	item := itemdomain.Item{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	f.items[item.ID.Hex()] = item
	return item, nil
}

func (f *fakeItemService) Update(ctx context.Context, id string, req itemdomain.UpdateItemRequest, partial bool) (itemdomain.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return itemdomain.Item{}, itemdomain.ErrNotFound
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeItemService) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return itemdomain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeCustomerService struct{}

func (fakeCustomerService) List(ctx context.Context) ([]customerdomain.Customer, error) {
	return []customerdomain.Customer{}, nil
}

func (fakeCustomerService) Get(ctx context.Context, id string) (customerdomain.Customer, error) {
	return customerdomain.Customer{}, customerdomain.ErrNotFound
}

func (fakeCustomerService) GetOrCreateByEmail(ctx context.Context, name, email string) (customerdomain.Customer, error) {
	return customerdomain.Customer{ID: primitive.NewObjectID(), Name: name, Email: email}, nil
}

type fakeOrderService struct {
	created *orderdomain.CreateOrderRequest
}

func (f *fakeOrderService) List(ctx context.Context) ([]orderdomain.OrderView, error) {
	return []orderdomain.OrderView{}, nil
}

func (f *fakeOrderService) Get(ctx context.Context, id string) (orderdomain.OrderView, error) {
	return orderdomain.OrderView{}, orderdomain.ErrNotFound
}

func (f *fakeOrderService) Create(ctx context.Context, req orderdomain.CreateOrderRequest) (orderdomain.OrderView, error) {
	f.created = &req
	if req.Customer == nil {
		return orderdomain.OrderView{}, validation.New("customer", "Customer data is required")
	}
	return orderdomain.OrderView{ID: primitive.NewObjectID(), Quantity: *req.Quantity}, nil
}

type fakeAuthService struct {
	resolveErr error
	loginErr   error
	user       authdomain.User
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{
		user: authdomain.User{ID: primitive.NewObjectID(), Username: "ann", Email: "ann@x.com"},
	}
}

func (f *fakeAuthService) Register(ctx context.Context, req authdomain.RegisterRequest) (authdomain.AuthResult, error) {
	return authdomain.AuthResult{
		User:   f.user,
		Tokens: authdomain.TokenPair{Access: "access-token", Refresh: "refresh-token"},
	}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req authdomain.LoginRequest) (authdomain.AuthResult, error) {
	if f.loginErr != nil {
		return authdomain.AuthResult{}, f.loginErr
	}
	return authdomain.AuthResult{
		User:   f.user,
		Tokens: authdomain.TokenPair{Access: "access-token", Refresh: "refresh-token"},
	}, nil
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken != "refresh-token" {
		return "", authdomain.ErrInvalidToken
	}
	return "new-access-token", nil
}

func (f *fakeAuthService) ResolveUser(ctx context.Context, accessToken string) (authdomain.User, error) {
	if f.resolveErr != nil {
		return authdomain.User{}, f.resolveErr
	}
	return f.user, nil
}

type testServer struct {
	*Server
	items *fakeItemService
	auth  *fakeAuthService
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	items := newFakeItemService()
	auth := newFakeAuthService()
	srv := NewServer(ServerParams{
		Gin:         NewEngine(zap.NewNop()),
		Cfg:         config.Config{AppName: "storelane-test"},
		Log:         zap.NewNop(),
		ItemSvc:     items,
		CustomerSvc: fakeCustomerService{},
		OrderSvc:    &fakeOrderService{},
		AuthSvc:     auth,
	})
	srv.RegisterRoutes()
	return testServer{Server: srv, items: items, auth: auth}
}

func newRequest(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func (ts testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer access-token")
	rec := httptest.NewRecorder()
	ts.Engine().ServeHTTP(rec, req)
	return rec
}
