package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	authdomain "github.com/storelane/storelane/internal/auth/domain"
	"github.com/storelane/storelane/internal/config"
	customerdomain "github.com/storelane/storelane/internal/customer/domain"
	itemdomain "github.com/storelane/storelane/internal/item/domain"
	orderdomain "github.com/storelane/storelane/internal/order/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(MetricsMiddleware())
	r.Use(ErrorHandlingMiddleware())

	// Exact paths only: with redirects enabled an unsupported method on
	// /orders/ would bounce to /:id instead of returning 405.
	r.RedirectTrailingSlash = false
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	log         *zap.Logger
	itemSvc     itemdomain.Service
	customerSvc customerdomain.Service
	orderSvc    orderdomain.Service
	authSvc     authdomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	Log         *zap.Logger
	ItemSvc     itemdomain.Service
	CustomerSvc customerdomain.Service
	OrderSvc    orderdomain.Service
	AuthSvc     authdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		log:         p.Log.Named("http.server"),
		itemSvc:     p.ItemSvc,
		customerSvc: p.CustomerSvc,
		orderSvc:    p.OrderSvc,
		authSvc:     p.AuthSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// RegisterRoutes wires the API surface. Items live at the root of the API,
// matching the original URL layout.
func (s *Server) RegisterRoutes() {
	auth := s.engine.Group("/auth")
	auth.POST("/register/", s.Register)
	auth.POST("/login/", s.Login)
	auth.POST("/refresh/", s.Refresh)

	items := s.engine.Group("/", s.AuthRequired())
	items.GET("", s.ListItems)
	items.POST("", s.CreateItem)
	items.GET(":id", s.GetItem)
	items.PUT(":id", s.UpdateItem)
	items.PATCH(":id", s.PatchItem)
	items.DELETE(":id", s.DeleteItem)

	orders := s.engine.Group("/orders", s.AuthRequired())
	orders.GET("/", s.ListOrders)
	orders.POST("/", s.CreateOrder)
	orders.GET("/:id", s.GetOrder)

	customers := s.engine.Group("/customers", s.AuthRequired())
	customers.GET("/", s.ListCustomers)
	customers.GET("/:id", s.GetCustomerByID)
}

func RunHTTP(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
