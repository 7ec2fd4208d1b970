package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/storelane/storelane/internal/order/domain"
)

type orderCustomerPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createOrderRequest struct {
	Customer *orderCustomerPayload `json:"customer"`
	ItemID   string                `json:"itemId"`
	Quantity *int                  `json:"quantity"`
}

func (s *Server) ListOrders(c *gin.Context) {
	orders, err := s.orderSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) GetOrder(c *gin.Context) {
	order, err := s.orderSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidBodyError())
		return
	}

	domainReq := orderdomain.CreateOrderRequest{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	}
	if req.Customer != nil {
		domainReq.Customer = &orderdomain.OrderCustomer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
		}
	}

	order, err := s.orderSvc.Create(c.Request.Context(), domainReq)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}
