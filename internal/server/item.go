package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	itemdomain "github.com/storelane/storelane/internal/item/domain"
)

type createItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *Server) ListItems(c *gin.Context) {
	items, err := s.itemSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (s *Server) GetItem(c *gin.Context) {
	item, err := s.itemSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidBodyError())
		return
	}

	item, err := s.itemSvc.Create(c.Request.Context(), itemdomain.CreateItemRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem requires name; omitted optional fields are left as stored.
func (s *Server) UpdateItem(c *gin.Context) {
	s.updateItem(c, false)
}

// PatchItem merges only the provided fields.
func (s *Server) PatchItem(c *gin.Context) {
	s.updateItem(c, true)
}

func (s *Server) updateItem(c *gin.Context, partial bool) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidBodyError())
		return
	}

	item, err := s.itemSvc.Update(c.Request.Context(), c.Param("id"), itemdomain.UpdateItemRequest{
		Name:        req.Name,
		Description: req.Description,
	}, partial)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) DeleteItem(c *gin.Context) {
	if err := s.itemSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
