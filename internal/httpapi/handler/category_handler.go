package handler

import (
	"net/http"

	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/middleware"
	"ratehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// RegisterRoutes: reads are open to everyone, writes are admin-only.
func (h *CategoryHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/categories", h.List)
	authed.POST("/categories", middleware.RequireAdmin(), h.Create)
	authed.DELETE("/categories/:slug", middleware.RequireAdmin(), h.Delete)
}

func (h *CategoryHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, total, err := h.svc.List(q.Search, q.Limit, q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		results = append(results, dto.CategoryFromModel(category))
	}
	c.JSON(http.StatusOK, dto.NewPaginated(results, total))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.svc.Create(req.Name, req.Slug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryFromModel(*category))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
