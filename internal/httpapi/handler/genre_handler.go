package handler

import (
	"net/http"

	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/middleware"
	"ratehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/genres", h.List)
	authed.POST("/genres", middleware.RequireAdmin(), h.Create)
	authed.DELETE("/genres/:slug", middleware.RequireAdmin(), h.Delete)
}

func (h *GenreHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genres, total, err := h.svc.List(q.Search, q.Limit, q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]dto.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		results = append(results, dto.GenreFromModel(genre))
	}
	c.JSON(http.StatusOK, dto.NewPaginated(results, total))
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre, err := h.svc.Create(req.Name, req.Slug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.GenreFromModel(*genre))
}

func (h *GenreHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
