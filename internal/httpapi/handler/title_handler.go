package handler

import (
	"net/http"
	"strconv"

	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/middleware"
	"ratehub/internal/httpapi/repository"
	"ratehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type TitleHandler struct {
	svc service.TitleService
}

func NewTitleHandler(svc service.TitleService) *TitleHandler {
	return &TitleHandler{svc: svc}
}

func (h *TitleHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/titles", h.List)
	public.GET("/titles/:title_id", h.Get)
	authed.POST("/titles", middleware.RequireAdmin(), h.Create)
	authed.PATCH("/titles/:title_id", middleware.RequireAdmin(), h.Update)
	authed.DELETE("/titles/:title_id", middleware.RequireAdmin(), h.Delete)
}

func titleIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("title_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid title id"})
		return 0, false
	}
	return id, true
}

func (h *TitleHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	year, _ := strconv.Atoi(c.Query("year"))

	filter := repository.TitleFilter{
		CategorySlug: c.Query("category"),
		GenreSlug:    c.Query("genre"),
		Name:         c.Query("name"),
		Year:         year,
		Limit:        q.Limit,
		Offset:       q.Offset,
	}

	titles, total, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginated(titles, total))
}

func (h *TitleHandler) Get(c *gin.Context) {
	id, ok := titleIDParam(c)
	if !ok {
		return
	}
	title, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) Create(c *gin.Context) {
	var req dto.CreateTitleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, title)
}

func (h *TitleHandler) Update(c *gin.Context) {
	id, ok := titleIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateTitleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

func (h *TitleHandler) Delete(c *gin.Context) {
	id, ok := titleIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
