package handler

import (
	"net/http"
	"strconv"

	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/middleware"
	"ratehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// RegisterRoutes: reads are open; create needs authentication; edits are
// checked against authorship in the service.
func (h *ReviewHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/titles/:title_id/reviews", h.List)
	public.GET("/titles/:title_id/reviews/:review_id", h.Get)
	authed.POST("/titles/:title_id/reviews", h.Create)
	authed.PATCH("/titles/:title_id/reviews/:review_id", h.Update)
	authed.DELETE("/titles/:title_id/reviews/:review_id", h.Delete)
}

func reviewIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return 0, false
	}
	return id, true
}

func (h *ReviewHandler) List(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviews, total, err := h.svc.ListByTitle(titleID, q.Limit, q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginated(reviews, total))
}

func (h *ReviewHandler) Get(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	review, err := h.svc.Get(titleID, reviewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.svc.Create(c.Request.Context(), titleID, middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.svc.Update(c.Request.Context(), titleID, reviewID, middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), titleID, reviewID, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
