package handler

import (
	"net/http"
	"strconv"

	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/middleware"
	"ratehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	base := "/titles/:title_id/reviews/:review_id/comments"
	public.GET(base, h.List)
	public.GET(base+"/:comment_id", h.Get)
	authed.POST(base, h.Create)
	authed.PATCH(base+"/:comment_id", h.Update)
	authed.DELETE(base+"/:comment_id", h.Delete)
}

func commentIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return 0, false
	}
	return id, true
}

func (h *CommentHandler) List(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comments, total, err := h.svc.ListByReview(titleID, reviewID, q.Limit, q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginated(comments, total))
}

func (h *CommentHandler) Get(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}
	commentID, ok := commentIDParam(c)
	if !ok {
		return
	}

	comment, err := h.svc.Get(titleID, reviewID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Create(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}
	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.Create(titleID, reviewID, middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}
	commentID, ok := commentIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.Update(titleID, reviewID, commentID, middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	titleID, ok := titleIDParam(c)
	if !ok {
		return
	}
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}
	commentID, ok := commentIDParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(titleID, reviewID, commentID, middleware.CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
