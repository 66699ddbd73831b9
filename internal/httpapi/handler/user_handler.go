package handler

import (
	"net/http"

	"ratehub/internal/httpapi/dto"
	"ratehub/internal/httpapi/middleware"
	"ratehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// RegisterRoutes: /users/me is reachable by any authenticated subject,
// everything else on user records is admin-only.
func (h *UserHandler) RegisterRoutes(authed *gin.RouterGroup) {
	authed.GET("/users/me", h.GetMe)
	authed.PATCH("/users/me", h.UpdateMe)

	admin := authed.Group("/users", middleware.RequireAdmin())
	admin.GET("", h.List)
	admin.POST("", h.Create)
	admin.GET("/:username", h.Get)
	admin.PATCH("/:username", h.Update)
	admin.DELETE("/:username", h.Delete)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.UserFromModel(*user))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateSelfDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.UpdateSelf(middleware.CurrentUser(c), service.UserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserFromModel(*user))
}

func (h *UserHandler) List(c *gin.Context) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, total, err := h.svc.List(q.Search, q.Limit, q.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	results := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		results = append(results, dto.UserFromModel(user))
	}
	c.JSON(http.StatusOK, dto.NewPaginated(results, total))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.Create(service.UserInput{
		Username:  &req.Username,
		Email:     &req.Email,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.UserFromModel(*user))
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.svc.GetByUsername(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserFromModel(*user))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.Update(c.Param("username"), service.UserInput{
		Username:  req.Username,
		Email:     req.Email,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Password:  req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserFromModel(*user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
