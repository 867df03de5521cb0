package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/McFranco99/ToolHR/internal/licensing"
	"github.com/McFranco99/ToolHR/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches user routes to the router group. Users live under
// their company.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/companies/:id/users", h.create)
	rg.GET("/companies/:id/users", h.list)
	rg.PATCH("/companies/:id/users/:userId", h.setActive)
}

type createUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

func (h *Handler) create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	user, err := h.Svc.Create(c.Request.Context(), c.Param("id"), CreateParams{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCompanyNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		case errors.Is(err, ErrEmailTaken):
			respond.Error(c, http.StatusConflict, "conflict", "email already registered", nil)
		case errors.Is(err, licensing.ErrSeatLimitReached):
			respond.Error(c, http.StatusConflict, "conflict", "seat limit reached, purchase additional seats", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "email and fullName are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create user", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, user)
}

type updateUserRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *Handler) setActive(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "isActive is required", nil)
		return
	}

	user, err := h.Svc.SetActive(c.Request.Context(), c.Param("id"), c.Param("userId"), *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, ErrCompanyNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		case errors.Is(err, licensing.ErrSeatLimitReached):
			respond.Error(c, http.StatusConflict, "conflict", "seat limit reached, purchase additional seats", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update user", nil)
		}
		return
	}
	respond.OK(c, user)
}

func (h *Handler) list(c *gin.Context) {
	limit := 50
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	out, err := h.Svc.List(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrCompanyNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list users", nil)
		}
		return
	}
	if out == nil {
		out = []User{}
	}
	respond.OK(c, out)
}
