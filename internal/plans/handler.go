package plans

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/McFranco99/ToolHR/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches plan routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/plans", h.create)
	rg.GET("/plans", h.list)
}

type createPlanRequest struct {
	Name          string `json:"name"`
	IncludedSeats int    `json:"includedSeats"`
}

func (h *Handler) create(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Name == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}
	if req.IncludedSeats < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "includedSeats must be positive", nil)
		return
	}

	plan, err := h.Svc.Create(c.Request.Context(), req.Name, req.IncludedSeats)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameTaken):
			respond.Error(c, http.StatusConflict, "conflict", "a plan with this name already exists", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create plan", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, plan)
}

func (h *Handler) list(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list plans", nil)
		return
	}
	if out == nil {
		out = []Plan{}
	}
	respond.OK(c, out)
}
