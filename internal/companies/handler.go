package companies

import (
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes attaches company routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/companies", h.create)
	rg.GET("/companies", h.list)
	rg.GET("/companies/:id", h.get)
	rg.PATCH("/companies/:id", h.update)
	rg.GET("/companies/:id/usage", h.usage)
	rg.PATCH("/companies/:id/subscription", h.updateSubscription)
}

type createCompanyRequest struct {
	Name       string `json:"name"`
	VATNumber  string `json:"vatNumber"`
	PlanName   string `json:"planName"`
	SeatsTotal int    `json:"seatsTotal"`
}

func (h *Handler) create(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Name == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}
	if req.SeatsTotal < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "seatsTotal must be positive", nil)
		return
	}

	company, sub, plan, err := h.Svc.Create(c.Request.Context(), CreateParams{
		Name:       req.Name,
		VATNumber:  req.VATNumber,
		PlanName:   req.PlanName,
		SeatsTotal: req.SeatsTotal,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNameTaken):
			respond.Error(c, http.StatusConflict, "conflict", "a company with this name already exists", nil)
		case errors.Is(err, ErrSeatsBelowPlan):
			respond.Error(c, http.StatusConflict, "conflict", "seats cannot be below the plan's included seats", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create company", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, CreatedResponse{
		CompanyID:  company.ID,
		Plan:       plan.Name,
		SeatsTotal: sub.SeatsTotal,
	})
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

	out, err := h.Svc.List(c.Request.Context(), c.Query("q"), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list companies", nil)
		return
	}

	resp := make([]CompanyResponse, 0, len(out))
	for _, company := range out {
		resp = append(resp, toResponse(company))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	detail, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch company", nil)
		}
		return
	}
	respond.OK(c, toDetailResponse(detail))
}

type updateCompanyRequest struct {
	Name      *string `json:"name"`
	VATNumber *string `json:"vatNumber"`
	IsActive  *bool   `json:"isActive"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	company, err := h.Svc.Update(c.Request.Context(), c.Param("id"), UpdateParams{
		Name:      req.Name,
		VATNumber: req.VATNumber,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		case errors.Is(err, ErrNameTaken):
			respond.Error(c, http.StatusConflict, "conflict", "a company with this name already exists", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update company", nil)
		}
		return
	}
	respond.OK(c, toResponse(company))
}

func (h *Handler) usage(c *gin.Context) {
	u, err := h.Svc.Usage(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch usage", nil)
		}
		return
	}
	respond.OK(c, u)
}

type updateSubscriptionRequest struct {
	SeatsTotal *int    `json:"seatsTotal"`
	Status     *string `json:"status"`
}

func (h *Handler) updateSubscription(c *gin.Context) {
	var req updateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	detail, err := h.Svc.UpdateSubscription(c.Request.Context(), c.Param("id"), SubscriptionUpdateParams{
		SeatsTotal: req.SeatsTotal,
		Status:     req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "company not found", nil)
		case errors.Is(err, ErrNoActiveSubscription):
			respond.Error(c, http.StatusNotFound, "not_found", "active subscription not found", nil)
		case errors.Is(err, ErrSeatsBelowActive):
			respond.Error(c, http.StatusConflict, "conflict", "seats cannot be below the number of active users", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update subscription", nil)
		}
		return
	}
	respond.OK(c, toDetailResponse(detail))
}
