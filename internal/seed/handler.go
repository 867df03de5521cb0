package seed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/McFranco99/ToolHR/internal/shared/server/respond"
)

// Handler exposes the seed endpoint.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the seed route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/seed", h.apply)
}

func (h *Handler) apply(c *gin.Context) {
	result, err := h.Svc.Apply(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to seed demo data", nil)
		return
	}
	respond.OK(c, result)
}
