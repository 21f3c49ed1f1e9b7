package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"beautips-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quiz/recommendations", h.generateRecommendations)
	rg.POST("/admin/reindex", h.rebuildIndex)
}

func (h *Handler) generateRecommendations(c *gin.Context) {
	var questionnaire map[string]any
	if err := c.ShouldBindJSON(&questionnaire); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be a JSON object", nil)
		return
	}

	// The pipeline degrades internally instead of erroring, so this is
	// always a 200 with either recommendations or a degraded object.
	result := h.Svc.GenerateRecommendations(c.Request.Context(), questionnaire)
	respond.OK(c, result)
}

func (h *Handler) rebuildIndex(c *gin.Context) {
	count, err := h.Svc.RebuildIndex(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to rebuild index", nil)
		return
	}
	respond.OK(c, gin.H{"indexedProducts": count})
}
