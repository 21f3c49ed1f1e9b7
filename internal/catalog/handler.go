package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"beautips-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the catalog repository.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.listProducts)
}

func (h *Handler) listProducts(c *gin.Context) {
	var (
		products []Product
		err      error
	)
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, convErr := strconv.Atoi(raw)
		if convErr != nil || maxPrice < 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "max_price must be a non-negative integer", nil)
			return
		}
		products, err = h.Repo.ListWithinBudget(c.Request.Context(), maxPrice)
	} else {
		products, err = h.Repo.ListAll(c.Request.Context())
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list products", nil)
		return
	}

	respond.OK(c, gin.H{"products": products, "count": len(products)})
}
