package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhaanFaizan/Safai-PAK/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects the verified-provider middleware chain on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.GetProviderStats)
}

func (h *Handler) GetProviderStats(c *gin.Context) {
	providerID := c.GetInt64("user_id")

	stats, err := h.service.GetProviderStats(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get dashboard stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}
