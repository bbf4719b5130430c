package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KhaanFaizan/Safai-PAK/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/providers/:id", h.GetProviderProfile)
}

func (h *Handler) GetProviderProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid provider ID")
		return
	}

	profile, err := h.service.GetProviderProfile(c.Request.Context(), id)
	if err != nil {
		if err == ErrProviderNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get provider")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"provider": profile})
}
