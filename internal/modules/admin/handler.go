package admin

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

// RegisterRoutes expects an admin-only middleware chain on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/providers/unverified", h.ListUnverifiedProviders)
	rg.PUT("/admin/providers/:id/verify", h.VerifyProvider)
	rg.DELETE("/admin/providers/:id/reject", h.RejectProvider)

	rg.GET("/users", h.ListUsers)
	rg.PUT("/users/:id/verify", h.SetVerified)
	rg.PUT("/users/:id/suspend", h.ToggleSuspension)
}

func (h *Handler) ListUnverifiedProviders(c *gin.Context) {
	providers, err := h.service.ListUnverifiedProviders(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get providers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"providers": providers})
}

func (h *Handler) VerifyProvider(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	provider, err := h.service.VerifyProvider(c.Request.Context(), id)
	if err != nil {
		h.writeProviderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"provider": provider})
}

func (h *Handler) RejectProvider(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	if err := h.service.RejectProvider(c.Request.Context(), id); err != nil {
		h.writeProviderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Provider rejected"})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) SetVerified(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	var req SetVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsVerified == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "isVerified is required")
		return
	}

	user, err := h.service.SetVerified(c.Request.Context(), id, *req.IsVerified)
	if err != nil {
		h.writeProviderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) ToggleSuspension(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}

	user, err := h.service.ToggleSuspension(c.Request.Context(), id)
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeProviderError(c *gin.Context, err error) {
	switch err {
	case ErrProviderNotFound, ErrNotProvider:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update provider")
	}
}
