package catalog

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

// RegisterPublicRoutes exposes browsing without authentication.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.Search)
	rg.GET("/services/categories", h.Categories)
	rg.GET("/services/:id", h.GetService)
}

// RegisterProviderRoutes expects the verified-provider middleware chain.
func (h *Handler) RegisterProviderRoutes(rg *gin.RouterGroup) {
	rg.POST("/services", h.CreateService)
	rg.GET("/services/mine", h.ListMyServices)
	rg.PUT("/services/:id", h.UpdateService)
	rg.DELETE("/services/:id", h.DeleteService)
}

func (h *Handler) Search(c *gin.Context) {
	q := SearchQuery{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		City:     c.Query("city"),
	}
	q.MinPrice, _ = strconv.ParseFloat(c.Query("minPrice"), 64)
	q.MaxPrice, _ = strconv.ParseFloat(c.Query("maxPrice"), 64)
	q.MinRating, _ = strconv.ParseFloat(c.Query("rating"), 64)
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get services")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"categories": h.service.Categories()})
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	view, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		if err == ErrServiceNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get service")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service": view})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please add all fields")
		return
	}

	providerID := c.GetInt64("user_id")

	svc, err := h.service.CreateService(c.Request.Context(), providerID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please add all fields")
		case ErrInvalidCategory:
			response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Invalid category")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) ListMyServices(c *gin.Context) {
	providerID := c.GetInt64("user_id")

	list, err := h.service.ListProviderServices(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get services")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"services": list})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	providerID := c.GetInt64("user_id")

	svc, err := h.service.UpdateService(c.Request.Context(), providerID, id, req)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	providerID := c.GetInt64("user_id")

	if err := h.service.DeleteService(c.Request.Context(), providerID, id); err != nil {
		h.writeMutationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Service removed"})
}

func (h *Handler) writeMutationError(c *gin.Context, err error) {
	switch err {
	case ErrServiceNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
	case ErrNotOwner:
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authorized to modify this service")
	case ErrInvalidCategory:
		response.Error(c, http.StatusBadRequest, "INVALID_CATEGORY", "Invalid category")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update service")
	}
}
