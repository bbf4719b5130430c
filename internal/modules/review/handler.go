package review

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

// RegisterRoutes takes both groups because listing is public while creation
// requires an authenticated customer. Either group may be nil.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/reviews/provider/:id", h.GetProviderReviews)
	}
	if protected != nil {
		protected.POST("/reviews", h.CreateReview)
	}
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please add all fields")
		return
	}

	userID := c.GetInt64("user_id")

	review, err := h.service.CreateReview(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please add all fields")
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrNotBookingOwner:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authorized to review this booking")
		case ErrBookingNotDone:
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Can only review completed bookings")
		case ErrDuplicateReview:
			response.Error(c, http.StatusBadRequest, "DUPLICATE_REVIEW", "Review already submitted for this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": review})
}

func (h *Handler) GetProviderReviews(c *gin.Context) {
	providerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || providerID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid provider ID")
		return
	}

	list, err := h.service.GetProviderReviews(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": list})
}
