package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
	"github.com/alexh7799/coderr/internal/server/http/dto"
)

// ReviewHandler manages review endpoints.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// List handles GET /api/reviews/.
func (h *ReviewHandler) List(c *gin.Context) {
	filter, err := parseReviewQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}

	reviews, err := h.facade.Reviews(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, toReviewResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/reviews/.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), CurrentUserID(c), req.BusinessUser, req.Rating, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(*review))
}

// Get handles GET /api/reviews/:pk/.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid review id"})
		return
	}

	review, err := h.facade.Review(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(*review))
}

// Update handles PATCH /api/reviews/:pk/. Only rating and description
// may be patched.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid review id"})
		return
	}

	var req dto.UpdateReviewRequest
	if err := bindPatch(c, &req, "rating", "description"); err != nil {
		writeError(c, err)
		return
	}

	review, err := h.facade.UpdateReview(c.Request.Context(), CurrentUserID(c), id, repository.ReviewPatch{
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(*review))
}

// Delete handles DELETE /api/reviews/:pk/.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid review id"})
		return
	}

	if err := h.facade.DeleteReview(c.Request.Context(), CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseReviewQuery(c *gin.Context) (repository.ReviewFilter, error) {
	var filter repository.ReviewFilter

	if raw := c.Query("business_user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid query parameter %q", domainErrors.ErrValidation, "business_user_id")
		}
		filter.BusinessUserID = &id
	}
	if raw := c.Query("reviewer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid query parameter %q", domainErrors.ErrValidation, "reviewer_id")
		}
		filter.ReviewerID = &id
	}

	filter.SortBy = repository.ReviewSortUpdatedAt
	filter.SortDesc = true
	if ordering := c.Query("ordering"); ordering != "" {
		desc := strings.HasPrefix(ordering, "-")
		key := strings.TrimPrefix(ordering, "-")
		if key != repository.ReviewSortUpdatedAt && key != repository.ReviewSortRating {
			return filter, fmt.Errorf("%w: invalid query parameter %q", domainErrors.ErrValidation, "ordering")
		}
		filter.SortBy = key
		filter.SortDesc = desc
	}
	return filter, nil
}

func toReviewResponse(review model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:           review.ID,
		BusinessUser: review.BusinessUserID,
		Reviewer:     review.ReviewerID,
		Rating:       review.Rating,
		Description:  review.Description,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}
