package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
	"github.com/alexh7799/coderr/internal/server/http/dto"
	"github.com/alexh7799/coderr/internal/usecase"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// OfferHandler manages offer endpoints.
type OfferHandler struct {
	facade  CatalogFacade
	profile ProfileFacade
}

// NewOfferHandler constructs OfferHandler.
func NewOfferHandler(facade CatalogFacade, profile ProfileFacade) *OfferHandler {
	return &OfferHandler{facade: facade, profile: profile}
}

// List handles GET /api/offers/.
func (h *OfferHandler) List(c *gin.Context) {
	filter, page, pageSize, err := parseOfferQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}

	offers, total, err := h.facade.Offers(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]dto.OfferResponse, 0, len(offers))
	owners := map[int64]*dto.OfferUserDetails{}
	for _, o := range offers {
		resp := toOfferResponse(o)
		details, ok := owners[o.UserID]
		if !ok {
			details = h.ownerDetails(c, o.UserID)
			owners[o.UserID] = details
		}
		resp.UserDetails = details
		results = append(results, resp)
	}

	c.JSON(http.StatusOK, dto.OfferListResponse{
		Count:    total,
		Next:     pageLink(c, page, pageSize, total, +1),
		Previous: pageLink(c, page, pageSize, total, -1),
		Results:  results,
	})
}

// Create handles POST /api/offers/.
func (h *OfferHandler) Create(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	input := usecase.CreateOfferInput{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}
	for _, d := range req.Details {
		input.Details = append(input.Details, model.OfferDetail{
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
			OfferType:          model.OfferType(d.OfferType),
		})
	}

	offer, err := h.facade.CreateOffer(c.Request.Context(), CurrentUserID(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOfferMutationResponse(*offer))
}

// Get handles GET /api/offers/:pk/.
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offer id"})
		return
	}

	offer, err := h.facade.Offer(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferResponse(*offer))
}

// Update handles PATCH /api/offers/:pk/.
func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offer id"})
		return
	}

	var req dto.UpdateOfferRequest
	if err := bindPatch(c, &req, "title", "image", "description", "details"); err != nil {
		writeError(c, err)
		return
	}

	patch := repository.OfferPatch{
		Title:       req.Title,
		Image:       req.Image,
		Description: req.Description,
	}
	for _, d := range req.Details {
		patch.Details = append(patch.Details, repository.OfferDetailPatch{
			OfferType:          model.OfferType(d.OfferType),
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
		})
	}

	offer, err := h.facade.UpdateOffer(c.Request.Context(), CurrentUserID(c), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferMutationResponse(*offer))
}

// Delete handles DELETE /api/offers/:pk/.
func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offer id"})
		return
	}

	if err := h.facade.DeleteOffer(c.Request.Context(), CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Detail handles GET /api/offerdetails/:pk/.
func (h *OfferHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid detail id"})
		return
	}

	detail, err := h.facade.OfferDetail(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfferDetailResponse(*detail))
}

func (h *OfferHandler) ownerDetails(c *gin.Context, userID int64) *dto.OfferUserDetails {
	user, err := h.profile.Profile(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return &dto.OfferUserDetails{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}
}

func parseOfferQuery(c *gin.Context) (repository.OfferFilter, int, int, error) {
	var filter repository.OfferFilter

	if raw := c.Query("creator_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, 0, 0, queryError("creator_id")
		}
		filter.CreatorID = &id
	}
	if raw := c.Query("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, 0, 0, queryError("min_price")
		}
		filter.MinPrice = &price
	}
	if raw := c.Query("max_delivery_time"); raw != "" {
		days, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return filter, 0, 0, queryError("max_delivery_time")
		}
		days32 := int32(days)
		filter.MaxDeliveryTime = &days32
	}
	filter.Search = c.Query("search")

	filter.SortBy = repository.OfferSortUpdatedAt
	filter.SortDesc = true
	if ordering := c.Query("ordering"); ordering != "" {
		desc := strings.HasPrefix(ordering, "-")
		key := strings.TrimPrefix(ordering, "-")
		if key != repository.OfferSortUpdatedAt && key != repository.OfferSortMinPrice {
			return filter, 0, 0, queryError("ordering")
		}
		filter.SortBy = key
		filter.SortDesc = desc
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return filter, 0, 0, queryError("page")
		}
		page = parsed
	}
	pageSize := defaultPageSize
	if raw := c.Query("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return filter, 0, 0, queryError("page_size")
		}
		pageSize = parsed
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize
	return filter, page, pageSize, nil
}

func queryError(param string) error {
	return fmt.Errorf("%w: invalid query parameter %q", domainErrors.ErrValidation, param)
}

// pageLink builds the absolute URL of an adjacent result page, or nil
// when that page does not exist.
func pageLink(c *gin.Context, page, pageSize int, total int64, direction int) *string {
	target := page + direction
	if target < 1 {
		return nil
	}
	if int64(target-1)*int64(pageSize) >= total {
		return nil
	}

	u := *c.Request.URL
	query := u.Query()
	if target == 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(target))
	}
	u.RawQuery = query.Encode()

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	link := scheme + "://" + c.Request.Host + u.String()
	return &link
}

func toOfferResponse(offer model.Offer) dto.OfferResponse {
	refs := make([]dto.OfferDetailRef, 0, len(offer.Details))
	for _, d := range offer.Details {
		refs = append(refs, dto.OfferDetailRef{
			ID:  d.ID,
			URL: fmt.Sprintf("/api/offerdetails/%d/", d.ID),
		})
	}
	return dto.OfferResponse{
		ID:              offer.ID,
		User:            offer.UserID,
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		CreatedAt:       offer.CreatedAt,
		UpdatedAt:       offer.UpdatedAt,
		Details:         refs,
		MinPrice:        offer.MinPrice,
		MinDeliveryTime: offer.MinDeliveryTime,
	}
}

func toOfferMutationResponse(offer model.Offer) dto.OfferMutationResponse {
	details := make([]dto.OfferDetailResponse, 0, len(offer.Details))
	for _, d := range offer.Details {
		details = append(details, toOfferDetailResponse(d))
	}
	return dto.OfferMutationResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Image:       offer.Image,
		Description: offer.Description,
		Details:     details,
	}
}

func toOfferDetailResponse(detail model.OfferDetail) dto.OfferDetailResponse {
	return dto.OfferDetailResponse{
		ID:                 detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           detail.Features,
		OfferType:          string(detail.OfferType),
	}
}
