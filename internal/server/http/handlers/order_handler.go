package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders/.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/orders/.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUserID(c), req.OfferDetailID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Get handles GET /api/orders/:pk/.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Update handles PATCH /api/orders/:pk/. Only the status key is accepted.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.UpdateOrderRequest
	if err := bindPatch(c, &req, "status"); err != nil {
		writeError(c, err)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), CurrentUserID(c), id, model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:pk/.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CountInProgress handles GET /api/order-count/:business_user_id/.
func (h *OrderHandler) CountInProgress(c *gin.Context) {
	id, ok := pathID(c, "business_user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid business user id"})
		return
	}

	count, err := h.facade.OrderCount(c.Request.Context(), id, model.OrderStatusInProgress)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderCountResponse{OrderCount: count})
}

// CountCompleted handles GET /api/completed-order-count/:business_user_id/.
func (h *OrderHandler) CountCompleted(c *gin.Context) {
	id, ok := pathID(c, "business_user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid business user id"})
		return
	}

	count, err := h.facade.OrderCount(c.Request.Context(), id, model.OrderStatusCompleted)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CompletedOrderCountResponse{CompletedOrderCount: count})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                 order.ID,
		CustomerUser:       order.CustomerID,
		BusinessUser:       order.BusinessUserID,
		Title:              order.Detail.Title,
		Revisions:          order.Detail.Revisions,
		DeliveryTimeInDays: order.Detail.DeliveryTimeInDays,
		Price:              order.Detail.Price,
		Features:           order.Detail.Features,
		OfferType:          string(order.Detail.OfferType),
		Status:             string(order.Status),
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}
