// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	assembler *order.Assembler
	lifecycle *order.Lifecycle
	logger    logrus.FieldLogger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(assembler *order.Assembler, lifecycle *order.Lifecycle, logger logrus.FieldLogger) *OrderHandler {
	return &OrderHandler{
		assembler: assembler,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// CreateOrderRequest is the POST /orders body: the client's cart plus checkout details
type CreateOrderRequest struct {
	OrderItems []cart.LineItem `json:"order_items"`
	order.PlaceOrderRequest
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.assembler.PlaceOrder(c.Request.Context(), req.OrderItems, &req.PlaceOrderRequest, middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	found, err := h.lifecycle.GetByID(c.Request.Context(), c.Param("id"), middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

// GetMyOrders handles GET /orders/mine
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	orders, err := h.lifecycle.ListMine(c.Request.Context(), middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetAllOrders handles GET /orders (admin)
func (h *OrderHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.lifecycle.ListAll(c.Request.Context(), middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// MarkDelivered handles PUT /orders/:id/deliver (admin)
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	updated, err := h.lifecycle.MarkDelivered(c.Request.Context(), c.Param("id"), middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// MarkPaid handles PUT /orders/:id/pay (admin). The body is optional.
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	var details order.PaymentResult
	if !bindOptionalJSON(c, &details) {
		return
	}

	updated, err := h.lifecycle.MarkPaid(c.Request.Context(), c.Param("id"), details, middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
