// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
)

const (
	// SessionHeader carries the cart session id
	SessionHeader = "X-Session-ID"
	sessionCookie = "session_id"
	sessionMaxAge = 30 * 24 * 60 * 60
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts     *cart.Service
	assembler *order.Assembler
	logger    logrus.FieldLogger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Service, assembler *order.Assembler, logger logrus.FieldLogger) *CartHandler {
	return &CartHandler{
		carts:     carts,
		assembler: assembler,
		logger:    logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	engine, err := h.carts.GetCart(c.Request.Context(), h.getOrCreateSessionID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, engine.Response())
}

// AddToCart handles POST /cart/items. An existing line for the product is replaced.
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req cart.AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	engine, err := h.carts.AddItem(c.Request.Context(), sessionID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, engine.Response())
}

// RemoveFromCart handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	engine, err := h.carts.RemoveItem(c.Request.Context(), h.getOrCreateSessionID(c), c.Param("productId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, engine.Response())
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.carts.ClearCart(c.Request.Context(), h.getOrCreateSessionID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// Checkout handles POST /cart/checkout: places an order from the session cart, then clears it
func (h *CartHandler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := h.getOrCreateSessionID(c)

	var req order.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	engine, err := h.carts.GetCart(ctx, sessionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	placed, err := h.assembler.PlaceOrder(ctx, engine.Snapshot(), &req, middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := engine.Clear(ctx); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"session_id": sessionID,
			"order_id":   placed.ID,
		}).Warn("Failed to clear cart after checkout")
	}

	c.JSON(http.StatusCreated, placed)
}

// getOrCreateSessionID reads the session id from the header or cookie and mints one if absent
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID, _ = c.Cookie(sessionCookie)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
	}

	c.Header(SessionHeader, sessionID)
	return sessionID
}
