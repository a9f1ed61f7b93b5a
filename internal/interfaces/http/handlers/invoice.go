// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-api/internal/pkg/pdf"
)

// InvoiceRenderer renders an order as a PDF document
type InvoiceRenderer interface {
	GenerateInvoice(o *order.Order) ([]byte, error)
}

// InvoiceHandler handles invoice endpoints
type InvoiceHandler struct {
	lifecycle *order.Lifecycle
	renderer  InvoiceRenderer
	logger    logrus.FieldLogger
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(lifecycle *order.Lifecycle, renderer InvoiceRenderer, logger logrus.FieldLogger) *InvoiceHandler {
	return &InvoiceHandler{
		lifecycle: lifecycle,
		renderer:  renderer,
		logger:    logger,
	}
}

// GenerateInvoice handles GET /orders/:id/invoice
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	found, err := h.lifecycle.GetByID(c.Request.Context(), c.Param("id"), middleware.IdentityFromContext(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	document, err := h.renderer.GenerateInvoice(found)
	if err != nil {
		h.logger.WithError(err).WithField("order_id", found.ID).Error("Failed to generate invoice")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", pdf.InvoiceNumber(found.ID)))
	c.Data(http.StatusOK, "application/pdf", document)
}
