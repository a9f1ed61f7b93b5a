// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

const defaultSendTimeout = 10 * time.Second

// EmailService sends transactional email through the configured provider
type EmailService struct {
	config   config.EmailConfig
	siteName string
	client   *http.Client
	logger   logrus.FieldLogger
	now      func() time.Time
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config, logger logrus.FieldLogger) *EmailService {
	return &EmailService{
		config:   cfg.Email,
		siteName: cfg.App.CompanyName,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// SendEmail sends an email using the configured provider. The attempt is
// cut off after the configured send timeout.
func (s *EmailService) SendEmail(ctx context.Context, email *Email) error {
	timeout := s.config.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch s.config.Provider {
	case "", "none":
		s.logger.WithFields(logrus.Fields{
			"to":      email.To,
			"subject": email.Subject,
		}).Debug("⏭️ Email provider disabled, skipping send")
		return nil
	case "smtp":
		return s.sendSMTPEmail(ctx, email)
	case "resend":
		return s.sendResendEmail(ctx, email)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Provider)
	}
}

// OrderPlaced sends the order confirmation email. It implements order.Notifier.
func (s *EmailService) OrderPlaced(ctx context.Context, o *order.Order, customer *auth.Identity) error {
	if customer == nil || customer.Email == "" {
		return fmt.Errorf("no recipient for order %s", o.ID)
	}

	email, err := s.orderConfirmation(o, customer)
	if err != nil {
		return err
	}
	return s.SendEmail(ctx, email)
}

func (s *EmailService) orderConfirmation(o *order.Order, customer *auth.Identity) (*Email, error) {
	items := make([]OrderItem, 0, len(o.OrderItems))
	for _, item := range o.OrderItems {
		items = append(items, OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
			Total:    item.LineItem().Subtotal().StringFixed(2),
		})
	}

	addr := o.ShippingAddress
	data := OrderConfirmationData{
		EmailTemplateData: EmailTemplateData{
			SiteName:  s.siteName,
			SiteURL:   s.config.BaseURL,
			UserName:  customer.Name,
			UserEmail: customer.Email,
			Year:      s.now().Year(),
		},
		OrderID:         o.ID,
		OrderDate:       o.CreatedAt.Format("January 2, 2006"),
		OrderURL:        fmt.Sprintf("%s/order/%s", s.config.BaseURL, o.ID),
		OrderTotal:      o.TotalPrice.StringFixed(2),
		PaymentMethod:   string(o.PaymentMethod),
		ShippingAddress: fmt.Sprintf("%s, %s %s, %s", addr.Address, addr.City, addr.PostalCode, addr.Country),
		Items:           items,
	}

	htmlContent, err := renderTemplate(orderConfirmationTmpl, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render order confirmation template: %w", err)
	}

	return &Email{
		To:          []string{customer.Email},
		Subject:     fmt.Sprintf("Order Confirmation - %s", o.ID),
		HTMLContent: htmlContent,
		Type:        EmailTypeOrderConfirmation,
	}, nil
}

// renderTemplate renders an email template with data
func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.SiteName}}</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
        <h1 style="color: #333;">{{.SiteName}}</h1>
        <p>Hello {{.UserName}},</p>
        <p>Thanks for your order! We received order <strong>{{.OrderID}}</strong> on {{.OrderDate}}.</p>
        <table style="width: 100%; border-collapse: collapse;">
            {{range .Items}}
            <tr>
                <td>{{.Name}}</td>
                <td style="text-align: right;">{{.Quantity}} x ${{.Price}}</td>
                <td style="text-align: right;">${{.Total}}</td>
            </tr>
            {{end}}
        </table>
        <p><strong>Total: ${{.OrderTotal}}</strong></p>
        <p>Payment method: {{.PaymentMethod}}</p>
        <p>Shipping to: {{.ShippingAddress}}</p>
        <p><a href="{{.OrderURL}}">View your order</a></p>
        <p>Best regards,<br>{{.SiteName}} Team</p>
        <hr>
        <p style="font-size: 12px; color: #666;">&copy; {{.Year}} {{.SiteName}}. All rights reserved.</p>
    </div>
</body>
</html>`))
