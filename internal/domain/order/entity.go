// internal/domain/order/entity.go
package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"gorm.io/gorm"
)

// PaymentMethod represents how the customer intends to pay
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentMethodCreditCard     PaymentMethod = "Credit Card"
	PaymentMethodPayPal         PaymentMethod = "PayPal"
)

// PaymentMethods lists the accepted payment methods
var PaymentMethods = []PaymentMethod{
	PaymentMethodCashOnDelivery,
	PaymentMethodCreditCard,
	PaymentMethodPayPal,
}

// IsValid reports whether m is one of the accepted payment methods
func (m PaymentMethod) IsValid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// Order represents the order entity. Only the paid and delivered fields change after creation.
type Order struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	UserID          string          `gorm:"not null;size:36;index" json:"user_id" bson:"user_id"`
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"order_items" bson:"order_items"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address" bson:"shipping_address"`
	PaymentMethod   PaymentMethod   `gorm:"not null;size:50" json:"payment_method" bson:"payment_method"`
	PaymentResult   PaymentResult   `gorm:"embedded;embeddedPrefix:payment_result_" json:"payment_result" bson:"payment_result"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price" bson:"total_price"`
	IsPaid          bool            `gorm:"not null;default:false" json:"is_paid" bson:"is_paid"`
	PaidAt          *time.Time      `json:"paid_at" bson:"paid_at"`
	IsDelivered     bool            `gorm:"not null;default:false" json:"is_delivered" bson:"is_delivered"`
	DeliveredAt     *time.Time      `json:"delivered_at" bson:"delivered_at"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" bson:"updated_at"`
}

// OrderItem is a frozen copy of a cart line at the moment the order was placed
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-" bson:"-"`
	OrderID   string          `gorm:"not null;size:36;index" json:"-" bson:"-"`
	ProductID string          `gorm:"not null;size:36;index" json:"product_id" bson:"product_id"`
	Name      string          `gorm:"not null;size:255" json:"name" bson:"name"`
	Quantity  int             `gorm:"not null" json:"quantity" bson:"quantity"`
	Image     string          `gorm:"size:500" json:"image" bson:"image"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price" bson:"price"`
}

// ShippingAddress represents where the order is delivered (embedded in Order)
type ShippingAddress struct {
	Address    string `gorm:"size:255" json:"address" bson:"address"`
	City       string `gorm:"size:100" json:"city" bson:"city"`
	PostalCode string `gorm:"size:20" json:"postal_code" bson:"postal_code"`
	Country    string `gorm:"size:100" json:"country" bson:"country"`
}

// PaymentResult holds details reported by the payment provider (embedded in Order)
type PaymentResult struct {
	ID           string `gorm:"size:255" json:"id" bson:"id"`
	Status       string `gorm:"size:50" json:"status" bson:"status"`
	UpdateTime   string `gorm:"size:50" json:"update_time" bson:"update_time"`
	EmailAddress string `gorm:"size:255" json:"email_address" bson:"email_address"`
}

// TableName overrides
func (Order) TableName() string     { return "orders" }
func (OrderItem) TableName() string { return "order_items" }

// BeforeCreate assigns an id when the store has not
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// MissingField returns the name of the first empty address field, or ""
func (a ShippingAddress) MissingField() string {
	switch {
	case strings.TrimSpace(a.Address) == "":
		return "address"
	case strings.TrimSpace(a.City) == "":
		return "city"
	case strings.TrimSpace(a.PostalCode) == "":
		return "postal_code"
	case strings.TrimSpace(a.Country) == "":
		return "country"
	}
	return ""
}

// IsOwnedBy reports whether userID placed the order
func (o *Order) IsOwnedBy(userID string) bool {
	return userID != "" && o.UserID == userID
}

// ItemCount returns the number of units across all lines
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.OrderItems {
		count += item.Quantity
	}
	return count
}

// LineItem converts the order line back to the cart line it was copied from
func (i OrderItem) LineItem() cart.LineItem {
	return cart.LineItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		Image:     i.Image,
		Price:     i.Price,
		Quantity:  i.Quantity,
	}
}

// NewOrderItem freezes a cart line into an order line
func NewOrderItem(line cart.LineItem) OrderItem {
	return OrderItem{
		ProductID: line.ProductID,
		Name:      line.Name,
		Quantity:  line.Quantity,
		Image:     line.Image,
		Price:     line.Price,
	}
}
