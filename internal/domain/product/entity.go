// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents the product entity
type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id" bson:"_id"`
	Name        string          `gorm:"not null;size:255" json:"name" bson:"name"`
	Description string          `gorm:"type:text" json:"description" bson:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"price" bson:"price"`
	Image       string          `gorm:"size:500" json:"image" bson:"image"`
	Category    string          `gorm:"size:100;index" json:"category" bson:"category"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0" json:"stock" bson:"stock"`
	Rating      decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0" json:"rating" bson:"rating"`
	NumReviews  int             `gorm:"not null;default:0" json:"num_reviews" bson:"num_reviews"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`
}

// TableName overrides the table name
func (Product) TableName() string { return "products" }

// BeforeCreate assigns an id when the caller has not
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsInStock reports whether at least one unit is available
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// CapQuantity limits a requested quantity to the units in stock
func (p *Product) CapQuantity(quantity int) int {
	if quantity > p.Stock {
		return p.Stock
	}
	return quantity
}
