// internal/infrastructure/database/seed/data.go
package seed

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-api/internal/domain/product"
)

// SampleUser is a seed account with its plaintext password
type SampleUser struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

// SampleUsers returns the accounts created by Import
func SampleUsers() []SampleUser {
	return []SampleUser{
		{Name: "Admin User", Email: "admin@example.com", Password: "admin123", IsAdmin: true},
		{Name: "John Doe", Email: "john@example.com", Password: "john123"},
	}
}

// SampleProducts returns the catalog created by Import
func SampleProducts() []product.Product {
	return []product.Product{
		{
			Name:        "Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			Price:       decimal.RequireFromString("99.99"),
			Image:       "https://via.placeholder.com/300/0000FF/808080?text=Headphones",
			Category:    "Electronics",
			Stock:       15,
			Rating:      decimal.RequireFromString("4.5"),
			NumReviews:  12,
		},
		{
			Name:        "Smart Watch",
			Description: "Fitness tracker with heart rate monitor and GPS",
			Price:       decimal.RequireFromString("199.99"),
			Image:       "https://via.placeholder.com/300/FF0000/FFFFFF?text=Smart+Watch",
			Category:    "Electronics",
			Stock:       8,
			Rating:      decimal.RequireFromString("4.8"),
			NumReviews:  20,
		},
		{
			Name:        "Running Shoes",
			Description: "Comfortable running shoes for all terrains",
			Price:       decimal.RequireFromString("79.99"),
			Image:       "https://via.placeholder.com/300/00FF00/000000?text=Running+Shoes",
			Category:    "Sports",
			Stock:       25,
			Rating:      decimal.RequireFromString("4.3"),
			NumReviews:  8,
		},
		{
			Name:        "Laptop Backpack",
			Description: "Durable backpack with laptop compartment",
			Price:       decimal.RequireFromString("49.99"),
			Image:       "https://via.placeholder.com/300/FFFF00/000000?text=Backpack",
			Category:    "Accessories",
			Stock:       30,
			Rating:      decimal.RequireFromString("4.6"),
			NumReviews:  15,
		},
		{
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with long battery life",
			Price:       decimal.RequireFromString("29.99"),
			Image:       "https://via.placeholder.com/300/FF00FF/FFFFFF?text=Mouse",
			Category:    "Electronics",
			Stock:       50,
			Rating:      decimal.RequireFromString("4.4"),
			NumReviews:  25,
		},
		{
			Name:        "Yoga Mat",
			Description: "Non-slip yoga mat for comfortable workouts",
			Price:       decimal.RequireFromString("24.99"),
			Image:       "https://via.placeholder.com/300/00FFFF/000000?text=Yoga+Mat",
			Category:    "Sports",
			Stock:       40,
			Rating:      decimal.RequireFromString("4.7"),
			NumReviews:  18,
		},
	}
}
