// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/cart"
	"github.com/your-org/storefront-api/internal/domain/order"
	"github.com/your-org/storefront-api/internal/domain/product"
	"github.com/your-org/storefront-api/internal/domain/user"
	"github.com/your-org/storefront-api/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-api/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-api/internal/pkg/auth"
)

// Dependencies are the services the API routes are bound to
type Dependencies struct {
	Guard     *auth.Guard
	Products  *product.Service
	Carts     *cart.Service
	Users     *user.Service
	Assembler *order.Assembler
	Lifecycle *order.Lifecycle
	Invoices  handlers.InvoiceRenderer
	Logger    logrus.FieldLogger
}

// SetupUserRoutes sets up registration, login and profile routes
func SetupUserRoutes(rg *gin.RouterGroup, deps Dependencies) {
	userHandler := handlers.NewUserHandler(deps.Users, deps.Logger)

	users := rg.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.GET("/profile", middleware.RequireAuth(), userHandler.GetProfile)
	}
}

// SetupProductRoutes sets up catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, deps Dependencies) {
	productHandler := handlers.NewProductHandler(deps.Products, deps.Logger)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)

		admin := products.Group("")
		admin.Use(middleware.AdminRequired())
		{
			admin.POST("", productHandler.CreateProduct)
			admin.PUT("/:id", productHandler.UpdateProduct)
			admin.DELETE("/:id", productHandler.DeleteProduct)
		}
	}
}

// SetupCartRoutes sets up session cart routes
func SetupCartRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Carts, deps.Assembler, deps.Logger)

	carts := rg.Group("/cart")
	{
		carts.GET("", cartHandler.GetCart)
		carts.POST("/items", cartHandler.AddToCart)
		carts.DELETE("/items/:productId", cartHandler.RemoveFromCart)
		carts.DELETE("", cartHandler.ClearCart)
		carts.POST("/checkout", middleware.RequireAuth(), cartHandler.Checkout)
	}
}

// SetupOrderRoutes sets up order routes. Privilege checks for admin
// operations happen in the order lifecycle so that 403 precedes 404.
func SetupOrderRoutes(rg *gin.RouterGroup, deps Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.Assembler, deps.Lifecycle, deps.Logger)
	invoiceHandler := handlers.NewInvoiceHandler(deps.Lifecycle, deps.Invoices, deps.Logger)

	orders := rg.Group("/orders")
	orders.Use(middleware.RequireAuth())
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.GetAllOrders)
		orders.GET("/mine", orderHandler.GetMyOrders)
		orders.GET("/myorders", orderHandler.GetMyOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/invoice", invoiceHandler.GenerateInvoice)
		orders.PUT("/:id/pay", orderHandler.MarkPaid)
		orders.PUT("/:id/deliver", orderHandler.MarkDelivered)
	}
}

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, deps Dependencies) {
	rg.Use(middleware.Authenticate(deps.Guard))

	SetupUserRoutes(rg, deps)
	SetupProductRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupOrderRoutes(rg, deps)
}
