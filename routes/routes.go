package routes

import (
	"freshstalls-api/handlers"
	"freshstalls-api/middleware"
	"freshstalls-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register/vendor", handlers.RegisterVendor)
		public.POST("/auth/register/supplier", handlers.RegisterSupplier)
		public.POST("/auth/register/consumer", handlers.RegisterConsumer)
		public.POST("/auth/login", handlers.Login)

		// Stall browsing & reviews (no auth needed)
		public.GET("/stalls", handlers.ListStalls)
		public.GET("/stalls/:id", handlers.GetStallDetails)
		public.GET("/stalls/:id/details", handlers.GetShopDetails)
		public.POST("/stalls/:id/reviews", handlers.SubmitReview)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile/password", handlers.ChangePassword)
	}

	// ── Vendor routes ──────────────────────────────────────────────
	vendor := r.Group("/api/vendor")
	vendor.Use(middleware.AuthRequired(), middleware.TypeRequired(models.TypeVendor))
	{
		// Dashboard & profile
		vendor.GET("/dashboard", handlers.GetVendorDashboard)
		vendor.PUT("/profile", handlers.UpdateVendorProfile)
		vendor.PUT("/shop-status", handlers.UpdateShopStatus)
		vendor.POST("/shop-image", handlers.UploadShopImage)
		vendor.GET("/shop-hours", handlers.GetShopHours)
		vendor.PUT("/shop-hours", handlers.SetShopHours)

		// Menu management
		vendor.GET("/menu", handlers.ListMenuItems)
		vendor.POST("/menu", handlers.AddMenuItem)
		vendor.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		vendor.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		// Inventory & ingredient sourcing (sourcing is read-only here)
		vendor.GET("/inventory", handlers.ListInventory)
		vendor.POST("/inventory", handlers.AddInventoryItem)
		vendor.PUT("/inventory/:itemId", handlers.UpdateInventoryItem)
		vendor.DELETE("/inventory/:itemId", handlers.DeleteInventoryItem)
		vendor.GET("/ingredients", handlers.GetIngredientStatus)

		// Ordering
		vendor.GET("/suppliers", handlers.ListSuppliers)
		vendor.GET("/suppliers/:id/products", handlers.GetSupplierProducts)
		vendor.GET("/common-supplies", handlers.ListCommonSupplies)
		vendor.POST("/orders", handlers.PlaceStructuredOrder)
		vendor.POST("/orders/text", handlers.PlaceTextOrder)
		vendor.GET("/orders", handlers.GetMyOrders)

		// Order templates
		vendor.GET("/templates", handlers.ListTemplates)
		vendor.POST("/templates", handlers.CreateTemplate)
		vendor.PUT("/templates/:templateId", handlers.UpdateTemplate)
		vendor.DELETE("/templates/:templateId", handlers.DeleteTemplate)
		vendor.GET("/templates/:templateId/items", handlers.GetTemplateItems)
	}

	// ── Supplier routes ────────────────────────────────────────────
	supplier := r.Group("/api/supplier")
	supplier.Use(middleware.AuthRequired(), middleware.TypeRequired(models.TypeSupplier))
	{
		supplier.GET("/dashboard", handlers.GetSupplierDashboard)
		supplier.PUT("/orders/:id/respond", handlers.RespondToOrder)
		supplier.PUT("/ingredients", handlers.UpdateIngredientStatus)

		// Product catalogue
		supplier.GET("/products", handlers.ListMyProducts)
		supplier.POST("/products", handlers.AddProduct)
		supplier.PUT("/products/:productId", handlers.UpdateProduct)
		supplier.DELETE("/products/:productId", handlers.DeleteProduct)
	}
}
