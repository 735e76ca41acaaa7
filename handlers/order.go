package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"freshstalls-api/config"
	"freshstalls-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// orderingWindowOpen reports whether supply orders may be placed right
// now. Stalls stock up in the morning, so the window defaults to
// 05:00–12:00; ORDER_WINDOW_OPEN / ORDER_WINDOW_CLOSE override it.
func orderingWindowOpen(now time.Time) bool {
	open, err := strconv.Atoi(config.GetEnv("ORDER_WINDOW_OPEN", "5"))
	if err != nil {
		open = 5
	}
	until, err := strconv.Atoi(config.GetEnv("ORDER_WINDOW_CLOSE", "12"))
	if err != nil {
		until = 12
	}
	h := now.Hour()
	return h >= open && h < until
}

// loadOpenSupplier resolves the target supplier and rejects closed shops
func loadOpenSupplier(c *gin.Context, supplierID uint) (*models.Supplier, bool) {
	var supplier models.Supplier
	if err := config.DB.First(&supplier, supplierID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return nil, false
	}
	if supplier.ShopStatus != models.ShopOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier is currently closed"})
		return nil, false
	}
	return &supplier, true
}

type PlaceStructuredOrderRequest struct {
	SupplierID uint              `json:"supplier_id" binding:"required"`
	Items      []models.CartLine `json:"items" binding:"required,min=1,dive"`
	Message    string            `json:"message"`
	TemplateID *uint             `json:"template_id"`
}

// PlaceStructuredOrder creates a pending order from a cart: the JSON cart
// is stored on the order row and each line becomes an OrderItem with a
// computed total, all in one transaction
func PlaceStructuredOrder(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	if !orderingWindowOpen(time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Orders can only be placed between 5 AM and 12 PM"})
		return
	}

	var req PlaceStructuredOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, ok := loadOpenSupplier(c, req.SupplierID)
	if !ok {
		return
	}

	// Snapshot catalogue details into the cart lines before storing them
	for i := range req.Items {
		var product models.SupplierProduct
		if err := config.DB.Where("id = ? AND supplier_id = ?", req.Items[i].ProductID, supplier.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not belong to this supplier"})
			return
		}
		if !product.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product '" + product.ProductName + "' is not available"})
			return
		}
		req.Items[i].ProductName = product.ProductName
		req.Items[i].SKU = product.SKU
		req.Items[i].Unit = product.Unit
		// Price comes from the catalogue, never from the client
		req.Items[i].UnitPrice = product.PricePerUnit
	}

	if req.TemplateID != nil {
		var tmpl models.OrderTemplate
		if err := config.DB.Where("id = ? AND vendor_id = ?", *req.TemplateID, vendor.ID).
			First(&tmpl).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order template not found"})
			return
		}
	}

	cartJSON, err := json.Marshal(req.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
		return
	}

	order := models.VendorOrder{
		VendorID:   vendor.ID,
		SupplierID: supplier.ID,
		Items:      string(cartJSON),
		Message:    req.Message,
		Status:     models.StatusPending,
		OrderType:  models.OrderStructured,
		TemplateID: req.TemplateID,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range req.Items {
			item := models.OrderItem{
				OrderID:    order.ID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				TotalPrice: line.Quantity * line.UnitPrice,
				Notes:      line.Notes,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
		return
	}

	config.DB.Preload("OrderItems.Product").Preload("Supplier").First(&order, order.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Quick Order placed successfully! The supplier will review your request.",
		"order":   order,
	})
}

type PlaceTextOrderRequest struct {
	SupplierID uint   `json:"supplier_id" binding:"required"`
	Items      string `json:"items" binding:"required"`
	Message    string `json:"message"`
}

// PlaceTextOrder creates a pending free-text order
func PlaceTextOrder(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	if !orderingWindowOpen(time.Now()) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Orders can only be placed between 5 AM and 12 PM"})
		return
	}

	var req PlaceTextOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	supplier, ok := loadOpenSupplier(c, req.SupplierID)
	if !ok {
		return
	}

	order := models.VendorOrder{
		VendorID:   vendor.ID,
		SupplierID: supplier.ID,
		Items:      req.Items,
		Message:    req.Message,
		Status:     models.StatusPending,
		OrderType:  models.OrderText,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Text Order placed successfully! The supplier will review your request.",
		"order":   order,
	})
}

// GetMyOrders lists the vendor's supply orders, newest first
func GetMyOrders(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	var orders []models.VendorOrder
	query := config.DB.Preload("Supplier").Preload("OrderItems.Product").
		Where("vendor_id = ?", vendor.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListCommonSupplies returns the seeded quick-add staples for the cart UI
func ListCommonSupplies(c *gin.Context) {
	var supplies []models.CommonSupply
	config.DB.Order("category, name").Find(&supplies)
	c.JSON(http.StatusOK, gin.H{"count": len(supplies), "supplies": supplies})
}
