package handlers

import (
	"net/http"
	"time"

	"freshstalls-api/config"
	"freshstalls-api/middleware"
	"freshstalls-api/models"
	"freshstalls-api/statemachine"

	"github.com/gin-gonic/gin"
)

// currentSupplier loads the supplier profile owned by the logged-in user
func currentSupplier(c *gin.Context) (*models.Supplier, bool) {
	userID := middleware.GetUserID(c)
	var supplier models.Supplier
	if err := config.DB.Where("user_id = ?", userID).First(&supplier).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No supplier profile found for your account"})
		return nil, false
	}
	return &supplier, true
}

// suppliesVendor reports whether the supplier has an accepted or
// delivered order from the vendor. Accepting an order is what authorizes
// a supplier to write that vendor's ingredient sourcing rows.
func suppliesVendor(supplierID, vendorID uint) bool {
	var count int64
	config.DB.Model(&models.VendorOrder{}).
		Where("supplier_id = ? AND vendor_id = ? AND status IN ?",
			supplierID, vendorID,
			[]models.OrderStatus{models.StatusAccepted, models.StatusDelivered}).
		Count(&count)
	return count > 0
}

// GetSupplierDashboard returns the supplier's orders with status counts
// and the vendors it actively supplies
func GetSupplierDashboard(c *gin.Context) {
	supplier, ok := currentSupplier(c)
	if !ok {
		return
	}

	var orders []models.VendorOrder
	config.DB.Preload("Vendor").
		Where("supplier_id = ?", supplier.ID).
		Order("created_at desc").
		Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	var vendors []models.Vendor
	config.DB.Distinct("vendors.*").
		Joins("JOIN vendor_orders ON vendor_orders.vendor_id = vendors.id").
		Where("vendor_orders.supplier_id = ? AND vendor_orders.status IN ?",
			supplier.ID, []models.OrderStatus{models.StatusAccepted, models.StatusDelivered}).
		Find(&vendors)

	c.JSON(http.StatusOK, gin.H{
		"supplier":      supplier,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
		"vendors":       vendors,
	})
}

type RespondToOrderRequest struct {
	Status       models.OrderStatus `json:"status" binding:"required,oneof=accepted rejected delivered"`
	DeliveryDate string             `json:"delivery_date"` // YYYY-MM-DD, required when accepting
}

// RespondToOrder moves one of the supplier's orders through its
// lifecycle. Transitions are one-way; rejected and delivered are final.
func RespondToOrder(c *gin.Context) {
	supplier, ok := currentSupplier(c)
	if !ok {
		return
	}
	orderID := c.Param("id")

	var order models.VendorOrder
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.SupplierID != supplier.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order was not placed with you"})
		return
	}

	var req RespondToOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, "supplier"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	now := time.Now()
	updates := map[string]interface{}{
		"status":        req.Status,
		"response_date": now,
	}
	if req.Status == models.StatusAccepted {
		if req.DeliveryDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_date is required when accepting an order"})
			return
		}
		deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery_date must be YYYY-MM-DD"})
			return
		}
		updates["delivery_date"] = deliveryDate
	}

	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order response."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order response updated successfully!",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  req.Status,
	})
}

type UpdateIngredientRequest struct {
	VendorID         uint               `json:"vendor_id" binding:"required"`
	IngredientName   string             `json:"ingredient_name" binding:"required"`
	Status           models.StockStatus `json:"status" binding:"required,oneof=in_stock low_stock out_of_stock"`
	LastDelivered    string             `json:"last_delivered"`     // YYYY-MM-DD, optional
	NextDeliveryDate string             `json:"next_delivery_date"` // YYYY-MM-DD, optional
}

// UpdateIngredientStatus upserts a sourcing row for a vendor the supplier
// actively supplies. Writing marks the row verified.
func UpdateIngredientStatus(c *gin.Context) {
	supplier, ok := currentSupplier(c)
	if !ok {
		return
	}

	var req UpdateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !suppliesVendor(supplier.ID, req.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "No active relationship with this vendor. Accept an order first."})
		return
	}

	var lastDelivered, nextDelivery *time.Time
	if req.LastDelivered != "" {
		t, err := time.Parse("2006-01-02", req.LastDelivered)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "last_delivered must be YYYY-MM-DD"})
			return
		}
		lastDelivered = &t
	}
	if req.NextDeliveryDate != "" {
		t, err := time.Parse("2006-01-02", req.NextDeliveryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "next_delivery_date must be YYYY-MM-DD"})
			return
		}
		nextDelivery = &t
	}

	var existing models.IngredientSourcing
	err := config.DB.Where("vendor_id = ? AND supplier_id = ? AND ingredient_name = ?",
		req.VendorID, supplier.ID, req.IngredientName).First(&existing).Error
	if err == nil {
		err = config.DB.Model(&existing).Updates(map[string]interface{}{
			"status":             req.Status,
			"last_delivered":     lastDelivered,
			"next_delivery_date": nextDelivery,
			"is_verified":        true,
		}).Error
	} else {
		existing = models.IngredientSourcing{
			VendorID:         req.VendorID,
			SupplierID:       supplier.ID,
			IngredientName:   req.IngredientName,
			Status:           req.Status,
			LastDelivered:    lastDelivered,
			NextDeliveryDate: nextDelivery,
			IsVerified:       true,
		}
		err = config.DB.Create(&existing).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient status."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ingredient status updated successfully!", "ingredient": existing})
}

// ── Product catalogue ────────────────────────────────────────────────────────

type SupplierProductRequest struct {
	ProductName      string  `json:"product_name" binding:"required"`
	SKU              string  `json:"sku"`
	Description      string  `json:"description"`
	Unit             string  `json:"unit" binding:"required"`
	PricePerUnit     float64 `json:"price_per_unit" binding:"required,gt=0"`
	MinOrderQuantity float64 `json:"min_order_quantity"`
	MaxOrderQuantity float64 `json:"max_order_quantity"`
	Category         string  `json:"category"`
	IsAvailable      *bool   `json:"is_available"`
}

// ListMyProducts returns the supplier's full catalogue
func ListMyProducts(c *gin.Context) {
	supplier, ok := currentSupplier(c)
	if !ok {
		return
	}
	var products []models.SupplierProduct
	config.DB.Where("supplier_id = ?", supplier.ID).
		Order("category, product_name").
		Find(&products)
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// AddProduct adds a catalogue entry
func AddProduct(c *gin.Context) {
	supplier, ok := currentSupplier(c)
	if !ok {
		return
	}

	var req SupplierProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	product := models.SupplierProduct{
		SupplierID:       supplier.ID,
		ProductName:      req.ProductName,
		SKU:              req.SKU,
		Description:      req.Description,
		Unit:             req.Unit,
		PricePerUnit:     req.PricePerUnit,
		MinOrderQuantity: req.MinOrderQuantity,
		MaxOrderQuantity: req.MaxOrderQuantity,
		Category:         req.Category,
		IsAvailable:      available,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added", "product": product})
}

// UpdateProduct edits a catalogue entry, scoped to the supplier
func UpdateProduct(c *gin.Context) {
	supplier, ok := currentSupplier(c)
	if !ok {
		return
	}
	productID := c.Param("productId")

	var req SupplierProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	result := config.DB.Model(&models.SupplierProduct{}).
		Where("id = ? AND supplier_id = ?", productID, supplier.ID).
		Updates(map[string]interface{}{
			"product_name":       req.ProductName,
			"sku":                req.SKU,
			"description":        req.Description,
			"unit":               req.Unit,
			"price_per_unit":     req.PricePerUnit,
			"min_order_quantity": req.MinOrderQuantity,
			"max_order_quantity": req.MaxOrderQuantity,
			"category":           req.Category,
			"is_available":       available,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteProduct removes a catalogue entry, scoped to the supplier
func DeleteProduct(c *gin.Context) {
	supplier, ok := currentSupplier(c)
	if !ok {
		return
	}
	productID := c.Param("productId")

	result := config.DB.Where("id = ? AND supplier_id = ?", productID, supplier.ID).
		Delete(&models.SupplierProduct{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
