package handlers

import (
	"net/http"
	"time"

	"freshstalls-api/config"
	"freshstalls-api/models"

	"github.com/gin-gonic/gin"
)

// ListInventory returns the vendor's stock, soonest-to-run-out first
func ListInventory(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	var items []models.InventoryItem
	config.DB.Preload("Supplier").
		Where("vendor_id = ?", vendor.ID).
		Order("estimated_days_remaining asc, item_name").
		Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "inventory": items})
}

type AddInventoryRequest struct {
	ItemName               string  `json:"item_name" binding:"required"`
	Quantity               float64 `json:"quantity" binding:"required,gt=0"`
	Unit                   string  `json:"unit" binding:"required"`
	SupplierID             *uint   `json:"supplier_id"`
	EstimatedDaysRemaining *int    `json:"estimated_days_remaining"`
}

// AddInventoryItem records a new stock item for the vendor
func AddInventoryItem(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var req AddInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.SupplierID != nil {
		var supplier models.Supplier
		if err := config.DB.First(&supplier, *req.SupplierID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier not found"})
			return
		}
	}

	now := time.Now()
	item := models.InventoryItem{
		VendorID:               vendor.ID,
		ItemName:               req.ItemName,
		Quantity:               req.Quantity,
		Unit:                   req.Unit,
		SupplierID:             req.SupplierID,
		EstimatedDaysRemaining: req.EstimatedDaysRemaining,
		LastOrdered:            &now,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add inventory item."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Inventory item added successfully!", "item": item})
}

type UpdateInventoryRequest struct {
	Quantity               float64 `json:"quantity" binding:"required,gte=0"`
	EstimatedDaysRemaining *int    `json:"estimated_days_remaining"`
}

// UpdateInventoryItem adjusts quantity and the days-remaining estimate
func UpdateInventoryItem(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Model(&models.InventoryItem{}).
		Where("id = ? AND vendor_id = ?", itemID, vendor.ID).
		Updates(map[string]interface{}{
			"quantity":                 req.Quantity,
			"estimated_days_remaining": req.EstimatedDaysRemaining,
			"last_ordered":             time.Now(),
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory updated successfully!"})
}

// DeleteInventoryItem removes a stock item, scoped to the vendor
func DeleteInventoryItem(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	result := config.DB.Where("id = ? AND vendor_id = ?", itemID, vendor.ID).Delete(&models.InventoryItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully!"})
}

// GetIngredientStatus is the vendor's read-only view of supplier-authored
// sourcing rows, worst stock level first
func GetIngredientStatus(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	var rows []models.IngredientSourcing
	config.DB.Preload("Supplier").
		Where("vendor_id = ?", vendor.ID).
		Order(stockPriorityOrder).
		Find(&rows)
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "ingredients": rows})
}

// stockPriorityOrder surfaces out_of_stock before low_stock before in_stock
const stockPriorityOrder = `CASE status
	WHEN 'out_of_stock' THEN 1
	WHEN 'low_stock' THEN 2
	WHEN 'in_stock' THEN 3 END, ingredient_name`
