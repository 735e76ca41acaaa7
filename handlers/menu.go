package handlers

import (
	"net/http"

	"freshstalls-api/config"
	"freshstalls-api/models"

	"github.com/gin-gonic/gin"
)

type MenuItemRequest struct {
	ItemName     string  `json:"item_name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Availability *bool   `json:"availability"`
}

// ListMenuItems returns every menu item of the logged-in vendor
func ListMenuItems(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	var items []models.MenuItem
	config.DB.Where("vendor_id = ?", vendor.ID).Order("item_name").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// AddMenuItem adds a dish to the vendor's menu
func AddMenuItem(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.Availability != nil {
		available = *req.Availability
	}
	item := models.MenuItem{
		VendorID:     vendor.ID,
		ItemName:     req.ItemName,
		Description:  req.Description,
		Price:        req.Price,
		Availability: available,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully!", "item": item})
}

// UpdateMenuItem updates a dish; the vendor-id filter makes touching
// another stall's item a no-op
func UpdateMenuItem(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.Availability != nil {
		available = *req.Availability
	}
	result := config.DB.Model(&models.MenuItem{}).
		Where("id = ? AND vendor_id = ?", itemID, vendor.ID).
		Updates(map[string]interface{}{
			"item_name":    req.ItemName,
			"description":  req.Description,
			"price":        req.Price,
			"availability": available,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully!"})
}

// DeleteMenuItem removes a dish, scoped to the vendor's own menu
func DeleteMenuItem(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	result := config.DB.Where("id = ? AND vendor_id = ?", itemID, vendor.ID).Delete(&models.MenuItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully!"})
}
