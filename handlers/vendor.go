package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"freshstalls-api/config"
	"freshstalls-api/middleware"
	"freshstalls-api/models"
	"freshstalls-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// currentVendor loads the vendor profile owned by the logged-in user.
// Writes the 404 response itself when no profile exists.
func currentVendor(c *gin.Context) (*models.Vendor, bool) {
	userID := middleware.GetUserID(c)
	var vendor models.Vendor
	if err := config.DB.Where("user_id = ?", userID).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No vendor profile found for your account"})
		return nil, false
	}
	return &vendor, true
}

// GetVendorDashboard returns the vendor's profile plus activity stats
func GetVendorDashboard(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var totalOrders, ingredientItems, lowStock int64
	config.DB.Model(&models.VendorOrder{}).Where("vendor_id = ?", vendor.ID).Count(&totalOrders)
	config.DB.Model(&models.IngredientSourcing{}).Where("vendor_id = ?", vendor.ID).Count(&ingredientItems)
	config.DB.Model(&models.IngredientSourcing{}).
		Where("vendor_id = ? AND status = ?", vendor.ID, models.StockLow).Count(&lowStock)

	var recentOrders []models.VendorOrder
	config.DB.Preload("Supplier").
		Where("vendor_id = ?", vendor.ID).
		Order("created_at desc").Limit(5).
		Find(&recentOrders)

	c.JSON(http.StatusOK, gin.H{
		"vendor": vendor,
		"stats": gin.H{
			"total_orders":     totalOrders,
			"ingredient_items": ingredientItems,
			"low_stock":        lowStock,
		},
		"recent_orders": recentOrders,
	})
}

type UpdateShopStatusRequest struct {
	ShopStatus models.ShopStatus `json:"shop_status" binding:"required,oneof=open closed"`
}

// UpdateShopStatus flips the stall between open and closed
func UpdateShopStatus(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var req UpdateShopStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(vendor).Update("shop_status", req.ShopStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shop status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shop status updated", "shop_status": req.ShopStatus})
}

type UpdateVendorProfileRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	ShopName      string  `json:"shop_name" binding:"required"`
	GSTNumber     string  `json:"gst_number" binding:"required"`
	Location      string  `json:"location"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	ContactNumber string  `json:"contact_number"`
}

// UpdateVendorProfile updates the user and vendor rows together; any
// failure rolls both back
func UpdateVendorProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var req UpdateVendorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validation.ValidGST(req.GSTNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid GST number format. GST should be 15 characters (e.g., 22AAAAA0000A1Z5)"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Updates(map[string]interface{}{"name": req.Name, "email": req.Email}).Error; err != nil {
			return err
		}
		return tx.Model(vendor).Updates(map[string]interface{}{
			"shop_name":      req.ShopName,
			"gst_number":     req.GSTNumber,
			"location":       req.Location,
			"latitude":       req.Latitude,
			"longitude":      req.Longitude,
			"category":       req.Category,
			"description":    req.Description,
			"contact_number": req.ContactNumber,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!", "vendor": vendor})
}

// UploadShopImage stores a new shop photo and removes the previous file
func UploadShopImage(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	file, err := c.FormFile("shop_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shop_image file is required"})
		return
	}

	uploadDir := config.GetEnv("UPLOAD_DIR", "uploads/shops")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	fileName := uuid.New().String() + filepath.Ext(file.Filename)
	uploadPath := filepath.Join(uploadDir, fileName)
	if err := c.SaveUploadedFile(file, uploadPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	oldImage := vendor.ShopImage
	if err := config.DB.Model(vendor).Update("shop_image", uploadPath).Error; err != nil {
		os.Remove(uploadPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}
	if oldImage != "" {
		os.Remove(oldImage)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop image updated", "shop_image": uploadPath})
}

type ShopHourInput struct {
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	OpenTime  string `json:"open_time" binding:"omitempty,datetime=15:04"`
	CloseTime string `json:"close_time" binding:"omitempty,datetime=15:04"`
	IsClosed  bool   `json:"is_closed"`
}

type SetShopHoursRequest struct {
	Hours []ShopHourInput `json:"hours" binding:"required,min=1,max=7,dive"`
}

// SetShopHours replaces the vendor's weekly schedule with the given rows
func SetShopHours(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var req SetShopHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, h := range req.Hours {
		if !h.IsClosed && (h.OpenTime == "" || h.CloseTime == "") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "open_time and close_time are required for " + h.DayOfWeek + " unless it is closed"})
			return
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_id = ?", vendor.ID).Delete(&models.ShopHour{}).Error; err != nil {
			return err
		}
		for _, h := range req.Hours {
			row := models.ShopHour{
				VendorID:  vendor.ID,
				DayOfWeek: h.DayOfWeek,
				OpenTime:  h.OpenTime,
				CloseTime: h.CloseTime,
				IsClosed:  h.IsClosed,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shop hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shop hours updated"})
}

// GetShopHours lists the vendor's own weekly schedule
func GetShopHours(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	var hours []models.ShopHour
	config.DB.Where("vendor_id = ?", vendor.ID).Order(weekdayOrder).Find(&hours)
	c.JSON(http.StatusOK, gin.H{"count": len(hours), "hours": hours})
}

// weekdayOrder sorts shop-hour rows Monday first, the way the schedule reads
const weekdayOrder = `CASE day_of_week
	WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3
	WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6
	WHEN 'Sunday' THEN 7 END`
