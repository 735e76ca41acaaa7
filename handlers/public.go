package handlers

import (
	"net/http"
	"time"

	"freshstalls-api/config"
	"freshstalls-api/models"
	"freshstalls-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListStalls returns all open stalls (public)
func ListStalls(c *gin.Context) {
	var vendors []models.Vendor
	query := config.DB.Where("shop_status = ?", models.ShopOpen)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("shop_name LIKE ?", "%"+search+"%")
	}

	query.Order("created_at desc").Find(&vendors)
	c.JSON(http.StatusOK, gin.H{"count": len(vendors), "stalls": vendors})
}

// openNow walks the weekly schedule and reports whether the stall is
// inside today's opening window
func openNow(hours []models.ShopHour, now time.Time) bool {
	day := now.Weekday().String()
	clock := now.Format("15:04")
	for _, h := range hours {
		if h.DayOfWeek == day && !h.IsClosed {
			if clock >= h.OpenTime && clock <= h.CloseTime {
				return true
			}
		}
	}
	return false
}

// GetStallDetails returns a stall's full public page: profile, weekly
// hours, available menu, ingredient sourcing, and latest reviews
func GetStallDetails(c *gin.Context) {
	vendorID := c.Param("id")

	var vendor models.Vendor
	if err := config.DB.Preload("User").First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stall not found"})
		return
	}

	var hours []models.ShopHour
	config.DB.Where("vendor_id = ?", vendor.ID).Order(weekdayOrder).Find(&hours)

	var menu []models.MenuItem
	config.DB.Where("vendor_id = ? AND availability = ?", vendor.ID, true).
		Order("item_name").Find(&menu)

	var ingredients []models.IngredientSourcing
	config.DB.Preload("Supplier").
		Where("vendor_id = ?", vendor.ID).
		Order("ingredient_name").Find(&ingredients)

	var reviews []models.Review
	config.DB.Where("vendor_id = ?", vendor.ID).
		Order("created_at desc").Limit(5).Find(&reviews)

	c.JSON(http.StatusOK, gin.H{
		"stall":       vendor,
		"shop_hours":  hours,
		"menu":        menu,
		"ingredients": ingredients,
		"reviews":     reviews,
		"is_open_now": openNow(hours, time.Now()),
	})
}

// GetShopDetails is the lightweight JSON lookup used by the map popups;
// it keeps the success/message envelope the frontend expects
func GetShopDetails(c *gin.Context) {
	vendorID := c.Param("id")

	var vendor models.Vendor
	if err := config.DB.Preload("User").First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Vendor not found"})
		return
	}

	var menu []models.MenuItem
	config.DB.Where("vendor_id = ? AND availability = ?", vendor.ID, true).
		Order("item_name").Find(&menu)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"vendor":  vendor,
		"menu":    menu,
	})
}

type SubmitReviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText   string `json:"review_text"`
}

// SubmitReview inserts a review and recomputes the stall's aggregate
// rating and review count in the same transaction
func SubmitReview(c *gin.Context) {
	vendorID := c.Param("id")

	var vendor models.Vendor
	if err := config.DB.First(&vendor, vendorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stall not found"})
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		VendorID:     vendor.ID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return recomputeVendorRating(tx, vendor.ID)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully!", "review": review})
}

// recomputeVendorRating rewrites the derived rating/review_count columns
// from the reviews table
func recomputeVendorRating(tx *gorm.DB, vendorID uint) error {
	return tx.Model(&models.Vendor{}).Where("id = ?", vendorID).
		Updates(map[string]interface{}{
			"rating": gorm.Expr(
				"(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE vendor_id = ?)", vendorID),
			"review_count": gorm.Expr(
				"(SELECT COUNT(*) FROM reviews WHERE vendor_id = ?)", vendorID),
		}).Error
}

// ListSuppliers returns open suppliers for the order form, verified first
func ListSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	query := config.DB.Where("shop_status = ?", models.ShopOpen)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	query.Order("is_verified desc, supplier_name").Find(&suppliers)
	c.JSON(http.StatusOK, gin.H{"count": len(suppliers), "suppliers": suppliers})
}

// GetSupplierProducts returns a supplier's available catalogue as a flat
// array for the cart UI
func GetSupplierProducts(c *gin.Context) {
	supplierID := c.Param("id")

	var supplier models.Supplier
	if err := config.DB.First(&supplier, supplierID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}

	var products []models.SupplierProduct
	config.DB.Where("supplier_id = ? AND is_available = ?", supplier.ID, true).
		Order("category, product_name").
		Find(&products)
	c.JSON(http.StatusOK, products)
}

// GetStateMachineInfo documents the supply-order lifecycle
func GetStateMachineInfo(c *gin.Context) {
	transitions := []gin.H{}
	for _, t := range statemachine.GetAllTransitions() {
		transitions = append(transitions, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   transitions,
		"terminal_states": []models.OrderStatus{models.StatusRejected, models.StatusDelivered},
		"description":     "Vendor Supply Order Lifecycle",
	})
}
