package handlers

import (
	"net/http"

	"freshstalls-api/config"
	"freshstalls-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListTemplates returns the vendor's saved carts, favorites first
func ListTemplates(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	var templates []models.OrderTemplate
	config.DB.Where("vendor_id = ?", vendor.ID).
		Order("is_favorite desc, template_name").
		Find(&templates)
	c.JSON(http.StatusOK, gin.H{"count": len(templates), "templates": templates})
}

type TemplateItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Notes     string  `json:"notes"`
}

type CreateTemplateRequest struct {
	SupplierID   uint                `json:"supplier_id" binding:"required"`
	TemplateName string              `json:"template_name" binding:"required"`
	IsFavorite   bool                `json:"is_favorite"`
	Items        []TemplateItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateTemplate saves a named cart; every item must belong to the
// template's supplier
func CreateTemplate(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, req.SupplierID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	for _, item := range req.Items {
		var product models.SupplierProduct
		if err := config.DB.Where("id = ? AND supplier_id = ?", item.ProductID, supplier.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not belong to this supplier"})
			return
		}
	}

	template := models.OrderTemplate{
		VendorID:     vendor.ID,
		SupplierID:   req.SupplierID,
		TemplateName: req.TemplateName,
		IsFavorite:   req.IsFavorite,
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			row := models.TemplateItem{
				TemplateID: template.ID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				Notes:      item.Notes,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save template"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Template saved", "template": template})
}

type UpdateTemplateRequest struct {
	TemplateName string `json:"template_name" binding:"required"`
	IsFavorite   bool   `json:"is_favorite"`
}

// UpdateTemplate renames a template or toggles its favorite flag
func UpdateTemplate(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	templateID := c.Param("templateId")

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := config.DB.Model(&models.OrderTemplate{}).
		Where("id = ? AND vendor_id = ?", templateID, vendor.ID).
		Updates(map[string]interface{}{
			"template_name": req.TemplateName,
			"is_favorite":   req.IsFavorite,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template updated"})
}

// DeleteTemplate removes a template and its items
func DeleteTemplate(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	templateID := c.Param("templateId")

	var template models.OrderTemplate
	if err := config.DB.Where("id = ? AND vendor_id = ?", templateID, vendor.ID).
		First(&template).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", template.ID).Delete(&models.TemplateItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&template).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}

// GetTemplateItems returns a template's lines shaped as cart entries, so
// the order form can be prefilled directly from the response
func GetTemplateItems(c *gin.Context) {
	vendor, ok := currentVendor(c)
	if !ok {
		return
	}
	templateID := c.Param("templateId")

	var template models.OrderTemplate
	if err := config.DB.First(&template, templateID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	if template.VendorID != vendor.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var items []models.TemplateItem
	config.DB.Preload("Product").
		Where("template_id = ?", template.ID).
		Find(&items)

	cart := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		cart = append(cart, models.CartLine{
			ProductID:   item.ProductID,
			ProductName: item.Product.ProductName,
			SKU:         item.Product.SKU,
			Unit:        item.Product.Unit,
			UnitPrice:   item.Product.PricePerUnit,
			Quantity:    item.Quantity,
			Notes:       item.Notes,
		})
	}
	c.JSON(http.StatusOK, cart)
}
