package handlers

import (
	"net/http"

	"freshstalls-api/config"
	"freshstalls-api/middleware"
	"freshstalls-api/models"
	"freshstalls-api/validation"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterVendorRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=6"`
	ShopName      string  `json:"shop_name" binding:"required"`
	GSTNumber     string  `json:"gst_number" binding:"required"`
	Location      string  `json:"location"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	ContactNumber string  `json:"contact_number"`
}

// RegisterVendor creates a user account and vendor profile in one transaction
func RegisterVendor(c *gin.Context) {
	var req RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validation.ValidGST(req.GSTNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid GST number format. GST should be 15 characters (e.g., 22AAAAA0000A1Z5)"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     models.TypeVendor,
	}
	vendor := models.Vendor{
		ShopName:      req.ShopName,
		GSTNumber:     req.GSTNumber,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Category:      req.Category,
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
		ShopStatus:    models.ShopOpen,
	}

	// Both rows or neither; a duplicate email rolls the whole thing back
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		vendor.UserID = user.ID
		return tx.Create(&vendor).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Registration failed. Email might already exist."})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! You can now login.",
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"user_type": user.UserType,
		},
		"vendor": vendor,
	})
}

type RegisterSupplierRequest struct {
	Email                string  `json:"email" binding:"required,email"`
	Password             string  `json:"password" binding:"required,min=6"`
	SupplierName         string  `json:"supplier_name" binding:"required"`
	OwnerName            string  `json:"owner_name" binding:"required"`
	GSTNumber            string  `json:"gst_number" binding:"required"`
	Location             string  `json:"location"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Category             string  `json:"category"`
	Specialty            string  `json:"specialty"`
	ContactNumber        string  `json:"contact_number"`
	MinimumOrderQuantity int     `json:"minimum_order_quantity"`
}

// RegisterSupplier creates a user account and supplier profile in one transaction
func RegisterSupplier(c *gin.Context) {
	var req RegisterSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validation.ValidGST(req.GSTNumber) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid GST number format. GST should be 15 characters (e.g., 22AAAAA0000A1Z5)"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.OwnerName,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     models.TypeSupplier,
	}
	supplier := models.Supplier{
		SupplierName:         req.SupplierName,
		OwnerName:            req.OwnerName,
		GSTNumber:            req.GSTNumber,
		Location:             req.Location,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		Category:             req.Category,
		Specialty:            req.Specialty,
		ContactNumber:        req.ContactNumber,
		MinimumOrderQuantity: req.MinimumOrderQuantity,
		ShopStatus:           models.ShopOpen,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		supplier.UserID = user.ID
		return tx.Create(&supplier).Error
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Registration failed. Email might already exist."})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! You can now login.",
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"user_type": user.UserType,
		},
		"supplier": supplier,
	})
}

type RegisterConsumerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterConsumer creates a plain consumer account
func RegisterConsumer(c *gin.Context) {
	var req RegisterConsumerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     models.TypeConsumer,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Registration failed. Email might already exist."})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! You can now login.",
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"user_type": user.UserType,
		},
	})
}

type LoginRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	UserType models.UserType `json:"user_type" binding:"required"`
}

// Login authenticates a user for the requested portal and returns a JWT.
// The email lookup is filtered by user_type, so a vendor credential never
// opens the supplier portal.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND user_type = ?", req.Email, req.UserType).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"user_type": user.UserType,
		},
	})
}

// GetProfile returns the authenticated user's account row
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// ChangePassword verifies the current password before replacing it
func ChangePassword(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := config.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully!"})
}
