package config

import (
	"log"

	"freshstalls-api/models"
)

// commonSupplies are the quick-add staples offered when building an order cart
var commonSupplies = []models.CommonSupply{
	{Name: "Potatoes", Quantity: 1, Unit: "kg", Category: "Vegetables"},
	{Name: "Onions", Quantity: 2, Unit: "kg", Category: "Vegetables"},
	{Name: "Tomatoes", Quantity: 2, Unit: "kg", Category: "Vegetables"},
	{Name: "Ginger", Quantity: 0.5, Unit: "kg", Category: "Vegetables"},
	{Name: "Garlic", Quantity: 0.5, Unit: "kg", Category: "Vegetables"},
	{Name: "Green Chilies", Quantity: 0.25, Unit: "kg", Category: "Vegetables"},
	{Name: "Cooking Oil", Quantity: 2, Unit: "liter", Category: "Oils"},
	{Name: "Salt", Quantity: 1, Unit: "kg", Category: "Essentials"},
	{Name: "Sugar", Quantity: 1, Unit: "kg", Category: "Sweeteners"},
	{Name: "Turmeric Powder", Quantity: 0.25, Unit: "kg", Category: "Spices"},
	{Name: "Red Chili Powder", Quantity: 0.25, Unit: "kg", Category: "Spices"},
	{Name: "Coriander Powder", Quantity: 0.25, Unit: "kg", Category: "Spices"},
	{Name: "Wheat Flour", Quantity: 5, Unit: "kg", Category: "Grains"},
	{Name: "Basmati Rice", Quantity: 5, Unit: "kg", Category: "Grains"},
	{Name: "Toor Dal", Quantity: 1, Unit: "kg", Category: "Pulses"},
	{Name: "Mustard Oil", Quantity: 1, Unit: "liter", Category: "Oils"},
	{Name: "Ghee", Quantity: 0.5, Unit: "kg", Category: "Oils"},
	{Name: "Butter", Quantity: 0.5, Unit: "kg", Category: "Oils"},
	{Name: "Milk", Quantity: 2, Unit: "liter", Category: "Dairy"},
	{Name: "Curd", Quantity: 1, Unit: "kg", Category: "Dairy"},
	{Name: "Paneer", Quantity: 0.5, Unit: "kg", Category: "Dairy"},
}

// SeedCommonSupplies loads the staple catalogue once, on first startup
func SeedCommonSupplies() {
	var count int64
	DB.Model(&models.CommonSupply{}).Count(&count)
	if count > 0 {
		return
	}
	if err := DB.Create(&commonSupplies).Error; err != nil {
		log.Println("Failed to seed common supplies:", err)
		return
	}
	log.Printf("✅ Seeded %d common supplies", len(commonSupplies))
}
