package models

import "time"

type Supplier struct {
	ID                   uint              `json:"id" gorm:"primaryKey"`
	UserID               uint              `json:"user_id" gorm:"uniqueIndex;not null"`
	User                 User              `json:"user,omitempty" gorm:"foreignKey:UserID"`
	SupplierName         string            `json:"supplier_name" gorm:"not null"`
	OwnerName            string            `json:"owner_name"`
	GSTNumber            string            `json:"gst_number" gorm:"not null"`
	Location             string            `json:"location"`
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	Category             string            `json:"category"`
	Specialty            string            `json:"specialty"`
	ContactNumber        string            `json:"contact_number"`
	MinimumOrderQuantity int               `json:"minimum_order_quantity"`
	IsVerified           bool              `json:"is_verified" gorm:"default:false"`
	ShopStatus           ShopStatus        `json:"shop_status" gorm:"not null;default:'open'"`
	Products             []SupplierProduct `json:"products,omitempty" gorm:"foreignKey:SupplierID"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

type SupplierProduct struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	SupplierID       uint      `json:"supplier_id" gorm:"not null;index"`
	ProductName      string    `json:"product_name" gorm:"not null"`
	SKU              string    `json:"sku"`
	Description      string    `json:"description"`
	Unit             string    `json:"unit"` // kg, liter, piece, ...
	PricePerUnit     float64   `json:"price_per_unit" gorm:"not null"`
	MinOrderQuantity float64   `json:"min_order_quantity" gorm:"default:1"`
	MaxOrderQuantity float64   `json:"max_order_quantity"`
	Category         string    `json:"category"`
	IsAvailable      bool      `json:"is_available" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// StockStatus is a supplier's report on an ingredient's availability
type StockStatus string

const (
	StockIn  StockStatus = "in_stock"
	StockLow StockStatus = "low_stock"
	StockOut StockStatus = "out_of_stock"
)

// IngredientSourcing is supplier-authored: vendors read it, only the
// linked supplier may write it, and only after an accepted order
type IngredientSourcing struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	VendorID         uint        `json:"vendor_id" gorm:"not null;uniqueIndex:idx_sourcing_key"`
	SupplierID       uint        `json:"supplier_id" gorm:"not null;uniqueIndex:idx_sourcing_key"`
	Supplier         Supplier    `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	IngredientName   string      `json:"ingredient_name" gorm:"not null;uniqueIndex:idx_sourcing_key"`
	Status           StockStatus `json:"status" gorm:"not null;default:'in_stock'"`
	LastDelivered    *time.Time  `json:"last_delivered"`
	NextDeliveryDate *time.Time  `json:"next_delivery_date"`
	IsVerified       bool        `json:"is_verified" gorm:"default:false"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type InventoryItem struct {
	ID                     uint       `json:"id" gorm:"primaryKey"`
	VendorID               uint       `json:"vendor_id" gorm:"not null;index"`
	ItemName               string     `json:"item_name" gorm:"not null"`
	Quantity               float64    `json:"quantity"`
	Unit                   string     `json:"unit"`
	SupplierID             *uint      `json:"supplier_id"`
	Supplier               *Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	EstimatedDaysRemaining *int       `json:"estimated_days_remaining"`
	LastOrdered            *time.Time `json:"last_ordered"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// CommonSupply is a seeded catalogue row used to prefill quick-order carts
type CommonSupply struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"uniqueIndex;not null"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}
