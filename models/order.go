package models

import "time"

// OrderStatus represents all possible states of a vendor's supply order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusRejected  OrderStatus = "rejected"
	StatusDelivered OrderStatus = "delivered"
)

// OrderType distinguishes a structured JSON cart from a free-text request
type OrderType string

const (
	OrderStructured OrderType = "structured"
	OrderText       OrderType = "text"
)

type VendorOrder struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	VendorID     uint        `json:"vendor_id" gorm:"not null;index"`
	Vendor       Vendor      `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
	SupplierID   uint        `json:"supplier_id" gorm:"not null;index"`
	Supplier     Supplier    `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Items        string      `json:"items" gorm:"not null"` // JSON cart when structured, free text otherwise
	Message      string      `json:"message"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	OrderType    OrderType   `json:"order_type" gorm:"not null;default:'text'"`
	TemplateID   *uint       `json:"template_id"`
	ResponseDate *time.Time  `json:"response_date"`
	DeliveryDate *time.Time  `json:"delivery_date"`
	OrderItems   []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"order_date"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	OrderID    uint            `json:"order_id" gorm:"not null;index"`
	ProductID  uint            `json:"product_id" gorm:"not null"`
	Product    SupplierProduct `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity   float64         `json:"quantity" gorm:"not null"`
	UnitPrice  float64         `json:"unit_price" gorm:"not null"` // snapshot price at order time
	TotalPrice float64         `json:"total_price" gorm:"not null"`
	Notes      string          `json:"notes"`
}

// OrderTemplate is a named, reusable cart a vendor keeps for repeat orders
type OrderTemplate struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	VendorID     uint           `json:"vendor_id" gorm:"not null;index"`
	SupplierID   uint           `json:"supplier_id" gorm:"not null"`
	TemplateName string         `json:"template_name" gorm:"not null"`
	IsFavorite   bool           `json:"is_favorite" gorm:"default:false"`
	Items        []TemplateItem `json:"items,omitempty" gorm:"foreignKey:TemplateID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type TemplateItem struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	TemplateID uint            `json:"template_id" gorm:"not null;index"`
	ProductID  uint            `json:"product_id" gorm:"not null"`
	Product    SupplierProduct `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity   float64         `json:"quantity" gorm:"not null"`
	Notes      string          `json:"notes"`
}

// CartLine is one entry of a structured order's JSON payload. The same
// shape is stored in VendorOrder.Items and returned by the template-items
// endpoint so the frontend cart can consume both.
type CartLine struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price"`
	Notes       string  `json:"notes"`
}
