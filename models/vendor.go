package models

import "time"

// ShopStatus is the manual open/closed toggle on a stall or supplier profile
type ShopStatus string

const (
	ShopOpen   ShopStatus = "open"
	ShopClosed ShopStatus = "closed"
)

type Vendor struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	User          User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ShopName      string     `json:"shop_name" gorm:"not null"`
	GSTNumber     string     `json:"gst_number" gorm:"not null"`
	Location      string     `json:"location"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	ContactNumber string     `json:"contact_number"`
	ShopImage     string     `json:"shop_image"`
	ShopStatus    ShopStatus `json:"shop_status" gorm:"not null;default:'open'"`
	Rating        float64    `json:"rating" gorm:"default:0"` // derived from reviews
	ReviewCount   int        `json:"review_count" gorm:"default:0"`
	MenuItems     []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:VendorID"`
	ShopHours     []ShopHour `json:"shop_hours,omitempty" gorm:"foreignKey:VendorID"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	VendorID     uint      `json:"vendor_id" gorm:"not null;index"`
	ItemName     string    `json:"item_name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"`
	Availability bool      `json:"availability" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ShopHour holds one weekday's opening window; at most seven rows per vendor
type ShopHour struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	VendorID  uint   `json:"vendor_id" gorm:"not null;uniqueIndex:idx_vendor_day"`
	DayOfWeek string `json:"day_of_week" gorm:"not null;uniqueIndex:idx_vendor_day"`
	OpenTime  string `json:"open_time"`  // "HH:MM", 24h
	CloseTime string `json:"close_time"` // "HH:MM", 24h
	IsClosed  bool   `json:"is_closed" gorm:"default:false"`
}

type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	VendorID     uint      `json:"vendor_id" gorm:"not null;index"`
	CustomerName string    `json:"customer_name" gorm:"not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	ReviewText   string    `json:"review_text"`
	CreatedAt    time.Time `json:"review_date"`
}
