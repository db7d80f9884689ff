package models

import "time"

// User is the identity that owns a cart and places orders. Authentication is
// handled upstream; this row only anchors ownership.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"user_id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// AuthUser is the resolved acting identity, passed explicitly into the
// service layer so engines never consult ambient session state.
type AuthUser struct {
	ID    uint
	Email string
}

// Address is a shipping address owned by a user.
type Address struct {
	ID           uint      `gorm:"primaryKey" json:"address_id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Street       string    `gorm:"type:varchar(255);not null" json:"street"`
	BuildingName string    `gorm:"type:varchar(255)" json:"building_name"`
	City         string    `gorm:"type:varchar(100);not null" json:"city"`
	State        string    `gorm:"type:varchar(100);not null" json:"state"`
	Country      string    `gorm:"type:varchar(100);not null" json:"country"`
	Pincode      string    `gorm:"type:varchar(20);not null" json:"pincode"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

// CreateAddressRequest is the payload for creating an address.
type CreateAddressRequest struct {
	Street       string `json:"street" binding:"required,min=3"`
	BuildingName string `json:"building_name"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Country      string `json:"country" binding:"required"`
	Pincode      string `json:"pincode" binding:"required,min=4"`
}
