package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups products for catalog browsing.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"category_id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"category_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// Product is the authoritative stock and pricing record. SpecialPrice is the
// post-discount unit price, cached on the row and recomputed whenever price
// or discount changes.
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"product_id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Description  string    `gorm:"type:text" json:"description"`
	Image        string    `gorm:"type:varchar(255)" json:"image"`
	Quantity     int       `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Price        float64   `gorm:"not null" json:"price"`
	Discount     float64   `gorm:"not null;default:0;check:discount >= 0 AND discount <= 100" json:"discount"`
	SpecialPrice float64   `gorm:"not null" json:"special_price"`
	CategoryID   uint      `gorm:"index" json:"category_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

// BeforeSave keeps the cached SpecialPrice in sync with price and discount.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.SpecialPrice = p.Price - (p.Price*p.Discount)/100
	return nil
}

// CreateProductRequest is the payload for adding a product to the catalog.
type CreateProductRequest struct {
	Name        string  `json:"product_name" binding:"required,min=3,max=255"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Discount    float64 `json:"discount" binding:"discountpercent"`
}

// UpdateProductRequest is the payload for partially updating a product.
type UpdateProductRequest struct {
	Name        *string  `json:"product_name" binding:"omitempty,min=3,max=255"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Discount    *float64 `json:"discount" binding:"omitempty,discountpercent"`
}

// ProductView is a serializable snapshot of a product.
type ProductView struct {
	ID           uint    `json:"product_id"`
	Name         string  `json:"product_name"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	SpecialPrice float64 `json:"special_price"`
	CategoryID   uint    `json:"category_id"`
}

// View converts a product row into its snapshot form.
func (p *Product) View() ProductView {
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Image:        p.Image,
		Quantity:     p.Quantity,
		Price:        p.Price,
		Discount:     p.Discount,
		SpecialPrice: p.SpecialPrice,
		CategoryID:   p.CategoryID,
	}
}
