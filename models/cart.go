package models

import "time"

// Cart is the per-user mutable basket. Exactly one cart per user; the row is
// reused after checkout rather than deleted.
type Cart struct {
	ID         uint       `gorm:"primaryKey" json:"cart_id"`
	UserID     uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Email      string     `gorm:"type:varchar(255);index;not null" json:"email"`
	TotalPrice float64    `gorm:"not null;default:0" json:"total_price"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"-"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"-"`
}

// CartItem is one line item. ProductPrice and Discount are value snapshots
// taken at add/update time, not live references to the product row.
type CartItem struct {
	ID           uint    `gorm:"primaryKey" json:"cart_item_id"`
	CartID       uint    `gorm:"index:idx_cart_product,unique;not null" json:"cart_id"`
	ProductID    uint    `gorm:"index:idx_cart_product,unique;not null" json:"product_id"`
	Product      Product `gorm:"foreignKey:ProductID" json:"-"`
	Quantity     int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	ProductPrice float64 `gorm:"not null" json:"product_price"`
	Discount     float64 `gorm:"not null;default:0" json:"discount"`
}

// Contribution is this line item's share of the cart total.
func (ci *CartItem) Contribution() float64 {
	return ci.ProductPrice * float64(ci.Quantity)
}

// CartItemView is a serializable line-item snapshot.
type CartItemView struct {
	ID           uint        `json:"cart_item_id"`
	Product      ProductView `json:"product"`
	Quantity     int         `json:"quantity"`
	Discount     float64     `json:"discount"`
	ProductPrice float64     `json:"product_price"`
}

// CartView is a serializable snapshot of a cart, safe to hand to the HTTP
// layer without exposing live references to mutable state.
type CartView struct {
	ID         uint           `json:"cart_id"`
	TotalPrice float64        `json:"total_price"`
	Items      []CartItemView `json:"items"`
}

// View converts a cart and its loaded items into snapshot form.
func (c *Cart) View() *CartView {
	view := &CartView{
		ID:         c.ID,
		TotalPrice: c.TotalPrice,
		Items:      make([]CartItemView, 0, len(c.Items)),
	}
	for _, item := range c.Items {
		product := item.Product.View()
		// the API reports the carted quantity on the product entry
		product.Quantity = item.Quantity
		view.Items = append(view.Items, CartItemView{
			ID:           item.ID,
			Product:      product,
			Quantity:     item.Quantity,
			Discount:     item.Discount,
			ProductPrice: item.ProductPrice,
		})
	}
	return view
}
