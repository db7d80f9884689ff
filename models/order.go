package models

import "time"

// OrderStatusAccepted is the status stamped on a freshly assembled order.
const OrderStatusAccepted = "Order Accepted"

// Order is an immutable snapshot of a checked-out cart. Only Status may
// change after creation.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"order_id"`
	Email       string      `gorm:"type:varchar(255);index;not null" json:"email"`
	OrderNumber string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_number"`
	OrderDate   time.Time   `gorm:"not null" json:"order_date"`
	OrderPrice  float64     `gorm:"not null" json:"order_price"`
	AddressID   uint        `gorm:"not null" json:"address_id"`
	Status      string      `gorm:"type:varchar(50);not null" json:"status"`
	PaymentID   uint        `gorm:"uniqueIndex;not null" json:"-"`
	Payment     Payment     `gorm:"foreignKey:PaymentID" json:"payment"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"-"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"-"`
}

// OrderItem carries the cart snapshot forward: quantity, discount and price
// are copied, never re-read from the product row.
type OrderItem struct {
	ID                  uint    `gorm:"primaryKey" json:"order_item_id"`
	OrderID             uint    `gorm:"index;not null" json:"order_id"`
	ProductID           uint    `gorm:"not null" json:"product_id"`
	Quantity            int     `gorm:"not null" json:"quantity"`
	Discount            float64 `gorm:"not null;default:0" json:"discount"`
	OrderedProductPrice float64 `gorm:"not null" json:"ordered_product_price"`
}

// Payment records the gateway result for one order, copied verbatim from the
// caller; no gateway verification happens in this layer.
type Payment struct {
	ID                uint      `gorm:"primaryKey" json:"payment_id"`
	PaymentMethod     string    `gorm:"type:varchar(50);not null" json:"payment_method"`
	PgName            string    `gorm:"type:varchar(100)" json:"pg_name"`
	PgPaymentID       string    `gorm:"type:varchar(100)" json:"pg_payment_id"`
	PgStatus          string    `gorm:"type:varchar(50)" json:"pg_status"`
	PgResponseMessage string    `gorm:"type:varchar(255)" json:"pg_response_message"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"-"`
}

// PaymentGatewayDetails is the pre-validated gateway result passed in at
// checkout.
type PaymentGatewayDetails struct {
	PgName            string `json:"pg_name"`
	PgPaymentID       string `json:"pg_payment_id"`
	PgStatus          string `json:"pg_status"`
	PgResponseMessage string `json:"pg_response_message"`
}

// PlaceOrderRequest is the payload for placing an order.
type PlaceOrderRequest struct {
	AddressID         uint   `json:"address_id" binding:"required"`
	PgName            string `json:"pg_name"`
	PgPaymentID       string `json:"pg_payment_id"`
	PgStatus          string `json:"pg_status"`
	PgResponseMessage string `json:"pg_response_message"`
}

// OrderItemView is a serializable order line snapshot.
type OrderItemView struct {
	ID                  uint    `json:"order_item_id"`
	ProductID           uint    `json:"product_id"`
	Quantity            int     `json:"quantity"`
	Discount            float64 `json:"discount"`
	OrderedProductPrice float64 `json:"ordered_product_price"`
}

// PaymentView is a serializable payment snapshot.
type PaymentView struct {
	ID                uint   `json:"payment_id"`
	PaymentMethod     string `json:"payment_method"`
	PgName            string `json:"pg_name"`
	PgPaymentID       string `json:"pg_payment_id"`
	PgStatus          string `json:"pg_status"`
	PgResponseMessage string `json:"pg_response_message"`
}

// OrderView is the assembled order returned to the caller.
type OrderView struct {
	ID          uint            `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Email       string          `json:"email"`
	OrderDate   time.Time       `json:"order_date"`
	OrderPrice  float64         `json:"order_price"`
	Status      string          `json:"status"`
	AddressID   uint            `json:"address_id"`
	Payment     PaymentView     `json:"payment"`
	Items       []OrderItemView `json:"items"`
}

// View converts an order and its loaded associations into snapshot form.
func (o *Order) View() *OrderView {
	view := &OrderView{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Email:       o.Email,
		OrderDate:   o.OrderDate,
		OrderPrice:  o.OrderPrice,
		Status:      o.Status,
		AddressID:   o.AddressID,
		Payment: PaymentView{
			ID:                o.Payment.ID,
			PaymentMethod:     o.Payment.PaymentMethod,
			PgName:            o.Payment.PgName,
			PgPaymentID:       o.Payment.PgPaymentID,
			PgStatus:          o.Payment.PgStatus,
			PgResponseMessage: o.Payment.PgResponseMessage,
		},
		Items: make([]OrderItemView, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		view.Items = append(view.Items, OrderItemView{
			ID:                  item.ID,
			ProductID:           item.ProductID,
			Quantity:            item.Quantity,
			Discount:            item.Discount,
			OrderedProductPrice: item.OrderedProductPrice,
		})
	}
	return view
}

// OrderPlacedEvent is published to Kafka after an order commits.
type OrderPlacedEvent struct {
	OrderID     uint      `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Email       string    `json:"email"`
	OrderPrice  float64   `json:"order_price"`
	ItemCount   int       `json:"item_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// StockDepletedEvent is published when an order drives a product to zero
// stock.
type StockDepletedEvent struct {
	ProductID uint      `json:"product_id"`
	OrderID   uint      `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}
