package services

import (
	"context"
	"fmt"
	"time"

	"github.com/HITENDRAS940/E-commerce1/kafka"
	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/repository"
	"go.uber.org/zap"
)

// OrderService converts a mutable cart into an immutable order: payment and
// order rows are written, line items are frozen from the cart snapshots,
// product stock is decremented, and the cart is emptied — all inside one
// transaction. Any failure rolls back every write.
type OrderService struct {
	txm      repository.TxManager
	orders   repository.OrderRepository
	producer kafka.PublisherAPI
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService. producer may be nil; event
// publishing is best-effort and never affects order placement.
func NewOrderService(txm repository.TxManager, orders repository.OrderRepository, producer kafka.PublisherAPI, logger *zap.Logger) *OrderService {
	return &OrderService{txm: txm, orders: orders, producer: producer, logger: logger}
}

// PlaceOrder assembles an order from the acting user's cart. The cart row
// and every product row being decremented are locked for the duration of the
// transaction; availability is re-checked under the lock so stock never goes
// negative, even when two carts race for the last unit.
func (s *OrderService) PlaceOrder(ctx context.Context, user models.AuthUser, addressID uint, paymentMethod string, pg models.PaymentGatewayDetails) (*models.OrderView, error) {
	if paymentMethod == "" {
		return nil, apperrors.Validation("Payment method is required")
	}

	var view *models.OrderView
	var depleted []uint

	err := s.txm.Do(ctx, func(r *repository.Repositories) error {
		cart, err := r.Carts.FindByUserIDForUpdate(ctx, user.ID)
		if err != nil {
			return err
		}

		address, err := r.Addresses.FindByID(ctx, addressID)
		if err != nil {
			return err
		}
		if address.UserID != user.ID {
			return apperrors.NotFound("Address", "addressId", addressID)
		}

		if len(cart.Items) == 0 {
			return apperrors.Validation("User doesn't have any product added in cart")
		}

		payment := &models.Payment{
			PaymentMethod:     paymentMethod,
			PgName:            pg.PgName,
			PgPaymentID:       pg.PgPaymentID,
			PgStatus:          pg.PgStatus,
			PgResponseMessage: pg.PgResponseMessage,
		}
		if err := r.Orders.CreatePayment(ctx, payment); err != nil {
			return err
		}

		now := time.Now()
		order := &models.Order{
			Email:       user.Email,
			OrderNumber: newOrderNumber(now),
			OrderDate:   now,
			OrderPrice:  cart.TotalPrice,
			AddressID:   address.ID,
			Status:      models.OrderStatusAccepted,
			PaymentID:   payment.ID,
		}
		if err := r.Orders.Create(ctx, order); err != nil {
			return err
		}

		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			orderItems = append(orderItems, models.OrderItem{
				OrderID:             order.ID,
				ProductID:           item.ProductID,
				Quantity:            item.Quantity,
				Discount:            item.Discount,
				OrderedProductPrice: item.ProductPrice,
			})
		}
		if err := r.Orders.CreateItems(ctx, orderItems); err != nil {
			return err
		}

		for _, item := range cart.Items {
			product, err := r.Products.FindByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product.Quantity < item.Quantity {
				return apperrors.InvalidState(fmt.Sprintf(
					"Only %d of %s left in stock", product.Quantity, product.Name))
			}
			product.Quantity -= item.Quantity
			if err := r.Products.Save(ctx, product); err != nil {
				return err
			}
			if product.Quantity == 0 {
				depleted = append(depleted, product.ID)
			}
		}

		if err := r.Carts.DeleteAllItems(ctx, cart.ID); err != nil {
			return err
		}
		if err := r.Carts.UpdateTotalPrice(ctx, cart.ID, 0); err != nil {
			return err
		}

		order.Payment = *payment
		order.Items = orderItems
		view = order.View()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.Uint("order_id", view.ID),
		zap.String("order_number", view.OrderNumber),
		zap.String("email", view.Email),
		zap.Float64("order_price", view.OrderPrice),
		zap.Int("items", len(view.Items)),
	)

	s.publishOrderEvents(ctx, view, depleted)

	return view, nil
}

// GetUserOrders retrieves paginated orders for the acting user.
func (s *OrderService) GetUserOrders(ctx context.Context, user models.AuthUser, page, limit int) ([]*models.OrderView, int64, error) {
	orders, total, err := s.orders.FindByEmail(ctx, user.Email, page, limit)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*models.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orders[i].View())
	}
	return views, total, nil
}

// GetOrderByID retrieves one of the acting user's orders.
func (s *OrderService) GetOrderByID(ctx context.Context, user models.AuthUser, orderID uint) (*models.OrderView, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Email != user.Email {
		return nil, apperrors.NotFound("Order", "orderId", orderID)
	}
	return order.View(), nil
}

// publishOrderEvents emits order-placed and stock-depleted events after
// commit. Failures are logged, never surfaced.
func (s *OrderService) publishOrderEvents(ctx context.Context, view *models.OrderView, depleted []uint) {
	if s.producer == nil {
		return
	}

	now := time.Now()
	err := s.producer.Publish(ctx, view.OrderNumber, models.OrderPlacedEvent{
		OrderID:     view.ID,
		OrderNumber: view.OrderNumber,
		Email:       view.Email,
		OrderPrice:  view.OrderPrice,
		ItemCount:   len(view.Items),
		Timestamp:   now,
	})
	if err != nil {
		s.logger.Warn("Failed to publish order-placed event",
			zap.Uint("order_id", view.ID), zap.Error(err))
	}

	for _, productID := range depleted {
		err := s.producer.Publish(ctx, fmt.Sprintf("product-%d", productID), models.StockDepletedEvent{
			ProductID: productID,
			OrderID:   view.ID,
			Timestamp: now,
		})
		if err != nil {
			s.logger.Warn("Failed to publish stock-depleted event",
				zap.Uint("product_id", productID), zap.Error(err))
		}
	}
}
