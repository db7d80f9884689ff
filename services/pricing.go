package services

import (
	"context"
	"fmt"
	"time"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/repository"
	"github.com/google/uuid"
)

// cartTotal recomputes a cart total from its line-item snapshots. The cart
// total must equal this sum after every successful mutation.
func cartTotal(items []models.CartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].Contribution()
	}
	return total
}

// resyncCartItemPrice re-prices one line item to the product's current
// special price, adjusting the cart total by the contribution delta and
// leaving the quantity untouched. Runs inside the caller's transaction.
func resyncCartItemPrice(ctx context.Context, r *repository.Repositories, cartID, productID uint) error {
	cart, err := r.Carts.FindByIDForUpdate(ctx, cartID)
	if err != nil {
		return err
	}

	product, err := r.Products.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	item, err := r.Carts.FindItem(ctx, cartID, productID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperrors.NotFound("CartItem", "productId", productID)
	}

	remainder := cart.TotalPrice - item.Contribution()

	item.ProductPrice = product.SpecialPrice
	item.Discount = product.Discount
	if err := r.Carts.SaveItem(ctx, item); err != nil {
		return err
	}

	return r.Carts.UpdateTotalPrice(ctx, cartID, remainder+item.Contribution())
}

// newOrderNumber builds a human-scannable unique order reference.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102-150405"), uuid.New().String()[:8])
}
