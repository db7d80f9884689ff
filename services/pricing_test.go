package services

import (
	"strings"
	"testing"
	"time"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 2, ProductPrice: 50},
		{Quantity: 1, ProductPrice: 79.99},
	}
	assert.InDelta(t, 179.99, cartTotal(items), totalEpsilon)
	assert.Zero(t, cartTotal(nil))
}

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	n := newOrderNumber(now)
	assert.True(t, strings.HasPrefix(n, "ORD-20260830-120000-"))
	assert.Len(t, n, len("ORD-20260830-120000-")+8)

	// the random suffix keeps same-second orders distinct
	assert.NotEqual(t, n, newOrderNumber(now))
}
