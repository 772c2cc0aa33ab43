package service

import (
	"testing"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestIntentIdempotencyKey(t *testing.T) {
	order := entities.Order{ID: "6f1c1c0e-8a53-4a43-9f3e-5b0d1f8f7c11", Total: 14500, Currency: "USD"}
	base := intentIdempotencyKey(order, "a@b.com", 0)

	assert.Equal(t, base, intentIdempotencyKey(order, "A@B.com", 0))
	assert.Contains(t, base, order.ID)

	other := order
	other.Total = 12000
	otherCurrency := order
	otherCurrency.Currency = "EUR"

	testCases := []struct {
		name string
		key  string
	}{
		{name: "receipt email", key: intentIdempotencyKey(order, "c@d.com", 0)},
		{name: "no receipt email", key: intentIdempotencyKey(order, "", 0)},
		{name: "total", key: intentIdempotencyKey(other, "a@b.com", 0)},
		{name: "currency", key: intentIdempotencyKey(otherCurrency, "a@b.com", 0)},
		{name: "attempt", key: intentIdempotencyKey(order, "a@b.com", 1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, base, tc.key)
		})
	}
}
