package cart

import (
	"testing"

	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/catalog"
	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/discount"
)

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{Product: catalog.Product{ID: 1, Price: 10.00}, Quantity: 1},
		{Product: catalog.Product{ID: 2, Price: 5.00}, Quantity: 3},
	}

	tests := []struct {
		name         string
		items        []LineItem
		active       *discount.Discount
		wantCount    int
		wantSubtotal float64
		wantTotal    float64
	}{
		{
			name:         "empty cart",
			items:        nil,
			wantCount:    0,
			wantSubtotal: 0,
			wantTotal:    0,
		},
		{
			name:         "no discount",
			items:        items,
			wantCount:    4,
			wantSubtotal: 25.00,
			wantTotal:    25.00,
		},
		{
			name:         "ten percent off",
			items:        items,
			active:       &discount.Discount{Code: "RAZER", Percentage: 10},
			wantCount:    4,
			wantSubtotal: 25.00,
			wantTotal:    22.50,
		},
		{
			name:         "half off",
			items:        items,
			active:       &discount.Discount{Code: "WALLBIT", Percentage: 50},
			wantCount:    4,
			wantSubtotal: 25.00,
			wantTotal:    12.50,
		},
		{
			name:         "everything free",
			items:        items,
			active:       &discount.Discount{Code: "TUKI", Percentage: 100},
			wantCount:    4,
			wantSubtotal: 25.00,
			wantTotal:    0,
		},
		{
			name:         "discount on empty cart",
			items:        nil,
			active:       &discount.Discount{Code: "GONCY", Percentage: 30},
			wantCount:    0,
			wantSubtotal: 0,
			wantTotal:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items, tt.active)

			if got.ItemCount != tt.wantCount {
				t.Errorf("ItemCount = %d, want %d", got.ItemCount, tt.wantCount)
			}
			if got.Subtotal != tt.wantSubtotal {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.wantSubtotal)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", got.Total, tt.wantTotal)
			}
			if got.Discount != got.Subtotal-got.Total {
				t.Errorf("Discount = %v, want subtotal minus total = %v", got.Discount, got.Subtotal-got.Total)
			}
		})
	}
}
