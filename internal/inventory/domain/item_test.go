package domain

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      string
	}{
		{"zero quantity is out of stock", 0, 5, StatusOutOfStock},
		{"zero quantity with zero threshold", 0, 0, StatusOutOfStock},
		{"below threshold is low stock", 1, 10, StatusLowStock},
		{"exactly at threshold is low stock", 5, 5, StatusLowStock},
		{"one above threshold is in stock", 6, 5, StatusInStock},
		{"far above threshold is in stock", 100, 5, StatusInStock},
		{"positive quantity with zero threshold", 1, 0, StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.quantity, tt.threshold)
			if got != tt.want {
				t.Errorf("DeriveStatus(%d, %d) = %q, want %q",
					tt.quantity, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestIsExpiringBefore(t *testing.T) {
	now := time.Now()
	soon := now.Add(24 * time.Hour)
	later := now.Add(30 * 24 * time.Hour)

	expiring := &Item{Name: "Milk", ExpiryDate: &soon}
	if !expiring.IsExpiringBefore(now.Add(7 * 24 * time.Hour)) {
		t.Error("item expiring tomorrow should be flagged within a week")
	}

	fresh := &Item{Name: "Canned Beans", ExpiryDate: &later}
	if fresh.IsExpiringBefore(now.Add(7 * 24 * time.Hour)) {
		t.Error("item expiring in a month should not be flagged within a week")
	}

	noExpiry := &Item{Name: "Shovel"}
	if noExpiry.IsExpiringBefore(now.Add(7 * 24 * time.Hour)) {
		t.Error("item without expiry date should never be flagged")
	}
}
