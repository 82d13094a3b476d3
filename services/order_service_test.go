package services

import (
	"strings"
	"testing"
)

func TestNewOrderNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		number := newOrderNumber()

		if !strings.HasPrefix(number, "ORD-") {
			t.Fatalf("expected ORD- prefix, got %q", number)
		}
		if len(number) != 12 {
			t.Fatalf("expected 12 characters, got %q", number)
		}
		if number != strings.ToUpper(number) {
			t.Errorf("expected uppercase, got %q", number)
		}
		if seen[number] {
			t.Fatalf("duplicate order number %q", number)
		}
		seen[number] = true
	}
}
