package bill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsItemLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"item with price", "Milk 2L 120", true},
		{"item with quantity", "3 x Samosa 45", true},
		{"empty line", "", false},
		{"total footer", "Total: 1240", false},
		{"grand total", "GRAND TOTAL 1500", false},
		{"bill number header", "Bill No: 4471", false},
		{"date header", "Date: 12/08/2026", false},
		{"line without digits", "Thank you, visit again", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isItemLine(tt.line))
		})
	}
}
