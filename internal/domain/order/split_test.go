//go:build unit

package order_test

import (
	"testing"

	"fulfillment-core/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplitQuantity(t *testing.T) {
	cases := []struct {
		name     string
		total    int
		n        int
		expected []int
	}{
		{name: "even split", total: 100, n: 2, expected: []int{50, 50}},
		{name: "remainder goes to first items", total: 100, n: 3, expected: []int{34, 33, 33}},
		{name: "two remainder items", total: 11, n: 3, expected: []int{4, 4, 3}},
		{name: "single target", total: 100, n: 1, expected: []int{100}},
		{name: "more targets than quantity", total: 3, n: 5, expected: []int{1, 1, 1, 0, 0}},
		{name: "zero total", total: 0, n: 2, expected: []int{0, 0}},
		{name: "zero targets", total: 100, n: 0, expected: nil},
		{name: "negative targets", total: 100, n: -1, expected: nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := order.SplitQuantity(c.total, c.n)
			if diff := cmp.Diff(c.expected, actual); diff != "" {
				t.Errorf("SplitQuantity mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitQuantitySumsToTotal(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for n := 1; n <= 7; n++ {
			parts := order.SplitQuantity(total, n)
			sum := 0
			for _, p := range parts {
				sum += p
			}
			assert.Equal(t, total, sum, "total=%d n=%d", total, n)
		}
	}
}
