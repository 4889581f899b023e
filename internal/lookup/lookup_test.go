package lookup

import (
	"testing"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: "3", Customer: "HIKU", Style: "4100304PF"},
		{ID: "2", Customer: "HIKH", Style: "GE-1"},
		{ID: "1", Customer: "HIKH", Style: "GE-2"},
		{ID: "0", Customer: "HIKH", Style: "GE-1"},
		{ID: "x", Customer: "", Style: "orphan"},
	}
}

func TestFindKeepsStoreOrder(t *testing.T) {
	got := Find(sampleOrders(), OrderKey, Key{Customer: "HIKH", Style: "GE-1"})

	assert.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "0", got[1].ID)
}

func TestFirst(t *testing.T) {
	got, ok := First(sampleOrders(), OrderKey, Key{Customer: "HIKH", Style: "GE-2"})
	assert.True(t, ok)
	assert.Equal(t, "1", got.ID)

	_, ok = First(sampleOrders(), OrderKey, Key{Customer: "hikh", Style: "GE-2"})
	assert.False(t, ok, "keys match exactly")
}

func TestCustomersAndStyles(t *testing.T) {
	orders := sampleOrders()

	assert.Equal(t, []string{"HIKU", "HIKH"}, Customers(orders, OrderKey))
	assert.Equal(t, []string{"GE-1", "GE-2"}, Styles(orders, OrderKey, "HIKH"))
	assert.Empty(t, Styles(orders, OrderKey, "NOBODY"))
}
