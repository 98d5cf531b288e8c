package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/classics-showroom/internal/domain/cart"
)

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart:user:42", cartKey(42))
}

func TestItemsFromHash(t *testing.T) {
	items, err := itemsFromHash(map[string]string{
		"7":  "1",
		"3":  "2",
		"11": "0",
	})
	require.NoError(t, err)
	assert.Equal(t, []cart.Item{
		{CarID: 3, Quantity: 2},
		{CarID: 7, Quantity: 1},
	}, items)
}

func TestItemsFromHash_Empty(t *testing.T) {
	items, err := itemsFromHash(map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.True(t, (&cart.Cart{Items: items}).Empty())
}

func TestItemsFromHash_Malformed(t *testing.T) {
	_, err := itemsFromHash(map[string]string{"abc": "1"})
	require.Error(t, err)

	_, err = itemsFromHash(map[string]string{"1": "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity of car 1")
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Options().DB)

	_, err = NewClient("://nope")
	require.Error(t, err)
}
