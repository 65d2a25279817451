package cart

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incanto_back_end/internal/models"
)

// memoryStorage mô phỏng storage bằng map, ghi lại số lần Save để kiểm
// tra mỗi mutation đều được lưu.
type memoryStorage struct {
	blobs     map[string]string
	saveCount int
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{blobs: map[string]string{}}
}

func (m *memoryStorage) Load(_ context.Context, cartID string) []models.CartItem {
	return decodeItems(m.blobs[cartID])
}

func (m *memoryStorage) Save(_ context.Context, cartID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.blobs[cartID] = string(data)
	m.saveCount++
	return nil
}

var (
	teapot = models.Product{ID: 1, Name: "Ấm trà Tử Sa", Price: 1000000, OriginalPrice: 1200000, InStock: true}
	cup    = models.Product{ID: 2, Name: "Chén tống", Price: 380000, InStock: true}
)

func newTestStore(t *testing.T) (*Store, *memoryStorage) {
	t.Helper()
	storage := newMemoryStorage()
	return NewStore(context.Background(), "test-cart", storage), storage
}

func TestAddItemAggregatesQuantity(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.AddItem(ctx, teapot, 1)
	store.AddItem(ctx, teapot, 2)
	store.AddItem(ctx, teapot, 3)

	items := store.Items()
	require.Len(t, items, 1, "cùng product id phải gộp thành một dòng")
	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, 6, store.ItemQuantity(teapot.ID))
	assert.True(t, store.IsInCart(teapot.ID))
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.AddItem(ctx, cup, 0)

	assert.Equal(t, 1, store.ItemQuantity(cup.ID))
}

func TestUpdateQuantityBelowOneIsIgnored(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.AddItem(ctx, teapot, 3)

	store.UpdateQuantity(ctx, teapot.ID, 0)
	assert.Equal(t, 3, store.ItemQuantity(teapot.ID))

	store.UpdateQuantity(ctx, teapot.ID, -5)
	assert.Equal(t, 3, store.ItemQuantity(teapot.ID))

	store.UpdateQuantity(ctx, teapot.ID, 7)
	assert.Equal(t, 7, store.ItemQuantity(teapot.ID))
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.AddItem(ctx, teapot, 1)
	store.AddItem(ctx, cup, 1)

	store.RemoveItem(ctx, teapot.ID)
	assert.False(t, store.IsInCart(teapot.ID))
	assert.True(t, store.IsInCart(cup.ID))

	// xoá id không tồn tại là no-op
	store.RemoveItem(ctx, 999)
	assert.Len(t, store.Items(), 1)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.AddItem(ctx, teapot, 2)
	store.AddItem(ctx, cup, 1)

	store.Clear(ctx)
	assert.Empty(t, store.Items())
	assert.Zero(t, store.ItemCount())
	assert.Zero(t, store.Subtotal())
}

func TestDerivedTotals(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	store.AddItem(ctx, teapot, 2) // 2 × 1.000.000, giá gốc 1.200.000
	store.AddItem(ctx, cup, 1)    // 380.000, không giảm giá

	assert.Equal(t, 3, store.ItemCount())
	assert.Equal(t, int64(2380000), store.Subtotal())
	assert.Equal(t, int64(400000), store.Discount(), "chỉ dòng có giá gốc mới tính giảm giá")
	assert.Equal(t, int64(0), store.Shipping())
	assert.Equal(t, int64(2380000), store.Total())
}

func TestShippingThresholdInclusive(t *testing.T) {
	ctx := context.Background()

	// đúng ngưỡng 2.000.000: 1.000.000 × 2 → miễn phí vận chuyển
	store, _ := newTestStore(t)
	store.AddItem(ctx, teapot, 2)
	require.Equal(t, FreeShippingThreshold, store.Subtotal())
	assert.Equal(t, int64(0), store.Shipping())
	assert.Equal(t, int64(2000000), store.Total())

	// thêm một chiếc nữa vẫn miễn phí — không có hysteresis
	store.AddItem(ctx, teapot, 1)
	assert.Equal(t, int64(0), store.Shipping())

	// dưới ngưỡng: phí cố định
	under, _ := newTestStore(t)
	under.AddItem(ctx, cup, 1)
	assert.Equal(t, ShippingFee, under.Shipping())
	assert.Equal(t, int64(380000+30000), under.Total())
}

func TestEveryMutationPersists(t *testing.T) {
	ctx := context.Background()
	store, storage := newTestStore(t)

	store.AddItem(ctx, teapot, 1)
	store.UpdateQuantity(ctx, teapot.ID, 4)
	store.RemoveItem(ctx, teapot.ID)
	store.Clear(ctx)

	assert.Equal(t, 4, storage.saveCount)
}

func TestPersistedCartRoundTrips(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()

	first := NewStore(ctx, "cart-a", storage)
	first.AddItem(ctx, teapot, 2)
	first.AddItem(ctx, cup, 5)

	second := NewStore(ctx, "cart-a", storage)
	require.Len(t, second.Items(), 2)
	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, first.Subtotal(), second.Subtotal())
}

func TestMalformedPersistedDataYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	storage.blobs["cart-b"] = `{"not":"an array"`

	store := NewStore(ctx, "cart-b", storage)
	assert.Empty(t, store.Items())

	// giỏ vẫn dùng được bình thường sau khi rơi về rỗng
	store.AddItem(ctx, cup, 1)
	assert.Equal(t, 1, store.ItemCount())
}

func TestDecodeItems(t *testing.T) {
	assert.Empty(t, decodeItems(""))
	assert.Empty(t, decodeItems("garbage"))
	assert.Empty(t, decodeItems(`{"id":1}`))

	items := decodeItems(`[{"id":1,"name":"Ấm","price":500000,"quantity":2,"inStock":true}]`)
	require.Len(t, items, 1)
	assert.Equal(t, int64(500000), items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestReduceIsPure(t *testing.T) {
	items := []models.CartItem{{ID: 1, Name: "Ấm", Price: 100, Quantity: 1}}

	next := reduce(items, addAction{item: models.CartItem{ID: 1, Quantity: 2}})
	assert.Equal(t, 1, items[0].Quantity, "reduce không được sửa input")
	assert.Equal(t, 3, next[0].Quantity)

	next = reduce(items, updateQuantityAction{id: 1, quantity: 9})
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 9, next[0].Quantity)
}
