// Package cart là nguồn sự thật duy nhất cho nội dung giỏ hàng của một
// phiên khách. Mọi thay đổi đi qua reducer thuần túy rồi được ghi ngay
// xuống storage; tổng tiền luôn được tính lại từ danh sách dòng hàng.
package cart

import (
	"context"
	"log"

	"incanto_back_end/internal/models"
)

const (
	// FreeShippingThreshold: đơn từ 2.000.000₫ được miễn phí vận chuyển.
	FreeShippingThreshold int64 = 2000000
	// ShippingFee là phí vận chuyển cố định dưới ngưỡng.
	ShippingFee int64 = 30000
)

// Store giữ giỏ hàng của một cart id. Không an toàn cho dùng đồng thời —
// mỗi request dựng một Store, nạp từ storage, thao tác rồi bỏ.
type Store struct {
	cartID  string
	items   []models.CartItem
	storage Storage
}

// NewStore nạp giỏ đã lưu của cartID. Dữ liệu thiếu hoặc hỏng cho ra
// giỏ rỗng.
func NewStore(ctx context.Context, cartID string, storage Storage) *Store {
	return &Store{
		cartID:  cartID,
		items:   storage.Load(ctx, cartID),
		storage: storage,
	}
}

func (s *Store) dispatch(ctx context.Context, action Action) {
	s.items = reduce(s.items, action)
	if err := s.storage.Save(ctx, s.cartID, s.items); err != nil {
		log.Printf("⚠️ Không lưu được giỏ hàng %s: %v", s.cartID, err)
	}
}

// AddItem thêm sản phẩm vào giỏ. Sản phẩm đã có thì cộng dồn số lượng
// thay vì tạo dòng mới. Luôn thành công.
func (s *Store) AddItem(ctx context.Context, p models.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	s.dispatch(ctx, addAction{item: models.NewCartItem(p, quantity)})
}

// RemoveItem xoá dòng hàng theo id; không có thì bỏ qua.
func (s *Store) RemoveItem(ctx context.Context, id int) {
	s.dispatch(ctx, removeAction{id: id})
}

// UpdateQuantity đặt lại số lượng một dòng hàng. Số lượng dưới 1 bị bỏ
// qua — muốn xoá phải gọi RemoveItem.
func (s *Store) UpdateQuantity(ctx context.Context, id, quantity int) {
	s.dispatch(ctx, updateQuantityAction{id: id, quantity: quantity})
}

// Clear xoá sạch giỏ.
func (s *Store) Clear(ctx context.Context) {
	s.dispatch(ctx, clearAction{})
}

// IsInCart kiểm tra sản phẩm có trong giỏ không.
func (s *Store) IsInCart(id int) bool {
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// ItemQuantity trả về số lượng của một sản phẩm, 0 nếu không có.
func (s *Store) ItemQuantity(id int) int {
	for _, item := range s.items {
		if item.ID == id {
			return item.Quantity
		}
	}
	return 0
}

// Items trả về bản sao danh sách dòng hàng hiện tại.
func (s *Store) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount là tổng số lượng trên mọi dòng hàng.
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal = Σ(giá × số lượng).
func (s *Store) Subtotal() int64 {
	return SubtotalOf(s.items)
}

// Discount = Σ((giá gốc − giá) × số lượng) trên các dòng có giá gốc.
func (s *Store) Discount() int64 {
	return DiscountOf(s.items)
}

// Shipping là 0 khi subtotal đạt ngưỡng miễn phí, ngược lại là phí cố định.
func (s *Store) Shipping() int64 {
	return ShippingFor(s.Subtotal())
}

// Total = subtotal + shipping.
func (s *Store) Total() int64 {
	return s.Subtotal() + s.Shipping()
}

// Snapshot gom dòng hàng và các tổng dẫn xuất thành một models.Cart.
func (s *Store) Snapshot() models.Cart {
	return models.Cart{
		Items:     s.Items(),
		ItemCount: s.ItemCount(),
		Subtotal:  s.Subtotal(),
		Discount:  s.Discount(),
		Shipping:  s.Shipping(),
		Total:     s.Total(),
	}
}
