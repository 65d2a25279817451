package models

// CartItem là một dòng hàng trong giỏ. Tối đa một CartItem cho mỗi
// product id; thêm lại cùng sản phẩm sẽ cộng dồn số lượng.
type CartItem struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
	Capacity      string `json:"capacity,omitempty"`
	InStock       bool   `json:"inStock"`
}

// NewCartItem tạo dòng hàng từ một sản phẩm catalog.
func NewCartItem(p Product, quantity int) CartItem {
	return CartItem{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Quantity:      quantity,
		Capacity:      p.Capacity,
		InStock:       p.InStock,
	}
}

// Cart là tổng hợp dẫn xuất từ danh sách dòng hàng — không bao giờ
// được lưu riêng, luôn tính lại.
type Cart struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  int64      `json:"subtotal"`
	Discount  int64      `json:"discount"`
	Shipping  int64      `json:"shipping"`
	Total     int64      `json:"total"`
}
