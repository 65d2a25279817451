package cart

import "incanto_back_end/internal/models"

// Các hàm thuần túy tính tổng từ danh sách dòng hàng. Store và checkout
// flow đều dùng chung để hai phía không lệch công thức.

func SubtotalOf(items []models.CartItem) int64 {
	var sum int64
	for _, item := range items {
		sum += item.Price * int64(item.Quantity)
	}
	return sum
}

func DiscountOf(items []models.CartItem) int64 {
	var sum int64
	for _, item := range items {
		if item.OriginalPrice > 0 {
			sum += (item.OriginalPrice - item.Price) * int64(item.Quantity)
		}
	}
	return sum
}

// ShippingFor áp ngưỡng miễn phí vận chuyển: đạt ngưỡng (>=) là 0,
// dưới ngưỡng là phí cố định.
func ShippingFor(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingFee
}

func TotalOf(items []models.CartItem) int64 {
	subtotal := SubtotalOf(items)
	return subtotal + ShippingFor(subtotal)
}
