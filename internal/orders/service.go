// Package orders ghi nhận đơn hàng mới: kiểm tra trường bắt buộc, rồi
// chuyển tiếp best-effort sang Google Sheet và email chủ shop. Storefront
// không tự lưu đơn — Sheet là sổ cái duy nhất.
package orders

import (
	"context"
	"errors"
	"log"

	"incanto_back_end/internal/models"
	"incanto_back_end/internal/utils"
)

// ErrMissingContact: đơn thiếu họ tên hoặc số điện thoại.
var ErrMissingContact = errors.New("Thiếu thông tin bắt buộc: Họ tên và số điện thoại")

type Service struct {
	sheetURL string
}

func NewService(sheetURL string) *Service {
	return &Service{sheetURL: sheetURL}
}

// Notify kiểm tra rồi ghi nhận đơn hàng. Chuyển tiếp Sheet và email chạy
// tách rời — thất bại của chúng được log nhưng không làm đơn thất bại.
func (s *Service) Notify(ctx context.Context, order models.Order) error {
	if order.CustomerName == "" || order.Phone == "" {
		return ErrMissingContact
	}

	log.Printf("🧾 Đơn hàng mới: %s | %s | %s | %s", order.OrderID, order.CustomerName, order.Phone, utils.FormatVND(order.Total))

	if s.sheetURL != "" {
		go utils.ForwardOrderToSheet(s.sheetURL, order)
	}
	go utils.NotifyNewOrderMail(order)

	return nil
}
