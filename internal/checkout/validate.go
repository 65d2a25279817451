package checkout

import (
	"errors"
	"regexp"
	"strings"

	"incanto_back_end/internal/models"
)

// Số di động Việt Nam: đầu 0 hoặc +84, theo sau 9-10 chữ số. Khoảng
// trắng được bỏ trước khi so khớp.
var phonePattern = regexp.MustCompile(`^(0|\+84)[0-9]{9,10}$`)

var (
	ErrMissingName  = errors.New("Vui lòng nhập họ và tên")
	ErrMissingPhone = errors.New("Vui lòng nhập số điện thoại")
	ErrInvalidPhone = errors.New("Số điện thoại không hợp lệ")
)

// ValidateCustomerInfo kiểm tra thông tin khách trước khi gọi mạng.
// Lỗi trả về nêu đúng vấn đề, chặn toàn bộ submit — không submit dở dang.
func ValidateCustomerInfo(info models.CustomerInfo) error {
	if strings.TrimSpace(info.FullName) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(info.Phone) == "" {
		return ErrMissingPhone
	}
	if !phonePattern.MatchString(stripWhitespace(info.Phone)) {
		return ErrInvalidPhone
	}
	return nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
