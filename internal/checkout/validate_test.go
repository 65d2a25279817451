package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"incanto_back_end/internal/models"
)

func TestValidateCustomerInfo(t *testing.T) {
	valid := models.CustomerInfo{FullName: "Nguyễn Văn A", Phone: "0912345678"}

	tests := []struct {
		name    string
		mutate  func(*models.CustomerInfo)
		wantErr error
	}{
		{"hợp lệ", func(i *models.CustomerInfo) {}, nil},
		{"thiếu tên", func(i *models.CustomerInfo) { i.FullName = "" }, ErrMissingName},
		{"tên toàn khoảng trắng", func(i *models.CustomerInfo) { i.FullName = "   " }, ErrMissingName},
		{"thiếu số điện thoại", func(i *models.CustomerInfo) { i.Phone = "" }, ErrMissingPhone},
		{"số +84", func(i *models.CustomerInfo) { i.Phone = "+84912345678" }, nil},
		{"số có khoảng trắng", func(i *models.CustomerInfo) { i.Phone = "091 234 5678" }, nil},
		{"quá ngắn", func(i *models.CustomerInfo) { i.Phone = "12345" }, ErrInvalidPhone},
		{"đầu 0 nhưng thiếu số", func(i *models.CustomerInfo) { i.Phone = "0123" }, ErrInvalidPhone},
		{"không có tiền tố hợp lệ", func(i *models.CustomerInfo) { i.Phone = "84912345678" }, ErrInvalidPhone},
		{"chứa chữ", func(i *models.CustomerInfo) { i.Phone = "09abc45678" }, ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := valid
			tt.mutate(&info)
			err := ValidateCustomerInfo(info)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidationOptionalFields(t *testing.T) {
	// địa chỉ và ghi chú không bắt buộc
	info := models.CustomerInfo{FullName: "Trần Thị B", Phone: "0987654321", Address: "", Note: ""}
	assert.NoError(t, ValidateCustomerInfo(info))
}
