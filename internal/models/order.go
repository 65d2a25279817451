package models

// CustomerInfo là thông tin liên hệ khách hàng thu thập ở bước checkout.
// Address và Note không bắt buộc.
type CustomerInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Note     string `json:"note"`
}

// PaymentStatus của một đơn hàng.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Order là bản ghi đơn hàng tạo lúc submit checkout. Storefront không
// tự lưu đơn — bản ghi được chuyển tiếp sang Google Sheet.
type Order struct {
	Timestamp     string        `json:"timestamp"`
	OrderID       string        `json:"orderId"`
	CustomerName  string        `json:"customerName"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	Note          string        `json:"note"`
	Items         string        `json:"items"` // "Tên SP x2, Tên SP x1"
	Total         int64         `json:"total"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
