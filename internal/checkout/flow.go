// Package checkout điều phối luồng thanh toán hai bước: thu thập và
// kiểm tra thông tin khách (info), rồi tuần tự hai lời gọi — ghi nhận
// đơn hàng và tạo phiên thanh toán — trước khi bàn giao cho cổng SePay
// (payment). Một chiều, không quay lại bước info.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"incanto_back_end/internal/cart"
	"incanto_back_end/internal/models"
	"incanto_back_end/internal/sepay"
)

type Step string

const (
	StepInfo    Step = "info"
	StepPayment Step = "payment"
)

// OrderNotifier ghi nhận bản ghi đơn hàng trước khi thanh toán. Thất bại
// ở đây chặn luôn bước tạo phiên thanh toán.
type OrderNotifier interface {
	Notify(ctx context.Context, order models.Order) error
}

// PaymentGateway tạo phiên hosted checkout từ options.
type PaymentGateway interface {
	InitCheckout(options sepay.CheckoutOptions) (*sepay.CheckoutResponse, error)
}

// ErrAlreadySubmitted: flow đã sang bước payment, không submit lại được.
var ErrAlreadySubmitted = errors.New("Đơn hàng đã được gửi")

// Flow là một lượt checkout. Dựng mới cho mỗi lượt; hai lời gọi mạng
// chạy tuần tự, không retry — lỗi ở đâu thì lượt submit đó kết thúc và
// người dùng phải submit lại.
type Flow struct {
	step     Step
	notifier OrderNotifier
	gateway  PaymentGateway
	now      func() time.Time

	orderID string
	session *sepay.CheckoutResponse
}

func NewFlow(notifier OrderNotifier, gateway PaymentGateway) *Flow {
	return &Flow{
		step:     StepInfo,
		notifier: notifier,
		gateway:  gateway,
		now:      time.Now,
	}
}

func (f *Flow) Step() Step { return f.step }

// OrderID của lượt submit thành công gần nhất, rỗng khi còn ở bước info.
func (f *Flow) OrderID() string { return f.orderID }

// Session là phiên checkout đang giữ trong bộ nhớ cho tới khi form
// auto-submit điều hướng đi.
func (f *Flow) Session() *sepay.CheckoutResponse { return f.session }

// NewOrderID sinh mã đơn hàng "INCANTO-" + epoch millis. Mã được sinh
// lại cho mỗi lượt submit, không có idempotency key.
func NewOrderID(t time.Time) string {
	return "INCANTO-" + strconv.FormatInt(t.UnixMilli(), 10)
}

// FlattenItems nén danh sách dòng hàng thành chuỗi tóm tắt cho bản ghi
// đơn hàng: "Tên SP x2, Tên SP x1".
func FlattenItems(items []models.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

// Submit chạy trọn một lượt: validate → ghi nhận đơn → tạo phiên thanh
// toán → chuyển sang bước payment. Lỗi ở bất kỳ đâu giữ flow ở bước info.
func (f *Flow) Submit(ctx context.Context, items []models.CartItem, info models.CustomerInfo, paymentMethod string) (*sepay.CheckoutResponse, error) {
	if f.step != StepInfo {
		return nil, ErrAlreadySubmitted
	}
	if err := ValidateCustomerInfo(info); err != nil {
		return nil, err
	}

	now := f.now()
	orderID := NewOrderID(now)
	total := cart.TotalOf(items)

	if paymentMethod == "" {
		paymentMethod = sepay.MethodBankTransfer
	}

	order := models.Order{
		Timestamp:     now.UTC().Format(time.RFC3339),
		OrderID:       orderID,
		CustomerName:  info.FullName,
		Phone:         info.Phone,
		Email:         info.Email,
		Address:       info.Address,
		Note:          info.Note,
		Items:         FlattenItems(items),
		Total:         total,
		PaymentMethod: "SePay VietQR",
		PaymentStatus: models.PaymentPending,
	}

	if err := f.notifier.Notify(ctx, order); err != nil {
		return nil, fmt.Errorf("Không thể lưu đơn hàng: %w", err)
	}

	description := fmt.Sprintf("Thanh toán đơn hàng %s - INCANTO Tea Store", orderID)
	options := sepay.CreateCheckoutOptions(orderID, total, description, info.FullName, info.Email, info.Phone, paymentMethod)

	session, err := f.gateway.InitCheckout(options)
	if err != nil {
		return nil, err
	}

	f.orderID = orderID
	f.session = session
	f.step = StepPayment
	return session, nil
}
