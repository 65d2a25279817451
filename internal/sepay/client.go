// Package sepay bọc cổng thanh toán SePay PG: dựng URL hosted checkout
// và bộ trường form ký sẵn, chuẩn hóa lỗi vendor về mã lỗi cục bộ, xác
// minh chữ ký webhook. Adapter không tự gọi mạng — form được trình duyệt
// của khách auto-submit sang trang thanh toán của SePay.
package sepay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"incanto_back_end/internal/config"
)

const (
	checkoutURLSandbox    = "https://pay-sandbox.sepay.vn/v1/checkout/init"
	checkoutURLProduction = "https://pay.sepay.vn/v1/checkout/init"

	// Phương thức thanh toán SePay hỗ trợ.
	MethodBankTransfer      = "BANK_TRANSFER"
	MethodNapasBankTransfer = "NAPAS_BANK_TRANSFER"
)

// CheckoutOptions là request tạo phiên thanh toán theo shape của SePay PG.
type CheckoutOptions struct {
	PaymentMethod      string
	OrderInvoiceNumber string
	OrderAmount        int64
	Currency           string
	OrderDescription   string
	SuccessURL         string
	ErrorURL           string
	CancelURL          string
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
}

// CheckoutResponse là phiên checkout tạm thời: URL hosted checkout, bộ
// trường form auto-submit và transaction id (nếu có). Không lưu trữ.
type CheckoutResponse struct {
	CheckoutURL   string     `json:"checkoutUrl"`
	FormFields    FormFields `json:"formFields"`
	TransactionID string     `json:"transactionId,omitempty"`
}

// Client giữ thông tin merchant SePay. Không gọi mạng trong InitCheckout.
type Client struct {
	env        string
	merchantID string
	secretKey  string
}

// NewClient tạo client với thông tin merchant. Thiếu credential là lỗi
// ngay lập tức.
func NewClient(env, merchantID, secretKey string) (*Client, error) {
	if merchantID == "" || secretKey == "" {
		return nil, newError("Thiếu thông tin merchant SePay", ErrInvalidCredentials)
	}
	if env != "sandbox" && env != "production" {
		return nil, newError(fmt.Sprintf("Môi trường SePay không hợp lệ: %q", env), ErrInvalidCredentials)
	}
	return &Client{env: env, merchantID: merchantID, secretKey: secretKey}, nil
}

// CreateFromEnv dựng client từ biến môi trường SEPAY_*.
func CreateFromEnv() (*Client, error) {
	cfg, err := config.ValidateSepayConfig()
	if err != nil {
		return nil, newError(err.Error(), ErrInvalidCredentials)
	}
	return NewClient(cfg.Env, cfg.MerchantID, cfg.SecretKey)
}

// CreateCheckoutOptions dựng options từ dữ liệu đơn hàng. Ba callback URL
// success/error/cancel gắn order id làm query param trên base URL ứng dụng.
func CreateCheckoutOptions(orderID string, amount int64, description, customerName, customerEmail, customerPhone, paymentMethod string) CheckoutOptions {
	if paymentMethod == "" {
		paymentMethod = MethodBankTransfer
	}
	baseURL := config.AppBaseURL()

	return CheckoutOptions{
		PaymentMethod:      paymentMethod,
		OrderInvoiceNumber: orderID,
		OrderAmount:        amount,
		Currency:           "VND",
		OrderDescription:   description,
		SuccessURL:         fmt.Sprintf("%s/checkout/success?order=%s", baseURL, orderID),
		ErrorURL:           fmt.Sprintf("%s/checkout/error?order=%s", baseURL, orderID),
		CancelURL:          fmt.Sprintf("%s/checkout/cancel?order=%s", baseURL, orderID),
		CustomerName:       customerName,
		CustomerEmail:      customerEmail,
		CustomerPhone:      customerPhone,
	}
}

// InitCheckout kiểm tra options rồi dựng phiên thanh toán một lần:
// URL hosted checkout theo môi trường và bộ trường form đã ký.
func (c *Client) InitCheckout(options CheckoutOptions) (*CheckoutResponse, error) {
	if err := validateCheckoutOptions(options); err != nil {
		return nil, err
	}

	fields := c.initOneTimePaymentFields(options)

	return &CheckoutResponse{
		CheckoutURL:   c.checkoutURL(),
		FormFields:    fields,
		TransactionID: extractTransactionID(fields),
	}, nil
}

func (c *Client) checkoutURL() string {
	if c.env == "production" {
		return checkoutURLProduction
	}
	return checkoutURLSandbox
}

// initOneTimePaymentFields dựng bộ trường form theo thứ tự cố định rồi
// ký HMAC-SHA256 trên chuỗi canonical. Chữ ký phải là trường cuối cùng.
func (c *Client) initOneTimePaymentFields(options CheckoutOptions) FormFields {
	fields := FormFields{
		{Key: "merchant_id", Value: c.merchantID},
		{Key: "environment", Value: c.env},
		{Key: "payment_method", Value: options.PaymentMethod},
		{Key: "order_invoice_number", Value: options.OrderInvoiceNumber},
		{Key: "order_amount", Value: strconv.FormatInt(options.OrderAmount, 10)},
		{Key: "currency", Value: options.Currency},
		{Key: "order_description", Value: options.OrderDescription},
		{Key: "success_url", Value: options.SuccessURL},
		{Key: "error_url", Value: options.ErrorURL},
		{Key: "cancel_url", Value: options.CancelURL},
	}
	if options.CustomerName != "" {
		fields = append(fields, FormField{Key: "customer_name", Value: options.CustomerName})
	}
	if options.CustomerEmail != "" {
		fields = append(fields, FormField{Key: "customer_email", Value: options.CustomerEmail})
	}
	if options.CustomerPhone != "" {
		fields = append(fields, FormField{Key: "customer_phone", Value: options.CustomerPhone})
	}

	fields = append(fields, FormField{Key: "signature", Value: c.signFields(fields)})
	return fields
}

// signFields ký chuỗi "key=value&key=value" theo đúng thứ tự trường.
func (c *Client) signFields(fields FormFields) string {
	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, f.Key+"="+f.Value)
	}
	mac := hmac.New(sha256.New, []byte(c.secretKey))
	mac.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}

func validateCheckoutOptions(options CheckoutOptions) error {
	var problems []string

	if options.PaymentMethod == "" {
		problems = append(problems, "thiếu payment method")
	}
	if options.OrderInvoiceNumber == "" {
		problems = append(problems, "thiếu mã đơn hàng")
	}
	if options.OrderAmount <= 0 {
		problems = append(problems, "số tiền phải lớn hơn 0")
	}
	if options.Currency == "" {
		problems = append(problems, "thiếu đơn vị tiền tệ")
	}
	if options.OrderDescription == "" {
		problems = append(problems, "thiếu mô tả đơn hàng")
	}
	if options.SuccessURL == "" {
		problems = append(problems, "thiếu success URL")
	}
	if options.ErrorURL == "" {
		problems = append(problems, "thiếu error URL")
	}
	if options.CancelURL == "" {
		problems = append(problems, "thiếu cancel URL")
	}

	if len(problems) > 0 {
		return newError("Thông tin thanh toán không hợp lệ: "+strings.Join(problems, ", "), ErrValidationError)
	}
	return nil
}

// extractTransactionID dò transaction id trong form fields theo hai tên
// khóa mà SDK của vendor có thể trả về.
func extractTransactionID(fields FormFields) string {
	if v, ok := fields.Get("transaction_id"); ok {
		return v
	}
	if v, ok := fields.Get("txn_id"); ok {
		return v
	}
	return ""
}
