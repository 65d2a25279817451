package sepay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
)

// WebhookPayload là callback báo giao dịch từ SePay.
type WebhookPayload struct {
	ID              int64  `json:"id"`
	Gateway         string `json:"gateway"`
	TransactionDate string `json:"transactionDate"`
	AccountNumber   string `json:"accountNumber"`
	Code            string `json:"code"`
	Content         string `json:"content"`
	TransferType    string `json:"transferType"`
	TransferAmount  int64  `json:"transferAmount"`
	Accumulated     int64  `json:"accumulated"`
	SubAccount      string `json:"subAccount"`
	ReferenceCode   string `json:"referenceCode"`
	Description     string `json:"description"`
}

// Mã đơn hàng dạng INCANTO-<epoch millis> nằm lẫn trong nội dung chuyển khoản.
var orderIDPattern = regexp.MustCompile(`INCANTO-\d+`)

// VerifyWebhookSignature so chữ ký HMAC-SHA256 (hex) của raw body với
// header x-sepay-signature. So sánh thời gian không đổi.
func VerifyWebhookSignature(rawBody []byte, signature, secretKey string) bool {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}

// ExtractOrderID tìm mã đơn hàng trong nội dung chuyển khoản trước, rồi
// đến mã tham chiếu. Không thấy thì trả về chuỗi rỗng.
func ExtractOrderID(content, referenceCode string) string {
	if m := orderIDPattern.FindString(content); m != "" {
		return m
	}
	return orderIDPattern.FindString(referenceCode)
}
