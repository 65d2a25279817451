package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"incanto_back_end/internal/config"
	"incanto_back_end/internal/sepay"
	"incanto_back_end/internal/utils"
)

type checkoutSessionRequest struct {
	OrderID      string `json:"orderId"`
	Amount       int64  `json:"amount"`
	Description  string `json:"description"`
	CustomerInfo struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"customerInfo"`
	PaymentMethod string `json:"paymentMethod"`
}

// CreateCheckoutSession tạo phiên hosted checkout SePay cho một đơn hàng.
func (a *API) CreateCheckoutSession(c *gin.Context) {
	if !config.IsSepayConfigured() {
		abortJSON(c, http.StatusServiceUnavailable, "Cổng thanh toán SePay chưa được cấu hình")
		return
	}

	var req checkoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortJSON(c, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}

	if req.OrderID == "" || req.Amount == 0 || req.Description == "" {
		abortJSON(c, http.StatusBadRequest, "Thiếu thông tin bắt buộc: orderId, amount, description")
		return
	}
	if req.Amount <= 0 {
		abortJSON(c, http.StatusBadRequest, "Số tiền thanh toán phải lớn hơn 0")
		return
	}

	client, err := sepay.CreateFromEnv()
	if err != nil {
		respondSepayError(c, err)
		return
	}

	options := sepay.CreateCheckoutOptions(
		req.OrderID, req.Amount, req.Description,
		req.CustomerInfo.Name, req.CustomerInfo.Email, req.CustomerInfo.Phone,
		req.PaymentMethod,
	)

	session, err := client.InitCheckout(options)
	if err != nil {
		respondSepayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkoutUrl":   session.CheckoutURL,
		"formFields":    session.FormFields,
		"transactionId": session.TransactionID,
		"orderId":       req.OrderID,
	})
}

// respondSepayError dịch lỗi adapter sang HTTP status + message. Lỗi
// không nhận diện được thành 500 với thông điệp chung — không lộ stack
// trace cho client.
func respondSepayError(c *gin.Context, err error) {
	log.Printf("❌ Lỗi SePay: %v", err)

	var sepayErr *sepay.Error
	if errors.As(err, &sepayErr) {
		status := sepayErr.StatusCode
		if status == 0 {
			switch sepayErr.Code {
			case sepay.ErrValidationError:
				status = http.StatusBadRequest
			case sepay.ErrInvalidCredentials:
				status = http.StatusServiceUnavailable
			default:
				status = http.StatusInternalServerError
			}
		}
		c.JSON(status, gin.H{"error": sepayErr.Message, "code": sepayErr.Code})
		return
	}

	abortJSON(c, http.StatusInternalServerError, "Không thể khởi tạo thanh toán")
}

// SepayWebhook nhận callback xác nhận giao dịch từ SePay. Raw body được
// đọc trước để xác minh chữ ký; chữ ký sai là sự kiện bảo mật — trả 401
// trước khi parse payload.
func (a *API) SepayWebhook(c *gin.Context) {
	rawBody, err := c.GetRawData()
	if err != nil {
		abortJSON(c, http.StatusBadRequest, "Không đọc được body")
		return
	}

	cfg := config.GetSepayConfig()
	if cfg.WebhookSecret != "" && cfg.WebhookSecret != config.WebhookSecretPlaceholder {
		signature := c.GetHeader("x-sepay-signature")
		if !sepay.VerifyWebhookSignature(rawBody, signature, cfg.WebhookSecret) {
			log.Println("❌ Chữ ký webhook không hợp lệ")
			abortJSON(c, http.StatusUnauthorized, "Invalid signature")
			return
		}
	} else {
		log.Println("⚠️ Webhook secret chưa cấu hình — bỏ qua xác minh chữ ký")
	}

	var payload sepay.WebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		log.Printf("❌ Lỗi xử lý webhook SePay: %v", err)
		abortJSON(c, http.StatusInternalServerError, "Webhook processing failed")
		return
	}

	log.Printf("📥 Webhook SePay: id=%d | %s | %s | ref=%s", payload.ID, utils.FormatVND(payload.TransferAmount), payload.Content, payload.ReferenceCode)

	orderID := sepay.ExtractOrderID(payload.Content, payload.ReferenceCode)
	if orderID != "" {
		// TODO: cập nhật trạng thái thanh toán của đơn khi có kho đơn hàng
		log.Printf("✅ Thanh toán xác nhận cho đơn %s: %s", orderID, utils.FormatVND(payload.TransferAmount))
		go utils.NotifyPaymentConfirmedMail(orderID, payload.TransferAmount)
	}

	var orderIDField interface{}
	if orderID != "" {
		orderIDField = orderID
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Webhook received",
		"orderId": orderIDField,
	})
}

// SepayWebhookChallenge trả nguyên văn tham số challenge cho handshake
// xác minh endpoint của SePay.
func (a *API) SepayWebhookChallenge(c *gin.Context) {
	if challenge := c.Query("challenge"); challenge != "" {
		c.String(http.StatusOK, challenge)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Webhook endpoint active"})
}

// SepayQR sinh mã VietQR chuyển khoản cho một đơn hàng.
func (a *API) SepayQR(c *gin.Context) {
	bankBIN := os.Getenv("SEPAY_BANK_BIN")
	account := os.Getenv("SEPAY_BANK_ACCOUNT")
	if bankBIN == "" || account == "" {
		abortJSON(c, http.StatusServiceUnavailable, "Tài khoản nhận chuyển khoản chưa được cấu hình")
		return
	}

	orderID := c.Query("orderId")
	if orderID == "" {
		abortJSON(c, http.StatusBadRequest, "Thiếu orderId")
		return
	}

	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil || amount <= 0 {
		abortJSON(c, http.StatusBadRequest, "Số tiền thanh toán phải lớn hơn 0")
		return
	}

	qr, err := sepay.GenerateVietQR(bankBIN, account, amount, orderID)
	if err != nil {
		respondSepayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"qrCode":  qr,
		"orderId": orderID,
		"amount":  amount,
	})
}
