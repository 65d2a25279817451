package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"incanto_back_end/internal/checkout"
	"incanto_back_end/internal/config"
	"incanto_back_end/internal/models"
	"incanto_back_end/internal/orders"
	"incanto_back_end/internal/sepay"
)

type submitCheckoutRequest struct {
	CustomerInfo  models.CustomerInfo `json:"customerInfo"`
	PaymentMethod string              `json:"paymentMethod"`
}

// SubmitCheckout chạy trọn luồng thanh toán cho giỏ của phiên hiện tại:
// validate thông tin khách, ghi nhận đơn, tạo phiên SePay. Giỏ không bị
// xoá — khách có thể submit lại nếu thanh toán thất bại.
func (a *API) SubmitCheckout(c *gin.Context) {
	if !config.IsSepayConfigured() {
		abortJSON(c, http.StatusServiceUnavailable, "Cổng thanh toán SePay chưa được cấu hình")
		return
	}

	var req submitCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortJSON(c, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}

	store := a.cartStore(c)
	items := store.Items()
	if len(items) == 0 {
		abortJSON(c, http.StatusBadRequest, "Giỏ hàng trống")
		return
	}

	gateway, err := sepay.CreateFromEnv()
	if err != nil {
		respondSepayError(c, err)
		return
	}

	flow := checkout.NewFlow(a.Orders, gateway)
	session, err := flow.Submit(c.Request.Context(), items, req.CustomerInfo, req.PaymentMethod)
	if err != nil {
		var sepayErr *sepay.Error
		switch {
		case errors.Is(err, checkout.ErrMissingName),
			errors.Is(err, checkout.ErrMissingPhone),
			errors.Is(err, checkout.ErrInvalidPhone),
			errors.Is(err, orders.ErrMissingContact):
			abortJSON(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &sepayErr):
			respondSepayError(c, err)
		default:
			abortJSON(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":       flow.OrderID(),
		"step":          flow.Step(),
		"checkoutUrl":   session.CheckoutURL,
		"formFields":    session.FormFields,
		"transactionId": session.TransactionID,
	})
}
