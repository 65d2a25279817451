package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"

	"incanto_back_end/internal/models"
)

// SendMail gửi một email HTML qua SMTP cấu hình bằng biến môi trường.
// Không có SMTP_HOST thì coi như tắt email.
func SendMail(to, subject, htmlBody string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(getenvDefault("SMTP_FROM", "noreply@incanto.vn")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Gửi email tới", to)
	return client.DialAndSend(msg)
}

// NotifyNewOrderMail báo cho chủ shop có đơn hàng mới. Best-effort:
// lỗi chỉ log.
func NotifyNewOrderMail(order models.Order) {
	to := os.Getenv("SHOP_ORDER_EMAIL")
	if to == "" {
		return
	}

	subject := fmt.Sprintf("🛒 Đơn hàng mới %s - INCANTO", order.OrderID)
	if err := SendMail(to, subject, generateOrderMailHTML(order)); err != nil {
		log.Printf("⚠️ Không gửi được email đơn %s: %v", order.OrderID, err)
	}
}

// NotifyPaymentConfirmedMail báo cho chủ shop một đơn đã được chuyển khoản.
func NotifyPaymentConfirmedMail(orderID string, amount int64) {
	to := os.Getenv("SHOP_ORDER_EMAIL")
	if to == "" {
		return
	}

	subject := fmt.Sprintf("✅ Đã nhận thanh toán %s - INCANTO", orderID)
	html := fmt.Sprintf(`<p>Đơn hàng <strong>%s</strong> đã được thanh toán.</p>
<p>Số tiền: <strong>%s</strong></p>`, orderID, FormatVND(amount))

	if err := SendMail(to, subject, html); err != nil {
		log.Printf("⚠️ Không gửi được email xác nhận thanh toán %s: %v", orderID, err)
	}
}

func generateOrderMailHTML(order models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="vi">
<head><meta charset="UTF-8"><title>Đơn hàng mới</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Đơn hàng mới %s</h2>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr><td style="padding: 6px;"><strong>Khách hàng</strong></td><td>%s</td></tr>
			<tr><td style="padding: 6px;"><strong>Điện thoại</strong></td><td>%s</td></tr>
			<tr><td style="padding: 6px;"><strong>Email</strong></td><td>%s</td></tr>
			<tr><td style="padding: 6px;"><strong>Địa chỉ</strong></td><td>%s</td></tr>
			<tr><td style="padding: 6px;"><strong>Ghi chú</strong></td><td>%s</td></tr>
			<tr><td style="padding: 6px;"><strong>Sản phẩm</strong></td><td>%s</td></tr>
			<tr><td style="padding: 6px;"><strong>Tổng tiền</strong></td><td><strong>%s</strong></td></tr>
			<tr><td style="padding: 6px;"><strong>Thanh toán</strong></td><td>%s</td></tr>
		</table>
	</div>
</body>
</html>`,
		order.OrderID, order.CustomerName, order.Phone, order.Email,
		order.Address, order.Note, order.Items, FormatVND(order.Total), order.PaymentMethod)
}

// FormatVND định dạng số tiền kiểu Việt Nam: 1.234.567₫.
func FormatVND(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ".") + "₫"
	if neg {
		out = "-" + out
	}
	return out
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
