package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Không tìm thấy file .env — dùng biến môi trường của hệ thống")
	} else {
		log.Println("✅ Đã nạp file .env")
	}
}

// AppBaseURL trả về base URL của storefront, dùng để dựng các callback
// URL success/error/cancel cho cổng thanh toán.
func AppBaseURL() string {
	if u := os.Getenv("APP_URL"); u != "" {
		return u
	}
	return "http://localhost:3000"
}

// SheetWebhookURL là webhook Google Apps Script nhận bản ghi đơn hàng.
// Rỗng nghĩa là tắt chuyển tiếp.
func SheetWebhookURL() string {
	return os.Getenv("GOOGLE_SHEET_WEBHOOK_URL")
}
